package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"O'Brien", "O''Brien"},
		{`C:\temp`, `C:\\temp`},
		{`it\'s`, `it\\''s`},
		{"''", "''''"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"O'Brien", `back\slash`, `\'`, `'\`, `\\''\\`, "Women's health", "a'b'c", `trailing\`,
	}
	for _, in := range inputs {
		assert.Equal(t, in, Unescape(Escape(in)), "input %q", in)
	}
}
