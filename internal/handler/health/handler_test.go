package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error {
	return p.err
}

func newEngine(p stubPinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(p).RegisterRoutes(r.Group(""))
	return r
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
		body   string
	}{
		{"live", "/health/live", nil, http.StatusOK, `{"status":"UP"}`},
		{"ready", "/health/ready", nil, http.StatusOK, `{"status":"UP"}`},
		{"not ready", "/health/ready", errors.New("dial tcp: refused"), http.StatusServiceUnavailable,
			`{"status":"DOWN","reason":"Database connection failed"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newEngine(stubPinger{err: tt.err}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
