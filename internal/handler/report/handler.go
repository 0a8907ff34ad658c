package report

import (
	"github.com/gin-gonic/gin"

	reportService "github.com/jwalitptl/careconnect-api/internal/service/report"
	"github.com/jwalitptl/careconnect-api/pkg/httputil"
)

type Handler struct {
	service reportService.ReportServicer
}

func NewHandler(service reportService.ReportServicer) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the dashboard reports. Paths are the ones the
// dashboard UI requests.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/appointments/upcoming", h.UpcomingAppointments)

	reports := r.Group("/reports")
	{
		reports.GET("/no_show_rate", h.NoShowRate)
		reports.GET("/appointments_by_clinic", h.AppointmentsByClinic)
	}
}

func (h *Handler) UpcomingAppointments(c *gin.Context) {
	rows, err := h.service.UpcomingAppointments(c.Request.Context())
	if err != nil {
		c.Error(err)
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithRows(c, rows)
}

func (h *Handler) NoShowRate(c *gin.Context) {
	rows, err := h.service.NoShowRates(c.Request.Context())
	if err != nil {
		c.Error(err)
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithRows(c, rows)
}

func (h *Handler) AppointmentsByClinic(c *gin.Context) {
	rows, err := h.service.AppointmentsByClinic(c.Request.Context())
	if err != nil {
		c.Error(err)
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithRows(c, rows)
}
