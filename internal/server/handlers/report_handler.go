package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herd/internal/domain/herd"
	"github.com/mamadbah2/herd/internal/domain/models"
	"github.com/mamadbah2/herd/internal/service/reporting"
	service "github.com/mamadbah2/herd/internal/service/whatsapp"
)

// ReportService is the reporting surface used by the HTTP layer.
type ReportService interface {
	MovementReport(ctx context.Context, start, end time.Time) (models.MovementReport, error)
	GroupListings(ctx context.Context, day time.Time) ([]models.GroupListing, error)
}

// ReportHandler exposes herd reports over HTTP.
type ReportHandler struct {
	reports   ReportService
	messaging service.MessagingService
	defaultTo string
	logger    *zap.Logger
	now       func() time.Time
}

// NewReportHandler constructs the report HTTP adapter. defaultTo is the
// WhatsApp recipient used when a send request names none.
func NewReportHandler(reports ReportService, messaging service.MessagingService, defaultTo string, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reports: reports, messaging: messaging, defaultTo: defaultTo, logger: logger, now: time.Now}
}

// Movement returns the movement report for ?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *ReportHandler) Movement(c *gin.Context) {
	start, end, ok := h.window(c, c.Query("start"), c.Query("end"))
	if !ok {
		return
	}

	report, err := h.reports.MovementReport(c.Request.Context(), start, end)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Groups returns the weight-annotated group listing for ?date=YYYY-MM-DD, today by default.
func (h *ReportHandler) Groups(c *gin.Context) {
	day := models.DateOf(h.now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	listings, err := h.reports.GroupListings(c.Request.Context(), day)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

// SendMovement generates a report and delivers its summary over WhatsApp.
func (h *ReportHandler) SendMovement(c *gin.Context) {
	var req models.SendReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid send report payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start, end, ok := h.window(c, req.Start, req.End)
	if !ok {
		return
	}

	to := req.To
	if to == "" {
		to = h.defaultTo
	}
	if to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipient is required"})
		return
	}

	report, err := h.reports.MovementReport(c.Request.Context(), start, end)
	if err != nil {
		h.fail(c, err)
		return
	}

	msg := models.OutboundMessageRequest{To: to, Message: reporting.FormatMovementSummary(report)}
	if err := h.messaging.SendOutbound(c.Request.Context(), msg); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

func (h *ReportHandler) window(c *gin.Context, rawStart, rawEnd string) (time.Time, time.Time, bool) {
	start, err := models.ParseDate(rawStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	end, err := models.ParseDate(rawEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	if start.After(end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": reporting.ErrInvalidWindow.Error()})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *ReportHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reporting.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, herd.ErrInvalidGender):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrMessagingDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "messaging disabled"})
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("report request timed out", zap.Error(err))
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "report timed out"})
	default:
		h.logger.Error("report request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to build report"})
	}
}
