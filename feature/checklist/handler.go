package checklist

import (
	"bytes"
	"time"

	"list-control/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the checklist.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the checklist routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/checklist")
	group.Post("/", h.HandleLoad)
	group.Get("/", h.HandleList)
	group.Post("/check", h.HandleCheck)
	group.Get("/report", h.HandleReport)
	group.Get("/report/csv", h.HandleReportCSV)
	group.Post("/reset", h.HandleReset)
}

// checkRequest is the body of a check operation.
type checkRequest struct {
	Code string `json:"code"`
}

// checkResponse is the outcome of a check operation.
type checkResponse struct {
	Code  string `json:"code"`
	Found bool   `json:"found"`
}

// HandleLoad replaces the checklist from an uploaded CSV or plain-text body.
// @Summary Load Checklist
// @Description Replaces the checklist wholesale from a CSV or newline-delimited body. Clears all check records.
// @Tags checklist
// @Accept plain
// @Produce json
// @Success 200 {object} map[string]int "Loaded code count"
// @Failure 400 {object} map[string]string "Unreadable input"
// @Router /checklist [post]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	l := logger.WithRayID(zap.L(), c)

	count, err := h.service.Load(bytes.NewReader(c.Body()))
	if err != nil {
		l.Warn("Checklist load rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"loaded": count})
}

// HandleList returns the checklist rows with their check status.
// @Summary List Checklist
// @Description Returns every checklist entry in load order with its status. Supports substring filtering.
// @Tags checklist
// @Produce json
// @Param filter query string false "Case-insensitive substring filter"
// @Success 200 {array} models.ReportRow "Checklist rows"
// @Router /checklist [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.Rows(c.Query("filter")))
}

// HandleCheck matches a scanned or typed code against the checklist.
// @Summary Check Code
// @Description Normalizes the input (prefix + uppercase) and marks it found on an exact checklist match.
// @Tags checklist
// @Accept json
// @Produce json
// @Param request body checkRequest true "Raw input"
// @Success 200 {object} checkResponse "Match outcome"
// @Failure 400 {object} map[string]string "Empty input"
// @Router /checklist/check [post]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	var req checkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "code is required",
		})
	}

	code, found := h.service.Check(c.Context(), req.Code)
	return c.JSON(checkResponse{Code: code, Found: found})
}

// HandleReport returns the reconciliation summary.
// @Summary Get Report
// @Description Returns total/checked counts plus one row per checklist entry.
// @Tags checklist
// @Produce json
// @Success 200 {object} models.Report "Reconciliation report"
// @Router /checklist/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	return c.JSON(h.service.Report())
}

// HandleReportCSV downloads the report as a CSV attachment.
// @Summary Download Report CSV
// @Description Returns the report as a CSV file with columns Code, Status, Date.
// @Tags checklist
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Router /checklist/report/csv [get]
func (h *Handler) HandleReportCSV(c *fiber.Ctx) error {
	l := logger.WithRayID(zap.L(), c)

	var buf bytes.Buffer
	if err := h.service.WriteReportCSV(&buf); err != nil {
		l.Error("Report export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+ReportFileName(time.Now())+`"`)
	return c.Send(buf.Bytes())
}

// HandleReset starts a new check run.
// @Summary Start New Check
// @Description Clears the checklist, all check records and any active session.
// @Tags checklist
// @Produce json
// @Success 200 {object} map[string]string "Reset confirmation"
// @Router /checklist/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	h.service.Reset(c.Context())
	return c.JSON(fiber.Map{"status": "reset"})
}
