package session

import (
	"errors"

	"list-control/core/logger"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for session sharing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the session routes. The /join route lives at the
// root so share URLs stay short and scannable.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/session")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleStatus)
	group.Get("/qr", h.HandleQR)
	group.Post("/join", h.HandleJoin)

	app.Get("/join", h.HandleJoinLink)
}

// joinRequest is the body of a join operation.
type joinRequest struct {
	Code string `json:"code"`
}

// shareResponse describes an active session.
type shareResponse struct {
	State string `json:"state"`
	ID    string `json:"id,omitempty"`
	URL   string `json:"url,omitempty"`
}

// HandleCreate starts hosting a session, or re-syncs the active one.
// @Summary Create or Re-share Session
// @Description Creates a shareable session from the current run state. When already hosting, forces an immediate sync and returns the existing session.
// @Tags session
// @Produce json
// @Success 200 {object} shareResponse "Session id and share URL"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /session [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(zap.L(), c)

	id, url, err := h.service.Create(c.Context())
	if err != nil {
		l.Error("Session creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(shareResponse{State: string(StateHosting), ID: id, URL: url})
}

// HandleStatus returns the current sync state.
// @Summary Get Session Status
// @Description Returns the sync state (none, hosting, joined) with the active session id and share URL, if any.
// @Tags session
// @Produce json
// @Success 200 {object} shareResponse "Current state"
// @Router /session [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	state, id, url := h.service.Status()
	return c.JSON(shareResponse{State: string(state), ID: id, URL: url})
}

// HandleQR renders the share URL of the active session as a QR code.
// @Summary Get Session QR Code
// @Description Returns a PNG QR code encoding the share URL of the active session.
// @Tags session
// @Produce png
// @Success 200 {string} binary "PNG image"
// @Failure 404 {object} map[string]string "No active session"
// @Router /session/qr [get]
func (h *Handler) HandleQR(c *fiber.Ctx) error {
	l := logger.WithRayID(zap.L(), c)

	_, id, url := h.service.Status()
	if id == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no active session",
		})
	}
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		l.Error("QR encoding failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// HandleJoin loads a shared session by its code.
// @Summary Join Session
// @Description Replaces the local run state with the shared session identified by the code.
// @Tags session
// @Accept json
// @Produce json
// @Param request body joinRequest true "Session code"
// @Success 200 {object} shareResponse "Joined"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 410 {object} map[string]string "Session expired"
// @Router /session/join [post]
func (h *Handler) HandleJoin(c *fiber.Ctx) error {
	var req joinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := h.service.Join(c.Context(), req.Code); err != nil {
		return h.joinError(c, err)
	}
	state, id, url := h.service.Status()
	return c.JSON(shareResponse{State: string(state), ID: id, URL: url})
}

// HandleJoinLink is the browser entry point for share URLs and QR codes.
// It joins the session named in the query parameter, then redirects to the
// root so the parameter disappears from the visible URL.
// @Summary Join via Share Link
// @Description Joins the session named in the ?session= query parameter and redirects to /.
// @Tags session
// @Param session query string true "Session code"
// @Success 302 {string} string "Redirect to /"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 410 {object} map[string]string "Session expired"
// @Router /join [get]
func (h *Handler) HandleJoinLink(c *fiber.Ctx) error {
	if err := h.service.Join(c.Context(), c.Query("session")); err != nil {
		return h.joinError(c, err)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// joinError writes the error response for a failed join. The response is
// written here; callers must return its result without adding a body or a
// redirect of their own.
func (h *Handler) joinError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrExpired):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"error": "session expired",
		})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "session not found",
		})
	default:
		logger.WithRayID(zap.L(), c).Error("Session join failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
