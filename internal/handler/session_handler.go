package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-console/internal/dto"
	"github.com/noah-isme/aps-console/internal/middleware"
	"github.com/noah-isme/aps-console/internal/session"
	"github.com/noah-isme/aps-console/pkg/response"
)

type sessionStore interface {
	Create(ctx context.Context) *session.Controller
	Delete(id string) error
}

// SessionHandler opens and closes console sessions.
type SessionHandler struct {
	sessions     sessionStore
	cookieMaxAge int
	secureCookie bool
}

// NewSessionHandler constructs the handler. cookieMaxAge is in seconds.
func NewSessionHandler(sessions sessionStore, cookieMaxAge int, secureCookie bool) *SessionHandler {
	return &SessionHandler{sessions: sessions, cookieMaxAge: cookieMaxAge, secureCookie: secureCookie}
}

// Create godoc
// @Summary Open a console session
// @Description Loads equipment, products and the schedule. A failed initial load is reported as a notification in the returned state.
// @Tags Session
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /ui/session [post]
func (h *SessionHandler) Create(c *gin.Context) {
	ctrl := h.sessions.Create(c.Request.Context())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, ctrl.ID(), h.cookieMaxAge, "/", "", h.secureCookie, true)
	c.Header(middleware.SessionHeader, ctrl.ID())
	response.Created(c, ctrl.State())
}

// State godoc
// @Summary Current session state
// @Tags Session
// @Produce json
// @Param X-Session-ID header string false "Session ID (or aps_session cookie)"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /ui/state [get]
func (h *SessionHandler) State(c *gin.Context) {
	ctrl, ok := controllerFromContext(c)
	if !ok {
		return
	}
	response.OK(c, ctrl.State())
}

// Close godoc
// @Summary Close the console session
// @Tags Session
// @Param X-Session-ID header string false "Session ID (or aps_session cookie)"
// @Success 204
// @Router /ui/session [delete]
func (h *SessionHandler) Close(c *gin.Context) {
	ctrl, ok := controllerFromContext(c)
	if !ok {
		return
	}
	if err := h.sessions.Delete(ctrl.ID()); err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookie, true)
	response.NoContent(c)
}

// Confirm godoc
// @Summary Answer a pending confirmation
// @Description Accepting runs the parked action once; declining drops it.
// @Tags Session
// @Accept json
// @Produce json
// @Param token path string true "Confirmation token"
// @Param payload body dto.ResolveConfirmationRequest true "Answer"
// @Success 200 {object} response.Envelope
// @Success 202 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /ui/confirmations/{token} [post]
func (h *SessionHandler) Confirm(c *gin.Context) {
	var req dto.ResolveConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err, "invalid confirmation payload"))
		return
	}
	token := c.Param("token")
	runAction(c, func(ctx context.Context, ctrl *session.Controller) error {
		return ctrl.ResolveConfirmation(ctx, token, *req.Accept)
	})
}
