package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-console/internal/middleware"
	"github.com/noah-isme/aps-console/internal/session"
	"github.com/noah-isme/aps-console/pkg/apsclient"
	appErrors "github.com/noah-isme/aps-console/pkg/errors"
	"github.com/noah-isme/aps-console/pkg/response"
)

func controllerFromContext(c *gin.Context) (*session.Controller, bool) {
	ctrl := middleware.SessionFromContext(c)
	if ctrl == nil {
		response.Error(c, appErrors.ErrSessionNotFound)
		return nil, false
	}
	return ctrl, true
}

// respondError reports backend status failures as BACKEND_ERROR; everything
// else goes through the common envelope.
func respondError(c *gin.Context, err error) {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		response.Error(c, appErr)
		return
	}
	if status := apsclient.StatusCode(err); status != 0 {
		message := fmt.Sprintf("%s (backend status %d)", appErrors.ErrBackend.Message, status)
		response.Error(c, appErrors.Wrap(err, appErrors.ErrBackend.Code, appErrors.ErrBackend.Status, message))
		return
	}
	response.Error(c, err)
}

func bindError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

// runAction executes fn against the session and answers with the resulting
// state. When fn parked a confirmation the answer is 202 with the new token.
func runAction(c *gin.Context, fn func(ctx context.Context, ctrl *session.Controller) error) {
	ctrl, ok := controllerFromContext(c)
	if !ok {
		return
	}
	seen := make(map[string]struct{})
	for _, p := range ctrl.PendingConfirmations() {
		seen[p.Token] = struct{}{}
	}
	if err := fn(c.Request.Context(), ctrl); err != nil {
		respondError(c, err)
		return
	}
	respondState(c, ctrl, seen)
}

func respondState(c *gin.Context, ctrl *session.Controller, seen map[string]struct{}) {
	state := ctrl.State()
	for i := len(state.Confirmations) - 1; i >= 0; i-- {
		pending := state.Confirmations[i]
		if _, ok := seen[pending.Token]; ok {
			continue
		}
		response.Accepted(c, state, map[string]interface{}{
			"confirmation": pending,
			"error":        appErrors.Clone(appErrors.ErrConfirmationRequired, pending.Message),
		})
		return
	}
	response.OK(c, state)
}
