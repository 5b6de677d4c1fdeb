package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wsikandar/portfolio-cms/internal/application/dispatch"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type ActionHandler struct {
	dispatcher *dispatch.Dispatcher
	logger     logger.Logger
}

func NewActionHandler(d *dispatch.Dispatcher, log logger.Logger) *ActionHandler {
	return &ActionHandler{dispatcher: d, logger: log}
}

// HandleAction runs one write action from the envelope body. The action's
// result is the response body: the mutated entity for add/update actions,
// `{success}` for deletes and password rotation, `{authenticated}` for
// checkAuth and `{success, token}` for login.
func (h *ActionHandler) HandleAction(c *gin.Context) {
	var req dispatch.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	ident := dispatch.Identity{Authenticated: IsAuthenticated(c)}

	result, err := h.dispatcher.Dispatch(c.Request.Context(), req, ident)
	if err != nil {
		respondError(c, err)
		return
	}

	switch v := result.(type) {
	case *dispatch.AuthStatus:
		c.JSON(http.StatusOK, v)
	case *dispatch.TokenResult:
		c.JSON(http.StatusOK, gin.H{"success": true, "token": v.Token})
	case nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	default:
		c.JSON(http.StatusOK, toResultPayload(v))
	}
}
