package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wsikandar/portfolio-cms/internal/application/usecase/content"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

type PortfolioHandler struct {
	aggregate *content.AggregateUseCase
	cache     content.SnapshotCache
	logger    logger.Logger
}

func NewPortfolioHandler(uc *content.AggregateUseCase, cache content.SnapshotCache, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		aggregate: uc,
		cache:     cache,
		logger:    log,
	}
}

// GetPortfolio serves the full content snapshot. A cached copy of the
// marshalled response is served verbatim when present.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if raw, ok := h.cache.Get(ctx); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
			return
		}
	}

	snap := h.aggregate.Snapshot(ctx)
	resp := ToPortfolioResponse(snap)

	raw, err := json.Marshal(resp)
	if err != nil {
		respondError(c, apperror.NewInternal("failed to encode portfolio", err))
		return
	}
	if h.cache != nil {
		h.cache.Set(ctx, raw)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
