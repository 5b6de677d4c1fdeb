package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wsikandar/portfolio-cms/internal/application/service"
	"github.com/wsikandar/portfolio-cms/pkg/apperror"
	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

const defaultMediaFolder = "portfolio"

type MediaHandler struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewMediaHandler(uploader service.Uploader, log logger.Logger) *MediaHandler {
	return &MediaHandler{uploader: uploader, logger: log}
}

// UploadMedia stores one file and returns its public URL. The caller embeds
// the URL in a later content write; nothing is linked automatically.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	if h.uploader == nil {
		respondError(c, apperror.NewUnavailable("media storage is not configured"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	folder := c.PostForm("folder")
	if folder == "" {
		folder = defaultMediaFolder
	}

	base := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	publicID := base + "-" + uuid.NewString()

	url, err := h.uploader.Upload(c.Request.Context(), file, folder, publicID)
	if err != nil {
		respondError(c, apperror.NewInternal("upload failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
