package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

const (
	UploadFolder   = "portfolio/media"
	maxUploadBytes = 10 << 20
)

// UploadHandler stores admin images (logos, icons, award pictures) and
// returns the URL to put into the matching imageUrl/logoUrl/iconUrl field.
type UploadHandler struct {
	uploader service.Uploader
}

func NewUploadHandler(uploader service.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		fail(c, "Failed to upload file", apperror.NewStoreUnavailable("media storage is not configured", nil))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		fail(c, "Failed to upload file", apperror.NewInvalidInput("multipart field 'file' is required", err))
		return
	}
	file, err := header.Open()
	if err != nil {
		fail(c, "Failed to upload file", apperror.NewInvalidInput("cannot read uploaded file", err))
		return
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	publicID := uuid.NewString() + "-" + name

	url, err := h.uploader.Upload(c.Request.Context(), file, UploadFolder, publicID)
	if err != nil {
		fail(c, "Failed to upload file", apperror.NewStoreUnavailable("media upload failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "publicId": publicID})
}

// Delete removes an image previously returned by Upload. Only ids under
// UploadFolder can be addressed.
func (h *UploadHandler) Delete(c *gin.Context) {
	if h.uploader == nil {
		fail(c, "Failed to delete file", apperror.NewStoreUnavailable("media storage is not configured", nil))
		return
	}
	publicID := c.Param("publicId")
	if publicID == "" || strings.ContainsAny(publicID, "/\\") || strings.Contains(publicID, "..") {
		fail(c, "Failed to delete file", apperror.NewInvalidInput("invalid public id", nil))
		return
	}
	if err := h.uploader.Delete(c.Request.Context(), UploadFolder+"/"+publicID); err != nil {
		fail(c, "Failed to delete file", apperror.NewStoreUnavailable("media delete failed", err))
		return
	}
	deleted(c)
}
