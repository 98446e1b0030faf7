package controller

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"eventsnap/service"
)

type PhotoController struct {
	service *service.PhotoService
}

func NewPhotoController(svc *service.PhotoService) *PhotoController {
	return &PhotoController{service: svc}
}

// Upload handles POST /api/photos/upload (multipart: file, optional
// uploader_info).
func (pc *PhotoController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photo file provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading photo"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		slog.Error("failed to read uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading photo"})
		return
	}

	view, err := pc.service.Ingest(c.Request.Context(), service.Upload{
		Data:             data,
		ContentType:      file.Header.Get("Content-Type"),
		OriginalFilename: file.Filename,
		Size:             file.Size,
		UploaderInfo:     c.PostForm("uploader_info"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// List handles GET /api/photos.
func (pc *PhotoController) List(c *gin.Context) {
	views, err := pc.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetFile handles GET /api/photos/file/:filename.
func (pc *PhotoController) GetFile(c *gin.Context) {
	filename := c.Param("filename")
	data, err := pc.service.GetFile(c.Request.Context(), filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeFor(filename), data)
}

// GetThumbnail handles GET /api/photos/thumbnail/:filename. Thumbnails
// are always JPEG, but the fallback may serve the original, so the
// content type follows the key actually requested.
func (pc *PhotoController) GetThumbnail(c *gin.Context) {
	filename := c.Param("filename")
	data, err := pc.service.GetThumbnail(c.Request.Context(), filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeFor(filename), data)
}

// Delete handles DELETE /api/photos/:photo_id.
func (pc *PhotoController) Delete(c *gin.Context) {
	if err := pc.service.Delete(c.Request.Context(), c.Param("photo_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}

// respondError maps the service error taxonomy onto the HTTP surface:
// validation failures 400, unknown ids/keys 404, everything else a
// generic 500 with the detail kept server-side.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "kind": verr.Kind})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}
	slog.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func contentTypeFor(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
