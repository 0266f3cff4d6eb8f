package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"casaherenia/services/storage"
	"casaherenia/utils"
)

const galleryFolder = "casaherenia/gallery"

// GalleryHandler manages the photo gallery uploads.
type GalleryHandler struct {
	Storage storage.StorageService
}

// UploadImage handles POST /api/admin/gallery.
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "gallery uploads are not configured", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempPath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not save upload", "")
		return
	}
	defer os.Remove(tempPath)

	image, err := h.Storage.Upload(c.Request.Context(), tempPath, galleryFolder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "upload failed", "")
		return
	}

	c.JSON(http.StatusCreated, image)
}

// DeleteImage handles DELETE /api/admin/gallery/:publicID.
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "gallery uploads are not configured", "")
		return
	}

	if err := h.Storage.Delete(c.Request.Context(), c.Param("publicID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "delete failed", "")
		return
	}
	c.Status(http.StatusNoContent)
}
