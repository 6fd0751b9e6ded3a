package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// UploadHandler stores logo images for use on invoices.
type UploadHandler struct {
	uploadDir string
	baseURL   string
}

// NewUploadHandler creates a new UploadHandler saving into uploadDir.
func NewUploadHandler(uploadDir, baseURL string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir, baseURL: strings.TrimRight(baseURL, "/")}
}

// --- POST: /api/uploads ---
func (h *UploadHandler) UploadLogo(c *gin.Context) {
	// 1. Get the file from the request
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	// 2. Only PNG and JPEG can be placed on the PDF
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logo must be a .png, .jpg or .jpeg file"})
		return
	}

	// 3. Save under a generated name
	filename := uuid.NewString() + ext
	path := filepath.Join(h.uploadDir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// path is what an invoice's logo field takes; url is for the browser
	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     h.baseURL + "/uploads/" + filename,
		"path":    path,
	})
}
