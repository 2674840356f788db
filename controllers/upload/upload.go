package uploadController

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5MB

// UploadImage stores a product image under the uploads directory and returns
// the URL it is served from.
//
// POST /upload-image (multipart: file, folder?)
func UploadImage(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file found"})
			return
		}

		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File must be an image"})
			return
		}

		if file.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Image cannot be larger than 5MB"})
			return
		}

		// filepath.Base strips any path components a hostile client sends.
		folder := filepath.Base(c.DefaultPostForm("folder", "products"))
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		dest := filepath.Join(uploadsDir, folder, filename)

		if err := c.SaveUploadedFile(file, dest); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to store image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"imageUrl": "/uploads/" + folder + "/" + filename,
			"message":  "Image uploaded successfully",
		})
	}
}
