package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ToeMom/GroupUp-Final/utils"
)

// ---------------- IMAGE UPLOAD ----------------
func UploadImage(images *utils.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if images == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads are not configured"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
			return
		}
		defer file.Close()

		url, err := images.Upload(c.Request.Context(), file)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
