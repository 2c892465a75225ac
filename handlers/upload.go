package handlers

import (
	"io"
	"net/http"

	"mobileshop-server/admin"

	"github.com/gin-gonic/gin"
)

// uploadPrefixes are the entity folders a standalone upload may target.
var uploadPrefixes = map[string]bool{
	"brands":                  true,
	"phone_models":            true,
	"accessory_categories":    true,
	"accessory_subcategories": true,
	"accessory_products":      true,
	"gallery_photos":          true,
	"uploads":                 true,
}

// AdminUploadImage uploads a standalone image and returns its public URL
func AdminUploadImage(c *gin.Context) {
	prefix := c.PostForm("folder")
	if prefix == "" {
		prefix = "uploads"
	}
	if !uploadPrefixes[prefix] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder"})
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image"})
		return
	}

	uploader := admin.NewUploader(prefix, Gateway)
	uploader.SelectFile(fh.Filename, data)

	url, err := uploader.ResolveImageURL(c.Request.Context())
	if err != nil {
		respondError(c, "upload image", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
