package handlers

import (
	"net/http"

	"mobileshop-server/admin"
	"mobileshop-server/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetGalleryPhotos lists the public gallery, optionally filtered by the
// free-text category tag.
func GetGalleryPhotos(c *gin.Context) {
	ctx := c.Request.Context()

	if category := c.Query("category"); category != "" {
		photos, err := Gallery.ListByCategory(ctx, category)
		if err != nil {
			respondError(c, "fetch gallery", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"photos": photos})
		return
	}

	photos, err := Gallery.List(ctx)
	if err != nil {
		respondError(c, "fetch gallery", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func AdminGetGalleryPhotos(c *gin.Context) {
	photos, ok := cachedItems(c, galleryList)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos, "stale": galleryList.Status() == admin.StatusError})
}

func galleryPhotoInputFromForm(c *gin.Context) (store.GalleryPhotoInput, error) {
	uploader, err := formUploader(c, "gallery_photos", "image", "image_url")
	if err != nil {
		return store.GalleryPhotoInput{}, err
	}

	imageURL, err := uploader.ResolveImageURL(c.Request.Context())
	if err != nil {
		return store.GalleryPhotoInput{}, err
	}

	input := store.GalleryPhotoInput{
		Title:       c.PostForm("title"),
		Description: optionalForm(c, "description"),
		Category:    optionalForm(c, "category"),
	}
	if imageURL != nil {
		input.ImageURL = *imageURL
	}
	return input, nil
}

func AdminCreateGalleryPhoto(c *gin.Context) {
	input, err := galleryPhotoInputFromForm(c)
	if err != nil {
		respondError(c, "add photo", err)
		return
	}

	photo, err := Gallery.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "add photo", err)
		return
	}

	refreshAfterMutation(c, galleryList)
	notifySuccess("Success", "Photo added successfully")
	c.JSON(http.StatusCreated, photo)
}

func AdminUpdateGalleryPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID"})
		return
	}

	input, err := galleryPhotoInputFromForm(c)
	if err != nil {
		respondError(c, "update photo", err)
		return
	}

	photo, err := Gallery.Update(c.Request.Context(), id, input)
	if err != nil {
		if gatewayNotFound(c, galleryList, err) {
			return
		}
		respondError(c, "update photo", err)
		return
	}

	refreshAfterMutation(c, galleryList)
	notifySuccess("Success", "Photo updated successfully")
	c.JSON(http.StatusOK, photo)
}

func AdminDeleteGalleryPhoto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo ID"})
		return
	}

	if err := Gallery.Delete(c.Request.Context(), id); err != nil {
		if gatewayNotFound(c, galleryList, err) {
			return
		}
		respondError(c, "delete photo", err)
		return
	}

	refreshAfterMutation(c, galleryList)
	notifySuccess("Success", "Photo deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}
