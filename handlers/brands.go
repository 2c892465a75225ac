package handlers

import (
	"net/http"

	"mobileshop-server/admin"
	"mobileshop-server/models"
	"mobileshop-server/store"
	"mobileshop-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetBrands returns all brands for the public catalog
func GetBrands(c *gin.Context) {
	brands, err := Brands.List(c.Request.Context())
	if err != nil {
		respondError(c, "fetch brands", err)
		return
	}

	out := make([]gin.H, 0, len(brands))
	for _, b := range brands {
		out = append(out, publicBrand(b))
	}
	c.JSON(http.StatusOK, gin.H{"brands": out})
}

// GetBrand returns one brand with its phone models
func GetBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}

	brand, err := Brands.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "fetch brand", err)
		return
	}

	phones, err := PhoneModels.ListByBrand(c.Request.Context(), id)
	if err != nil {
		respondError(c, "fetch brand models", err)
		return
	}

	out := publicBrand(brand)
	modelsOut := make([]gin.H, 0, len(phones))
	for _, m := range phones {
		modelsOut = append(modelsOut, publicPhoneModel(m))
	}
	out["models"] = modelsOut
	c.JSON(http.StatusOK, out)
}

func publicBrand(b models.Brand) gin.H {
	logo := ""
	if b.LogoURL != nil {
		logo = *b.LogoURL
	} else {
		logo = utils.GenerateLogoPlaceholder(b.Name)
	}
	return gin.H{
		"id":          b.ID,
		"name":        b.Name,
		"description": b.Description,
		"logo_url":    logo,
		"created_at":  b.CreatedAt,
	}
}

// AdminGetBrands serves the management screen's list from its controller
func AdminGetBrands(c *gin.Context) {
	brands, ok := cachedItems(c, brandList)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands, "stale": brandList.Status() == admin.StatusError})
}

// AdminCreateBrand creates a brand from a multipart form with an optional
// logo file
func AdminCreateBrand(c *gin.Context) {
	uploader, err := formUploader(c, "brands", "image", "logo_url")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	logoURL, err := uploader.ResolveImageURL(c.Request.Context())
	if err != nil {
		respondError(c, "upload brand logo", err)
		return
	}

	input := store.BrandInput{
		Name:        c.PostForm("name"),
		Description: optionalForm(c, "description"),
		LogoURL:     logoURL,
	}

	brand, err := Brands.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "create brand", err)
		return
	}

	refreshAfterMutation(c, brandList)
	notifySuccess("Success", "Brand added successfully!")
	c.JSON(http.StatusCreated, brand)
}

// AdminUpdateBrand rewrites a brand wholesale
func AdminUpdateBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}

	uploader, err := formUploader(c, "brands", "image", "logo_url")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload"})
		return
	}

	logoURL, err := uploader.ResolveImageURL(c.Request.Context())
	if err != nil {
		respondError(c, "upload brand logo", err)
		return
	}

	input := store.BrandInput{
		Name:        c.PostForm("name"),
		Description: optionalForm(c, "description"),
		LogoURL:     logoURL,
	}

	brand, err := Brands.Update(c.Request.Context(), id, input)
	if err != nil {
		if gatewayNotFound(c, brandList, err) {
			return
		}
		respondError(c, "update brand", err)
		return
	}

	refreshAfterMutation(c, brandList)
	notifySuccess("Success", "Brand updated successfully!")
	c.JSON(http.StatusOK, brand)
}

// AdminDeleteBrand deletes a brand. Dangling model references are the
// database's problem, not checked here.
func AdminDeleteBrand(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}

	if err := Brands.Delete(c.Request.Context(), id); err != nil {
		if gatewayNotFound(c, brandList, err) {
			return
		}
		respondError(c, "delete brand", err)
		return
	}

	refreshAfterMutation(c, brandList)
	notifySuccess("Success", "Brand deleted successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}
