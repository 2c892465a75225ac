package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminStats returns the record counts the dashboard cards show
func AdminStats(c *gin.Context) {
	ctx := c.Request.Context()

	brands, err := Brands.List(ctx)
	if err != nil {
		respondError(c, "fetch stats", err)
		return
	}
	phones, err := PhoneModels.List(ctx)
	if err != nil {
		respondError(c, "fetch stats", err)
		return
	}
	categories, err := Categories.List(ctx)
	if err != nil {
		respondError(c, "fetch stats", err)
		return
	}
	subcategories, err := Subcategories.List(ctx)
	if err != nil {
		respondError(c, "fetch stats", err)
		return
	}
	products, err := Products.List(ctx)
	if err != nil {
		respondError(c, "fetch stats", err)
		return
	}
	photos, err := Gallery.List(ctx)
	if err != nil {
		respondError(c, "fetch stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brands":        len(brands),
		"models":        len(phones),
		"categories":    len(categories),
		"subcategories": len(subcategories),
		"products":      len(products),
		"gallery":       len(photos),
	})
}
