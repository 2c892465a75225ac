package handlers

import (
	"net/http"

	"mobileshop-server/admin"
	"mobileshop-server/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetSubcategoriesByCategory lists one category's subcategories. The
// public accessories page derives its subcategory options from the
// selected category through this call, never from independent state.
func GetSubcategoriesByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	subcategories, err := Subcategories.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, "fetch subcategories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subcategories": subcategories})
}

func AdminGetSubcategories(c *gin.Context) {
	subcategories, ok := cachedItems(c, subcategoryList)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": subcategories, "stale": subcategoryList.Status() == admin.StatusError})
}

func subcategoryInputFromForm(c *gin.Context) (store.SubcategoryInput, error) {
	uploader, err := formUploader(c, "accessory_subcategories", "image", "image_url")
	if err != nil {
		return store.SubcategoryInput{}, err
	}

	imageURL, err := uploader.ResolveImageURL(c.Request.Context())
	if err != nil {
		return store.SubcategoryInput{}, err
	}

	draft := map[string]string{
		"category_id": c.PostForm("category_id"),
		"name":        c.PostForm("name"),
		"description": c.PostForm("description"),
	}
	if imageURL != nil {
		draft["image_url"] = *imageURL
	}

	return store.SubcategoryInputFromDraft(draft)
}

func AdminCreateSubcategory(c *gin.Context) {
	input, err := subcategoryInputFromForm(c)
	if err != nil {
		respondError(c, "create subcategory", err)
		return
	}

	subcategory, err := Subcategories.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "create subcategory", err)
		return
	}

	refreshAfterMutation(c, subcategoryList)
	notifySuccess("Success", "Subcategory added successfully!")
	c.JSON(http.StatusCreated, subcategory)
}

func AdminUpdateSubcategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}

	input, err := subcategoryInputFromForm(c)
	if err != nil {
		respondError(c, "update subcategory", err)
		return
	}

	subcategory, err := Subcategories.Update(c.Request.Context(), id, input)
	if err != nil {
		if gatewayNotFound(c, subcategoryList, err) {
			return
		}
		respondError(c, "update subcategory", err)
		return
	}

	refreshAfterMutation(c, subcategoryList)
	notifySuccess("Success", "Subcategory updated successfully!")
	c.JSON(http.StatusOK, subcategory)
}

func AdminDeleteSubcategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}

	if err := Subcategories.Delete(c.Request.Context(), id); err != nil {
		if gatewayNotFound(c, subcategoryList, err) {
			return
		}
		respondError(c, "delete subcategory", err)
		return
	}

	refreshAfterMutation(c, subcategoryList)
	notifySuccess("Success", "Subcategory deleted successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}
