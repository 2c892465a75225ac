package handlers

import (
	"net/http"

	"mobileshop-server/admin"
	"mobileshop-server/models"
	"mobileshop-server/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCategoryHierarchy returns every accessory category with its
// subcategories and, for categories without subcategories, the products
// attached directly to them.
func GetCategoryHierarchy(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := Categories.List(ctx)
	if err != nil {
		respondError(c, "fetch categories", err)
		return
	}

	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		subcategories, err := Subcategories.ListByCategory(ctx, cat.ID)
		if err != nil {
			respondError(c, "fetch subcategories", err)
			return
		}

		entry := gin.H{
			"id":            cat.ID,
			"name":          cat.Name,
			"description":   cat.Description,
			"icon":          cat.Icon,
			"image_url":     cat.ImageURL,
			"subcategories": subcategories,
		}

		if len(subcategories) == 0 {
			products, err := Products.ListByCategory(ctx, cat.ID)
			if err != nil {
				respondError(c, "fetch products", err)
				return
			}
			entry["products"] = publicProducts(products)
		}

		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{"categories": out})
}

func publicProducts(products []models.Product) []gin.H {
	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, gin.H{
			"id":               p.ID,
			"category_id":      p.CategoryID,
			"subcategory_id":   p.SubcategoryID,
			"name":             p.Name,
			"price":            p.Price,
			"original_price":   p.OriginalPrice,
			"discount_percent": p.DiscountPercent(),
			"rating":           p.Rating,
			"reviews":          p.Reviews,
			"image_url":        p.ImageURL,
		})
	}
	return out
}

func AdminGetCategories(c *gin.Context) {
	categories, ok := cachedItems(c, categoryList)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "stale": categoryList.Status() == admin.StatusError})
}

func categoryInputFromForm(c *gin.Context) (store.CategoryInput, error) {
	uploader, err := formUploader(c, "accessory_categories", "image", "image_url")
	if err != nil {
		return store.CategoryInput{}, err
	}

	imageURL, err := uploader.ResolveImageURL(c.Request.Context())
	if err != nil {
		return store.CategoryInput{}, err
	}

	return store.CategoryInput{
		Name:        c.PostForm("name"),
		Description: optionalForm(c, "description"),
		Icon:        optionalForm(c, "icon"),
		ImageURL:    imageURL,
	}, nil
}

func AdminCreateCategory(c *gin.Context) {
	input, err := categoryInputFromForm(c)
	if err != nil {
		respondError(c, "create category", err)
		return
	}

	category, err := Categories.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "create category", err)
		return
	}

	refreshAfterMutation(c, categoryList)
	notifySuccess("Success", "Category added successfully!")
	c.JSON(http.StatusCreated, category)
}

func AdminUpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	input, err := categoryInputFromForm(c)
	if err != nil {
		respondError(c, "update category", err)
		return
	}

	category, err := Categories.Update(c.Request.Context(), id, input)
	if err != nil {
		if gatewayNotFound(c, categoryList, err) {
			return
		}
		respondError(c, "update category", err)
		return
	}

	refreshAfterMutation(c, categoryList)
	notifySuccess("Success", "Category updated successfully!")
	c.JSON(http.StatusOK, category)
}

// AdminDeleteCategory deletes a category. Dependent subcategories and
// products go with it via the database's cascade rules.
func AdminDeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := Categories.Delete(c.Request.Context(), id); err != nil {
		if gatewayNotFound(c, categoryList, err) {
			return
		}
		respondError(c, "delete category", err)
		return
	}

	refreshAfterMutation(c, categoryList)
	notifySuccess("Success", "Category deleted successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
