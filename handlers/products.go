package handlers

import (
	"net/http"

	"mobileshop-server/admin"
	"mobileshop-server/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetProducts lists accessory products for the public page, optionally
// narrowed to a category or subcategory.
func GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if sub := c.Query("subcategory_id"); sub != "" {
		subcategoryID, err := uuid.Parse(sub)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
			return
		}
		products, err := Products.ListBySubcategory(ctx, subcategoryID)
		if err != nil {
			respondError(c, "fetch products", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": publicProducts(products)})
		return
	}

	if cat := c.Query("category_id"); cat != "" {
		categoryID, err := uuid.Parse(cat)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		products, err := Products.ListByCategory(ctx, categoryID)
		if err != nil {
			respondError(c, "fetch products", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": publicProducts(products)})
		return
	}

	products, err := Products.List(ctx)
	if err != nil {
		respondError(c, "fetch products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": publicProducts(products)})
}

func AdminGetProducts(c *gin.Context) {
	products, ok := cachedItems(c, productList)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "stale": productList.Status() == admin.StatusError})
}

func productInputFromForm(c *gin.Context) (store.ProductInput, error) {
	uploader, err := formUploader(c, "accessory_products", "image", "image_url")
	if err != nil {
		return store.ProductInput{}, err
	}

	imageURL, err := uploader.ResolveImageURL(c.Request.Context())
	if err != nil {
		return store.ProductInput{}, err
	}

	draft := map[string]string{
		"category_id":    c.PostForm("category_id"),
		"subcategory_id": c.PostForm("subcategory_id"),
		"name":           c.PostForm("name"),
		"price":          c.PostForm("price"),
		"original_price": c.PostForm("original_price"),
		"rating":         c.PostForm("rating"),
		"reviews":        c.PostForm("reviews"),
	}
	if imageURL != nil {
		draft["image_url"] = *imageURL
	}

	return store.ProductInputFromDraft(draft)
}

func AdminCreateProduct(c *gin.Context) {
	input, err := productInputFromForm(c)
	if err != nil {
		respondError(c, "create product", err)
		return
	}

	product, err := Products.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "create product", err)
		return
	}

	refreshAfterMutation(c, productList)
	notifySuccess("Success", "Product added successfully!")
	c.JSON(http.StatusCreated, product)
}

func AdminUpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	input, err := productInputFromForm(c)
	if err != nil {
		respondError(c, "update product", err)
		return
	}

	product, err := Products.Update(c.Request.Context(), id, input)
	if err != nil {
		if gatewayNotFound(c, productList, err) {
			return
		}
		respondError(c, "update product", err)
		return
	}

	refreshAfterMutation(c, productList)
	notifySuccess("Success", "Product updated successfully!")
	c.JSON(http.StatusOK, product)
}

func AdminDeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := Products.Delete(c.Request.Context(), id); err != nil {
		if gatewayNotFound(c, productList, err) {
			return
		}
		respondError(c, "delete product", err)
		return
	}

	refreshAfterMutation(c, productList)
	notifySuccess("Success", "Product deleted successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
