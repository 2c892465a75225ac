package handlers

import (
	"net/http"

	"mobileshop-server/admin"
	"mobileshop-server/models"
	"mobileshop-server/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetPhoneModel returns one model for the public detail page
func GetPhoneModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model ID"})
		return
	}

	model, err := PhoneModels.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "fetch model", err)
		return
	}

	c.JSON(http.StatusOK, publicPhoneModel(model))
}

// GetPhoneModelsByBrand lists a brand's models for the public brand page
func GetPhoneModelsByBrand(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("brandId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}

	phones, err := PhoneModels.ListByBrand(c.Request.Context(), brandID)
	if err != nil {
		respondError(c, "fetch models", err)
		return
	}

	out := make([]gin.H, 0, len(phones))
	for _, m := range phones {
		out = append(out, publicPhoneModel(m))
	}
	c.JSON(http.StatusOK, gin.H{"models": out})
}

func publicPhoneModel(m models.PhoneModel) gin.H {
	return gin.H{
		"id":               m.ID,
		"brand_id":         m.BrandID,
		"name":             m.Name,
		"price":            m.Price,
		"original_price":   m.OriginalPrice,
		"discount_percent": m.DiscountPercent(),
		"rating":           m.Rating,
		"reviews":          m.Reviews,
		"image_url":        m.ImageURL,
		"features":         m.Features,
		"created_at":       m.CreatedAt,
	}
}

func AdminGetPhoneModels(c *gin.Context) {
	phones, ok := cachedItems(c, phoneModelList)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": phones, "stale": phoneModelList.Status() == admin.StatusError})
}

// phoneModelInputFromForm builds the typed input from the management
// form, resolving the optional image upload first. The form fields are
// the draft's display strings.
func phoneModelInputFromForm(c *gin.Context) (store.PhoneModelInput, error) {
	uploader, err := formUploader(c, "phone_models", "image", "image_url")
	if err != nil {
		return store.PhoneModelInput{}, err
	}

	imageURL, err := uploader.ResolveImageURL(c.Request.Context())
	if err != nil {
		return store.PhoneModelInput{}, err
	}

	draft := map[string]string{
		"brand_id":       c.PostForm("brand_id"),
		"name":           c.PostForm("name"),
		"price":          c.PostForm("price"),
		"original_price": c.PostForm("original_price"),
		"rating":         c.PostForm("rating"),
		"reviews":        c.PostForm("reviews"),
		"features":       c.PostForm("features"),
	}
	if imageURL != nil {
		draft["image_url"] = *imageURL
	}

	return store.PhoneModelInputFromDraft(draft)
}

func AdminCreatePhoneModel(c *gin.Context) {
	input, err := phoneModelInputFromForm(c)
	if err != nil {
		respondError(c, "create model", err)
		return
	}

	model, err := PhoneModels.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, "create model", err)
		return
	}

	refreshAfterMutation(c, phoneModelList)
	notifySuccess("Success", "Model added successfully!")
	c.JSON(http.StatusCreated, model)
}

func AdminUpdatePhoneModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model ID"})
		return
	}

	input, err := phoneModelInputFromForm(c)
	if err != nil {
		respondError(c, "update model", err)
		return
	}

	model, err := PhoneModels.Update(c.Request.Context(), id, input)
	if err != nil {
		if gatewayNotFound(c, phoneModelList, err) {
			return
		}
		respondError(c, "update model", err)
		return
	}

	refreshAfterMutation(c, phoneModelList)
	notifySuccess("Success", "Model updated successfully!")
	c.JSON(http.StatusOK, model)
}

func AdminDeletePhoneModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model ID"})
		return
	}

	if err := PhoneModels.Delete(c.Request.Context(), id); err != nil {
		if gatewayNotFound(c, phoneModelList, err) {
			return
		}
		respondError(c, "delete model", err)
		return
	}

	refreshAfterMutation(c, phoneModelList)
	notifySuccess("Success", "Model deleted successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Model deleted successfully"})
}
