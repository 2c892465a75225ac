package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"mobileshop-server/admin"
	"mobileshop-server/gateway"
	"mobileshop-server/models"
	"mobileshop-server/notify"
	"mobileshop-server/session"
	"mobileshop-server/store"

	"github.com/gin-gonic/gin"
)

var (
	Gateway  gateway.Client
	Sessions *session.Manager
	Notifier notify.Notifier

	Brands        *store.BrandStore
	PhoneModels   *store.PhoneModelStore
	Categories    *store.CategoryStore
	Subcategories *store.SubcategoryStore
	Products      *store.ProductStore
	Gallery       *store.GalleryStore

	brandList       *admin.ListController[models.Brand]
	phoneModelList  *admin.ListController[models.PhoneModel]
	categoryList    *admin.ListController[models.Category]
	subcategoryList *admin.ListController[models.Subcategory]
	productList     *admin.ListController[models.Product]
	galleryList     *admin.ListController[models.GalleryPhoto]
)

// Initialize wires the handler package to its collaborators. Must be
// called before any route is served.
func Initialize(gw gateway.Client, sessions *session.Manager, notifier notify.Notifier) {
	Gateway = gw
	Sessions = sessions
	Notifier = notifier

	Brands = store.NewBrandStore(gw)
	PhoneModels = store.NewPhoneModelStore(gw)
	Categories = store.NewCategoryStore(gw)
	Subcategories = store.NewSubcategoryStore(gw)
	Products = store.NewProductStore(gw)
	Gallery = store.NewGalleryStore(gw)

	brandList = admin.NewListController(Brands.List)
	phoneModelList = admin.NewListController(PhoneModels.List)
	categoryList = admin.NewListController(Categories.List)
	subcategoryList = admin.NewListController(Subcategories.List)
	productList = admin.NewListController(Products.List)
	galleryList = admin.NewListController(Gallery.List)

	initEditBindings()
}

// respondError maps the error taxonomy onto HTTP statuses and pushes a
// notification. Validation problems are the caller's to fix; everything
// else is a gateway failure.
func respondError(c *gin.Context, action string, err error) {
	var ve *gateway.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}

	if gateway.IsNotFound(err) {
		Notifier.Notify(notify.Notification{
			Title:       "Error",
			Description: "Failed to " + action + ": not found",
			Kind:        notify.KindError,
		})
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	log.Printf("%s: %v", action, err)
	Notifier.Notify(notify.Notification{
		Title:       "Error",
		Description: "Failed to " + action,
		Kind:        notify.KindError,
	})
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}

func notifySuccess(title, description string) {
	Notifier.Notify(notify.Notification{
		Title:       title,
		Description: description,
		Kind:        notify.KindInfo,
	})
}

// formUploader builds the upload coordinator for a create/update form:
// the optional multipart file is selected without uploading, and the
// typed-in URL field is kept as the fallback.
func formUploader(c *gin.Context, prefix, fileField, urlField string) (*admin.Uploader, error) {
	uploader := admin.NewUploader(prefix, Gateway)
	uploader.SetManualURL(c.PostForm(urlField))

	fh, err := c.FormFile(fileField)
	if err != nil {
		// no file selected
		return uploader, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	uploader.SelectFile(fh.Filename, data)
	return uploader, nil
}

// cachedItems serves an admin list from its controller, loading it on
// first use. A failed refresh keeps serving the previous items.
func cachedItems[T any](c *gin.Context, ctrl *admin.ListController[T]) ([]T, bool) {
	if !ctrl.Loaded() {
		if err := ctrl.Load(c.Request.Context()); err != nil {
			respondError(c, "load list", err)
			return nil, false
		}
	}
	return ctrl.Items(), true
}

// optionalForm returns a form value as an optional string, so an empty
// field reaches the store as nil.
func optionalForm(c *gin.Context, field string) *string {
	v := c.PostForm(field)
	if v == "" {
		return nil
	}
	return &v
}

// gatewayNotFound handles the target-vanished case: the list is refreshed
// to reconcile the client view with the server before answering 404.
func gatewayNotFound[T any](c *gin.Context, ctrl *admin.ListController[T], err error) bool {
	if !gateway.IsNotFound(err) {
		return false
	}
	refreshAfterMutation(c, ctrl)
	respondError(c, "find record", err)
	return true
}

// refreshAfterMutation re-syncs a list after a successful mutation. The
// mutation already happened, so a failed refresh is only reported, never
// escalated.
func refreshAfterMutation[T any](c *gin.Context, ctrl *admin.ListController[T]) {
	if err := ctrl.AfterMutation(c.Request.Context()); err != nil {
		log.Printf("list refresh failed: %v", err)
		Notifier.Notify(notify.Notification{
			Title:       "Warning",
			Description: "List refresh failed, data shown may be stale",
			Kind:        notify.KindError,
		})
	}
}
