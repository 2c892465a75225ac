package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"mobileshop-server/admin"
	"mobileshop-server/notify"
	"mobileshop-server/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// editBinding ties one entity kind to its draft loader and commit
// function. The editors themselves live on the admin's session.
type editBinding struct {
	draft  func(ctx context.Context, id uuid.UUID) (map[string]string, error)
	commit admin.CommitFunc
}

var editBindings map[string]editBinding

func initEditBindings() {
	editBindings = map[string]editBinding{
		"brands": {
			draft: func(ctx context.Context, id uuid.UUID) (map[string]string, error) {
				b, err := Brands.Get(ctx, id)
				if err != nil {
					return nil, err
				}
				return store.BrandDraft(b), nil
			},
			commit: func(ctx context.Context, id uuid.UUID, draft map[string]string) error {
				in, err := store.BrandInputFromDraft(draft)
				if err != nil {
					return err
				}
				if _, err := Brands.Update(ctx, id, in); err != nil {
					return err
				}
				refreshList(ctx, brandList)
				return nil
			},
		},
		"models": {
			draft: func(ctx context.Context, id uuid.UUID) (map[string]string, error) {
				m, err := PhoneModels.Get(ctx, id)
				if err != nil {
					return nil, err
				}
				return store.PhoneModelDraft(m), nil
			},
			commit: func(ctx context.Context, id uuid.UUID, draft map[string]string) error {
				in, err := store.PhoneModelInputFromDraft(draft)
				if err != nil {
					return err
				}
				if _, err := PhoneModels.Update(ctx, id, in); err != nil {
					return err
				}
				refreshList(ctx, phoneModelList)
				return nil
			},
		},
		"categories": {
			draft: func(ctx context.Context, id uuid.UUID) (map[string]string, error) {
				cat, err := Categories.Get(ctx, id)
				if err != nil {
					return nil, err
				}
				return store.CategoryDraft(cat), nil
			},
			commit: func(ctx context.Context, id uuid.UUID, draft map[string]string) error {
				in, err := store.CategoryInputFromDraft(draft)
				if err != nil {
					return err
				}
				if _, err := Categories.Update(ctx, id, in); err != nil {
					return err
				}
				refreshList(ctx, categoryList)
				return nil
			},
		},
		"subcategories": {
			draft: func(ctx context.Context, id uuid.UUID) (map[string]string, error) {
				sub, err := Subcategories.Get(ctx, id)
				if err != nil {
					return nil, err
				}
				return store.SubcategoryDraft(sub), nil
			},
			commit: func(ctx context.Context, id uuid.UUID, draft map[string]string) error {
				in, err := store.SubcategoryInputFromDraft(draft)
				if err != nil {
					return err
				}
				if _, err := Subcategories.Update(ctx, id, in); err != nil {
					return err
				}
				refreshList(ctx, subcategoryList)
				return nil
			},
		},
		"products": {
			draft: func(ctx context.Context, id uuid.UUID) (map[string]string, error) {
				p, err := Products.Get(ctx, id)
				if err != nil {
					return nil, err
				}
				return store.ProductDraft(p), nil
			},
			commit: func(ctx context.Context, id uuid.UUID, draft map[string]string) error {
				in, err := store.ProductInputFromDraft(draft)
				if err != nil {
					return err
				}
				if _, err := Products.Update(ctx, id, in); err != nil {
					return err
				}
				refreshList(ctx, productList)
				return nil
			},
		},
		"gallery": {
			draft: func(ctx context.Context, id uuid.UUID) (map[string]string, error) {
				p, err := Gallery.Get(ctx, id)
				if err != nil {
					return nil, err
				}
				return store.GalleryPhotoDraft(p), nil
			},
			commit: func(ctx context.Context, id uuid.UUID, draft map[string]string) error {
				in, err := store.GalleryPhotoInputFromDraft(draft)
				if err != nil {
					return err
				}
				if _, err := Gallery.Update(ctx, id, in); err != nil {
					return err
				}
				refreshList(ctx, galleryList)
				return nil
			},
		},
	}
}

// refreshList re-syncs after a committed edit. The write already
// succeeded, so a failed refresh only warns.
func refreshList[T any](ctx context.Context, ctrl *admin.ListController[T]) {
	if err := ctrl.AfterMutation(ctx); err != nil {
		log.Printf("list refresh failed: %v", err)
		Notifier.Notify(notify.Notification{
			Title:       "Warning",
			Description: "List refresh failed, data shown may be stale",
			Kind:        notify.KindError,
		})
	}
}

func editorFor(c *gin.Context) (*admin.Editor, editBinding, bool) {
	binding, ok := editBindings[c.Param("entity")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown entity"})
		return nil, editBinding{}, false
	}

	sess := currentSession(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No session"})
		return nil, editBinding{}, false
	}

	return sess.Editor(c.Param("entity")), binding, true
}

// StartRowEdit puts one row into edit mode, seeding the draft from the
// row's current values. Starting on a new row drops any previous draft.
func StartRowEdit(c *gin.Context) {
	editor, binding, ok := editorFor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	draft, err := binding.draft(c.Request.Context(), id)
	if err != nil {
		respondError(c, "start edit", err)
		return
	}

	editor.StartEdit(id, draft)
	c.JSON(http.StatusOK, gin.H{"row_id": id, "draft": draft})
}

// GetRowEdit reports the current edit state for one entity list.
func GetRowEdit(c *gin.Context) {
	editor, _, ok := editorFor(c)
	if !ok {
		return
	}

	id, editing := editor.Editing()
	if !editing {
		c.JSON(http.StatusOK, gin.H{"editing": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"editing": true, "row_id": id, "draft": editor.Draft()})
}

type draftFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SetRowEditField updates one draft field. Nothing is validated until
// commit.
func SetRowEditField(c *gin.Context) {
	editor, _, ok := editorFor(c)
	if !ok {
		return
	}

	if _, editing := editor.Editing(); !editing {
		c.JSON(http.StatusConflict, gin.H{"error": "No row is being edited"})
		return
	}

	var req draftFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	editor.SetField(req.Field, req.Value)
	c.JSON(http.StatusOK, gin.H{"draft": editor.Draft()})
}

// CommitRowEdit validates and writes the draft. On failure the row stays
// in edit mode with the draft intact.
func CommitRowEdit(c *gin.Context) {
	editor, binding, ok := editorFor(c)
	if !ok {
		return
	}

	if err := editor.Commit(c.Request.Context(), binding.commit); err != nil {
		if errors.Is(err, admin.ErrNotEditing) {
			c.JSON(http.StatusConflict, gin.H{"error": "No row is being edited"})
			return
		}
		respondError(c, "save changes", err)
		return
	}

	notifySuccess("Success", "Changes saved successfully!")
	c.JSON(http.StatusOK, gin.H{"message": "Changes saved"})
}

// CancelRowEdit discards the draft. Always succeeds, no network call.
func CancelRowEdit(c *gin.Context) {
	editor, _, ok := editorFor(c)
	if !ok {
		return
	}

	editor.Cancel()
	c.JSON(http.StatusOK, gin.H{"message": "Edit cancelled"})
}
