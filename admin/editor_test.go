package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestEditorStartsViewing(t *testing.T) {
	e := NewEditor()
	if _, editing := e.Editing(); editing {
		t.Error("new editor is in edit mode")
	}
	// SetField outside edit mode is a silent no-op.
	e.SetField("name", "x")
	if len(e.Draft()) != 0 {
		t.Errorf("draft = %v, want empty", e.Draft())
	}
}

func TestEditorStartEditSeedsDraft(t *testing.T) {
	e := NewEditor()
	id := uuid.New()
	seed := map[string]string{"name": "Apple", "description": ""}

	e.StartEdit(id, seed)

	gotID, editing := e.Editing()
	if !editing || gotID != id {
		t.Fatalf("Editing() = %v %v", gotID, editing)
	}
	if e.Draft()["name"] != "Apple" {
		t.Errorf("draft = %v", e.Draft())
	}

	// The editor keeps its own copy of the seed.
	seed["name"] = "mutated"
	if e.Draft()["name"] != "Apple" {
		t.Error("draft aliases the caller's map")
	}
}

func TestEditorSwitchingRowsDropsDraft(t *testing.T) {
	e := NewEditor()
	first, second := uuid.New(), uuid.New()

	e.StartEdit(first, map[string]string{"name": "Apple"})
	e.SetField("name", "Apple Inc.")

	e.StartEdit(second, map[string]string{"name": "Samsung"})

	gotID, editing := e.Editing()
	if !editing || gotID != second {
		t.Fatalf("Editing() = %v %v, want second row", gotID, editing)
	}
	if e.Draft()["name"] != "Samsung" {
		t.Errorf("draft = %v, previous edits leaked", e.Draft())
	}
}

func TestEditorCommitWithoutEditing(t *testing.T) {
	e := NewEditor()
	called := false
	err := e.Commit(context.Background(), func(ctx context.Context, id uuid.UUID, draft map[string]string) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrNotEditing) {
		t.Fatalf("err = %v, want ErrNotEditing", err)
	}
	if called {
		t.Error("commit function ran with nothing to commit")
	}
}

func TestEditorCommitFailureKeepsDraft(t *testing.T) {
	e := NewEditor()
	id := uuid.New()
	e.StartEdit(id, map[string]string{"price": "899"})
	e.SetField("price", "not a number")

	commitErr := errors.New("price: must be a number")
	err := e.Commit(context.Background(), func(ctx context.Context, _ uuid.UUID, _ map[string]string) error {
		return commitErr
	})
	if !errors.Is(err, commitErr) {
		t.Fatalf("err = %v, want %v", err, commitErr)
	}

	// Still editing, draft intact, ready for the user to correct.
	if _, editing := e.Editing(); !editing {
		t.Error("editor left edit mode on a failed commit")
	}
	if e.Draft()["price"] != "not a number" {
		t.Errorf("draft = %v", e.Draft())
	}
}

func TestEditorCommitSuccess(t *testing.T) {
	e := NewEditor()
	id := uuid.New()
	e.StartEdit(id, map[string]string{"name": "Apple"})
	e.SetField("name", "Apple Inc.")

	var gotID uuid.UUID
	var gotDraft map[string]string
	err := e.Commit(context.Background(), func(ctx context.Context, id uuid.UUID, draft map[string]string) error {
		gotID = id
		gotDraft = draft
		return nil
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if gotID != id || gotDraft["name"] != "Apple Inc." {
		t.Errorf("commit saw id=%v draft=%v", gotID, gotDraft)
	}
	if _, editing := e.Editing(); editing {
		t.Error("editor still in edit mode after successful commit")
	}
}

func TestEditorCancel(t *testing.T) {
	e := NewEditor()
	e.StartEdit(uuid.New(), map[string]string{"name": "Apple"})
	e.SetField("name", "changed")

	e.Cancel()

	if _, editing := e.Editing(); editing {
		t.Error("editor still in edit mode after cancel")
	}
	if len(e.Draft()) != 0 {
		t.Errorf("draft = %v, want empty", e.Draft())
	}
}
