package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotEditing is returned by Commit when no row is in edit mode.
var ErrNotEditing = errors.New("no row is being edited")

// CommitFunc validates a draft and writes it to the gateway. It is bound
// per entity at the call site.
type CommitFunc func(ctx context.Context, id uuid.UUID, draft map[string]string) error

// Editor tracks which single row of a list is being edited and buffers
// the pending field values. At most one row is in edit mode at a time;
// starting an edit on another row silently discards the previous draft.
type Editor struct {
	mu      sync.Mutex
	editing bool
	rowID   uuid.UUID
	draft   map[string]string
}

func NewEditor() *Editor {
	return &Editor{}
}

// StartEdit enters edit mode for a row, seeding the draft with the row's
// current display-form fields.
func (e *Editor) StartEdit(id uuid.UUID, fields map[string]string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing = true
	e.rowID = id
	e.draft = make(map[string]string, len(fields))
	for k, v := range fields {
		e.draft[k] = v
	}
}

// Editing returns the row under edit, if any.
func (e *Editor) Editing() (uuid.UUID, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rowID, e.editing
}

// SetField updates one draft field. No validation happens until Commit.
func (e *Editor) SetField(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.editing {
		return
	}
	e.draft[key] = value
}

// Draft returns a copy of the pending field values.
func (e *Editor) Draft() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	draft := make(map[string]string, len(e.draft))
	for k, v := range e.draft {
		draft[k] = v
	}
	return draft
}

// Commit runs the commit function against the draft. On success the
// editor returns to viewing; on any error it stays in edit mode with the
// draft intact so the user can correct and retry.
func (e *Editor) Commit(ctx context.Context, commit CommitFunc) error {
	e.mu.Lock()
	if !e.editing {
		e.mu.Unlock()
		return ErrNotEditing
	}
	id := e.rowID
	draft := make(map[string]string, len(e.draft))
	for k, v := range e.draft {
		draft[k] = v
	}
	e.mu.Unlock()

	if err := commit(ctx, id, draft); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editing && e.rowID == id {
		e.editing = false
		e.draft = nil
	}
	return nil
}

// Cancel discards the draft unconditionally. No network call.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing = false
	e.draft = nil
}
