package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestIsNotFoundThroughGatewayError(t *testing.T) {
	err := &GatewayError{
		Op:    "update",
		Table: "brands",
		Err:   &NotFoundError{Table: "brands", ID: uuid.New()},
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should see through the GatewayError wrapper")
	}
	if IsNotFound(errors.New("connection refused")) {
		t.Error("IsNotFound matched an unrelated error")
	}
	if IsNotFound(&GatewayError{Op: "query", Table: "brands", Err: errors.New("timeout")}) {
		t.Error("IsNotFound matched a plain gateway failure")
	}
}

func TestIsValidation(t *testing.T) {
	err := &ValidationError{Field: "name", Message: "name is required"}
	if !IsValidation(err) {
		t.Error("IsValidation missed a ValidationError")
	}
	if IsValidation(&GatewayError{Op: "query", Table: "brands", Err: errors.New("timeout")}) {
		t.Error("IsValidation matched a gateway failure")
	}
}

func TestCheckWritable(t *testing.T) {
	schema := Tables["brands"]

	if err := checkWritable(schema, Row{"name": "Apple", "description": nil}); err != nil {
		t.Errorf("valid row rejected: %v", err)
	}

	if err := checkWritable(schema, Row{}); !IsValidation(err) {
		t.Errorf("empty row: got %v, want validation error", err)
	}

	if err := checkWritable(schema, Row{"id": uuid.New()}); !IsValidation(err) {
		t.Errorf("server-assigned column: got %v, want validation error", err)
	}

	if err := checkWritable(schema, Row{"name": "Apple", "founded": 1976}); !IsValidation(err) {
		t.Errorf("unknown column: got %v, want validation error", err)
	}
}

func TestBuildSelect(t *testing.T) {
	schema := Tables["brands"]
	id := uuid.New()

	query, args, err := buildSelect("brands", schema, QueryOptions{
		Filter:     map[string]any{"id": id},
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		t.Fatalf("buildSelect: %v", err)
	}

	want := "SELECT id, name, description, logo_url, created_at, updated_at FROM brands WHERE id = $1 ORDER BY created_at DESC"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(args) != 1 || args[0] != any(id) {
		t.Errorf("args = %v, want [%v]", args, id)
	}
}

func TestBuildSelectSortsFilterColumns(t *testing.T) {
	schema := Tables["brands"]

	query, args, err := buildSelect("brands", schema, QueryOptions{
		Filter: map[string]any{"name": "Apple", "description": "phones"},
	})
	if err != nil {
		t.Fatalf("buildSelect: %v", err)
	}

	want := "SELECT id, name, description, logo_url, created_at, updated_at FROM brands WHERE description = $1 AND name = $2"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(args) != 2 || args[0] != any("phones") || args[1] != any("Apple") {
		t.Errorf("args = %v, want [phones Apple]", args)
	}
}

func TestBuildSelectRejectsUnknownColumns(t *testing.T) {
	schema := Tables["brands"]

	if _, _, err := buildSelect("brands", schema, QueryOptions{
		Filter: map[string]any{"founded": 1976},
	}); err == nil {
		t.Error("unknown filter column accepted")
	}

	if _, _, err := buildSelect("brands", schema, QueryOptions{
		OrderBy: "founded",
	}); err == nil {
		t.Error("unknown order column accepted")
	}
}

func TestNoStorageUpload(t *testing.T) {
	_, err := NoStorage{}.Upload(context.Background(), "brands", "logo.png", []byte("x"))
	if err == nil {
		t.Error("NoStorage upload should always fail")
	}
}
