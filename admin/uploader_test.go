package admin

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"mobileshop-server/gateway"

	"github.com/google/uuid"
)

// uploadStub implements gateway.Client for uploader tests. Only
// UploadFile does anything.
type uploadStub struct {
	url    string
	err    error
	bucket string
	path   string
	calls  int
}

func (s *uploadStub) Query(ctx context.Context, table string, opts gateway.QueryOptions) ([]gateway.Row, error) {
	return nil, nil
}

func (s *uploadStub) Insert(ctx context.Context, table string, row gateway.Row) (gateway.Row, error) {
	return nil, nil
}

func (s *uploadStub) Update(ctx context.Context, table string, id uuid.UUID, patch gateway.Row) (gateway.Row, error) {
	return nil, nil
}

func (s *uploadStub) Delete(ctx context.Context, table string, id uuid.UUID) error {
	return nil
}

func (s *uploadStub) UploadFile(ctx context.Context, bucket, path string, data []byte) (string, error) {
	s.calls++
	s.bucket = bucket
	s.path = path
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func TestUploaderNothingSelected(t *testing.T) {
	stub := &uploadStub{}
	u := NewUploader("brands", stub)

	url, err := u.ResolveImageURL(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != nil {
		t.Errorf("url = %q, want nil when nothing is selected", *url)
	}
	if stub.calls != 0 {
		t.Error("upload called with no file selected")
	}
}

func TestUploaderManualURL(t *testing.T) {
	stub := &uploadStub{}
	u := NewUploader("brands", stub)
	u.SetManualURL("https://example.com/logo.png")

	url, err := u.ResolveImageURL(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url == nil || *url != "https://example.com/logo.png" {
		t.Errorf("url = %v", url)
	}
	if stub.calls != 0 {
		t.Error("upload called when only a manual URL was set")
	}
}

func TestUploaderFileWinsOverManualURL(t *testing.T) {
	stub := &uploadStub{url: "https://cdn.example.com/brands/logo.png"}
	u := NewUploader("brands", stub)
	u.SetManualURL("https://example.com/typed.png")
	u.SelectFile("logo.png", []byte("img"))

	url, err := u.ResolveImageURL(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url == nil || *url != "https://cdn.example.com/brands/logo.png" {
		t.Errorf("url = %v, want the uploaded URL", url)
	}

	if stub.bucket != "brands" {
		t.Errorf("bucket = %q, want brands", stub.bucket)
	}
	if !regexp.MustCompile(`^\d+_logo\.png$`).MatchString(stub.path) {
		t.Errorf("path = %q, want <timestamp>_logo.png", stub.path)
	}

	// Selection is consumed on success.
	if u.HasFile() {
		t.Error("file still selected after a successful upload")
	}
}

func TestUploaderFailureKeepsSelection(t *testing.T) {
	stub := &uploadStub{err: errors.New("storage unavailable")}
	u := NewUploader("brands", stub)
	u.SelectFile("logo.png", []byte("img"))

	if _, err := u.ResolveImageURL(context.Background()); err == nil {
		t.Fatal("resolve succeeded against a failing storage")
	}

	// The user can retry without reselecting the file.
	if !u.HasFile() {
		t.Error("selection dropped on a failed upload")
	}

	stub.err = nil
	stub.url = "https://cdn.example.com/brands/logo.png"
	url, err := u.ResolveImageURL(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if url == nil || *url != "https://cdn.example.com/brands/logo.png" {
		t.Errorf("url = %v", url)
	}
}

func TestUploaderClearFile(t *testing.T) {
	stub := &uploadStub{}
	u := NewUploader("brands", stub)
	u.SelectFile("logo.png", []byte("img"))
	u.ClearFile()

	if u.HasFile() {
		t.Error("file still selected after ClearFile")
	}

	url, err := u.ResolveImageURL(context.Background())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != nil {
		t.Errorf("url = %q, want nil", *url)
	}
}
