package store

import (
	"context"
	"testing"

	"mobileshop-server/gateway"
)

func TestGalleryPhotoValidation(t *testing.T) {
	fake := newFakeGateway()
	s := NewGalleryStore(fake)
	ctx := context.Background()

	if _, err := s.Create(ctx, GalleryPhotoInput{ImageURL: "https://example.com/a.jpg"}); !gateway.IsValidation(err) {
		t.Errorf("missing title: got %v, want validation error", err)
	}
	if _, err := s.Create(ctx, GalleryPhotoInput{Title: "Storefront"}); !gateway.IsValidation(err) {
		t.Errorf("missing image: got %v, want validation error", err)
	}
}

func TestGalleryListByCategory(t *testing.T) {
	fake := newFakeGateway()
	s := NewGalleryStore(fake)
	ctx := context.Background()

	events := "events"
	interior := "interior"
	for _, in := range []GalleryPhotoInput{
		{Title: "Launch day", ImageURL: "https://example.com/a.jpg", Category: &events},
		{Title: "Counter", ImageURL: "https://example.com/b.jpg", Category: &interior},
		{Title: "Untagged", ImageURL: "https://example.com/c.jpg"},
	} {
		if _, err := s.Create(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	photos, err := s.ListByCategory(ctx, "events")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(photos) != 1 || photos[0].Title != "Launch day" {
		t.Errorf("got %d photos, want only the events one", len(photos))
	}

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d photos, want 3", len(all))
	}
}
