package store

import (
	"context"
	"testing"

	"mobileshop-server/gateway"

	"github.com/google/uuid"
)

func TestBrandCreateRequiresName(t *testing.T) {
	fake := newFakeGateway()
	s := NewBrandStore(fake)

	_, err := s.Create(context.Background(), BrandInput{Name: "   "})
	if !gateway.IsValidation(err) {
		t.Fatalf("got %v, want validation error", err)
	}
	if len(fake.tables[brandsTable]) != 0 {
		t.Error("invalid input reached the gateway")
	}
}

func TestBrandCreateAndList(t *testing.T) {
	fake := newFakeGateway()
	s := NewBrandStore(fake)
	ctx := context.Background()

	desc := "Smartphones"
	first, err := s.Create(ctx, BrandInput{Name: "Apple", Description: &desc})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Error("created brand has no ID")
	}
	if first.Description == nil || *first.Description != "Smartphones" {
		t.Errorf("description = %v, want Smartphones", first.Description)
	}
	if first.LogoURL != nil {
		t.Errorf("logo_url = %v, want nil for absent field", *first.LogoURL)
	}

	second, err := s.Create(ctx, BrandInput{Name: "Samsung"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	brands, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(brands) != 2 {
		t.Fatalf("len(brands) = %d, want 2", len(brands))
	}
	// Newest first
	if brands[0].ID != second.ID || brands[1].ID != first.ID {
		t.Errorf("list order = [%s %s], want newest first", brands[0].Name, brands[1].Name)
	}
}

func TestBrandUpdateClearsOptionalFields(t *testing.T) {
	fake := newFakeGateway()
	s := NewBrandStore(fake)
	ctx := context.Background()

	desc := "Smartphones"
	b, err := s.Create(ctx, BrandInput{Name: "Apple", Description: &desc})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Wholesale update: an omitted optional field is cleared, not kept.
	updated, err := s.Update(ctx, b.ID, BrandInput{Name: "Apple Inc."})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Apple Inc." {
		t.Errorf("name = %q, want Apple Inc.", updated.Name)
	}
	if updated.Description != nil {
		t.Errorf("description = %v, want nil after wholesale update", *updated.Description)
	}
}

func TestBrandGetMissing(t *testing.T) {
	fake := newFakeGateway()
	s := NewBrandStore(fake)

	_, err := s.Get(context.Background(), uuid.New())
	if !gateway.IsNotFound(err) {
		t.Fatalf("got %v, want not-found error", err)
	}
}

func TestBrandDeleteMissing(t *testing.T) {
	fake := newFakeGateway()
	s := NewBrandStore(fake)

	err := s.Delete(context.Background(), uuid.New())
	if !gateway.IsNotFound(err) {
		t.Fatalf("got %v, want not-found error", err)
	}
}

func TestBrandDraftRoundTrip(t *testing.T) {
	fake := newFakeGateway()
	s := NewBrandStore(fake)
	ctx := context.Background()

	desc := "Smartphones"
	b, err := s.Create(ctx, BrandInput{Name: "Apple", Description: &desc})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	draft := BrandDraft(b)
	if draft["name"] != "Apple" || draft["description"] != "Smartphones" || draft["logo_url"] != "" {
		t.Errorf("draft = %v", draft)
	}

	in, err := BrandInputFromDraft(draft)
	if err != nil {
		t.Fatalf("from draft: %v", err)
	}
	if in.Name != "Apple" {
		t.Errorf("name = %q", in.Name)
	}
	if in.Description == nil || *in.Description != "Smartphones" {
		t.Errorf("description = %v", in.Description)
	}
	if in.LogoURL != nil {
		t.Errorf("logo_url = %v, want nil for empty draft field", *in.LogoURL)
	}
}
