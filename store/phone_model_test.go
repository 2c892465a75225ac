package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"mobileshop-server/gateway"

	"github.com/google/uuid"
)

func validPhoneModelInput() PhoneModelInput {
	return PhoneModelInput{
		BrandID: uuid.New(),
		Name:    "Galaxy S30",
		Price:   899,
		Rating:  4.5,
		Reviews: 120,
	}
}

func TestPhoneModelValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*PhoneModelInput)
		field  string
	}{
		{"missing brand", func(in *PhoneModelInput) { in.BrandID = uuid.Nil }, "brand_id"},
		{"missing name", func(in *PhoneModelInput) { in.Name = "" }, "name"},
		{"negative price", func(in *PhoneModelInput) { in.Price = -1 }, "price"},
		{"negative original price", func(in *PhoneModelInput) { v := -10.0; in.OriginalPrice = &v }, "original_price"},
		{"rating too high", func(in *PhoneModelInput) { in.Rating = 5.1 }, "rating"},
		{"rating negative", func(in *PhoneModelInput) { in.Rating = -0.1 }, "rating"},
		{"negative reviews", func(in *PhoneModelInput) { in.Reviews = -5 }, "reviews"},
	}

	fake := newFakeGateway()
	s := NewPhoneModelStore(fake)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validPhoneModelInput()
			tt.modify(&in)

			_, err := s.Create(context.Background(), in)
			var ve *gateway.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %v, want validation error", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}

	if len(fake.tables[phoneModelsTable]) != 0 {
		t.Error("invalid input reached the gateway")
	}
}

func TestPhoneModelCreateAndGet(t *testing.T) {
	fake := newFakeGateway()
	s := NewPhoneModelStore(fake)
	ctx := context.Background()

	in := validPhoneModelInput()
	in.Features = []string{"Dual SIM", "5G"}
	orig := 1099.0
	in.OriginalPrice = &orig

	created, err := s.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Galaxy S30" || got.Price != 899 || got.Reviews != 120 {
		t.Errorf("got %+v", got)
	}
	if !reflect.DeepEqual(got.Features, []string{"Dual SIM", "5G"}) {
		t.Errorf("features = %v", got.Features)
	}
	if got.DiscountPercent() != 18 {
		t.Errorf("discount = %d, want 18", got.DiscountPercent())
	}
}

func TestPhoneModelListByBrand(t *testing.T) {
	fake := newFakeGateway()
	s := NewPhoneModelStore(fake)
	ctx := context.Background()

	first := validPhoneModelInput()
	other := validPhoneModelInput()
	if _, err := s.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, other); err != nil {
		t.Fatalf("create: %v", err)
	}

	phones, err := s.ListByBrand(ctx, first.BrandID)
	if err != nil {
		t.Fatalf("list by brand: %v", err)
	}
	if len(phones) != 1 || phones[0].BrandID != first.BrandID {
		t.Errorf("got %d phones for brand, want 1", len(phones))
	}
}

func TestPhoneModelDraftRoundTrip(t *testing.T) {
	fake := newFakeGateway()
	s := NewPhoneModelStore(fake)
	ctx := context.Background()

	in := validPhoneModelInput()
	in.Features = []string{"Dual SIM", "5G"}
	m, err := s.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	draft := PhoneModelDraft(m)
	if draft["price"] != "899" || draft["rating"] != "4.5" || draft["reviews"] != "120" {
		t.Errorf("numeric draft fields = %v", draft)
	}
	if draft["features"] != "Dual SIM, 5G" {
		t.Errorf("features draft = %q", draft["features"])
	}
	if draft["original_price"] != "" {
		t.Errorf("original_price draft = %q, want empty", draft["original_price"])
	}

	back, err := PhoneModelInputFromDraft(draft)
	if err != nil {
		t.Fatalf("from draft: %v", err)
	}
	if back.BrandID != m.BrandID || back.Price != 899 || back.Rating != 4.5 || back.Reviews != 120 {
		t.Errorf("round trip changed values: %+v", back)
	}
	if back.OriginalPrice != nil {
		t.Errorf("original_price = %v, want nil", *back.OriginalPrice)
	}
	if !reflect.DeepEqual(back.Features, []string{"Dual SIM", "5G"}) {
		t.Errorf("features = %v", back.Features)
	}
}

func TestPhoneModelInputFromDraftRejectsBadValues(t *testing.T) {
	base := func() map[string]string {
		return map[string]string{
			"brand_id": uuid.New().String(),
			"name":     "Galaxy S30",
			"price":    "899",
			"rating":   "4.5",
			"reviews":  "120",
		}
	}

	tests := []struct {
		name   string
		modify func(map[string]string)
		field  string
	}{
		{"price not a number", func(d map[string]string) { d["price"] = "abc" }, "price"},
		{"reviews fractional", func(d map[string]string) { d["reviews"] = "1.5" }, "reviews"},
		{"brand id malformed", func(d map[string]string) { d["brand_id"] = "not-a-uuid" }, "brand_id"},
		{"rating missing", func(d map[string]string) { delete(d, "rating") }, "rating"},
		{"original price garbage", func(d map[string]string) { d["original_price"] = "cheap" }, "original_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.modify(d)

			_, err := PhoneModelInputFromDraft(d)
			var ve *gateway.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %v, want validation error", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestSplitFeatures(t *testing.T) {
	got := splitFeatures(" Dual SIM , 5G ,, , Fast charge")
	want := []string{"Dual SIM", "5G", "Fast charge"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitFeatures = %v, want %v", got, want)
	}

	if got := splitFeatures(""); len(got) != 0 {
		t.Errorf("splitFeatures(\"\") = %v, want empty", got)
	}
}
