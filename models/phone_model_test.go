package models

import "testing"

func TestDiscountPercent(t *testing.T) {
	price := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		price    float64
		original *float64
		want     int
	}{
		{"third off rounds down", 1000, price(1500), 33},
		{"half off", 500, price(1000), 50},
		{"rounds up", 899, price(1000), 10},
		{"no original price", 999, nil, 0},
		{"original equals price", 1000, price(1000), 0},
		{"original below price", 1200, price(1000), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := PhoneModel{Price: tt.price, OriginalPrice: tt.original}
			if got := m.DiscountPercent(); got != tt.want {
				t.Errorf("DiscountPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}
