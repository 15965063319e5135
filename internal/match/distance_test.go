package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "Email", 5},
		{"Status", "Status", 0},
		{"Status", "Stauts", 2},
		{"TotalCent", "TotalCents", 1},
		{"Firestor", "Firestore", 1},
		{"createdat", "updatedat", 3},
		{"kitten", "sitting", 3},
		{"Ordr", "order", 2},
		{"straße", "strasse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestNormalize(t *testing.T) {
	for in, want := range map[string]string{
		"OrderID":         "orderid",
		"order_id":        "orderid",
		"Order-Id":        "orderid",
		"postal code":     "postalcode",
		"PRICE_CENTS":     "pricecents",
		"inventory_count": "inventorycount",
		"":                "",
	} {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("FullName", "full_name"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("PostalCode", "postal-code"), 1e-9)
	assert.InDelta(t, 0.9, Similarity("TotalCent", "TotalCents"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.Less(t, Similarity("Email", "Password"), 0.5)
}

func BenchmarkSimilarity(b *testing.B) {
	for b.Loop() {
		Similarity("CustomerOrderID", "customer_order_id")
	}
}
