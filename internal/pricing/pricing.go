package pricing

import (
	"strings"

	"github.com/bakehouse/api/internal/catalog"
	"github.com/bakehouse/api/internal/enum"
	"github.com/shopspring/decimal"
)

// Layers beyond baseLayers cost layerSurcharge each, before the size multiplier.
const (
	baseLayers     = 2
	layerSurcharge = 400
)

var sizeMultipliers = map[string]decimal.Decimal{
	enum.SizeSmall:  decimal.New(8, -1),
	enum.SizeMedium: decimal.NewFromInt(1),
	enum.SizeLarge:  decimal.New(13, -1),
}

// SizeMultiplier returns the scale applied for size. Unknown sizes scale by 1.
func SizeMultiplier(size string) decimal.Decimal {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// ComputePrice returns the order total for product at size with the given
// number of layers. layers is ignored unless product is a cake.
//
//	total = (price + max(0, layers-2) * 400) * multiplier(size)
//
// A nil product prices at zero.
func ComputePrice(product *catalog.Product, size string, layers *int) decimal.Decimal {
	if product == nil {
		return decimal.Zero
	}

	base := product.Price
	if product.IsCake() && layers != nil && *layers > baseLayers {
		extra := int64(*layers - baseLayers)
		base = base.Add(decimal.NewFromInt(extra * layerSurcharge))
	}

	return base.Mul(SizeMultiplier(size))
}

// FormatRupees renders an amount the way the storefront displays prices:
// rupee sign, two decimals, Indian digit grouping (₹1,23,456.00).
func FormatRupees(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var grouped string
	if len(whole) <= 3 {
		grouped = whole
	} else {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		parts = append([]string{head}, parts...)
		grouped = strings.Join(parts, ",") + "," + tail
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "₹" + grouped + "." + frac
}
