package models

import (
	"strings"
)

// DefaultSizeQuantity is the stock assumed for sizes stored without a count.
const DefaultSizeQuantity = 999

// NormalizeSizes maps every size list shape ever stored for a product onto
// []ProductSize. Accepted shapes:
//
//	["S", "M"]                          -> quantity 999 each
//	[{"label": "S", "quantity": 3}]     -> as is
//	[{"label": "S", "inStock": false}]  -> 999 when true, 0 when false
//	[{"label": "S", "stock": 4}]        -> quantity 4
//
// Per item the precedence is quantity > inStock > stock > default. Entries
// without a label are dropped and labels are deduplicated case-insensitively,
// keeping the first occurrence.
func NormalizeSizes(raw interface{}) []ProductSize {
	items, ok := raw.([]interface{})
	if !ok {
		return []ProductSize{}
	}

	sizes := make([]ProductSize, 0, len(items))
	if allStrings(items) {
		for _, item := range items {
			label := strings.TrimSpace(item.(string))
			if label == "" {
				continue
			}
			sizes = append(sizes, ProductSize{Label: label, Quantity: DefaultSizeQuantity})
		}
		return dedupeSizes(sizes)
	}

	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		label, _ := obj["label"].(string)
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		sizes = append(sizes, ProductSize{Label: label, Quantity: sizeQuantity(obj)})
	}
	return dedupeSizes(sizes)
}

// SizesToRaw converts typed sizes back into the generic form NormalizeSizes accepts.
func SizesToRaw(sizes []ProductSize) []interface{} {
	raw := make([]interface{}, 0, len(sizes))
	for _, s := range sizes {
		raw = append(raw, map[string]interface{}{"label": s.Label, "quantity": float64(s.Quantity)})
	}
	return raw
}

func sizeQuantity(obj map[string]interface{}) int {
	if q, ok := obj["quantity"].(float64); ok {
		return int(q)
	}
	if inStock, ok := obj["inStock"].(bool); ok {
		if inStock {
			return DefaultSizeQuantity
		}
		return 0
	}
	if stock, ok := obj["stock"].(float64); ok {
		return int(stock)
	}
	return DefaultSizeQuantity
}

func allStrings(items []interface{}) bool {
	for _, item := range items {
		if _, ok := item.(string); !ok {
			return false
		}
	}
	return true
}

func dedupeSizes(sizes []ProductSize) []ProductSize {
	seen := make(map[string]bool, len(sizes))
	out := make([]ProductSize, 0, len(sizes))
	for _, s := range sizes {
		key := strings.ToLower(s.Label)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
