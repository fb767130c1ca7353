package models

const (
	CategoryMen   = "men"
	CategoryWomen = "women"
)

type ProductSize struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

type Product struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Slug     string        `json:"slug"`
	Price    float64       `json:"price"`
	Category string        `json:"category"`
	Sizes    []ProductSize `json:"sizes"`
	Images   []string      `json:"images"`
}

// ProductPatch holds the fields of a partial product update. Nil means unchanged.
type ProductPatch struct {
	Name     *string
	Slug     *string
	Price    *float64
	Category *string
	Sizes    []ProductSize
	Images   []string
}

func IsValidCategory(category string) bool {
	return category == CategoryMen || category == CategoryWomen
}
