package models

import "time"

type CartItem struct {
	ProductID int64   `json:"productId"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	Version   int64      `json:"-"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
