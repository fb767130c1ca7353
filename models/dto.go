package models

type SignupRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminCode string `json:"adminCode"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateProductRequest struct {
	Name     string        `json:"name"`
	Slug     string        `json:"slug"`
	Price    *float64      `json:"price"`
	Category string        `json:"category"`
	Sizes    []interface{} `json:"sizes" swaggertype:"array,object"`
	Images   []string      `json:"images"`
}

type UpdateProductRequest struct {
	Name     *string       `json:"name"`
	Slug     *string       `json:"slug"`
	Price    *float64      `json:"price"`
	Category *string       `json:"category"`
	Sizes    []interface{} `json:"sizes" swaggertype:"array,object"`
	Images   []string      `json:"images"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" example:"admin"`
}

type AddCartItemRequest struct {
	ProductID int64   `json:"productId"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Slug     string `json:"slug"`
	Size     string `json:"size"`
	Quantity *int   `json:"quantity"`
}

type RemoveCartItemRequest struct {
	Slug string `json:"slug"`
	Size string `json:"size"`
}

type MergeCartRequest struct {
	Items []CartItem `json:"items"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
