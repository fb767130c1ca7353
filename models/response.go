package models

type ErrorResponse struct {
	Message string `json:"message"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type LoginResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

type UserResponse struct {
	User PublicUser `json:"user"`
}

type ProductResponse struct {
	Product Product `json:"product"`
}

type ProductListResponse struct {
	Products []Product `json:"products"`
}

type CartResponse struct {
	Cart Cart `json:"cart"`
}

type ContactResponse struct {
	OK      bool           `json:"ok"`
	Contact ContactMessage `json:"contact"`
}

type ContactListResponse struct {
	Contacts []ContactMessage `json:"contacts"`
}

type AdminUserResponse struct {
	User AdminUserView `json:"user"`
}

type AdminUserListResponse struct {
	Users []AdminUserView `json:"users"`
}

type DeleteAllResponse struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}
