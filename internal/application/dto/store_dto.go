package dto

// CreateStoreRequest body para POST /api/stores.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Type    string `json:"type" validate:"required,oneof=FISICA MOVIL BODEGA"`
}

// UpdateStoreRequest body para PUT /api/stores/:id.
type UpdateStoreRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Type     *string `json:"type,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// StoreResponse representación de una tienda.
type StoreResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
}
