package dto

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	NameLastname         string `json:"name_lastname" validate:"required"`
	TypeIdentification   string `json:"type_identification" validate:"required,oneof=CEDULA RUC PASAPORTE"`
	NumberIdentification string `json:"number_identification" validate:"required"`
	Email                string `json:"email,omitempty" validate:"omitempty,email"`
	Phone                string `json:"phone,omitempty"`
	Address              string `json:"address,omitempty"`
	RequiresInvoice      bool   `json:"requires_invoice"`
}

// UpdateClientRequest body para PUT /api/clients/:id.
type UpdateClientRequest struct {
	NameLastname    *string `json:"name_lastname,omitempty"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone           *string `json:"phone,omitempty"`
	Address         *string `json:"address,omitempty"`
	RequiresInvoice *bool   `json:"requires_invoice,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// ClientResponse representación de un cliente.
type ClientResponse struct {
	ID                   int64  `json:"id"`
	NameLastname         string `json:"name_lastname"`
	TypeIdentification   string `json:"type_identification"`
	NumberIdentification string `json:"number_identification"`
	Email                string `json:"email,omitempty"`
	Phone                string `json:"phone,omitempty"`
	Address              string `json:"address,omitempty"`
	RequiresInvoice      bool   `json:"requires_invoice"`
	IsActive             bool   `json:"is_active"`
}
