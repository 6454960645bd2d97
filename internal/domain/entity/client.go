package entity

import "time"

// Tipos de identificación (Ecuador).
const (
	IdentificationCedula   = "CEDULA"
	IdentificationRUC      = "RUC"
	IdentificationPassport = "PASAPORTE"
)

// Client representa un cliente de la empresa.
type Client struct {
	ID                   int64
	NameLastname         string
	TypeIdentification   string
	NumberIdentification string
	Email                string
	Phone                string
	Address              string
	RequiresInvoice      bool
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
