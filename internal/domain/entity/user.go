package entity

import "time"

// User representa al actor que registra movimientos y ventas.
// La autenticación vive fuera de este servicio; aquí solo se resuelve identidad.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
