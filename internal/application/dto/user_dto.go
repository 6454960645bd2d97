package dto

// UserResponse representación de solo lectura de un usuario (vendedores y
// administradores viven en el backend; aquí solo se consultan).
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}
