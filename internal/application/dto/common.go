package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error de validación: errores bloqueantes
// por campo más advertencias informativas acumuladas antes del rechazo.
type ValidationErrorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields"`
	Warnings []string          `json:"warnings,omitempty"`
}
