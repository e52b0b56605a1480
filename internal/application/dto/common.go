package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse respuesta de alta con el ID generado.
type CreatedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// OKResponse respuesta genérica de éxito.
type OKResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
