package dto

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de éxito, con aviso opcional de éxito
// degradado (ej. eliminación de un registro cuyo lote ya no existía).
type MessageResponse struct {
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}
