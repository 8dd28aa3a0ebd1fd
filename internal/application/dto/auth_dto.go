package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	AccessCode string `json:"access_code"`
	Name       string `json:"name"` // nombre del operador, queda en el token
}

// LoginResponse token emitido tras validar el código de acceso.
type LoginResponse struct {
	Token string `json:"token"`
}
