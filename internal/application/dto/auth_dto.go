package dto

// LoginRequest credenciais de login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT emitido após autenticação.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
