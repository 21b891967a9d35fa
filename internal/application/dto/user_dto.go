package dto

// RegisterRequest body para POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest body para POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse respuesta de registro.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginResponse respuesta de login. El token también se envía como cookie de sesión.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Token   string `json:"token"`
}

// UserResponse usuario en respuestas (perfil).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
