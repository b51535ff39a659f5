package dto

import (
	"time"

	"github.com/studio-ayni/ayni-api/internal/domain/entity"
)

// UsuarioResponse vista pública de un usuario. No existe campo de contraseña:
// la redacción del hash es estructural, no una omisión en la serialización.
type UsuarioResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest credenciales de acceso. Se acepta email o username como identificador.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

// Identificador devuelve el identificador presentado (username tiene prioridad,
// igual que en el frontend original).
func (r LoginRequest) Identificador() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// LoginResponse token de sesión más la vista pública del usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// VerifyResponse respuesta de GET /api/verify.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ToUsuarioResponse convierte la entidad a su vista pública.
func ToUsuarioResponse(u *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
