package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/studio-ayni/ayni-api/internal/application/auth"
	"github.com/studio-ayni/ayni-api/internal/application/dto"
)

// AuthHandler maneja login y verificación de token.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión (email o username)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return handleError(c, err, "Usuario no encontrado")
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar token de sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerifyResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	// El middleware ya validó el token; llegar aquí es la confirmación.
	return c.JSON(dto.VerifyResponse{Valid: true})
}
