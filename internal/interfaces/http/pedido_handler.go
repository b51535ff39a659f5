package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/application/usecase"
)

const msgPedidoNoEncontrado = "Pedido no encontrado"

// PedidoHandler maneja las peticiones HTTP de pedidos. La creación es pública;
// listado y cambio de estado requieren token (ver router).
type PedidoHandler struct {
	uc *usecase.PedidoUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido (público, estado inicial pendiente)
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePedidoRequest  true  "Pedido"
// @Success      200   {object}  dto.PedidoSuccess
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos de pedido inválidos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err, msgPedidoNoEncontrado)
	}
	return c.JSON(dto.PedidoSuccess{Success: true, Pedido: out})
}

// List godoc
// @Summary      Listar pedidos (más reciente primero)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PedidoResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err, msgPedidoNoEncontrado)
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Actualizar estado de un pedido
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.UpdateEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.PedidoSuccess
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [patch]
func (h *PedidoHandler) UpdateEstado(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID inválido"})
	}
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Datos inválidos"})
	}
	out, err := h.uc.UpdateEstado(id, in.Estado)
	if err != nil {
		return handleError(c, err, msgPedidoNoEncontrado)
	}
	return c.JSON(dto.PedidoSuccess{Success: true, Pedido: out})
}
