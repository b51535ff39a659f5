package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
)

// ClienteInput datos de contacto del comprador.
type ClienteInput struct {
	Nombre    string `json:"nombre" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// ItemPedidoInput línea del carrito tal como la envía el frontend.
type ItemPedidoInput struct {
	ProductoID int64   `json:"producto_id"`
	Nombre     string  `json:"nombre" validate:"required"`
	Cantidad   int     `json:"cantidad" validate:"gte=1"`
	Precio     float64 `json:"precio" validate:"gte=0"`
	Color      string  `json:"color"`
}

// CreatePedidoRequest cuerpo de POST /api/pedidos (público, sin autenticación).
// El estado inicial siempre es "pendiente", ignore lo que ignore el cliente.
type CreatePedidoRequest struct {
	Cliente    ClienteInput      `json:"cliente" validate:"required"`
	Productos  []ItemPedidoInput `json:"productos" validate:"required,min=1,dive"`
	Total      float64           `json:"total" validate:"gte=0"`
	MetodoPago string            `json:"metodoPago"`
}

// UpdateEstadoRequest cuerpo de PATCH /api/pedidos/:id.
type UpdateEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// ItemPedidoResponse línea de pedido en respuestas.
type ItemPedidoResponse struct {
	ProductoID int64   `json:"producto_id,omitempty"`
	Nombre     string  `json:"nombre"`
	Cantidad   int     `json:"cantidad"`
	Precio     float64 `json:"precio"`
	Color      string  `json:"color,omitempty"`
}

// PedidoResponse representación pública de un pedido.
type PedidoResponse struct {
	ID         int64                `json:"id"`
	Cliente    entity.Cliente       `json:"cliente"`
	Productos  []ItemPedidoResponse `json:"productos"`
	Total      float64              `json:"total"`
	MetodoPago string               `json:"metodo_pago"`
	Estado     string               `json:"estado"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  *time.Time           `json:"updated_at,omitempty"`
}

// PedidoSuccess envoltorio {success, pedido} de las mutaciones.
type PedidoSuccess struct {
	Success bool            `json:"success"`
	Pedido  *PedidoResponse `json:"pedido"`
}

// ToEntityItems convierte las líneas del request a entidades.
func (r CreatePedidoRequest) ToEntityItems() []entity.ItemPedido {
	items := make([]entity.ItemPedido, 0, len(r.Productos))
	for _, it := range r.Productos {
		items = append(items, entity.ItemPedido{
			ProductoID: it.ProductoID,
			Nombre:     it.Nombre,
			Cantidad:   it.Cantidad,
			Precio:     decimal.NewFromFloat(it.Precio),
			Color:      it.Color,
		})
	}
	return items
}

// ToPedidoResponse convierte la entidad a su representación pública.
func ToPedidoResponse(p *entity.Pedido) *PedidoResponse {
	if p == nil {
		return nil
	}
	items := make([]ItemPedidoResponse, 0, len(p.Productos))
	for _, it := range p.Productos {
		items = append(items, ItemPedidoResponse{
			ProductoID: it.ProductoID,
			Nombre:     it.Nombre,
			Cantidad:   it.Cantidad,
			Precio:     it.Precio.InexactFloat64(),
			Color:      it.Color,
		})
	}
	return &PedidoResponse{
		ID:         p.ID,
		Cliente:    p.Cliente,
		Productos:  items,
		Total:      p.Total.InexactFloat64(),
		MetodoPago: p.MetodoPago,
		Estado:     p.Estado,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
