package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un Pedido (conjunto cerrado).
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmado = "confirmado"
	EstadoEnviado    = "enviado"
	EstadoEntregado  = "entregado"
	EstadoCancelado  = "cancelado"
)

// EstadoValido indica si el estado pertenece al conjunto cerrado.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoConfirmado, EstadoEnviado, EstadoEntregado, EstadoCancelado:
		return true
	}
	return false
}

// Cliente datos de contacto de quien realiza el pedido. Los pedidos se crean sin
// cuenta de usuario, así que esto es todo lo que se conoce del comprador.
type Cliente struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ItemPedido línea de un pedido.
type ItemPedido struct {
	ProductoID int64           `json:"producto_id,omitempty"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
	Color      string          `json:"color,omitempty"`
}

// Pedido orden de compra. Inmutable salvo las transiciones de Estado, que solo
// realizan actores autenticados.
type Pedido struct {
	ID         int64
	Cliente    Cliente
	Productos  []ItemPedido
	Total      decimal.Decimal // nunca negativo
	MetodoPago string
	Estado     string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
