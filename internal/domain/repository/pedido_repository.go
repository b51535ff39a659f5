package repository

import "github.com/studio-ayni/ayni-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido.
type PedidoRepository interface {
	List() ([]*entity.Pedido, error)
	GetByID(id int64) (*entity.Pedido, error)
	Create(p *entity.Pedido) error
	// Update persiste Estado y UpdatedAt (el resto del pedido es inmutable).
	Update(p *entity.Pedido) error
}
