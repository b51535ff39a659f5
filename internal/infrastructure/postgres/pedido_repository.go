package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL.
// Cliente y las líneas del pedido se guardan como JSONB.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoCols = `id, cliente, productos, total, metodo_pago, estado, created_at, updated_at`

// List devuelve todos los pedidos ordenados por creación descendente.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := scanPedido(rows, &p); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *PedidoRepo) GetByID(id int64) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := scanPedido(r.q.QueryRow(context.Background(), query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// Create inserta el pedido y materializa ID y CreatedAt desde la base.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (cliente, productos, total, metodo_pago, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		p.Cliente, p.Productos, p.Total, p.MetodoPago, p.Estado,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// Update persiste estado y updated_at (el resto del pedido es inmutable).
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	query := `UPDATE pedidos SET estado = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Estado, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

func scanPedido(row pgx.Row, p *entity.Pedido) error {
	return row.Scan(&p.ID, &p.Cliente, &p.Productos, &p.Total, &p.MetodoPago,
		&p.Estado, &p.CreatedAt, &p.UpdatedAt)
}
