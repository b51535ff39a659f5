package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, nombre, categoria, precio, descripcion, imagen, colores, novedad, created_at, updated_at`

// List devuelve todos los productos ordenados por creación descendente.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := scanProducto(rows, &p); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1`
	var p entity.Producto
	err := scanProducto(r.q.QueryRow(context.Background(), query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Create inserta el producto y materializa ID y CreatedAt desde la base.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (nombre, categoria, precio, descripcion, imagen, colores, novedad)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		p.Nombre, p.Categoria, p.Precio, p.Descripcion, p.Imagen, p.Colores, p.Novedad,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// Update persiste todos los campos mutables del producto.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, categoria = $3, precio = $4, descripcion = $5, imagen = $6,
		    colores = $7, novedad = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Categoria, p.Precio, p.Descripcion, p.Imagen,
		p.Colores, p.Novedad, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina el producto y devuelve el registro previo (con sus referencias
// de imagen) para el borrado en cascada de media. (nil, nil) si no existía.
func (r *ProductoRepo) Delete(id int64) (*entity.Producto, error) {
	query := `DELETE FROM productos WHERE id = $1 RETURNING ` + productoCols
	var p entity.Producto
	err := scanProducto(r.q.QueryRow(context.Background(), query, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete producto: %w", err)
	}
	return &p, nil
}

func scanProducto(row pgx.Row, p *entity.Producto) error {
	return row.Scan(&p.ID, &p.Nombre, &p.Categoria, &p.Precio, &p.Descripcion,
		&p.Imagen, &p.Colores, &p.Novedad, &p.CreatedAt, &p.UpdatedAt)
}
