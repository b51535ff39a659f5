package repository

import "github.com/studio-ayni/ayni-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Las dos implementaciones (postgres y jsonstore) deben ser intercambiables sin
// tocar los usecases: List ordena por created_at descendente, Get/Delete devuelven
// (nil, nil) si el id no existe, Create asigna ID y CreatedAt sobre la entidad.
type ProductoRepository interface {
	List() ([]*entity.Producto, error)
	GetByID(id int64) (*entity.Producto, error)
	Create(p *entity.Producto) error
	Update(p *entity.Producto) error
	// Delete devuelve el registro eliminado para que el llamador pueda borrar en
	// cascada sus referencias de media.
	Delete(id int64) (*entity.Producto, error)
}
