package dto

import (
	"time"

	"github.com/studio-ayni/ayni-api/internal/domain/entity"
)

// ProductoInput campos crudos del formulario multipart. Un puntero nil significa
// que el campo no vino en la petición; en update los campos ausentes conservan su
// valor anterior. La coerción (precio, colores, novedad) la hace el usecase.
type ProductoInput struct {
	Nombre      *string
	Categoria   *string
	Precio      *string
	Descripcion *string
	Colores     *string // JSON serializado: [{"nombre":"rojo","imagen":"..."}]
	Novedad     *string // "true" / "false"
}

// ProductoResponse representación pública de un producto.
type ProductoResponse struct {
	ID          int64          `json:"id"`
	Nombre      string         `json:"nombre"`
	Categoria   string         `json:"categoria"`
	Precio      float64        `json:"precio"`
	Descripcion string         `json:"descripcion"`
	Imagen      *string        `json:"imagen"`
	Colores     []entity.Color `json:"colores"`
	Novedad     bool           `json:"novedad"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

// ProductoSuccess envoltorio {success, producto} de las mutaciones.
type ProductoSuccess struct {
	Success  bool              `json:"success"`
	Producto *ProductoResponse `json:"producto"`
}

// ToProductoResponse convierte la entidad a su representación pública.
func ToProductoResponse(p *entity.Producto) *ProductoResponse {
	if p == nil {
		return nil
	}
	colores := p.Colores
	if colores == nil {
		colores = []entity.Color{}
	}
	return &ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Categoria:   p.Categoria,
		Precio:      p.Precio.InexactFloat64(),
		Descripcion: p.Descripcion,
		Imagen:      p.Imagen,
		Colores:     colores,
		Novedad:     p.Novedad,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
