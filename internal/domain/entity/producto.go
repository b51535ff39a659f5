package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Color variante de color de un producto. Imagen es opcional y, cuando existe,
// referencia un objeto del Media Adapter.
type Color struct {
	Nombre string `json:"nombre"`
	Imagen string `json:"imagen,omitempty"`
}

// Producto artículo del catálogo. Imagen es una referencia débil al objeto subido
// al Media Adapter: nil si el producto no tiene imagen. El ID lo asigna la capa
// de persistencia y es estable durante la vida del registro.
type Producto struct {
	ID          int64
	Nombre      string
	Categoria   string
	Precio      decimal.Decimal // nunca negativo
	Descripcion string
	Imagen      *string
	Colores     []Color
	Novedad     bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Imagenes devuelve todas las referencias de media asociadas al producto
// (imagen principal y las de cada color), para el borrado en cascada.
func (p *Producto) Imagenes() []string {
	var refs []string
	if p.Imagen != nil && *p.Imagen != "" {
		refs = append(refs, *p.Imagen)
	}
	for _, c := range p.Colores {
		if c.Imagen != "" {
			refs = append(refs, c.Imagen)
		}
	}
	return refs
}
