package jsonstore

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// productoRecord forma persistida de un producto en productos.json. Los montos
// se guardan como números JSON para que el archivo sea legible y editable a mano.
type productoRecord struct {
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

// ProductoRepo implementación del puerto ProductoRepository sobre productos.json.
type ProductoRepo struct {
	col *coleccion[productoRecord]
}

// NewProductoRepository construye el repositorio sobre dir/productos.json.
func NewProductoRepository(dir string) *ProductoRepo {
	return &ProductoRepo{col: newColeccion[productoRecord](dir, "productos.json")}
}

// List devuelve todos los productos ordenados por creación descendente.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	records, err := r.col.snapshot()
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(records, func(rec productoRecord) (time.Time, int64) {
		return rec.CreatedAt, rec.ID
	})
	list := make([]*entity.Producto, 0, len(records))
	for _, rec := range records {
		list = append(list, productoFromRecord(rec))
	}
	return list, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	records, err := r.col.snapshot()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return productoFromRecord(rec), nil
		}
	}
	return nil, nil
}

// Create asigna ID autoincremental y CreatedAt, y persiste el registro.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	return r.col.mutate(func(records []productoRecord) ([]productoRecord, error) {
		p.ID = nextID(records, func(rec productoRecord) int64 { return rec.ID })
		p.CreatedAt = time.Now().UTC()
		return append(records, productoToRecord(p)), nil
	})
}

// Update reemplaza el registro con el mismo ID. Si no existe, no hace nada: el
// usecase ya verificó la existencia bajo su lectura.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	return r.col.mutate(func(records []productoRecord) ([]productoRecord, error) {
		for i, rec := range records {
			if rec.ID == p.ID {
				records[i] = productoToRecord(p)
				break
			}
		}
		return records, nil
	})
}

// Delete elimina el registro y devuelve su contenido previo, o (nil, nil).
func (r *ProductoRepo) Delete(id int64) (*entity.Producto, error) {
	var removed *entity.Producto
	err := r.col.mutate(func(records []productoRecord) ([]productoRecord, error) {
		for i, rec := range records {
			if rec.ID == id {
				removed = productoFromRecord(rec)
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func productoToRecord(p *entity.Producto) productoRecord {
	colores := p.Colores
	if colores == nil {
		colores = []entity.Color{}
	}
	return productoRecord{
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

func productoFromRecord(rec productoRecord) *entity.Producto {
	return &entity.Producto{
		ID:          rec.ID,
		Nombre:      rec.Nombre,
		Categoria:   rec.Categoria,
		Precio:      decimal.NewFromFloat(rec.Precio),
		Descripcion: rec.Descripcion,
		Imagen:      rec.Imagen,
		Colores:     rec.Colores,
		Novedad:     rec.Novedad,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

// nextID devuelve max(id)+1, empezando en 1.
func nextID[T any](records []T, id func(T) int64) int64 {
	var max int64
	for _, rec := range records {
		if v := id(rec); v > max {
			max = v
		}
	}
	return max + 1
}

// sortByCreatedAtDesc ordena más reciente primero, con ID como desempate.
func sortByCreatedAtDesc[T any](records []T, key func(T) (time.Time, int64)) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, idi := key(records[i])
		tj, idj := key(records[j])
		if ti.Equal(tj) {
			return idi > idj
		}
		return ti.After(tj)
	})
}
