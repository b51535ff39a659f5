package jsonstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

type itemPedidoRecord struct {
	ProductoID int64   `json:"producto_id,omitempty"`
	Nombre     string  `json:"nombre"`
	Cantidad   int     `json:"cantidad"`
	Precio     float64 `json:"precio"`
	Color      string  `json:"color,omitempty"`
}

// pedidoRecord forma persistida de un pedido en pedidos.json.
type pedidoRecord struct {
	ID         int64              `json:"id"`
	Cliente    entity.Cliente     `json:"cliente"`
	Productos  []itemPedidoRecord `json:"productos"`
	Total      float64            `json:"total"`
	MetodoPago string             `json:"metodo_pago"`
	Estado     string             `json:"estado"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  *time.Time         `json:"updated_at,omitempty"`
}

// PedidoRepo implementación del puerto PedidoRepository sobre pedidos.json.
type PedidoRepo struct {
	col *coleccion[pedidoRecord]
}

// NewPedidoRepository construye el repositorio sobre dir/pedidos.json.
func NewPedidoRepository(dir string) *PedidoRepo {
	return &PedidoRepo{col: newColeccion[pedidoRecord](dir, "pedidos.json")}
}

// List devuelve todos los pedidos ordenados por creación descendente.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	records, err := r.col.snapshot()
	if err != nil {
		return nil, err
	}
	sortByCreatedAtDesc(records, func(rec pedidoRecord) (time.Time, int64) {
		return rec.CreatedAt, rec.ID
	})
	list := make([]*entity.Pedido, 0, len(records))
	for _, rec := range records {
		list = append(list, pedidoFromRecord(rec))
	}
	return list, nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *PedidoRepo) GetByID(id int64) (*entity.Pedido, error) {
	records, err := r.col.snapshot()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return pedidoFromRecord(rec), nil
		}
	}
	return nil, nil
}

// Create asigna ID autoincremental y CreatedAt, y persiste el registro.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	return r.col.mutate(func(records []pedidoRecord) ([]pedidoRecord, error) {
		p.ID = nextID(records, func(rec pedidoRecord) int64 { return rec.ID })
		p.CreatedAt = time.Now().UTC()
		return append(records, pedidoToRecord(p)), nil
	})
}

// Update reemplaza el registro con el mismo ID.
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	return r.col.mutate(func(records []pedidoRecord) ([]pedidoRecord, error) {
		for i, rec := range records {
			if rec.ID == p.ID {
				records[i] = pedidoToRecord(p)
				break
			}
		}
		return records, nil
	})
}

func pedidoToRecord(p *entity.Pedido) pedidoRecord {
	items := make([]itemPedidoRecord, 0, len(p.Productos))
	for _, it := range p.Productos {
		items = append(items, itemPedidoRecord{
			ProductoID: it.ProductoID,
			Nombre:     it.Nombre,
			Cantidad:   it.Cantidad,
			Precio:     it.Precio.InexactFloat64(),
			Color:      it.Color,
		})
	}
	return pedidoRecord{
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

func pedidoFromRecord(rec pedidoRecord) *entity.Pedido {
	items := make([]entity.ItemPedido, 0, len(rec.Productos))
	for _, it := range rec.Productos {
		items = append(items, entity.ItemPedido{
			ProductoID: it.ProductoID,
			Nombre:     it.Nombre,
			Cantidad:   it.Cantidad,
			Precio:     decimal.NewFromFloat(it.Precio),
			Color:      it.Color,
		})
	}
	return &entity.Pedido{
		ID:         rec.ID,
		Cliente:    rec.Cliente,
		Productos:  items,
		Total:      decimal.NewFromFloat(rec.Total),
		MetodoPago: rec.MetodoPago,
		Estado:     rec.Estado,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
