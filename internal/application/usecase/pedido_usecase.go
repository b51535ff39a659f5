package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
	"github.com/studio-ayni/ayni-api/pkg/logger"
)

// PedidoUseCase casos de uso de pedidos. La creación es pública (los clientes
// compran sin cuenta); listado y cambio de estado requieren autenticación.
type PedidoUseCase struct {
	repo              repository.PedidoRepository
	metodoPagoDefault string
	log               *logger.Logger
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(repo repository.PedidoRepository, metodoPagoDefault string, log *logger.Logger) *PedidoUseCase {
	return &PedidoUseCase{repo: repo, metodoPagoDefault: metodoPagoDefault, log: log}
}

// Create registra un pedido nuevo. metodo_pago cae al valor configurado si no
// viene; el estado inicial es siempre "pendiente", sin importar la entrada.
func (uc *PedidoUseCase) Create(in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	total := decimal.NewFromFloat(in.Total)
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: total no puede ser negativo", domain.ErrEntradaInvalida)
	}
	metodoPago := in.MetodoPago
	if metodoPago == "" {
		metodoPago = uc.metodoPagoDefault
	}

	p := &entity.Pedido{
		Cliente: entity.Cliente{
			Nombre:    in.Cliente.Nombre,
			Email:     in.Cliente.Email,
			Telefono:  in.Cliente.Telefono,
			Direccion: in.Cliente.Direccion,
		},
		Productos:  in.ToEntityItems(),
		Total:      total,
		MetodoPago: metodoPago,
		Estado:     entity.EstadoPendiente,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}

	uc.log.Info().Int64("id", p.ID).Str("cliente", p.Cliente.Nombre).Msg("pedido creado")
	return dto.ToPedidoResponse(p), nil
}

// List devuelve todos los pedidos, más reciente primero.
func (uc *PedidoUseCase) List() ([]*dto.PedidoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPedidoResponse(p))
	}
	return out, nil
}

// UpdateEstado transiciona el estado de un pedido dentro del conjunto cerrado.
func (uc *PedidoUseCase) UpdateEstado(id int64, estado string) (*dto.PedidoResponse, error) {
	if !entity.EstadoValido(estado) {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrEntradaInvalida, estado)
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}

	p.Estado = estado
	now := time.Now()
	p.UpdatedAt = &now
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}

	uc.log.Info().Int64("id", id).Str("estado", estado).Msg("estado de pedido actualizado")
	return dto.ToPedidoResponse(p), nil
}
