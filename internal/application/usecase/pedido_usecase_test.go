package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/application/usecase"
	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
)

type fakePedidoRepo struct {
	items  map[int64]*entity.Pedido
	nextID int64
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{items: map[int64]*entity.Pedido{}, nextID: 1}
}

func (r *fakePedidoRepo) List() ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePedidoRepo) GetByID(id int64) (*entity.Pedido, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePedidoRepo) Create(p *entity.Pedido) error {
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePedidoRepo) Update(p *entity.Pedido) error {
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNoEncontrado
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func newPedidoFixture() *usecase.PedidoUseCase {
	return usecase.NewPedidoUseCase(newFakePedidoRepo(), "whatsapp", testLogger())
}

func pedidoValido() dto.CreatePedidoRequest {
	return dto.CreatePedidoRequest{
		Cliente: dto.ClienteInput{Nombre: "Ana Quispe", Telefono: "+51 999 888 777"},
		Productos: []dto.ItemPedidoInput{
			{ProductoID: 1, Nombre: "Chal de alpaca", Cantidad: 2, Precio: 89},
		},
		Total: 178,
	}
}

func TestPedidoCreate_EstadoInicialSiemprePendiente(t *testing.T) {
	uc := newPedidoFixture()

	out, err := uc.Create(pedidoValido())
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoPendiente, out.Estado)
	assert.Equal(t, "whatsapp", out.MetodoPago, "sin metodoPago debe caer al default")
	assert.InDelta(t, 178, out.Total, 0.0001)
}

func TestPedidoCreate_MetodoPagoExplicito(t *testing.T) {
	uc := newPedidoFixture()

	in := pedidoValido()
	in.MetodoPago = "transferencia"
	out, err := uc.Create(in)
	require.NoError(t, err)

	assert.Equal(t, "transferencia", out.MetodoPago)
}

func TestPedidoCreate_TotalNegativo(t *testing.T) {
	uc := newPedidoFixture()

	in := pedidoValido()
	in.Total = -1
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestPedidoUpdateEstado_TransicionValida(t *testing.T) {
	uc := newPedidoFixture()
	created, err := uc.Create(pedidoValido())
	require.NoError(t, err)

	out, err := uc.UpdateEstado(created.ID, entity.EstadoEnviado)
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoEnviado, out.Estado)
	assert.NotNil(t, out.UpdatedAt)
}

func TestPedidoUpdateEstado_EstadoDesconocido(t *testing.T) {
	uc := newPedidoFixture()
	created, err := uc.Create(pedidoValido())
	require.NoError(t, err)

	_, err = uc.UpdateEstado(created.ID, "teletransportado")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestPedidoUpdateEstado_NoExiste(t *testing.T) {
	uc := newPedidoFixture()

	_, err := uc.UpdateEstado(999, entity.EstadoConfirmado)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}
