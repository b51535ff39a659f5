package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/application/usecase"
	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductoRepo repositorio en memoria que registra el orden de operaciones
// en eventos (compartido con fakeMedia para verificar subida-antes-de-insert).
type fakeProductoRepo struct {
	items      map[int64]*entity.Producto
	nextID     int64
	failCreate error
	eventos    *[]string
}

func newFakeProductoRepo(eventos *[]string) *fakeProductoRepo {
	return &fakeProductoRepo{items: map[int64]*entity.Producto{}, nextID: 1, eventos: eventos}
}

func (r *fakeProductoRepo) List() ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	*r.eventos = append(*r.eventos, "insert")
	if r.failCreate != nil {
		return r.failCreate
	}
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	if _, ok := r.items[p.ID]; !ok {
		return domain.ErrNoEncontrado
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) Delete(id int64) (*entity.Producto, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	delete(r.items, id)
	return p, nil
}

// fakeMedia adapter de media en memoria.
type fakeMedia struct {
	uploads    []string
	deletes    []string
	failUpload error
	failDelete error
	eventos    *[]string
}

func (m *fakeMedia) Upload(_ context.Context, _ []byte, filename string) (string, error) {
	*m.eventos = append(*m.eventos, "upload")
	if m.failUpload != nil {
		return "", m.failUpload
	}
	ref := "https://media.test/" + filename
	m.uploads = append(m.uploads, ref)
	return ref, nil
}

func (m *fakeMedia) Delete(_ context.Context, ref string) error {
	m.deletes = append(m.deletes, ref)
	return m.failDelete
}

func (m *fakeMedia) Driver() string { return "fake" }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newProductoFixture() (*usecase.ProductoUseCase, *fakeProductoRepo, *fakeMedia, *[]string) {
	eventos := &[]string{}
	repo := newFakeProductoRepo(eventos)
	media := &fakeMedia{eventos: eventos}
	return usecase.NewProductoUseCase(repo, media, testLogger()), repo, media, eventos
}

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductoCreate_SinImagen(t *testing.T) {
	uc, _, media, _ := newProductoFixture()

	out, err := uc.Create(context.Background(), dto.ProductoInput{
		Nombre: str("Bolso andino"),
		Precio: str("149.90"),
	}, nil, "")
	require.NoError(t, err)

	assert.Equal(t, "Bolso andino", out.Nombre)
	assert.InDelta(t, 149.90, out.Precio, 0.0001)
	assert.Nil(t, out.Imagen, "sin archivo no debe quedar referencia de imagen")
	assert.NotNil(t, out.Colores, "colores debe serializar como [] y no null")
	assert.Empty(t, media.uploads)
}

func TestProductoCreate_SubeImagenAntesDelInsert(t *testing.T) {
	uc, _, media, eventos := newProductoFixture()

	out, err := uc.Create(context.Background(), dto.ProductoInput{
		Nombre: str("Chal de alpaca"),
		Precio: str("89"),
	}, []byte("fake-image-bytes"), "chal.jpg")
	require.NoError(t, err)

	require.NotNil(t, out.Imagen)
	assert.Equal(t, media.uploads[0], *out.Imagen)
	assert.Equal(t, []string{"upload", "insert"}, *eventos,
		"la subida debe ocurrir antes del insert")
}

func TestProductoCreate_SubidaFalla_NoInserta(t *testing.T) {
	uc, repo, media, eventos := newProductoFixture()
	media.failUpload = errors.New("cloudinary caído")

	_, err := uc.Create(context.Background(), dto.ProductoInput{
		Nombre: str("Chal"),
		Precio: str("89"),
	}, []byte("bytes"), "chal.jpg")
	require.Error(t, err)

	assert.Empty(t, repo.items, "una subida fallida no debe crear el registro")
	assert.Equal(t, []string{"upload"}, *eventos)
}

func TestProductoCreate_InsertFalla_DespuesDeSubir(t *testing.T) {
	uc, repo, media, _ := newProductoFixture()
	repo.failCreate = errors.New("db caída")

	_, err := uc.Create(context.Background(), dto.ProductoInput{
		Nombre: str("Chal"),
		Precio: str("89"),
	}, []byte("bytes"), "chal.jpg")
	require.Error(t, err)

	// La imagen subida queda huérfana; no se intenta borrar
	assert.Len(t, media.uploads, 1)
	assert.Empty(t, media.deletes)
}

func TestProductoCreate_Validacion(t *testing.T) {
	uc, _, _, _ := newProductoFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.ProductoInput
	}{
		{"sin nombre", dto.ProductoInput{Precio: str("10")}},
		{"sin precio", dto.ProductoInput{Nombre: str("X")}},
		{"precio no numérico", dto.ProductoInput{Nombre: str("X"), Precio: str("gratis")}},
		{"precio negativo", dto.ProductoInput{Nombre: str("X"), Precio: str("-5")}},
		{"colores malformado", dto.ProductoInput{Nombre: str("X"), Precio: str("10"), Colores: str("{no es array")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in, nil, "")
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
}

func TestProductoCreate_ColoresYNovedad(t *testing.T) {
	uc, _, _, _ := newProductoFixture()

	out, err := uc.Create(context.Background(), dto.ProductoInput{
		Nombre:  str("Poncho"),
		Precio:  str("220"),
		Colores: str(`[{"nombre":"rojo","imagen":"https://media.test/rojo.jpg"},{"nombre":"azul"}]`),
		Novedad: str("true"),
	}, nil, "")
	require.NoError(t, err)

	require.Len(t, out.Colores, 2)
	assert.Equal(t, "rojo", out.Colores[0].Nombre)
	assert.True(t, out.Novedad)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductoUpdate_MergeParcial(t *testing.T) {
	uc, _, _, _ := newProductoFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductoInput{
		Nombre:      str("Poncho"),
		Categoria:   str("abrigo"),
		Precio:      str("220"),
		Descripcion: str("tejido a mano"),
	}, nil, "")
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.ProductoInput{Precio: str("199.99")}, nil, "")
	require.NoError(t, err)

	assert.InDelta(t, 199.99, out.Precio, 0.0001)
	assert.Equal(t, "Poncho", out.Nombre, "campo ausente debe conservar su valor")
	assert.Equal(t, "abrigo", out.Categoria)
	assert.Equal(t, "tejido a mano", out.Descripcion)
	assert.NotNil(t, out.UpdatedAt)
}

func TestProductoUpdate_ImagenNueva_NoBorraLaAnterior(t *testing.T) {
	uc, _, media, _ := newProductoFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductoInput{
		Nombre: str("Chal"),
		Precio: str("89"),
	}, []byte("v1"), "v1.jpg")
	require.NoError(t, err)
	anterior := *created.Imagen

	out, err := uc.Update(ctx, created.ID, dto.ProductoInput{}, []byte("v2"), "v2.jpg")
	require.NoError(t, err)

	require.NotNil(t, out.Imagen)
	assert.NotEqual(t, anterior, *out.Imagen)
	assert.Empty(t, media.deletes, "la imagen reemplazada no se elimina del host")
}

func TestProductoUpdate_NoExiste(t *testing.T) {
	uc, _, _, _ := newProductoFixture()

	_, err := uc.Update(context.Background(), 999, dto.ProductoInput{Nombre: str("X")}, nil, "")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductoDelete_BorraImagenesEnCascada(t *testing.T) {
	uc, _, media, _ := newProductoFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductoInput{
		Nombre:  str("Poncho"),
		Precio:  str("220"),
		Colores: str(`[{"nombre":"rojo","imagen":"https://media.test/rojo.jpg"}]`),
	}, []byte("main"), "main.jpg")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	assert.ElementsMatch(t, []string{*created.Imagen, "https://media.test/rojo.jpg"}, media.deletes,
		"deben borrarse la imagen principal y las de color")
}

func TestProductoDelete_MediaFalla_NoRevierte(t *testing.T) {
	uc, repo, media, _ := newProductoFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductoInput{
		Nombre: str("Chal"),
		Precio: str("89"),
	}, []byte("img"), "img.jpg")
	require.NoError(t, err)

	media.failDelete = errors.New("objeto bloqueado")
	require.NoError(t, uc.Delete(ctx, created.ID),
		"el fallo de media no debe fallar la eliminación del registro")
	assert.Empty(t, repo.items)
}

func TestProductoDelete_NoExiste(t *testing.T) {
	uc, _, media, _ := newProductoFixture()

	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Empty(t, media.deletes)
}

func TestProductoGetByID_NoExiste_NilNil(t *testing.T) {
	uc, _, _, _ := newProductoFixture()

	out, err := uc.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, out)
}
