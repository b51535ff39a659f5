package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/application/ports"
	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/internal/domain/entity"
	"github.com/studio-ayni/ayni-api/internal/domain/repository"
	"github.com/studio-ayni/ayni-api/pkg/logger"
)

// ProductoUseCase CRUD de productos más la orquestación del ciclo de vida de sus
// imágenes contra el Media Adapter.
type ProductoUseCase struct {
	repo  repository.ProductoRepository
	media ports.MediaStorage
	log   *logger.Logger
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, media ports.MediaStorage, log *logger.Logger) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, media: media, log: log}
}

// List devuelve todos los productos, más reciente primero.
func (uc *ProductoUseCase) List() ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductoResponse(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductoUseCase) GetByID(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductoResponse(p), nil
}

// Create valida y crea un producto. Si hay bytes de imagen, la subida ocurre
// ANTES del insert: una subida fallida impide crear el registro. Si el insert
// falla después de subir, la referencia queda huérfana en el host de media y se
// registra en el log para una futura reconciliación.
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.ProductoInput, imagen []byte, filename string) (*dto.ProductoResponse, error) {
	if in.Nombre == nil || *in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrEntradaInvalida)
	}
	if in.Precio == nil {
		return nil, fmt.Errorf("%w: precio es requerido", domain.ErrEntradaInvalida)
	}
	precio, err := parsePrecio(*in.Precio)
	if err != nil {
		return nil, err
	}
	colores, err := parseColores(in.Colores)
	if err != nil {
		return nil, err
	}

	p := &entity.Producto{
		Nombre:  *in.Nombre,
		Precio:  precio,
		Colores: colores,
		Novedad: parseNovedad(in.Novedad),
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}

	if len(imagen) > 0 {
		ref, err := uc.media.Upload(ctx, imagen, filename)
		if err != nil {
			return nil, fmt.Errorf("subir imagen: %w", err)
		}
		p.Imagen = &ref
	}

	if err := uc.repo.Create(p); err != nil {
		if p.Imagen != nil {
			// Sin camino de rollback: la imagen ya subida queda huérfana (a lo sumo
			// una por fallo) y un barrido de reconciliación podría recogerla.
			uc.log.Warn().Str("imagen", *p.Imagen).Err(err).
				Msg("insert falló después de subir imagen; referencia huérfana")
		}
		return nil, err
	}

	uc.log.Info().Int64("id", p.ID).Str("nombre", p.Nombre).Msg("producto agregado")
	return dto.ToProductoResponse(p), nil
}

// Update modifica los campos provistos de un producto existente. Una imagen nueva
// reemplaza la referencia; la anterior NO se elimina del host de media (la
// limpieza solo ocurre al borrar el registro completo).
func (uc *ProductoUseCase) Update(ctx context.Context, id int64, in dto.ProductoInput, imagen []byte, filename string) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNoEncontrado
	}

	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		precio, err := parsePrecio(*in.Precio)
		if err != nil {
			return nil, err
		}
		p.Precio = precio
	}
	if in.Colores != nil {
		colores, err := parseColores(in.Colores)
		if err != nil {
			return nil, err
		}
		p.Colores = colores
	}
	if in.Novedad != nil {
		p.Novedad = parseNovedad(in.Novedad)
	}

	if len(imagen) > 0 {
		ref, err := uc.media.Upload(ctx, imagen, filename)
		if err != nil {
			return nil, fmt.Errorf("subir imagen: %w", err)
		}
		p.Imagen = &ref
	}

	now := time.Now()
	p.UpdatedAt = &now
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}

	uc.log.Info().Int64("id", p.ID).Str("nombre", p.Nombre).Msg("producto actualizado")
	return dto.ToProductoResponse(p), nil
}

// Delete elimina un producto y, con mejor esfuerzo, sus imágenes (principal y
// variantes de color). Un fallo al borrar media se registra y no revierte ni
// falla la eliminación del registro.
func (uc *ProductoUseCase) Delete(ctx context.Context, id int64) error {
	removed, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if removed == nil {
		return domain.ErrNoEncontrado
	}

	for _, ref := range removed.Imagenes() {
		if err := uc.media.Delete(ctx, ref); err != nil {
			uc.log.Warn().Str("imagen", ref).Err(err).
				Msg("no se pudo eliminar la imagen del producto")
		}
	}

	uc.log.Info().Int64("id", id).Msg("producto eliminado")
	return nil
}

func parsePrecio(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: precio %q no es numérico", domain.ErrEntradaInvalida, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: precio no puede ser negativo", domain.ErrEntradaInvalida)
	}
	return d, nil
}

// parseColores deserializa el campo colores del formulario. Ausente o vacío
// equivale a secuencia vacía; JSON malformado se rechaza.
func parseColores(raw *string) ([]entity.Color, error) {
	if raw == nil || *raw == "" {
		return []entity.Color{}, nil
	}
	var colores []entity.Color
	if err := json.Unmarshal([]byte(*raw), &colores); err != nil {
		return nil, fmt.Errorf("%w: colores no es JSON válido", domain.ErrEntradaInvalida)
	}
	if colores == nil {
		colores = []entity.Color{}
	}
	return colores, nil
}

func parseNovedad(raw *string) bool {
	return raw != nil && (*raw == "true" || *raw == "1")
}
