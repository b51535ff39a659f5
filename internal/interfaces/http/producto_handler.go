package http

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/studio-ayni/ayni-api/internal/application/dto"
	"github.com/studio-ayni/ayni-api/internal/application/usecase"
)

const msgProductoNoEncontrado = "Producto no encontrado"

// ProductoHandler maneja las peticiones HTTP de productos. Los listados son
// públicos; las mutaciones van detrás del AuthMiddleware (ver router).
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos (más reciente primero)
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return handleError(c, err, msgProductoNoEncontrado)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return handleError(c, err, msgProductoNoEncontrado)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgProductoNoEncontrado})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (multipart, imagen opcional)
// @Tags         productos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.ProductoSuccess
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	in := productoInput(c)
	imagen, filename, err := imagenFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Archivo de imagen inválido"})
	}
	out, err := h.uc.Create(c.Context(), in, imagen, filename)
	if err != nil {
		return handleError(c, err, msgProductoNoEncontrado)
	}
	return c.JSON(dto.ProductoSuccess{Success: true, Producto: out})
}

// Update godoc
// @Summary      Actualizar producto (campos ausentes conservan su valor)
// @Tags         productos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoSuccess
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID inválido"})
	}
	in := productoInput(c)
	imagen, filename, err := imagenFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Archivo de imagen inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in, imagen, filename)
	if err != nil {
		return handleError(c, err, msgProductoNoEncontrado)
	}
	return c.JSON(dto.ProductoSuccess{Success: true, Producto: out})
}

// Delete godoc
// @Summary      Eliminar producto (borra sus imágenes con mejor esfuerzo)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ID inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return handleError(c, err, msgProductoNoEncontrado)
	}
	return c.JSON(dto.SuccessResponse{Success: true, Message: "Producto eliminado"})
}

// productoInput construye el input desde el formulario multipart. Un campo que
// no vino queda en nil para que update conserve el valor anterior.
func productoInput(c *fiber.Ctx) dto.ProductoInput {
	var in dto.ProductoInput
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return in
	}
	get := func(key string) *string {
		vals, ok := form.Value[key]
		if !ok || len(vals) == 0 {
			return nil
		}
		return &vals[0]
	}
	in.Nombre = get("nombre")
	in.Categoria = get("categoria")
	in.Precio = get("precio")
	in.Descripcion = get("descripcion")
	in.Colores = get("colores")
	in.Novedad = get("novedad")
	return in
}

// imagenFile lee los bytes del archivo "imagen" si vino en el formulario.
func imagenFile(c *fiber.Ctx) ([]byte, string, error) {
	fh, err := c.FormFile("imagen")
	if err != nil || fh == nil {
		return nil, "", nil // sin archivo: no es un error
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
