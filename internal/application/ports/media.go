package ports

import "context"

// MediaStorage define el puerto de salida hacia el servicio de hosting de imágenes.
// Cualquier adaptador (Cloudinary, disco local, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación solo
// conoce este contrato, no la implementación concreta.
type MediaStorage interface {
	// Upload almacena los bytes de una imagen y devuelve una referencia estable y
	// dereferenciable (URL o ruta). El adaptador valida el formato contra una lista
	// permitida y reduce la imagen si excede la dimensión máxima.
	Upload(ctx context.Context, data []byte, filename string) (string, error)

	// Delete elimina una imagen previamente subida. Devuelve domain.ErrNoEncontrado
	// si la referencia no existe. Los llamadores tratan cualquier fallo como
	// no fatal: se registra y la operación que lo envuelve continúa.
	Delete(ctx context.Context, ref string) error

	// Driver identifica la implementación activa (para /api/health).
	Driver() string
}
