package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/studio-ayni/ayni-api/internal/application/ports"
	"github.com/studio-ayni/ayni-api/internal/domain"
)

// URLPrefix ruta pública bajo la que la app sirve los archivos del driver local.
const URLPrefix = "/uploads"

var _ ports.MediaStorage = (*LocalStorage)(nil)

// LocalStorage guarda imágenes en disco bajo dir y las referencia como
// /uploads/<nombre>. Aplica la lista de formatos permitidos y la reducción a la
// dimensión máxima antes de escribir.
type LocalStorage struct {
	dir string
}

// NewLocalStorage crea el directorio si no existe y devuelve el adaptador.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de media: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Driver identifica la implementación.
func (s *LocalStorage) Driver() string { return "local" }

// Dir devuelve el directorio de almacenamiento (para montar el fileserver).
func (s *LocalStorage) Dir() string { return s.dir }

// Upload valida, reduce si hace falta y escribe la imagen con nombre aleatorio.
func (s *LocalStorage) Upload(_ context.Context, data []byte, _ string) (string, error) {
	processed, ext, err := processImage(data)
	if err != nil {
		return "", err
	}
	name := uuid.New().String() + "." + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), processed, 0o644); err != nil {
		return "", domain.Upstream(fmt.Errorf("escribir imagen: %w", err))
	}
	return URLPrefix + "/" + name, nil
}

// Delete elimina el archivo referenciado. Solo acepta referencias bajo /uploads
// y descarta cualquier componente de ruta para evitar salirse del directorio.
func (s *LocalStorage) Delete(_ context.Context, ref string) error {
	if !strings.HasPrefix(ref, URLPrefix+"/") {
		return domain.ErrNoEncontrado
	}
	name := path.Base(ref)
	if name == "." || name == "/" || name == ".." {
		return domain.ErrNoEncontrado
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNoEncontrado
		}
		return domain.Upstream(fmt.Errorf("eliminar imagen: %w", err))
	}
	return nil
}
