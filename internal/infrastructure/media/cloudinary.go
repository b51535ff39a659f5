package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/studio-ayni/ayni-api/internal/application/ports"
	"github.com/studio-ayni/ayni-api/internal/domain"
	"github.com/studio-ayni/ayni-api/pkg/config"
)

var _ ports.MediaStorage = (*CloudinaryStorage)(nil)

// CloudinaryStorage delega el hosting de imágenes en Cloudinary. La validación de
// formato y la reducción a 1000x1000 (c_limit) las aplica el propio servicio,
// con los mismos parámetros que usaba el backend original.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage construye el adaptador desde la configuración.
func NewCloudinaryStorage(cfg config.MediaConfig) (*CloudinaryStorage, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary: credenciales incompletas")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, folder: cfg.CloudinaryFolder}, nil
}

// Driver identifica la implementación.
func (s *CloudinaryStorage) Driver() string { return "cloudinary" }

// Upload sube la imagen y devuelve la URL segura como referencia estable.
func (s *CloudinaryStorage) Upload(ctx context.Context, data []byte, _ string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:         s.folder,
		AllowedFormats: api.CldAPIArray{"jpg", "jpeg", "png", "gif", "webp"},
		Transformation: "c_limit,w_1000,h_1000",
	})
	if err != nil {
		return "", domain.Upstream(fmt.Errorf("cloudinary upload: %w", err))
	}
	if resp.Error.Message != "" {
		// Formato rechazado por la lista permitida u otro error de la API.
		if strings.Contains(strings.ToLower(resp.Error.Message), "format") {
			return "", fmt.Errorf("%w: %s", domain.ErrEntradaInvalida, resp.Error.Message)
		}
		return "", domain.Upstream(fmt.Errorf("cloudinary upload: %s", resp.Error.Message))
	}
	return resp.SecureURL, nil
}

// Delete destruye el objeto cuyo public id se deriva de la URL de referencia.
func (s *CloudinaryStorage) Delete(ctx context.Context, ref string) error {
	publicID := publicIDFromURL(ref)
	if publicID == "" {
		return domain.ErrNoEncontrado
	}
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return domain.Upstream(fmt.Errorf("cloudinary destroy: %w", err))
	}
	if resp.Result == "not found" {
		return domain.ErrNoEncontrado
	}
	if resp.Result != "ok" {
		return domain.Upstream(fmt.Errorf("cloudinary destroy: %s", resp.Result))
	}
	return nil
}

// publicIDFromURL deriva el public id de Cloudinary desde la URL de entrega:
// los dos últimos segmentos de la ruta (carpeta/nombre) sin la extensión.
// Ej.: https://res.cloudinary.com/demo/image/upload/v1/studio-ayni/abc123.jpg
// -> studio-ayni/abc123
func publicIDFromURL(ref string) string {
	if !strings.Contains(ref, "cloudinary.com") {
		return ""
	}
	parts := strings.Split(ref, "/")
	if len(parts) < 2 {
		return ""
	}
	id := strings.Join(parts[len(parts)-2:], "/")
	ext := path.Ext(id)
	return strings.TrimSuffix(id, ext)
}
