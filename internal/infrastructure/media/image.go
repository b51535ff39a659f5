// Package media implementa el puerto MediaStorage: Cloudinary para producción
// (como el servicio original) y un almacenamiento en disco local que aplica las
// mismas reglas de formato y tamaño dentro del proceso.
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // registro del decoder webp

	"github.com/studio-ayni/ayni-api/internal/domain"
)

// Formatos de imagen aceptados y dimensión máxima. Una imagen más grande se
// reduce para caber en maxDimension x maxDimension, nunca se rechaza.
const maxDimension = 1000

var allowedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// processImage valida el formato contra la lista permitida y reduce la imagen si
// excede la dimensión máxima. Devuelve los bytes finales y la extensión a usar.
// Si no hace falta reducir, los bytes originales se devuelven sin recomprimir.
func processImage(data []byte) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: imagen no reconocida", domain.ErrEntradaInvalida)
	}
	if !allowedFormats[format] {
		return nil, "", fmt.Errorf("%w: formato %q no permitido", domain.ErrEntradaInvalida, format)
	}

	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDimension && h <= maxDimension {
		return data, ext, nil
	}

	scaled := downscale(img, w, h)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: 85})
	case "gif":
		err = gif.Encode(&buf, scaled, nil)
	default:
		// png, y webp al reducir: x/image no trae encoder webp, así que una
		// imagen webp que necesita reducción se reencodifica como png.
		err = png.Encode(&buf, scaled)
		ext = "png"
	}
	if err != nil {
		return nil, "", fmt.Errorf("reencodificar imagen: %w", err)
	}
	return buf.Bytes(), ext, nil
}

// downscale reduce la imagen para caber en maxDimension preservando la proporción.
func downscale(img image.Image, w, h int) image.Image {
	nw, nh := w, h
	if w >= h {
		nw = maxDimension
		nh = h * maxDimension / w
	} else {
		nh = maxDimension
		nw = w * maxDimension / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
