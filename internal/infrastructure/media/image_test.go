package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-ayni/ayni-api/internal/domain"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func dimensions(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestProcessImage_DentroDelLimite_SinRecomprimir(t *testing.T) {
	original := encodePNG(t, 400, 300)

	out, ext, err := processImage(original)
	require.NoError(t, err)

	assert.Equal(t, "png", ext)
	assert.Equal(t, original, out, "imagen dentro del límite se devuelve byte a byte")
}

func TestProcessImage_ReduceAnchoExcesivo(t *testing.T) {
	out, ext, err := processImage(encodeJPEG(t, 2000, 500))
	require.NoError(t, err)

	w, h := dimensions(t, out)
	assert.Equal(t, "jpg", ext)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 250, h, "la proporción debe preservarse")
}

func TestProcessImage_ReduceAltoExcesivo(t *testing.T) {
	out, _, err := processImage(encodePNG(t, 500, 2000))
	require.NoError(t, err)

	w, h := dimensions(t, out)
	assert.Equal(t, 250, w)
	assert.Equal(t, 1000, h)
}

func TestProcessImage_NoEsImagen(t *testing.T) {
	_, _, err := processImage([]byte("esto no es una imagen"))
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestProcessImage_ExtensionJPEGNormalizada(t *testing.T) {
	_, ext, err := processImage(encodeJPEG(t, 100, 100))
	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)
}
