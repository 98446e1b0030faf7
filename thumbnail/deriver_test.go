package thumbnail_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"eventsnap/thumbnail"
)

func makeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func makePNGWithAlpha(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 50, B: 50, A: uint8(x % 256)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDeriveBoundsLargeImage(t *testing.T) {
	t.Parallel()

	out, err := thumbnail.Derive(makeJPEG(t, 600, 400), 300, 300, 85)
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err, "thumbnail must be a valid standalone image")
	require.Equal(t, "jpeg", format)
	require.LessOrEqual(t, decoded.Bounds().Dx(), 300)
	require.LessOrEqual(t, decoded.Bounds().Dy(), 300)

	// Aspect ratio is preserved: 600x400 fit into 300x300 is 300x200.
	require.Equal(t, 300, decoded.Bounds().Dx())
	require.Equal(t, 200, decoded.Bounds().Dy())
}

func TestDeriveNeverUpscales(t *testing.T) {
	t.Parallel()

	out, err := thumbnail.Derive(makeJPEG(t, 50, 50), 300, 300, 85)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 50, decoded.Bounds().Dx())
	require.Equal(t, 50, decoded.Bounds().Dy())
}

func TestDeriveFlattensTransparency(t *testing.T) {
	t.Parallel()

	out, err := thumbnail.Derive(makePNGWithAlpha(t, 400, 400), 300, 300, 85)
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format, "transparent sources still encode as jpeg")
	require.Equal(t, 300, decoded.Bounds().Dx())
}

func TestDeriveRejectsNonImage(t *testing.T) {
	t.Parallel()

	_, err := thumbnail.Derive([]byte("definitely not an image"), 300, 300, 85)
	require.Error(t, err)

	_, err = thumbnail.Derive(nil, 300, 300, 85)
	require.Error(t, err)
}
