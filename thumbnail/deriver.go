// Package thumbnail derives size-bounded JPEG previews from uploaded
// image bytes.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	// image.Decode needs these registered in addition to the
	// jpeg/png/gif decoders imaging pulls in.
	_ "golang.org/x/image/webp"
)

// Derive decodes data as a raster image, bounds it to maxWidth x
// maxHeight preserving aspect ratio (never upscaling), and re-encodes
// it as a standalone JPEG at the given quality. Transparency and
// palette colors are flattened onto an opaque white canvas first, since
// JPEG has no alpha channel.
func Derive(data []byte, maxWidth, maxHeight, quality int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	flat := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), src, src.Bounds().Min, draw.Over)

	thumb := imaging.Fit(flat, maxWidth, maxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
