package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io/fs"
	"math"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"pkt.systems/flyer"
)

type imageAsset struct {
	data       []byte
	imageType  string
	width      int
	height     int
	source     string
	transcoded bool
}

// loadImage returns nil without error when the element has no image
// available.
func loadImage(el flyer.ImageElement, maxPixels int) (*imageAsset, error) {
	data, source, err := readImageSource(el)
	if err != nil || data == nil {
		return nil, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode %s: invalid dimensions %dx%d", source, cfg.Width, cfg.Height)
	}
	asset := &imageAsset{width: cfg.Width, height: cfg.Height, source: source}
	fits := maxPixels <= 0 || (cfg.Width <= maxPixels && cfg.Height <= maxPixels)
	switch {
	case format == "jpeg" && fits:
		asset.data, asset.imageType = data, "JPG"
		return asset, nil
	case format == "png" && fits && pngPassThrough(data):
		asset.data, asset.imageType = data, "PNG"
		return asset, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	dst := toNRGBA(img, maxPixels)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode %s: %w", source, err)
	}
	asset.data = buf.Bytes()
	asset.imageType = "PNG"
	asset.width, asset.height = dst.Bounds().Dx(), dst.Bounds().Dy()
	asset.transcoded = true
	return asset, nil
}

func readImageSource(el flyer.ImageElement) ([]byte, string, error) {
	if el.Path != "" {
		data, err := os.ReadFile(el.Path)
		if err == nil {
			return data, el.Path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read %s: %w", el.Path, err)
		}
	}
	if len(el.Data) > 0 {
		return el.Data, el.Name + " (generated)", nil
	}
	return nil, "", nil
}

// pngPassThrough reports whether the PDF writer can embed the PNG as-is. It
// rejects 16-bit samples and Adam7 interlacing.
func pngPassThrough(data []byte) bool {
	const (
		bitDepthOffset  = 24
		interlaceOffset = 28
	)
	if len(data) <= interlaceOffset {
		return false
	}
	return data[bitDepthOffset] <= 8 && data[interlaceOffset] == 0
}

// toNRGBA copies src into an 8-bit image no larger than maxPixels on either
// side, preserving the aspect ratio.
func toNRGBA(src image.Image, maxPixels int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxPixels > 0 && (w > maxPixels || h > maxPixels) {
		scale := math.Min(float64(maxPixels)/float64(w), float64(maxPixels)/float64(h))
		dw := max(1, int(math.Round(float64(w)*scale)))
		dh := max(1, int(math.Round(float64(h)*scale)))
		dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		return dst
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
