package vantage

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Screenshot file formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// ScreenshotOptions controls where and how captured frames are written.
type ScreenshotOptions struct {
	Dir    string  `json:"dir"`
	Format string  `json:"format"` // FormatPNG or FormatWebP
	Scale  float64 `json:"scale"`  // output size relative to the frame; 0 keeps it
}

// screenshotSeq numbers captures so names stay unique within a process.
var screenshotSeq atomic.Uint64

// SaveScreenshot writes a w×h frame of premultiplied RGBA pixels to opts.Dir
// as <timestamp>_<seq>_<label>.<format> and returns its path. The timestamp
// has millisecond resolution. The directory is created if missing.
func SaveScreenshot(opts ScreenshotOptions, label string, w, h int, pixels []byte) (string, error) {
	if len(pixels) < 4*w*h {
		return "", fmt.Errorf("screenshot: %d bytes for %dx%d frame", len(pixels), w, h)
	}
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = FormatPNG
	}
	encode, ok := encoders[format]
	if !ok {
		return "", fmt.Errorf("screenshot: unknown format %q", opts.Format)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", opts.Dir, err)
	}

	src := &image.RGBA{Pix: pixels[:4*w*h], Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	img := unpremultiply(scaleFrame(src, opts.Scale))

	stamp := time.Now().Format("20060102_150405.000")
	seq := screenshotSeq.Add(1)
	path := filepath.Join(opts.Dir, fmt.Sprintf("%s_%04d_%s.%s", stamp, seq, sanitizeLabel(label), format))
	if err := writeImage(path, img, encode); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

var encoders = map[string]func(io.Writer, image.Image) error{
	FormatPNG: png.Encode,
	FormatWebP: func(w io.Writer, img image.Image) error {
		return nativewebp.Encode(w, img, nil)
	},
}

// scaleFrame resamples a premultiplied frame. Filtering premultiplied
// pixels keeps transparent edges from darkening.
func scaleFrame(src *image.RGBA, scale float64) *image.RGBA {
	if scale <= 0 || scale == 1 {
		return src
	}
	b := src.Bounds()
	w := max(int(float64(b.Dx())*scale+0.5), 1)
	h := max(int(float64(b.Dy())*scale+0.5), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// unpremultiply converts premultiplied RGBA to straight-alpha NRGBA.
func unpremultiply(src *image.RGBA) *image.NRGBA {
	img := image.NewNRGBA(src.Bounds())
	n := 4 * src.Bounds().Dx() * src.Bounds().Dy()
	for i := 0; i < n; i += 4 {
		r, g, b, a := src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writeImage encodes an image to a file at the given path.
func writeImage(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
