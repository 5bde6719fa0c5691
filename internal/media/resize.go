package media

import (
	"fmt"
	"math"
	"os"

	"github.com/disintegration/imaging"
)

// ResizeOptions target size. ScalePercent wins over Width/Height.
type ResizeOptions struct {
	Width        int
	Height       int
	ScalePercent int
}

// IsZero reports whether no resize was requested
func (o ResizeOptions) IsZero() bool {
	return o.Width <= 0 && o.Height <= 0 && o.ScalePercent <= 0
}

// Resize rewrites the image at path in place.
// Scale percent scales both sides (min 1px). Width and height together crop
// to fit around the centre; a single side resizes proportionally.
// The result is written to <path>.tmp and renamed over the original.
func Resize(path string, opts ResizeOptions) error {
	if opts.IsZero() {
		return nil
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("detect format: %w", err)
	}

	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}

	var dst = src
	switch {
	case opts.ScalePercent > 0:
		b := src.Bounds()
		w := scale(b.Dx(), opts.ScalePercent)
		h := scale(b.Dy(), opts.ScalePercent)
		dst = imaging.Resize(src, w, h, imaging.Lanczos)
	case opts.Width > 0 && opts.Height > 0:
		dst = imaging.Fill(src, opts.Width, opts.Height, imaging.Center, imaging.Lanczos)
	default:
		dst = imaging.Resize(src, max(opts.Width, 0), max(opts.Height, 0), imaging.Lanczos)
	}

	tmp := path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if err := imaging.Encode(out, dst, format); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode image: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace image: %w", err)
	}
	return nil
}

func scale(side, percent int) int {
	v := int(math.Round(float64(side) * float64(percent) / 100))
	if v < 1 {
		return 1
	}
	return v
}
