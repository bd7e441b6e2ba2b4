// Package imagefile validates a locally selected image file and builds the
// preview shown in the editor before any upload happens.
package imagefile

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	// Decoders for preview dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// MaxSize is the upload cap enforced client-side.
const MaxSize = 5 << 20 // 5 MB

// Validation failures. Both leave any previous selection untouched.
var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("image exceeds the 5 MB limit")
)

// Preview is a validated, not-yet-uploaded image selection.
type Preview struct {
	Path string
	Name string
	MIME string
	Size int64
	// Width/Height are 0 when the format is an image but not decodable
	// locally; the preview still shows path, type, and size.
	Width  int
	Height int
	Data   []byte
}

// Select reads and validates the file at path. The declared media type must
// be an image and the size must not exceed MaxSize.
func Select(path string) (*Preview, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxSize {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%s (%s): %w", filepath.Base(path), mime, ErrNotImage)
	}

	p := &Preview{
		Path: path,
		Name: filepath.Base(path),
		MIME: mime,
		Size: info.Size(),
		Data: data,
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		p.Width = cfg.Width
		p.Height = cfg.Height
	}
	return p, nil
}

// Describe renders a one-line summary for the form ("logo.png image/png 34 KB 400x200").
func (p *Preview) Describe() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString(" ")
	b.WriteString(p.MIME)
	b.WriteString(" ")
	b.WriteString(humanSize(p.Size))
	if p.Width > 0 && p.Height > 0 {
		fmt.Fprintf(&b, " %dx%d", p.Width, p.Height)
	}
	return b.String()
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%d KB", n/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
