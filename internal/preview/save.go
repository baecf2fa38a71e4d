package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// ErrUnsupportedFormat is returned by Save for extensions other than
// .webp and .png.
var ErrUnsupportedFormat = errors.New("preview: unsupported image format")

// Save writes img to path, encoding by extension.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".webp" && ext != ".png" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".png":
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	return f.Close()
}
