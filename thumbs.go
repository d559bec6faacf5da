package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 80

// ThumbCache serves card-sized JPEG renditions of the images under dir.
// Encoded thumbnails are kept in memory until the source file changes.
type ThumbCache struct {
	mu       sync.Mutex
	dir      string
	maxWidth int
	entries  map[string]thumb
}

type thumb struct {
	data    []byte
	modTime time.Time
}

// NewThumbCache creates a ThumbCache for images in dir, scaled to at most maxWidth pixels.
func NewThumbCache(dir string, maxWidth int) *ThumbCache {
	return &ThumbCache{
		dir:      dir,
		maxWidth: maxWidth,
		entries:  make(map[string]thumb),
	}
}

// Get returns the thumbnail for name, a slash-separated path relative to the
// image directory. Names that escape the directory or do not exist return ErrNotFound.
func (t *ThumbCache) Get(name string) ([]byte, error) {
	clean := path.Clean("/" + name)
	if clean == "/" {
		return nil, ErrNotFound
	}
	full := filepath.Join(t.dir, filepath.FromSlash(clean))

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, ErrNotFound
	}

	t.mu.Lock()
	e, ok := t.entries[clean]
	t.mu.Unlock()
	if ok && e.modTime.Equal(info.ModTime()) {
		return e.data, nil
	}

	// Decoding runs unlocked; concurrent misses for one name may both
	// encode and the last write wins.
	f, err := os.Open(full)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, _, _, err := scaleImage(f, t.maxWidth)
	if err != nil {
		return nil, fmt.Errorf("thumbnail %s: %w", clean, err)
	}
	t.mu.Lock()
	t.entries[clean] = thumb{data: data, modTime: info.ModTime()}
	t.mu.Unlock()
	return data, nil
}

// scaleImage decodes an image from src, resizes it to maxWidth if wider and
// encodes it as JPEG. It returns the encoded bytes and the final dimensions.
func scaleImage(src io.Reader, maxWidth int) ([]byte, int, int, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if maxWidth > 0 && w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, 0, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), w, h, nil
}
