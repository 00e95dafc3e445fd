// Package imageout writes rendered noise fields to disk.
package imageout

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format names an output image encoding.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ErrUnknownFormat is returned for a format name or file extension no
// encoder handles.
var ErrUnknownFormat = errors.New("imageout: unknown image format")

// Formats lists every supported format.
var Formats = []Format{PNG, BMP, TIFF}

// ParseFormat accepts a format name in any case. "tif" is an alias for TIFF.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// WriteFile encodes img into a new file at path, replacing any existing file.
func WriteFile(path string, img image.Image, format Format) (err error) {
	format, err = ParseFormat(string(format))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageout: create %s: %w", path, err)
	}
	defer func() {
		multierr.AppendInto(&err, f.Close())
	}()

	buf := bufio.NewWriter(f)
	if err := Encode(buf, img, format); err != nil {
		return fmt.Errorf("imageout: encode %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("imageout: write %s: %w", path, err)
	}
	return nil
}
