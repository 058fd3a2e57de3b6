package chart

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an image encoding
type Format string

// Supported formats
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatTIFF Format = "tiff"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
	FormatEPS  Format = "eps"
)

// ErrUnsupportedFormat is returned for unknown image formats
var ErrUnsupportedFormat = errors.New("unsupported image format")

var contentTypes = map[Format]string{
	FormatPNG:  "image/png",
	FormatJPEG: "image/jpeg",
	FormatTIFF: "image/tiff",
	FormatSVG:  "image/svg+xml",
	FormatPDF:  "application/pdf",
	FormatEPS:  "application/postscript",
}

// ParseFormat accepts a format name or file extension, with or without the dot
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	case "eps":
		return FormatEPS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath infers the format from the file extension; no extension means PNG
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatPNG, nil
	}
	return ParseFormat(ext)
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	return contentTypes[f]
}
