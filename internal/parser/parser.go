package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/calloutmd/internal/mdtree"
)

// Parser converts raw document bytes into a document tree.
type Parser interface {
	Parse(r io.Reader, path string) (*mdtree.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdx":      true,
}

var markdown = NewMarkdownParser()

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	if !IsSupportedExtension(filename) {
		return nil, fmt.Errorf("unsupported file extension: %s", strings.ToLower(filepath.Ext(filename)))
	}
	return markdown, nil
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Parse parses Markdown source with the shared parser.
func Parse(src []byte, path string) *mdtree.Document {
	return markdown.ParseBytes(src, path)
}
