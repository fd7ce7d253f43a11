package design

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/edsrzf/mmap-go"
)

// Document is the top-level structure of an exported design document.
type Document struct {
	Name    string   `json:"name"`
	Version string   `json:"version,omitempty"`
	Root    *Element `json:"root"`
}

// LoadDocument reads and decodes a design document from disk. Large exports
// are memory-mapped; if mmap fails the loader falls back to os.ReadFile.
func LoadDocument(path string, log *slog.Logger) (*Document, error) {
	if log == nil {
		log = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %q: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat document %q: %w", path, err)
	}
	if stat.Size() == 0 {
		return nil, fmt.Errorf("document %q is empty", path)
	}

	data, mapped, err := mapOrRead(f, path, log)
	if err != nil {
		return nil, err
	}
	if mapped != nil {
		defer mapped.Unmap()
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", path, err)
	}
	return doc, nil
}

func mapOrRead(f *os.File, path string, log *slog.Logger) ([]byte, *mmap.MMap, error) {
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err == nil {
		return m, &m, nil
	}
	log.Warn("mmap failed, using fallback", "file", path, "error", err)
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, nil, fmt.Errorf("read document %q: %w", path, readErr)
	}
	return data, nil, nil
}

// DecodeDocument parses document JSON and normalizes element kinds. Unknown
// fields are rejected so malformed host exports fail at the boundary instead
// of surfacing as missing attributes downstream.
func DecodeDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("decode document: missing root element")
	}
	normalizeKinds(doc.Root)
	return &doc, nil
}

func normalizeKinds(root *Element) {
	w := Walker{MaxDepth: 1 << 16}
	w.Walk(root, func(el *Element, _ int) bool {
		el.Kind = ParseKind(string(el.Kind))
		return true
	})
}

// DiscoverDocuments walks rootDir for document files matching the include
// globs, skipping excluded paths. Patterns use doublestar syntax relative to
// rootDir.
func DiscoverDocuments(rootDir string, includes, excludes []string) ([]string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}
	if len(includes) == 0 {
		includes = []string{"**/*.json"}
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		relPath, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range excludes {
			if ok, _ := doublestar.PathMatch(pattern, relPath); ok {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if d.IsDir() {
			return nil
		}
		for _, pattern := range includes {
			if ok, _ := doublestar.PathMatch(pattern, relPath); ok {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
