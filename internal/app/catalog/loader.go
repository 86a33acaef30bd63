package catalog

//go:generate mockgen -source=loader.go -destination=loader_mock.go -package=catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/titanous/json5"
	"go.yaml.in/yaml/v3"

	"opsdash/internal/app/errors"
	"opsdash/internal/app/stream"
)

// Supported catalog file extensions
const (
	extYAML  = ".yaml"
	extYML   = ".yml"
	extJSON  = ".json"
	extJSON5 = ".json5"
)

// Result is a loaded catalog together with the files it came from
type Result struct {
	Catalog stream.Catalog
	Files   []string
}

// Loader resolves catalog globs and parses the matching files
type Loader interface {
	Load(paths []string) (Result, error)
	Root() string
}

// loader implements the Loader interface
type loader struct {
	root string
}

// file is the on-disk catalog shape shared by YAML and JSON5
type file struct {
	Templates []template `yaml:"templates" json:"templates"`
}

type template struct {
	Level   string `yaml:"level" json:"level"`
	Message string `yaml:"message" json:"message"`
}

// NewLoader creates a loader resolving globs against the working directory
func NewLoader() Loader {
	return NewLoaderAt(".")
}

// NewLoaderAt creates a loader resolving globs against root
func NewLoaderAt(root string) Loader {
	return &loader{root: root}
}

// Root returns the directory globs are resolved against
func (l *loader) Root() string {
	return l.root
}

// Load returns the built-in catalog when paths is empty, otherwise the templates of every matching file
func (l *loader) Load(paths []string) (Result, error) {
	if len(paths) == 0 {
		return Result{Catalog: stream.DefaultCatalog()}, nil
	}

	m, err := NewMatcher(paths)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", errors.ErrInvalidCatalogGlob, err)
	}

	files, err := l.resolve(m)
	if err != nil {
		return Result{}, err
	}

	if len(files) == 0 {
		return Result{}, fmt.Errorf("%w: %s", errors.ErrNoCatalogFiles, strings.Join(paths, ", "))
	}

	catalog := make(stream.Catalog, 0)

	for _, name := range files {
		templates, err := l.parseFile(name)
		if err != nil {
			return Result{}, err
		}

		catalog = append(catalog, templates...)
	}

	if err := catalog.Validate(); err != nil {
		return Result{}, err
	}

	return Result{Catalog: catalog, Files: files}, nil
}

// resolve walks root and returns the sorted relative paths accepted by m
func (l *loader) resolve(m Matcher) ([]string, error) {
	files := make([]string, 0)

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != l.root && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}

		if m.Match(rel) {
			files = append(files, filepath.ToSlash(rel))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadCatalog, err)
	}

	sort.Strings(files)

	return files, nil
}

// parseFile decodes one catalog file according to its extension
func (l *loader) parseFile(name string) (stream.Catalog, error) {
	data, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrFailedToReadCatalog, name, err)
	}

	var f file

	switch strings.ToLower(filepath.Ext(name)) {
	case extYAML, extYML:
		err = yaml.Unmarshal(data, &f)
	case extJSON, extJSON5:
		err = json5.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedCatalog, name)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrFailedToReadCatalog, name, err)
	}

	catalog := make(stream.Catalog, 0, len(f.Templates))

	for i, t := range f.Templates {
		level, err := stream.ParseLevel(t.Level)
		if err != nil {
			return nil, fmt.Errorf("%s: template %d: %w", name, i, err)
		}

		tmpl := stream.Template{Level: level, Message: t.Message}
		if err := tmpl.Validate(); err != nil {
			return nil, fmt.Errorf("%s: template %d: %w", name, i, err)
		}

		catalog = append(catalog, tmpl)
	}

	return catalog, nil
}

// shouldSkipDir returns true if the directory should not be searched or watched
func shouldSkipDir(name string) bool {
	skip := []string{".git", "node_modules", "vendor", ".idea", ".vscode"}

	for _, s := range skip {
		if name == s {
			return true
		}
	}

	return false
}
