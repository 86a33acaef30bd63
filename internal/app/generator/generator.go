package generator

//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"opsdash/internal/app/errors"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

const templatePath = "templates/opsdash.yaml.tmpl"

//go:embed templates/opsdash.yaml.tmpl
var templateFS embed.FS

// Options contains the values written into opsdash.yaml
type Options struct {
	Interval    time.Duration
	Capacity    int
	Level       string
	BusBuffer   int
	CatalogGlob string
	Watch       bool
	Debounce    time.Duration
}

// DefaultOptions returns the built-in configuration defaults
func DefaultOptions() Options {
	return Options{
		Interval:    config.DefaultTickInterval,
		Capacity:    config.DefaultBufferCapacity,
		Level:       config.DefaultLevelFilter,
		BusBuffer:   config.DefaultBusBuffer,
		CatalogGlob: "catalog/**/*.yaml",
		Watch:       true,
		Debounce:    config.DefaultCatalogDebounce,
	}
}

// Generator writes a starter opsdash.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	path string
	out  io.Writer
	log  logger.Logger
}

// NewGenerator creates a generator writing opsdash.yaml in the working directory
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		path: config.FileName,
		out:  os.Stdout,
		log:  log,
	}
}

// Generate renders the template; dryRun prints it instead of writing, force overwrites an existing file
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if !dryRun && !force {
		if _, err := os.Stat(g.path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrFileExists, g.path)
		}
	}

	content, err := render(opts)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(g.path, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", g.path)

	return nil
}

func render(opts Options) ([]byte, error) {
	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(config.FileName).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
