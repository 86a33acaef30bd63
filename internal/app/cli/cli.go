package cli

//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"opsdash/internal/app/catalog"
	"opsdash/internal/app/controller"
	"opsdash/internal/app/errors"
	"opsdash/internal/app/generator"
	"opsdash/internal/app/runner"
	"opsdash/internal/app/ui/dashboard"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

// Exit codes
const (
	exitSuccess = 0
	exitFailure = 1
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	args      []string
	cfg       *config.Config
	runner    runner.Runner
	ui        dashboard.UI
	generator generator.Generator
	loader    catalog.Loader
	log       logger.Logger
	out       io.Writer
	errOut    io.Writer
}

// NewCLI creates a new cli instance reading the process arguments
func NewCLI(
	cfg *config.Config,
	runner runner.Runner,
	ui dashboard.UI,
	generator generator.Generator,
	loader catalog.Loader,
	log logger.Logger,
) CLI {
	return &cli{
		args:      os.Args[1:],
		cfg:       cfg,
		runner:    runner,
		ui:        ui,
		generator: generator,
		loader:    loader,
		log:       log,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
}

// Execute parses the arguments, runs the selected command and returns the process exit code
func (c *cli) Execute() (int, error) {
	opts, err := Parse(c.args)
	if err != nil {
		if strings.HasPrefix(err.Error(), "unknown command") {
			err = fmt.Errorf("%w: %w", errors.ErrUnknownCommand, err)
		}

		return c.fail(err)
	}

	switch opts.Type {
	case CommandHelp:
		return c.handleHelp()
	case CommandVersion:
		return c.handleVersion()
	case CommandInit:
		return c.handleInit(opts)
	case CommandCatalog:
		return c.handleCatalog()
	default:
		return c.handleStream(opts)
	}
}

// handleStream runs the dashboard, or the headless runner with --no-ui
func (c *cli) handleStream(opts *Options) (int, error) {
	runOpts := controller.Options{
		Level:  opts.Level,
		Query:  opts.Query,
		Paused: opts.Paused,
	}

	ctx := context.Background()

	var err error

	if opts.NoUI {
		c.log.Debug().Msg("Streaming to stdout")
		err = c.runner.Run(ctx, runOpts)
	} else {
		c.log.Debug().Msg("Starting dashboard")
		err = c.ui.Run(ctx, runOpts)
	}

	if err != nil {
		c.log.Error().Err(err).Msg("Stream failed")
		return c.fail(err)
	}

	return exitSuccess, nil
}

// handleCatalog prints the templates the stream would draw from
func (c *cli) handleCatalog() (int, error) {
	res, err := c.loader.Load(c.cfg.Catalog.Paths)
	if err != nil {
		return c.fail(fmt.Errorf("failed to load catalog: %w", err))
	}

	source := "built-in templates"
	if len(res.Files) > 0 {
		source = strings.Join(res.Files, ", ")
	}

	fmt.Fprintln(c.out, RenderHint(fmt.Sprintf("%d templates from %s", len(res.Catalog), source)))

	for _, t := range res.Catalog {
		fmt.Fprintln(c.out, RenderTemplate(t))
	}

	return exitSuccess, nil
}

// handleInit writes or previews opsdash.yaml
func (c *cli) handleInit(opts *Options) (int, error) {
	if err := c.generator.Generate(generator.DefaultOptions(), opts.Force, opts.DryRun); err != nil {
		return c.fail(err)
	}

	if !opts.DryRun {
		fmt.Fprintf(c.out, "Created %s\n", config.FileName)
	}

	return exitSuccess, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderHelp())

	return exitSuccess, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintf(c.out, "%s v%s\n", config.AppName, config.Version)

	return exitSuccess, nil
}

// fail prints err with a usage hint and returns the failure exit code
func (c *cli) fail(err error) (int, error) {
	fmt.Fprintln(c.errOut, RenderError(err))
	fmt.Fprintln(c.errOut, RenderHint(fmt.Sprintf("Run '%s help' for usage.", config.AppName)))

	return exitFailure, err
}
