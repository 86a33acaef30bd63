package cli

import (
	"github.com/spf13/cobra"

	"opsdash/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandStream CommandType = iota
	CommandCatalog
	CommandInit
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	NoUI   bool
	Level  string
	Query  string
	Paused bool
	Force  bool
	DryRun bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	if args == nil {
		args = []string{}
	}

	result := &Options{
		Type: CommandStream,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildStreamCommand(result),
		buildCatalogCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A terminal operations dashboard with a simulated live log stream",
		Long: `opsdash streams simulated service logs into a bounded buffer
that can be filtered by level and text, paused, resumed and cleared.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandStream
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Stream to stdout without the TUI")
	cmd.PersistentFlags().StringVarP(&result.Level, "level", "L", "", "Level filter: ALL, INFO, WARN or ERROR")
	cmd.PersistentFlags().StringVarP(&result.Query, "query", "q", "", "Only show messages containing this text")
	cmd.PersistentFlags().BoolVar(&result.Paused, "paused", false, "Start with the stream paused")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildStreamCommand creates the stream subcommand
func buildStreamCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stream",
		Aliases: []string{"s"},
		Short:   "Stream simulated logs (default)",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandStream
		},
	}

	return cmd
}

// buildCatalogCommand creates the catalog subcommand
func buildCatalogCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"c"},
		Short:   "Print the message templates the stream draws from",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandCatalog
		},
	}

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate opsdash.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVarP(&result.Force, "force", "f", false, "Overwrite an existing opsdash.yaml")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
