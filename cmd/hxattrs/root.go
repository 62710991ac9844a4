package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pthm/hxattrs"
	"github.com/pthm/hxattrs/lib/generator"
)

// RootOptions holds global flags and the state they resolve to.
type RootOptions struct {
	ConfigPath string
	LogLevel   string

	config *generator.Config
	logger *slog.Logger
}

// NewRootCommand creates the root command for the hxattrs CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hxattrs",
		Short: "hxattrs - attribute composition for templ and htmx components",
		Long: `hxattrs generates the Element struct from the attribute vocabulary and a
SpreadAttrs method for every props struct that embeds it, validating
hxattrs:"omit=..." directives before any code runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", generator.DefaultConfigFile, "config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewCleanCommand(opts))
	cmd.AddCommand(NewElementCommand(opts))
	cmd.AddCommand(NewVocabCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// resolve loads the config file and builds the logger. A missing default
// config file is not an error; an explicitly named one must exist. Flags
// override file values.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	config, err := generator.LoadConfig(o.ConfigPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		config = generator.DefaultConfig()
	default:
		return err
	}

	if cmd.Flags().Changed("log-level") {
		config.LogLevel = o.LogLevel
	}
	level, err := generator.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	o.config = config
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// generator builds a generator from the resolved config.
func (o *RootOptions) generator(dryRun bool) *generator.Generator {
	return generator.New(generator.Options{
		DryRun: dryRun,
		Suffix: o.config.Suffix,
		Logger: o.logger,
	})
}

// patterns returns args, or the configured packages when args is empty.
func (o *RootOptions) patterns(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return o.config.Packages
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hxattrs version %s (vocabulary v%d)\n", version, hxattrs.VocabularyVersion)
		},
	}
}
