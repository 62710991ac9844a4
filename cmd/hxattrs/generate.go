package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	var dryRun, watch bool

	cmd := &cobra.Command{
		Use:   "generate [packages]",
		Short: "Generate SpreadAttrs methods for props structs",
		Long: `Generate a <file>_attrs.go next to every source file declaring a struct
that embeds hxattrs.Element. Omission directives are validated against the
vocabulary; an unknown name fails generation with its file and line.

Packages are directories, "dir/..." patterns or globs such as
"components/**/*.go". Without arguments the configured packages are used.`,
		Example: `  hxattrs generate ./...
  hxattrs generate ./components/button
  hxattrs generate --dry-run ./...
  hxattrs generate --watch ./components/...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := rootOpts.generator(dryRun)
			patterns := rootOpts.patterns(args)

			if !watch {
				return gen.Generate(patterns...)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			rootOpts.logger.Info("watching for changes", "packages", patterns)
			return gen.Watch(ctx, patterns...)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be generated without writing files")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate when source files change")

	return cmd
}

// NewCleanCommand creates the clean command.
func NewCleanCommand(rootOpts *RootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean [packages]",
		Short: "Remove generated files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.generator(dryRun).Clean(rootOpts.patterns(args)...)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be removed without deleting files")

	return cmd
}
