package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/hxattrs/lib/generator"
)

// NewElementCommand creates the element command.
func NewElementCommand(rootOpts *RootOptions) *cobra.Command {
	var output, pkg string

	cmd := &cobra.Command{
		Use:   "element",
		Short: "Generate the Element struct from the vocabulary",
		Long: `Generate the Element struct with one typed field per vocabulary name.
Use -o - to print the code instead of writing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = rootOpts.config.Element.Output
			}
			if !cmd.Flags().Changed("package") {
				pkg = rootOpts.config.Element.Package
			}

			if output == "-" {
				code, err := generator.GenerateElement(pkg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(code)
				return err
			}
			return rootOpts.generator(false).WriteElement(output, pkg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "element_gen.go", "output file, or - for stdout")
	cmd.Flags().StringVarP(&pkg, "package", "p", "hxattrs", "package name of the generated file")

	return cmd
}
