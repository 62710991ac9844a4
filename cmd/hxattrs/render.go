package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pthm/hxattrs"
)

// RenderInput is the YAML document read by the render command:
//
//	fields:
//	  class: btn
//	  hx-post: /save
//	attrs:
//	  class: rounded
//	  type: button
//	omit: [id]
type RenderInput struct {
	Fields map[string]string `yaml:"fields"`
	Attrs  map[string]string `yaml:"attrs"`
	Omit   []string          `yaml:"omit"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose and serialize an attribute set from YAML",
		Long: `Compose typed fields, a bag and an omission list the way a component's
SpreadAttrs does, and print the serialized attribute string.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readRenderInput(cmd, file)
			if err != nil {
				return err
			}

			attrs, err := in.Compose()
			if err != nil {
				return err
			}
			rootOpts.logger.Debug("composed", "names", attrs.Len())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), attrs.String())
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "YAML input file, or - for stdin")

	return cmd
}

func readRenderInput(cmd *cobra.Command, file string) (*RenderInput, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read render input: %w", err)
	}

	var in RenderInput
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&in); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse render input: %w", err)
	}
	return &in, nil
}

// Compose builds the element described by in and spreads it.
func (in *RenderInput) Compose() (hxattrs.Attrs, error) {
	omit, err := hxattrs.NewOmitList(in.Omit...)
	if err != nil {
		return hxattrs.Attrs{}, err
	}

	e := hxattrs.Element{Attrs: hxattrs.FromMap(in.Attrs)}
	for name, value := range in.Fields {
		if !e.SetField(name, value) {
			return hxattrs.Attrs{}, fmt.Errorf("fields: %q is not a typed field; set it under attrs", name)
		}
	}
	return e.Spread(omit), nil
}
