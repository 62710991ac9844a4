package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pthm/hxattrs"
	"github.com/pthm/hxattrs/lib/generator"
)

// VocabEntry is one vocabulary name as printed by the vocab command.
type VocabEntry struct {
	Name     string `json:"name"`
	Group    string `json:"group"`
	Field    string `json:"field,omitempty"`
	Reserved bool   `json:"reserved,omitempty"`
}

// ValidFormats defines the allowed vocab output formats.
var ValidFormats = []string{"text", "json"}

// NewVocabCommand creates the vocab command.
func NewVocabCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List the attribute vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := vocabEntries()
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Version int          `json:"version"`
					Names   []VocabEntry `json:"names"`
				}{hxattrs.VocabularyVersion, entries})
			case "text":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tGROUP\tFIELD")
				for _, e := range entries {
					field := e.Field
					if e.Reserved {
						field = "(reserved)"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Group, field)
				}
				return w.Flush()
			default:
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")

	return cmd
}

func vocabEntries() []VocabEntry {
	names := hxattrs.Vocabulary()
	entries := make([]VocabEntry, 0, len(names))
	for _, name := range names {
		group, _ := hxattrs.GroupOf(name)
		e := VocabEntry{Name: name, Group: group.String()}
		if hxattrs.IsReserved(name) {
			e.Reserved = true
		} else {
			e.Field = generator.FieldIdent(name)
		}
		entries = append(entries, e)
	}
	return entries
}
