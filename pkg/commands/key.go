package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"tableflip.dev/violet/pkg/glyph"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the calendar symbol legend",
		Run: func(_ *cobra.Command, _ []string) {
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
			for _, g := range glyph.DefaultGlyphs() {
				tbl.AddRow(g.Key, g.Symbol, g.Meaning)
			}
			_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nSources")))
			_, _ = fmt.Fprintln(color.Output, tbl)
		},
	}

	topLevel.AddCommand(cmd)
}
