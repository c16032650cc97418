package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/violet/pkg/commands/options"
	"tableflip.dev/violet/pkg/runner/portability"
)

func addExport(topLevel *cobra.Command) {
	csvOut := false
	output := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the store as JSON, or the care log as CSV",
		Example: `
violet export > backup.json
violet export --csv -o care_log.csv
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := portability.Export{
				CSV:     csvOut,
				Output:  output,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&csvOut, "csv", false, "Export the care log as CSV instead of the JSON backup.")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout.")
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the store with a backup file",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a backup file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !co.Yes && !confirm("Replace all local data with "+args[0]) {
				return nil
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := portability.Import{File: args[0], Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addErase(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "erase",
		Short: "Erase all plants, care history, projects, and tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !co.Yes && !confirm("Erase all data? This cannot be undone") {
				return nil
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := portability.Erase{Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addSync(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull, reconcile, and push the remote copy now",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			r := portability.Sync{Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
