package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/commands/options"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/runner/care"
)

func addCare(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "care",
		Short: "Record and browse the care log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCareLog(cmd)
	addCareList(cmd)
	addCareRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addCareLog(topLevel *cobra.Command) {
	po := &options.PlantOptions{}
	do := &options.DateOptions{}
	no := &options.NotesOptions{}

	cmd := &cobra.Command{
		Use:   "log <water|fertilize>",
		Short: "Log a performed care action",
		Example: `
violet care log water --plant Boo
violet care log fertilize --plant Boo --date 2024-06-01 --notes "quarter strength"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an action: water or fertilize")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			action, err := app.ParseAction(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			date, err := do.GetDate()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := care.Log{
				Plant:   po.Plant,
				Date:    date,
				Action:  action,
				Notes:   no.Notes,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddPlantArgs(cmd, po)
	options.AddDateArgs(cmd, do)
	options.AddNotesArgs(cmd, no)
	topLevel.AddCommand(cmd)
}

func addCareList(topLevel *cobra.Command) {
	po := &options.PlantOptions{}
	ro := &options.RangeOptions{}
	io := &options.IDOptions{}
	action := ""

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List care entries, newest first",
		Example: `
violet care list
violet care list --plant Boo --action water --from 2024-01-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var act model.Action
			if action != "" {
				var err error
				act, err = app.ParseAction(action)
				if err != nil {
					return oo.HandleError(err)
				}
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := care.List{
				Plant:   po.Plant,
				Action:  act,
				From:    ro.From,
				To:      ro.To,
				ShowID:  io.ShowID,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddPlantArgs(cmd, po)
	options.AddRangeArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVarP(&action, "action", "a", "", "Filter by action: water or fertilize.")
	topLevel.AddCommand(cmd)
}

func addCareRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <entry id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a care entry",
		Example: `
violet care rm 171dff69
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a care entry id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !co.Yes && !confirm("Delete this care entry") {
				return nil
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := care.Remove{ID: strings.TrimSpace(args[0]), Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
