package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/violet/pkg/commands/options"
	"tableflip.dev/violet/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	oOn := &options.OnOptions{}
	day := ""

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Show care due-dates, tasks, and project milestones on a calendar",
		Example: `
violet cal
violet cal --on 2024-02
violet cal --day 2024-01-08
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			on, err := oOn.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := cal.Cal{
				On:      on,
				Day:     day,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, oOn)
	cmd.Flags().StringVar(&day, "day", "", `Show a single day, example: --day="2024-01-08".`)
	topLevel.AddCommand(cmd)
}
