package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/violet/pkg/commands/options"
	"tableflip.dev/violet/pkg/runner/dashboard"
)

func addDashboard(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "due"},
		Short:   "List upcoming and overdue care items and tasks",
		Example: `
violet dashboard
violet dashboard --window 2w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			window, err := wo.GetWindow()
			if err != nil {
				return err
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := dashboard.Dashboard{
				Window:  window,
				ShowID:  io.ShowID,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
