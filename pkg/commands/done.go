package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/runner/done"
)

func addDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <water|fertilize> <plant>",
		Aliases: []string{"complete"},
		Short:   "Mark a due care item done, logging it for today",
		Example: `
violet done water Boo
violet done fertilize "Rob's Boolaroo"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an action and a plant")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			action, err := app.ParseAction(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := done.Done{
				Plant:   strings.Join(args[1:], " "),
				Action:  action,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
