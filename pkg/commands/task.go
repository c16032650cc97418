package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/violet/pkg/commands/options"
	"tableflip.dev/violet/pkg/runner/tasks"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage manual one-off tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskList(cmd)
	addTaskDone(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	no := &options.NotesOptions{}
	icon := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a manual task",
		Example: `
violet task add "Repot the minis" --date 2024-06-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := do.GetDate()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := tasks.Add{
				Title:   strings.Join(args, " "),
				Date:    date,
				Icon:    icon,
				Notes:   no.Notes,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddNotesArgs(cmd, no)
	cmd.Flags().StringVar(&icon, "icon", "", "Display glyph for the task.")
	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List manual tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := tasks.List{ShowID: io.ShowID, Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <task id>",
		Aliases: []string{"complete", "rm"},
		Short:   "Complete a task, deleting it",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := tasks.Done{ID: strings.TrimSpace(args[0]), Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
