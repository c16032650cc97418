package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/violet/pkg/commands/options"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/runner/projects"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "cross"},
		Short:   "Track hybridization projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectList(cmd)
	addProjectShow(cmd)
	addProjectAdd(cmd)
	addProjectStatus(cmd)
	addProjectParent(cmd)
	addProjectOffspring(cmd)
	addProjectTimeline(cmd)
	addProjectVar(cmd)
	addProjectRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addProjectList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := projects.List{ShowID: io.ShowID, Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addProjectShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show <project>",
		Short: "Show a project with parents, offspring, timeline, and variables",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a project")
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
			r := projects.Show{
				Project: strings.Join(args, " "),
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addProjectAdd(topLevel *cobra.Command) {
	project := model.Project{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Start a project",
		Example: `
violet project add "Frilled blue" --type goal --goal "Frilled blue standard" --start 2024-03-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a project name")
			}
			project.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := projects.Add{Project: project, Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&project.Type, "type", "goal", "Project type: goal or exploratory.")
	cmd.Flags().StringVar(&project.Goal, "goal", "", "What the cross is trying to achieve.")
	cmd.Flags().StringVar(&project.Traits, "traits", "", "Traits being selected for.")
	cmd.Flags().StringVar(&project.Notes, "notes", "", "Free-text notes.")
	cmd.Flags().StringVar(&project.StartDate, "start", "", "Start date (yyyy-mm-dd).")
	topLevel.AddCommand(cmd)
}

func addProjectStatus(topLevel *cobra.Command) {
	long := strings.Builder{}
	long.WriteString("Move a project to a new phase.\n\nPhases:\n")
	validArgs := make([]string, 0, len(model.ProjectStatuses()))
	for _, st := range model.ProjectStatuses() {
		long.WriteString("  " + string(st) + "\n")
		validArgs = append(validArgs, string(st))
	}

	cmd := &cobra.Command{
		Use:   "status <project> <phase>",
		Short: "Set a project's phase",
		Long:  long.String(),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a project and a phase")
			}
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			r := projects.Status{
				Project: args[0],
				Status:  model.ProjectStatus(args[1]),
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addProjectParent(topLevel *cobra.Command) {
	role := ""
	plantRef := ""
	notes := ""

	cmd := &cobra.Command{
		Use:   "parent <project> <name>",
		Short: "Record a cross parent",
		Example: `
violet project parent "Frilled blue" "Rob's Boolaroo" --role seed
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a project and a parent name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			parentRole := model.ParentRole(role)
			switch parentRole {
			case model.RoleSeed, model.RolePollen, model.RoleUnknown:
			default:
				return oo.HandleError(errors.New("role must be seed, pollen, or unknown"))
			}
			s, err := newService()
			if err != nil {
				return err
			}
			defer s.Flush()
			plantID := ""
			if plantRef != "" {
				p, err := s.GetPlant(cmd.Context(), plantRef)
				if err != nil {
					return oo.HandleError(err)
				}
				plantID = p.ID
			}
			r := projects.Edit{
				Project: args[0],
				Mutate: func(p *model.Project) {
					p.Parents = append(p.Parents, model.Parent{
						Name:    strings.Join(args[1:], " "),
						Role:    parentRole,
						PlantID: plantID,
						Notes:   notes,
					})
				},
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&role, "role", "unknown", "Parent role: seed, pollen, or unknown.")
	cmd.Flags().StringVar(&plantRef, "plant", "", "Link to a collection plant by id or name.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes.")
	topLevel.AddCommand(cmd)
}

func addProjectOffspring(topLevel *cobra.Command) {
	status := ""
	date := ""
	notes := ""

	cmd := &cobra.Command{
		Use:   "offspring <project> <name>",
		Short: "Record a seedling from the cross",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a project and an offspring name")
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
			r := projects.Edit{
				Project: args[0],
				Mutate: func(p *model.Project) {
					p.Offspring = append(p.Offspring, model.Offspring{
						Name:   strings.Join(args[1:], " "),
						Status: status,
						Date:   date,
						Notes:  notes,
					})
				},
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Seedling status.")
	cmd.Flags().StringVar(&date, "date", "", "Date observed (yyyy-mm-dd).")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes.")
	topLevel.AddCommand(cmd)
}

func addProjectTimeline(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	rmID := ""

	cmd := &cobra.Command{
		Use:   "timeline <project> <note>",
		Short: "Add a dated milestone; it shows on the calendar",
		Example: `
violet project timeline "Frilled blue" "First buds" --date 2024-05-20
violet project timeline "Frilled blue" --rm 171dff69
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a project")
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
			if rmID != "" {
				r := projects.TimelineRemove{
					Project: args[0],
					ID:      rmID,
					Service: s,
				}
				return oo.HandleError(r.Do(cmd.Context()))
			}
			if len(args) < 2 {
				return errors.New("requires a milestone note")
			}
			date, err := do.GetDate()
			if err != nil {
				return oo.HandleError(err)
			}
			r := projects.Timeline{
				Project: args[0],
				Date:    date,
				Note:    strings.Join(args[1:], " "),
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddDateArgs(cmd, do)
	cmd.Flags().StringVar(&rmID, "rm", "", "Remove the milestone with this id instead of adding one.")
	topLevel.AddCommand(cmd)
}

func addProjectVar(topLevel *cobra.Command) {
	value := ""
	notes := ""

	cmd := &cobra.Command{
		Use:   "var <project> <label>",
		Short: "Record an experiment variable",
		Example: `
violet project var "Frilled blue" "Light hours" --value 12
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a project and a variable label")
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
			r := projects.Edit{
				Project: args[0],
				Mutate: func(p *model.Project) {
					p.Variables = append(p.Variables, model.Variable{
						Label: strings.Join(args[1:], " "),
						Value: value,
						Notes: notes,
					})
				},
				Service: s,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Variable value.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes.")
	topLevel.AddCommand(cmd)
}

func addProjectRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <project>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a project and everything it owns",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a project")
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
			q := strings.Join(args, " ")
			p, err := s.GetProject(cmd.Context(), q)
			if err != nil {
				return oo.HandleError(err)
			}
			if !co.Yes && !confirm("Delete project "+p.Name) {
				return nil
			}
			r := projects.Remove{Project: p.ID, Service: s}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
