package commands

import (
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/remote"
	"tableflip.dev/violet/pkg/store"
	"tableflip.dev/violet/pkg/wizard"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "violet",
		Short: base.Wrap80("Track a plant collection: care log, schedules, and breeding projects."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				cmd.SilenceUsage = true
				return wizard.Pick(cmd, args)
			}
			return cmd.Help()
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"Pick a command and its flags from prompts.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPlant(topLevel)
	addCare(topLevel)
	addTask(topLevel)
	addProject(topLevel)
	addCal(topLevel)
	addDashboard(topLevel)
	addDone(topLevel)
	addSync(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addErase(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// newService wires config, local persistence, and the optional remote.
func newService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	var r remote.Remote
	if cfg.RemoteURL() != "" {
		r = remote.NewHTTP(cfg.RemoteURL())
	}
	return &app.Service{
		Persistence: p,
		Syncer:      remote.NewSyncer(r, cfg.SyncDebounce()),
	}, nil
}

// confirm prompts before a destructive action.
func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}
