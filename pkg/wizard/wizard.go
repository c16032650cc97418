package wizard

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Pick walks the command tree with a fuzzy select until a leaf command
// is chosen, prompts for its arguments and flags, then runs it.
func Pick(cmd *cobra.Command, args []string) error {
	var subcommands []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		subcommands = append(subcommands, c)
	}
	if len(subcommands) == 0 {
		return run(cmd, args)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "{{ .Use | bold }}",
	}

	searcher := func(input string, index int) bool {
		c := subcommands[index]
		name := strings.ToLower(c.Name() + c.Short)
		return strings.Contains(name, strings.ToLower(strings.TrimSpace(input)))
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Commands",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopWriteCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return err
	}

	next := subcommands[i]
	if next.HasSubCommands() {
		return Pick(next, args)
	}
	return leaf(next, args)
}

// leaf gathers positional arguments and flag values for a command that
// has no further subcommands, then runs it.
func leaf(cmd *cobra.Command, args []string) error {
	if cmd.Args != nil && len(args) == 0 {
		extra, err := promptArgs(cmd)
		if err != nil {
			return err
		}
		args = append(args, extra...)
	}

	flagArgs, err := promptFlags(cmd)
	if err != nil {
		return err
	}
	return run(cmd, append(args, flagArgs...))
}

func run(cmd *cobra.Command, args []string) error {
	if err := cmd.Flags().Parse(args); err != nil {
		return err
	}
	rest := cmd.Flags().Args()
	if cmd.Args != nil {
		if err := cmd.Args(cmd, rest); err != nil {
			return err
		}
	}
	if cmd.RunE != nil {
		return cmd.RunE(cmd, rest)
	}
	if cmd.Run != nil {
		cmd.Run(cmd, rest)
	}
	return nil
}

// promptArgs asks for the command's positional arguments as one line.
func promptArgs(cmd *cobra.Command) ([]string, error) {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Arguments for %q", cmd.Use),
	}
	line, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

// promptFlags offers the command's flags in a select loop. Choosing the
// run sentinel ends the loop.
func promptFlags(cmd *cobra.Command) ([]string, error) {
	fs := []*pflag.Flag{{
		Name:   "Run it",
		Hidden: true,
		Value:  &runSentinel{},
	}}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		fs = append(fs, f)
	})
	if len(fs) == 1 {
		return nil, nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }}",
		Active:   "➜ {{ if eq .Value.Type \"run\" }}{{ .Name | bold | green }}{{ else }}{{ .Name | bold }} {{ .Usage | cyan }}{{ end }}",
		Inactive: "  {{ if eq .Value.Type \"run\" }}{{ .Name | green }}{{ else }}{{ .Name }} {{ .Usage | faint }}{{ end }}",
		Selected: "{{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(fs[index].Name)
		return strings.Contains(name, strings.ToLower(strings.TrimSpace(input)))
	}

	var out []string
	index := 0
	for {
		prompt := promptui.Select{
			HideHelp:  true,
			Label:     "Flags",
			Items:     fs,
			Templates: templates,
			Size:      10,
			CursorPos: index,
			Searcher:  searcher,
			Stdin:     io.NopCloser(cmd.InOrStdin()),
			Stdout:    nopWriteCloser{cmd.OutOrStdout()},
		}

		i, _, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		index = i
		f := fs[i]

		switch t := f.Value.Type(); t {
		case "run":
			return out, nil
		case "bool":
			v, err := promptFlagBool(f)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		default:
			v, err := promptFlagString(f)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
}

type runSentinel struct{}

func (*runSentinel) String() string   { return "run" }
func (*runSentinel) Set(string) error { return nil }
func (*runSentinel) Type() string     { return "run" }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
