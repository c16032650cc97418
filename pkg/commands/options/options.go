// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/violet/pkg/dates"
	"tableflip.dev/violet/pkg/timeutil"
)

// PlantOptions selects a plant by id, label, or unique name fragment.
type PlantOptions struct {
	Plant string
}

func AddPlantArgs(cmd *cobra.Command, o *PlantOptions) {
	cmd.Flags().StringVarP(&o.Plant, "plant", "p", "",
		"Select a plant by id, name, or nickname.")
}

// DateOptions carries a single ISO date flag, defaulting to today.
type DateOptions struct {
	DateString string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.DateString, "date", "d", "",
		`Specify a date, example: --date="2024-01-08". Defaults to today.`)
}

func (o *DateOptions) GetDate() (string, error) {
	if o.DateString == "" {
		return dates.Today(), nil
	}
	if _, err := dates.Parse(o.DateString); err != nil {
		return "", err
	}
	return o.DateString, nil
}

// OnOptions selects the month a calendar command renders.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a month, example: --on="2024-02". Defaults to the current month.`)
}

const layoutMonth = "2006-01"

func (o *OnOptions) GetOn() (time.Time, error) {
	if o.OnString == "" {
		return time.Now(), nil
	}
	if t, err := time.ParseInLocation(layoutMonth, o.OnString, time.Local); err == nil {
		return t, nil
	}
	return dates.Parse(o.OnString)
}

// WindowOptions bounds the dashboard's future horizon.
type WindowOptions struct {
	WindowString string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.WindowString, "window", "w", timeutil.DefaultWindow,
		`Horizon to include, example: --window=2w or --window=10. Overdue items always show regardless.`)
}

// GetWindow resolves the flag to a day count.
func (o *WindowOptions) GetWindow() (int, error) {
	days, _, err := timeutil.ParseWindow(o.WindowString)
	return days, err
}

// RangeOptions filters listings by inclusive date range.
type RangeOptions struct {
	From string
	To   string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		"Earliest date to include, inclusive.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Latest date to include, inclusive.")
}

// IDOptions toggles printing entity ids alongside rows.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show ids next to each row.")
}

// ConfirmOptions skips destructive-action prompts.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Do not prompt for confirmation.")
}

// NotesOptions carries a free-text notes flag.
type NotesOptions struct {
	Notes string
}

func AddNotesArgs(cmd *cobra.Command, o *NotesOptions) {
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-text notes.")
}
