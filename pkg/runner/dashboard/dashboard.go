// Package dashboard provides the upcoming/overdue task list runner.
package dashboard

import (
	"context"
	"errors"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/dates"
	"tableflip.dev/violet/pkg/printers"
)

// Dashboard prints every care item and dated manual task due within the
// window, plus everything overdue regardless of the window.
type Dashboard struct {
	Window  int
	ShowID  bool
	Service *app.Service
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not render, no service")
	}
	today := dates.Today()
	items, err := n.Service.Dashboard(ctx, today, n.Window)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Upcoming", len(items))
	pp.Upcoming(items...)
	return nil
}
