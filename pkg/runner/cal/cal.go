// Package cal provides the calendar projection runner.
package cal

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/calendar"
	"tableflip.dev/violet/pkg/dates"
	"tableflip.dev/violet/pkg/printers"
)

// Cal renders the merged event calendar: a full month, or a single day when
// Day is set. Both views run the same projection over a different range.
type Cal struct {
	On      time.Time
	Day     string
	Service *app.Service
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not render, no service")
	}
	today := dates.Today()
	pp := printers.PrettyPrint{}

	if n.Day != "" {
		if _, err := dates.Parse(n.Day); err != nil {
			return err
		}
		entries, err := n.Service.Calendar(ctx, n.Day, n.Day, today)
		if err != nil {
			return err
		}
		pp.Day(n.Day, entries[n.Day])
		return nil
	}

	on := n.On
	if on.IsZero() {
		on = time.Now()
	}
	start, end, err := calendar.MonthRange(dates.Format(on))
	if err != nil {
		return err
	}
	entries, err := n.Service.Calendar(ctx, start, end, today)
	if err != nil {
		return err
	}
	pp.Month(on, entries)
	return nil
}
