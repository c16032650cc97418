// Package done provides the runner that completes a due care item.
package done

import (
	"context"
	"errors"

	"tableflip.dev/violet/pkg/app"
	"tableflip.dev/violet/pkg/dates"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/printers"
	"tableflip.dev/violet/pkg/schedule"
)

// Done logs the care action as performed today and reprints the plant's
// refreshed due dates.
type Done struct {
	Plant   string
	Action  model.Action
	Service *app.Service
}

func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	p, err := n.Service.GetPlant(ctx, n.Plant)
	if err != nil {
		return err
	}
	if _, err := n.Service.CompleteDue(ctx, p.ID, n.Action); err != nil {
		return err
	}

	// Show where the schedule landed.
	st, err := n.Service.Load(ctx)
	if err != nil {
		return err
	}
	today := dates.Today()
	next := make([]schedule.UpcomingItem, 0, 2)
	for _, item := range schedule.CollectDue(st, today) {
		if item.Plant.ID == p.ID {
			next = append(next, schedule.UpcomingItem{
				Source:  schedule.SourceCare,
				Due:     item.Due,
				Overdue: item.Due < today,
				Action:  item.Action,
				Plant:   item.Plant,
			})
		}
	}
	pp := printers.PrettyPrint{}
	pp.Title(p.Label())
	pp.Upcoming(next...)
	return nil
}
