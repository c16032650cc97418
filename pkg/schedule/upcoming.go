package schedule

import (
	"sort"

	"tableflip.dev/violet/pkg/dates"
	"tableflip.dev/violet/pkg/model"
)

// ItemSource tags where an upcoming item came from.
type ItemSource string

const (
	SourceCare   ItemSource = "care"
	SourceManual ItemSource = "manual"
)

// UpcomingItem is one actionable row on the dashboard: either a computed
// care due item or a dated manual task.
type UpcomingItem struct {
	Source  ItemSource
	Due     string
	Overdue bool

	// Care fields, set when Source == SourceCare.
	Action model.Action
	Plant  *model.Plant

	// Task is set when Source == SourceManual.
	Task *model.Task
}

// DefaultWindow is the dashboard horizon in days when none is given.
const DefaultWindow = 14

// Upcoming merges care due items and dated manual tasks, keeps everything
// due on or before today+windowDays, and sorts ascending by due date with
// care before manual on ties. The window only bounds the future horizon:
// overdue items are always included no matter how old.
func Upcoming(s *model.Store, today string, windowDays int) []UpcomingItem {
	if windowDays <= 0 {
		windowDays = DefaultWindow
	}
	until := dates.NextDue(today, windowDays)

	items := make([]UpcomingItem, 0)
	for _, due := range CollectDue(s, today) {
		if due.Due > until {
			continue
		}
		items = append(items, UpcomingItem{
			Source:  SourceCare,
			Due:     due.Due,
			Overdue: due.Due < today,
			Action:  due.Action,
			Plant:   due.Plant,
		})
	}
	for _, t := range s.Tasks {
		if t.Date == "" || t.Date > until {
			continue
		}
		items = append(items, UpcomingItem{
			Source:  SourceManual,
			Due:     t.Date,
			Overdue: t.Date < today,
			Task:    t,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Due != items[j].Due {
			return items[i].Due < items[j].Due
		}
		return items[i].Source == SourceCare && items[j].Source == SourceManual
	})
	return items
}
