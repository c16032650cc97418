// Package schedule computes per-plant care due dates and the upcoming /
// overdue dashboard view. Everything here is a pure function over the store;
// ordering is the view's concern, not the calculator's.
package schedule

import (
	"tableflip.dev/violet/pkg/dates"
	"tableflip.dev/violet/pkg/model"
)

// DueItem is one computed next-due care action for a plant.
type DueItem struct {
	Action model.Action
	Plant  *model.Plant
	Due    string
}

// Anchor picks the base date a recurrence is computed from: the last logged
// care date, else the acquisition date, else today.
func Anchor(last, acquired, today string) string {
	if last != "" {
		return last
	}
	if acquired != "" {
		return acquired
	}
	return today
}

// CollectDue computes the next watering and fertilizing due date for every
// plant. A non-positive interval disables care tracking for that action; the
// plant then contributes no item for it. The result is unsorted.
func CollectDue(s *model.Store, today string) []DueItem {
	items := make([]DueItem, 0, len(s.Cultivars)*2)
	for _, p := range s.Cultivars {
		if p.WaterInterval > 0 {
			base := Anchor(p.LastWater, p.Acquired, today)
			items = append(items, DueItem{
				Action: model.Watered,
				Plant:  p,
				Due:    dates.NextDue(base, p.WaterInterval),
			})
		}
		if p.FertInterval > 0 {
			base := Anchor(p.LastFert, p.Acquired, today)
			items = append(items, DueItem{
				Action: model.Fertilized,
				Plant:  p,
				Due:    dates.NextDue(base, p.FertInterval),
			})
		}
	}
	return items
}
