// Package calendar projects recurring care due dates, manual tasks, and
// project timeline milestones onto a date range, producing per-day entry
// lists ready for rendering. The projection is pure: it holds no cursor
// state and may be re-run for any range, from a full month down to a single
// day, against the same store.
package calendar

import (
	"fmt"
	"sort"

	"tableflip.dev/violet/pkg/dates"
	"tableflip.dev/violet/pkg/glyph"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/schedule"
)

// Entry is one rendered calendar event on a specific date. The back-reference
// ids let callers act on the entry afterwards, e.g. completing the manual
// task it came from.
type Entry struct {
	Source   glyph.Source
	Priority int
	Icon     string
	Title    string
	Subtitle string
	Detail   string

	PlantID     string
	ProjectID   string
	MilestoneID string
	TaskID      string
}

// Lower priority sorts first, so care events surface ahead of project and
// manual entries on the same day.
const (
	PriorityWater     = 0
	PriorityFertilize = 1
	PriorityProject   = 2
	PriorityManual    = 3
)

// Collect builds the date -> entries map for [start, end] inclusive. today
// supplies the anchor fallback for plants with no care history and no
// acquisition date. Each per-date list is sorted by (priority, title).
func Collect(s *model.Store, start, end, today string) map[string][]Entry {
	out := make(map[string][]Entry)
	add := func(date string, e Entry) {
		out[date] = append(out[date], e)
	}

	for _, t := range s.Tasks {
		if t.Date == "" || t.Date < start || t.Date > end {
			continue
		}
		subtitle := t.Notes
		if subtitle == "" {
			subtitle = "Manual task"
		}
		icon := t.Icon
		if icon == "" {
			icon = glyph.Manual.String()
		}
		add(t.Date, Entry{
			Source:   glyph.Manual,
			Priority: PriorityManual,
			Icon:     icon,
			Title:    t.Title,
			Subtitle: subtitle,
			TaskID:   t.ID,
		})
	}

	for _, p := range s.Cultivars {
		if p.WaterInterval > 0 {
			base := schedule.Anchor(p.LastWater, p.Acquired, today)
			for _, d := range dates.RecurringDates(base, p.WaterInterval, start, end) {
				add(d, Entry{
					Source:   glyph.Water,
					Priority: PriorityWater,
					Icon:     glyph.Water.String(),
					Title:    "Water " + p.Label(),
					Subtitle: fmt.Sprintf("Every %d days", p.WaterInterval),
					PlantID:  p.ID,
				})
			}
		}
		if p.FertInterval > 0 {
			base := schedule.Anchor(p.LastFert, p.Acquired, today)
			for _, d := range dates.RecurringDates(base, p.FertInterval, start, end) {
				add(d, Entry{
					Source:   glyph.Fertilize,
					Priority: PriorityFertilize,
					Icon:     glyph.Fertilize.String(),
					Title:    "Fertilize " + p.Label(),
					Subtitle: fmt.Sprintf("Every %d days", p.FertInterval),
					PlantID:  p.ID,
				})
			}
		}
	}

	for _, pr := range s.Projects {
		for _, m := range pr.Timeline {
			if m.Date == "" || m.Date < start || m.Date > end {
				continue
			}
			subtitle := m.Note
			if subtitle == "" {
				subtitle = "Timeline milestone"
			}
			add(m.Date, Entry{
				Source:      glyph.Project,
				Priority:    PriorityProject,
				Icon:        glyph.Project.String(),
				Title:       pr.Name,
				Subtitle:    subtitle,
				ProjectID:   pr.ID,
				MilestoneID: m.ID,
			})
		}
	}

	for d := range out {
		list := out[d]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Priority != list[j].Priority {
				return list[i].Priority < list[j].Priority
			}
			return list[i].Title < list[j].Title
		})
		out[d] = list
	}
	return out
}

// MonthRange returns the first and last day of the month containing the
// given date.
func MonthRange(on string) (string, string, error) {
	t, err := dates.Parse(on)
	if err != nil {
		return "", "", err
	}
	first := t.AddDate(0, 0, -(t.Day() - 1))
	last := first.AddDate(0, 1, -1)
	return dates.Format(first), dates.Format(last), nil
}
