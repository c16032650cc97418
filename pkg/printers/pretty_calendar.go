package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/violet/pkg/calendar"
	"tableflip.dev/violet/pkg/dates"
)

// Month prints a day-per-line view of the month containing then, with the
// calendar entries for each date. Sundays are underlined and today is bold,
// matching the journal month view.
func (pp *PrettyPrint) Month(then time.Time, entries map[string][]calendar.Entry) {
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)
	faint := color.New(color.Faint)

	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local)
	pp.Title(first.Format("January 2006"))

	d := first.Weekday()
	now := time.Now()
	for i := 0; i < DaysIn(first); i++ {
		printer := p
		today := now.Month() == first.Month() && now.Year() == first.Year() && now.Day() == i+1
		if today {
			printer = b
		}
		if d == time.Sunday {
			printer = s
			if today {
				printer = bs
			}
		}
		_, _ = printer.Printf("%2d %s", i+1, d.String()[0:1])

		date := dates.Format(first.AddDate(0, 0, i))
		day := entries[date]
		for n, e := range day {
			if n > 0 {
				_, _ = p.Print("\n    ")
			}
			_, _ = p.Printf("  %s %s", e.Icon, e.Title)
			if e.Subtitle != "" {
				_, _ = faint.Printf("  %s", e.Subtitle)
			}
		}
		fmt.Println("")

		d++
		if d > time.Saturday {
			d = time.Sunday
		}
	}
	fmt.Println("")
}

// Day prints the entries for a single date.
func (pp *PrettyPrint) Day(date string, day []calendar.Entry) {
	faint := color.New(color.Faint)
	p := color.New()

	pp.Title(date)
	if len(day) == 0 {
		pp.none()
		return
	}
	for _, e := range day {
		_, _ = p.Printf("%s %s", e.Icon, e.Title)
		if e.Subtitle != "" {
			_, _ = faint.Printf("  %s", e.Subtitle)
		}
		if pp.ShowID {
			switch {
			case e.TaskID != "":
				_, _ = faint.Printf("  [task %s]", e.TaskID)
			case e.PlantID != "":
				_, _ = faint.Printf("  [plant %s]", e.PlantID)
			case e.ProjectID != "":
				_, _ = faint.Printf("  [project %s]", e.ProjectID)
			}
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// DaysIn reports the number of days in the month containing then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
