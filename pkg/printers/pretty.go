package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/violet/pkg/glyph"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/schedule"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Plants renders the collection table.
func (pp *PrettyPrint) Plants(plants ...*model.Plant) {
	if len(plants) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Plant"), glyph.Bold("Location"), glyph.Bold("Water"), glyph.Bold("Fert"), glyph.Bold("Last water"), glyph.Bold("Last fert"))
	} else {
		tbl.AddRow(glyph.Bold("Plant"), glyph.Bold("Location"), glyph.Bold("Water"), glyph.Bold("Fert"), glyph.Bold("Last water"), glyph.Bold("Last fert"))
	}
	for _, p := range plants {
		label := p.Label()
		if p.Favorite {
			label = "★ " + label
		}
		water := "off"
		if p.WaterInterval > 0 {
			water = fmt.Sprintf("%dd", p.WaterInterval)
		}
		fert := "off"
		if p.FertInterval > 0 {
			fert = fmt.Sprintf("%dd", p.FertInterval)
		}
		if pp.ShowID {
			tbl.AddRow(p.ID, label, p.Location, water, fert, p.LastWater, p.LastFert)
		} else {
			tbl.AddRow(label, p.Location, water, fert, p.LastWater, p.LastFert)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PlantDetail renders one plant's full record.
func (pp *PrettyPrint) PlantDetail(p *model.Plant) {
	if p == nil {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	row := func(k, v string) {
		if v != "" {
			tbl.AddRow(glyph.Bold(k), v)
		}
	}
	row("Cultivar", p.CultivarName)
	row("Nickname", p.Nickname)
	row("Hybridizer", p.Hybridizer)
	row("Year", p.Year)
	row("Blossom", p.Blossom)
	row("Color", p.Color)
	row("Leaf", p.Leaf)
	row("Variegation", p.Variegation)
	row("Pot", p.Pot)
	row("Location", p.Location)
	row("Acquired", p.Acquired)
	row("Source", p.Source)
	if p.WaterInterval > 0 {
		row("Watering", fmt.Sprintf("every %d days", p.WaterInterval))
	}
	if p.FertInterval > 0 {
		row("Fertilizing", fmt.Sprintf("every %d days", p.FertInterval))
	}
	row("Fertilizer NPK", p.FertilizerNPK)
	row("Fertilizer method", p.FertilizerMethod)
	row("Last watered", p.LastWater)
	row("Last fertilized", p.LastFert)
	row("Notes", p.Notes)
	if p.Favorite {
		row("Favorite", "★")
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// CareLog renders care entries; labelFor resolves plant labels and may
// return "" for entries whose plant was deleted.
func (pp *PrettyPrint) CareLog(labelFor func(string) string, entries ...*model.CareEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Date"), glyph.Bold("Plant"), glyph.Bold("Action"), glyph.Bold("Notes"))
	} else {
		tbl.AddRow(glyph.Bold("Date"), glyph.Bold("Plant"), glyph.Bold("Action"), glyph.Bold("Notes"))
	}
	for _, e := range entries {
		label := labelFor(e.CultivarID)
		if label == "" {
			label = "—"
		}
		if pp.ShowID {
			tbl.AddRow(e.ID, e.Date, label, string(e.Action), e.Notes)
		} else {
			tbl.AddRow(e.Date, label, string(e.Action), e.Notes)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Upcoming renders the dashboard list, overdue items in red.
func (pp *PrettyPrint) Upcoming(items ...schedule.UpcomingItem) {
	if len(items) == 0 {
		pp.none()
		return
	}
	normal := color.New()
	late := color.New(color.FgRed)
	faint := color.New(color.Faint)

	for _, it := range items {
		printer := normal
		suffix := ""
		if it.Overdue {
			printer = late
			suffix = " · overdue"
		}
		switch it.Source {
		case schedule.SourceCare:
			icon := glyph.Water
			verb := "Water"
			if it.Action == model.Fertilized {
				icon = glyph.Fertilize
				verb = "Fertilize"
			}
			_, _ = printer.Printf("%s %s %s", icon, verb, it.Plant.Label())
			if pp.ShowID {
				_, _ = faint.Printf("  [%s]", it.Plant.ID)
			}
		case schedule.SourceManual:
			_, _ = printer.Printf("%s %s", glyph.Manual, it.Task.Title)
			if pp.ShowID {
				_, _ = faint.Printf("  [%s]", it.Task.ID)
			}
		}
		_, _ = faint.Printf("  %s%s\n", it.Due, suffix)
	}
	fmt.Println("")
}

// Tasks renders manual tasks.
func (pp *PrettyPrint) Tasks(tasks ...*model.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Date"), glyph.Bold("Task"), glyph.Bold("Notes"))
	} else {
		tbl.AddRow(glyph.Bold("Date"), glyph.Bold("Task"), glyph.Bold("Notes"))
	}
	for _, t := range tasks {
		title := t.Title
		if t.Icon != "" {
			title = t.Icon + " " + title
		}
		if pp.ShowID {
			tbl.AddRow(t.ID, t.Date, title, t.Notes)
		} else {
			tbl.AddRow(t.Date, title, t.Notes)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Projects renders the project summary table.
func (pp *PrettyPrint) Projects(projects ...*model.Project) {
	if len(projects) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(glyph.Bold("ID"), glyph.Bold("Project"), glyph.Bold("Status"), glyph.Bold("Started"), glyph.Bold("Parents"), glyph.Bold("Offspring"))
	} else {
		tbl.AddRow(glyph.Bold("Project"), glyph.Bold("Status"), glyph.Bold("Started"), glyph.Bold("Parents"), glyph.Bold("Offspring"))
	}
	for _, p := range projects {
		if pp.ShowID {
			tbl.AddRow(p.ID, p.Name, string(p.Status), p.StartDate, len(p.Parents), len(p.Offspring))
		} else {
			tbl.AddRow(p.Name, string(p.Status), p.StartDate, len(p.Parents), len(p.Offspring))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// ProjectDetail renders a project with its owned collections.
func (pp *PrettyPrint) ProjectDetail(p *model.Project) {
	if p == nil {
		pp.none()
		return
	}
	faint := color.New(color.Faint)
	plain := color.New()

	pp.Title(fmt.Sprintf("%s %s", glyph.Project, p.Name))
	_, _ = faint.Printf("%s project · %s", p.Type, p.Status)
	if p.StartDate != "" {
		_, _ = faint.Printf(" · started %s", p.StartDate)
	}
	fmt.Println("")
	if p.Goal != "" {
		_, _ = plain.Printf("Goal: %s\n", p.Goal)
	}
	if p.Traits != "" {
		_, _ = plain.Printf("Traits: %s\n", p.Traits)
	}
	if p.Results != "" {
		_, _ = plain.Printf("Results: %s\n", p.Results)
	}
	if p.Notes != "" {
		_, _ = plain.Printf("Notes: %s\n", p.Notes)
	}

	if len(p.Parents) > 0 {
		pp.NewLine()
		pp.Title("Parents")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, par := range p.Parents {
			tbl.AddRow(par.Name, string(par.Role), par.Notes)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
	if len(p.Offspring) > 0 {
		pp.NewLine()
		pp.Title("Offspring")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, off := range p.Offspring {
			tbl.AddRow(off.Name, off.Status, off.Date, off.Notes)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
	if len(p.Timeline) > 0 {
		pp.NewLine()
		pp.Title("Timeline")
		for _, m := range p.Timeline {
			_, _ = faint.Printf("%s  ", m.Date)
			_, _ = plain.Printf("%s", m.Note)
			if pp.ShowID {
				_, _ = faint.Printf("  [%s]", m.ID)
			}
			fmt.Println("")
		}
	}
	if len(p.Variables) > 0 {
		pp.NewLine()
		pp.Title("Variables")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, v := range p.Variables {
			tbl.AddRow(v.Label, v.Value, v.Notes)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
	pp.NewLine()
}
