package calendar

import (
	"reflect"
	"testing"

	"tableflip.dev/violet/pkg/glyph"
	"tableflip.dev/violet/pkg/model"
)

func fixtureStore() *model.Store {
	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "p1",
		CultivarName:  "Optimara Little Maya",
		WaterInterval: 7,
		LastWater:     "2024-01-01",
		FertInterval:  30,
		LastFert:      "2024-01-01",
	})
	s.Tasks = append(s.Tasks, &model.Task{
		ID:    "t1",
		Title: "Set up grow lights",
		Date:  "2024-01-08",
	})
	s.Projects = append(s.Projects, &model.Project{
		ID:     "pr1",
		Name:   "Maya x Chimera",
		Status: model.StatusPollinated,
		Timeline: []model.Milestone{
			{ID: "m1", Date: "2024-01-08", Note: "Sowed seed"},
		},
	})
	return s
}

func TestCollectMergesAllSources(t *testing.T) {
	got := Collect(fixtureStore(), "2024-01-01", "2024-01-31", "2024-01-01")

	day := got["2024-01-08"]
	if len(day) != 3 {
		t.Fatalf("expected 3 entries on Jan 8, got %d", len(day))
	}
	// Sorted by priority: water, then project milestone, then manual task.
	if day[0].Source != glyph.Water {
		t.Fatalf("first entry %v, want water", day[0].Source)
	}
	if day[1].Source != glyph.Project {
		t.Fatalf("second entry %v, want project", day[1].Source)
	}
	if day[2].Source != glyph.Manual {
		t.Fatalf("third entry %v, want manual", day[2].Source)
	}

	if fert := got["2024-01-31"]; len(fert) != 1 || fert[0].Source != glyph.Fertilize {
		t.Fatalf("Jan 31 should carry the fertilize entry, got %v", fert)
	}
}

func TestCollectEntriesCarryBackReferences(t *testing.T) {
	got := Collect(fixtureStore(), "2024-01-01", "2024-01-31", "2024-01-01")
	for _, e := range got["2024-01-08"] {
		switch e.Source {
		case glyph.Water:
			if e.PlantID != "p1" {
				t.Fatalf("water entry plant id %q", e.PlantID)
			}
		case glyph.Project:
			if e.ProjectID != "pr1" || e.MilestoneID != "m1" {
				t.Fatalf("project entry refs %q/%q", e.ProjectID, e.MilestoneID)
			}
		case glyph.Manual:
			if e.TaskID != "t1" {
				t.Fatalf("manual entry task id %q", e.TaskID)
			}
		}
	}
}

func TestCollectDefaultSubtitles(t *testing.T) {
	s := model.NewStore()
	s.Tasks = append(s.Tasks, &model.Task{ID: "t1", Title: "Repot", Date: "2024-01-05"})
	s.Projects = append(s.Projects, &model.Project{
		ID:       "pr1",
		Name:     "Cross",
		Status:   model.StatusPlanning,
		Timeline: []model.Milestone{{ID: "m1", Date: "2024-01-05"}},
	})

	got := Collect(s, "2024-01-01", "2024-01-31", "2024-01-01")
	day := got["2024-01-05"]
	if len(day) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(day))
	}
	if day[0].Subtitle != "Timeline milestone" {
		t.Fatalf("milestone subtitle %q", day[0].Subtitle)
	}
	if day[1].Subtitle != "Manual task" {
		t.Fatalf("task subtitle %q", day[1].Subtitle)
	}
}

func TestCollectSortsTiesByTitle(t *testing.T) {
	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "b",
		CultivarName:  "Bertha",
		WaterInterval: 7,
		LastWater:     "2024-01-01",
	}, &model.Plant{
		ID:            "a",
		CultivarName:  "Alamo",
		WaterInterval: 7,
		LastWater:     "2024-01-01",
	})

	got := Collect(s, "2024-01-08", "2024-01-08", "2024-01-08")
	day := got["2024-01-08"]
	if len(day) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(day))
	}
	if day[0].Title != "Water Alamo" || day[1].Title != "Water Bertha" {
		t.Fatalf("title tie-break wrong: %q, %q", day[0].Title, day[1].Title)
	}
}

func TestCollectIsRepeatable(t *testing.T) {
	s := fixtureStore()
	a := Collect(s, "2024-01-01", "2024-01-31", "2024-01-01")
	b := Collect(s, "2024-01-01", "2024-01-31", "2024-01-01")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("projection must be pure and repeatable")
	}
}

func TestCollectIgnoresOutOfRangeAndUndated(t *testing.T) {
	s := model.NewStore()
	s.Tasks = append(s.Tasks,
		&model.Task{ID: "t1", Title: "Before", Date: "2023-12-31"},
		&model.Task{ID: "t2", Title: "After", Date: "2024-02-01"},
		&model.Task{ID: "t3", Title: "Undated"},
	)

	if got := Collect(s, "2024-01-01", "2024-01-31", "2024-01-01"); len(got) != 0 {
		t.Fatalf("expected empty projection, got %v", got)
	}
}

func TestMonthRange(t *testing.T) {
	cases := []struct {
		on, first, last string
	}{
		{"2024-01-15", "2024-01-01", "2024-01-31"},
		{"2024-02-10", "2024-02-01", "2024-02-29"},
		{"2023-02-28", "2023-02-01", "2023-02-28"},
		{"2024-12-01", "2024-12-01", "2024-12-31"},
	}
	for _, c := range cases {
		first, last, err := MonthRange(c.on)
		if err != nil {
			t.Fatalf("MonthRange(%q): %v", c.on, err)
		}
		if first != c.first || last != c.last {
			t.Fatalf("MonthRange(%q) = %q..%q, want %q..%q", c.on, first, last, c.first, c.last)
		}
	}
	if _, _, err := MonthRange("bogus"); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}
