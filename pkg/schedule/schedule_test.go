package schedule

import (
	"testing"

	"tableflip.dev/violet/pkg/model"
)

func TestAnchorPrecedence(t *testing.T) {
	if got := Anchor("2024-01-10", "2024-01-01", "2024-02-01"); got != "2024-01-10" {
		t.Fatalf("last care should win, got %q", got)
	}
	if got := Anchor("", "2024-01-01", "2024-02-01"); got != "2024-01-01" {
		t.Fatalf("acquired should win over today, got %q", got)
	}
	if got := Anchor("", "", "2024-02-01"); got != "2024-02-01" {
		t.Fatalf("today is the final fallback, got %q", got)
	}
}

func TestCollectDueComputesBothActions(t *testing.T) {
	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "p1",
		CultivarName:  "Rob's Boolaroo",
		WaterInterval: 7,
		FertInterval:  30,
		LastWater:     "2024-01-01",
		LastFert:      "2024-01-01",
	})

	items := CollectDue(s, "2024-01-10")
	if len(items) != 2 {
		t.Fatalf("expected 2 due items, got %d", len(items))
	}
	byAction := map[model.Action]string{}
	for _, it := range items {
		byAction[it.Action] = it.Due
	}
	if byAction[model.Watered] != "2024-01-08" {
		t.Fatalf("water due %q, want 2024-01-08", byAction[model.Watered])
	}
	if byAction[model.Fertilized] != "2024-01-31" {
		t.Fatalf("fert due %q, want 2024-01-31", byAction[model.Fertilized])
	}
}

func TestCollectDueSkipsDisabledIntervals(t *testing.T) {
	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "p1",
		CultivarName:  "Mac's Just Chillin",
		WaterInterval: 5,
		FertInterval:  0, // fertilizing off
		LastWater:     "2024-01-01",
	})

	items := CollectDue(s, "2024-01-10")
	if len(items) != 1 {
		t.Fatalf("expected 1 due item, got %d", len(items))
	}
	if items[0].Action != model.Watered {
		t.Fatalf("expected water item, got %v", items[0].Action)
	}
}

func TestCollectDueAnchorsOnAcquiredThenToday(t *testing.T) {
	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "acq",
		CultivarName:  "Acquired Anchor",
		WaterInterval: 7,
		Acquired:      "2024-01-01",
	}, &model.Plant{
		ID:            "new",
		CultivarName:  "No History",
		WaterInterval: 7,
	})

	byID := map[string]string{}
	for _, it := range CollectDue(s, "2024-02-01") {
		byID[it.Plant.ID] = it.Due
	}
	if byID["acq"] != "2024-01-08" {
		t.Fatalf("acquired anchor due %q, want 2024-01-08", byID["acq"])
	}
	if byID["new"] != "2024-02-08" {
		t.Fatalf("today anchor due %q, want 2024-02-08", byID["new"])
	}
}

func TestUpcomingWindowBoundsFutureNotOverdue(t *testing.T) {
	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "old",
		CultivarName:  "Long Neglected",
		WaterInterval: 7,
		LastWater:     "2023-06-01", // months overdue
	}, &model.Plant{
		ID:            "soon",
		CultivarName:  "Due Soon",
		WaterInterval: 7,
		LastWater:     "2024-01-09", // due inside the window
	}, &model.Plant{
		ID:            "far",
		CultivarName:  "Far Future",
		WaterInterval: 60,
		LastWater:     "2024-01-09", // due well past the window
	})

	items := Upcoming(s, "2024-01-10", 14)
	ids := map[string]bool{}
	for _, it := range items {
		ids[it.Plant.ID] = true
	}
	if !ids["old"] {
		t.Fatal("overdue item must always be included")
	}
	if !ids["soon"] {
		t.Fatal("item inside window missing")
	}
	if ids["far"] {
		t.Fatal("item past the window must be excluded")
	}
}

func TestUpcomingMarksOverdue(t *testing.T) {
	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "p1",
		CultivarName:  "Thirsty",
		WaterInterval: 7,
		LastWater:     "2024-01-01", // due Jan 8, today is Jan 10
	})
	s.Tasks = append(s.Tasks, &model.Task{ID: "t1", Title: "Repot", Date: "2024-01-20"})

	items := Upcoming(s, "2024-01-10", 14)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Overdue {
		t.Fatal("past-due care item should be flagged overdue")
	}
	if items[1].Overdue {
		t.Fatal("future task should not be flagged overdue")
	}
}

func TestUpcomingSortsByDateThenCareFirst(t *testing.T) {
	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "p1",
		CultivarName:  "Tie Breaker",
		WaterInterval: 7,
		LastWater:     "2024-01-08", // due Jan 15
	})
	s.Tasks = append(s.Tasks,
		&model.Task{ID: "t1", Title: "Order perlite", Date: "2024-01-15"},
		&model.Task{ID: "t2", Title: "Wick check", Date: "2024-01-12"},
	)

	items := Upcoming(s, "2024-01-10", 14)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Due != "2024-01-12" {
		t.Fatalf("first item due %q, want 2024-01-12", items[0].Due)
	}
	// Same day: the care item outranks the manual task.
	if items[1].Source != SourceCare || items[2].Source != SourceManual {
		t.Fatalf("tie order wrong: %v then %v", items[1].Source, items[2].Source)
	}
}

func TestUpcomingSkipsUndatedTasks(t *testing.T) {
	s := model.NewStore()
	s.Tasks = append(s.Tasks, &model.Task{ID: "t1", Title: "Someday"})

	if items := Upcoming(s, "2024-01-10", 14); len(items) != 0 {
		t.Fatalf("undated task must not appear, got %d items", len(items))
	}
}

func TestUpcomingDefaultsWindow(t *testing.T) {
	s := model.NewStore()
	s.Tasks = append(s.Tasks,
		&model.Task{ID: "in", Title: "Inside", Date: "2024-01-24"},
		&model.Task{ID: "out", Title: "Outside", Date: "2024-01-25"},
	)

	items := Upcoming(s, "2024-01-10", 0)
	if len(items) != 1 || items[0].Task.ID != "in" {
		t.Fatalf("default window should keep only the 14-day item, got %d", len(items))
	}
}
