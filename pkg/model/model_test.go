package model

import (
	"encoding/json"
	"testing"
)

func TestNormalizeRepairsNilCollections(t *testing.T) {
	s := Normalize(&Store{})
	if s.Cultivars == nil || s.Care == nil || s.Projects == nil || s.Tasks == nil {
		t.Fatal("collections must be non-nil after normalize")
	}
	if s := Normalize(nil); s == nil {
		t.Fatal("normalize must tolerate a nil store")
	}
}

func TestNormalizeDropsNilElements(t *testing.T) {
	s := Normalize(&Store{
		Cultivars: []*Plant{nil, {CultivarName: "Kept"}, nil},
		Care:      []*CareEntry{nil, {ID: "c1"}},
		Tasks:     []*Task{nil},
		Projects:  []*Project{nil, {Name: "Kept"}},
	})
	if len(s.Cultivars) != 1 || len(s.Care) != 1 || len(s.Tasks) != 0 || len(s.Projects) != 1 {
		t.Fatalf("nil elements survived: %d/%d/%d/%d",
			len(s.Cultivars), len(s.Care), len(s.Tasks), len(s.Projects))
	}
}

func TestNormalizePlantClampsAndTrims(t *testing.T) {
	p := &Plant{CultivarName: "  Ness' Crinkle Blue  ", Nickname: " Crinkle ", WaterInterval: -3, FertInterval: -1}
	NormalizePlant(p)
	if p.CultivarName != "Ness' Crinkle Blue" || p.Nickname != "Crinkle" {
		t.Fatalf("trim failed: %q / %q", p.CultivarName, p.Nickname)
	}
	if p.WaterInterval != 0 || p.FertInterval != 0 {
		t.Fatalf("negative intervals must clamp to 0, got %d/%d", p.WaterInterval, p.FertInterval)
	}
}

func TestNormalizeProjectDefaultsAndSorts(t *testing.T) {
	p := &Project{
		ID:     "pr1",
		Name:   "Cross",
		Status: "bogus",
		Timeline: []Milestone{
			{Date: "2024-03-01", Note: "later"},
			{ID: "m1", Date: "2024-01-01", Note: "earlier"},
		},
	}
	NormalizeProject(p)
	if p.Status != StatusPlanning {
		t.Fatalf("invalid status must default to planning, got %q", p.Status)
	}
	if p.Parents == nil || p.Offspring == nil || p.Variables == nil {
		t.Fatal("project collections must be non-nil")
	}
	if p.Timeline[0].Date != "2024-01-01" {
		t.Fatalf("timeline must sort ascending, got %q first", p.Timeline[0].Date)
	}
	for _, m := range p.Timeline {
		if m.ID == "" {
			t.Fatal("milestone id must be backfilled")
		}
	}
}

func TestValidStatusClosedSet(t *testing.T) {
	for _, s := range ProjectStatuses() {
		if !ValidStatus(s) {
			t.Fatalf("%q should be valid", s)
		}
	}
	if ValidStatus("germinating") {
		t.Fatal("unknown status accepted")
	}
}

func TestPlantUnmarshalLegacyNameKey(t *testing.T) {
	var p Plant
	if err := json.Unmarshal([]byte(`{"id":"p1","name":"Old Export"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.CultivarName != "Old Export" {
		t.Fatalf("legacy name not adopted: %q", p.CultivarName)
	}

	// The modern key wins when both are present.
	if err := json.Unmarshal([]byte(`{"id":"p2","name":"Old","cultivarName":"New"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.CultivarName != "New" {
		t.Fatalf("cultivarName should win, got %q", p.CultivarName)
	}
}

func TestLabelPrefersNickname(t *testing.T) {
	p := &Plant{CultivarName: "Rob's Boolaroo", Nickname: "Boo"}
	if got := p.Label(); got != "Boo (Rob's Boolaroo)" {
		t.Fatalf("got %q", got)
	}
	p.Nickname = ""
	if got := p.Label(); got != "Rob's Boolaroo" {
		t.Fatalf("got %q", got)
	}
	var nilPlant *Plant
	if nilPlant.Label() != "" {
		t.Fatal("nil plant label must be empty")
	}
}

func TestMatchPlant(t *testing.T) {
	s := Normalize(&Store{Cultivars: []*Plant{
		{ID: "id1", CultivarName: "Optimara Little Maya", Nickname: "Maya"},
		{ID: "id2", CultivarName: "Mac's Just Chillin"},
		{ID: "id3", CultivarName: "Mac's Momentary Madness"},
	}})

	if p := s.MatchPlant("id2"); p == nil || p.ID != "id2" {
		t.Fatal("id lookup failed")
	}
	if p := s.MatchPlant("maya"); p == nil || p.ID != "id1" {
		t.Fatal("exact nickname lookup failed")
	}
	if p := s.MatchPlant("chillin"); p == nil || p.ID != "id2" {
		t.Fatal("unique substring lookup failed")
	}
	if p := s.MatchPlant("mac's"); p != nil {
		t.Fatalf("ambiguous query must return nil, got %q", p.ID)
	}
	if p := s.MatchPlant("zzz"); p != nil {
		t.Fatal("miss must return nil")
	}
	if p := s.MatchPlant("  "); p != nil {
		t.Fatal("blank query must return nil")
	}
}

func TestRecomputeLastCare(t *testing.T) {
	p := &Plant{ID: "p1"}
	s := Normalize(&Store{
		Cultivars: []*Plant{p},
		Care: []*CareEntry{
			{ID: "c1", CultivarID: "p1", Date: "2024-01-01", Action: Watered},
			{ID: "c2", CultivarID: "p1", Date: "2024-01-15", Action: Watered},
			{ID: "c3", CultivarID: "p1", Date: "2024-01-10", Action: Fertilized},
			{ID: "c4", CultivarID: "other", Date: "2024-02-01", Action: Watered},
		},
	})

	s.RecomputeLastCare(p)
	if p.LastWater != "2024-01-15" {
		t.Fatalf("last water %q, want 2024-01-15", p.LastWater)
	}
	if p.LastFert != "2024-01-10" {
		t.Fatalf("last fert %q, want 2024-01-10", p.LastFert)
	}

	// Dropping the newest entry rolls the cache back.
	s.Care = s.Care[:1]
	s.RecomputeLastCare(p)
	if p.LastWater != "2024-01-01" {
		t.Fatalf("last water after delete %q, want 2024-01-01", p.LastWater)
	}
	if p.LastFert != "" {
		t.Fatalf("last fert after delete %q, want empty", p.LastFert)
	}

	s.RecomputeLastCare(nil) // must not panic
}

func TestNewIDShortAndDistinct(t *testing.T) {
	a := NewID("x")
	b := NewID("x")
	if len(a) != 8 {
		t.Fatalf("id length %d, want 8 hex chars", len(a))
	}
	if a == b {
		t.Fatal("ids for repeated input should differ by timestamp")
	}
}
