package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/violet/pkg/model"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string            { return t.path }
func (t testConfig) RemoteURL() string           { return "" }
func (t testConfig) SyncDebounce() time.Duration { return 0 }

func TestSaveLoadRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	s := model.NewStore()
	s.Cultivars = append(s.Cultivars, &model.Plant{
		ID:            "p1",
		CultivarName:  "Optimara Little Maya",
		WaterInterval: 7,
		LastWater:     "2024-01-01",
	})
	s.Care = append(s.Care, &model.CareEntry{
		ID: "c1", CultivarID: "p1", Date: "2024-01-01", Action: model.Watered,
	})
	s.Tasks = append(s.Tasks, &model.Task{ID: "t1", Title: "Repot"})
	s.Projects = append(s.Projects, &model.Project{ID: "pr1", Name: "Cross", Status: model.StatusPlanning})
	s.UpdatedAt = "2024-01-02T10:00:00Z"

	if err := p.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Cultivars) != 1 || got.Cultivars[0].CultivarName != "Optimara Little Maya" {
		t.Fatalf("cultivars lost: %+v", got.Cultivars)
	}
	if len(got.Care) != 1 || len(got.Tasks) != 1 || len(got.Projects) != 1 {
		t.Fatalf("collections lost: %d/%d/%d", len(got.Care), len(got.Tasks), len(got.Projects))
	}
	if got.UpdatedAt != s.UpdatedAt {
		t.Fatalf("updated at %q, want %q", got.UpdatedAt, s.UpdatedAt)
	}
}

func TestLoadEmptyDirYieldsEmptyStore(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	got, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Cultivars == nil || len(got.Cultivars) != 0 {
		t.Fatalf("expected empty normalized store, got %+v", got)
	}
}

func TestLoadToleratesMalformedRecord(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	s := model.NewStore()
	s.Tasks = append(s.Tasks, &model.Task{ID: "t1", Title: "Survivor"})
	if err := p.Save(s); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Corrupt one record; the rest must still load.
	if err := os.WriteFile(filepath.Join(base, "cultivars"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt record: %v", err)
	}

	got, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Cultivars) != 0 {
		t.Fatalf("malformed record should degrade to empty, got %d", len(got.Cultivars))
	}
	if len(got.Tasks) != 1 {
		t.Fatal("healthy records must survive a corrupt sibling")
	}
}

func TestSaveNilStoreWritesEmpty(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Save(nil); err != nil {
		t.Fatalf("save nil: %v", err)
	}
	got, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Cultivars) != 0 || got.UpdatedAt != "" {
		t.Fatalf("expected empty store, got %+v", got)
	}
}
