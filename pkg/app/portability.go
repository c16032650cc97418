package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/violet/pkg/model"
)

// ExportJSON renders the whole store in its persisted shape, suitable for
// backup and later import.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(st, "", "  ")
}

// ExportCareCSV renders the care log as CSV, oldest first, with plant labels
// resolved where the plant still exists.
func (s *Service) ExportCareCSV(ctx context.Context) ([]byte, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	rows := append([]*model.CareEntry{}, st.Care...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Date", "Plant", "Action", "Notes"})
	for _, r := range rows {
		label := ""
		if p := st.FindPlant(r.CultivarID); p != nil {
			label = p.Label()
		}
		_ = w.Write([]string{r.Date, label, string(r.Action), r.Notes})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Import replaces the store with the decoded backup. The payload must at
// least carry cultivar and care collections; everything is re-normalized and
// every plant's last-care cache is recomputed from the imported log.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var raw struct {
		Cultivars json.RawMessage `json:"cultivars"`
		Care      json.RawMessage `json:"care"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("app: import: %w", err)
	}
	if len(raw.Cultivars) == 0 || len(raw.Care) == 0 {
		return errors.New("app: import: not a store backup")
	}
	st := &model.Store{}
	if err := json.Unmarshal(data, st); err != nil {
		return fmt.Errorf("app: import: %w", err)
	}
	model.Normalize(st)
	for _, p := range st.Cultivars {
		st.RecomputeLastCare(p)
	}
	return s.save(st)
}

// Erase drops everything, replacing the store with an empty one.
func (s *Service) Erase(ctx context.Context) error {
	return s.save(model.NewStore())
}

// Sync forces a pull-reconcile-push round trip right now, bypassing the
// debounce. Unlike the background push, errors surface to the caller.
func (s *Service) Sync(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	merged, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.Syncer.PushNow(ctx, merged)
}
