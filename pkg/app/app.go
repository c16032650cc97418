// Package app provides the high-level operations over the plant store so the
// CLI runners share one mutation path. Every mutating operation stamps the
// store, saves locally, and enqueues a debounced remote push.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/violet/pkg/calendar"
	"tableflip.dev/violet/pkg/dates"
	"tableflip.dev/violet/pkg/model"
	"tableflip.dev/violet/pkg/remote"
	"tableflip.dev/violet/pkg/schedule"
	"tableflip.dev/violet/pkg/store"
)

// Service wraps persistence and the optional syncer.
type Service struct {
	Persistence store.Persistence
	Syncer      *remote.Syncer
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrPlantNotFound = errors.New("app: plant not found")
	ErrTaskNotFound  = errors.New("app: task not found")
	ErrProjNotFound  = errors.New("app: project not found")
	ErrEntryNotFound = errors.New("app: care entry not found")
	ErrNameRequired  = errors.New("app: cultivar name is required")
	ErrTitleRequired = errors.New("app: title is required")
	ErrInvalidStatus = errors.New("app: invalid project status")
	ErrInvalidAction = errors.New("app: unknown care action")
)

// Load reads the local store and, when a remote is configured, reconciles
// against the remote copy by last-writer-wins. Remote failures fall back to
// the local copy silently.
func (s *Service) Load(ctx context.Context) (*model.Store, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	local, err := s.Persistence.Load(ctx)
	if err != nil {
		return nil, err
	}
	merged := s.Syncer.PullReconcile(ctx, local)
	if merged != local {
		// The remote copy won; keep it locally too.
		if err := s.Persistence.Save(merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// save persists the store and schedules the remote push.
func (s *Service) save(st *model.Store) error {
	st.Touch()
	if err := s.Persistence.Save(st); err != nil {
		return err
	}
	s.Syncer.Enqueue(st)
	return nil
}

// Flush waits out any pending remote push. Call before process exit.
func (s *Service) Flush() {
	s.Syncer.Flush()
}

// --- Plants ---

// Plants lists all plants sorted by cultivar name then nickname.
func (s *Service) Plants(ctx context.Context) ([]*model.Plant, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := append([]*model.Plant{}, st.Cultivars...)
	sort.SliceStable(out, func(i, j int) bool { return model.ComparePlants(out[i], out[j]) })
	return out, nil
}

// GetPlant resolves a plant by id, label, or unique name fragment.
func (s *Service) GetPlant(ctx context.Context, q string) (*model.Plant, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	p := st.MatchPlant(q)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPlantNotFound, q)
	}
	return p, nil
}

// AddPlant stores a new plant. Care intervals default to weekly watering and
// monthly fertilizing when unset.
func (s *Service) AddPlant(ctx context.Context, p *model.Plant) (*model.Plant, error) {
	if strings.TrimSpace(p.CultivarName) == "" {
		return nil, ErrNameRequired
	}
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = model.NewID(p.CultivarName, p.Nickname)
	}
	if p.WaterInterval == 0 {
		p.WaterInterval = 7
	}
	if p.FertInterval == 0 {
		p.FertInterval = 30
	}
	model.NormalizePlant(p)
	st.Cultivars = append(st.Cultivars, p)
	if err := s.save(st); err != nil {
		return nil, err
	}
	return p, nil
}

// EditPlant applies mutate to the plant with the given id and saves.
func (s *Service) EditPlant(ctx context.Context, id string, mutate func(*model.Plant)) (*model.Plant, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	p := st.FindPlant(id)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPlantNotFound, id)
	}
	mutate(p)
	model.NormalizePlant(p)
	if strings.TrimSpace(p.CultivarName) == "" {
		return nil, ErrNameRequired
	}
	if err := s.save(st); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePlant removes the plant but keeps its care log: the log is history
// and is never cascade-deleted.
func (s *Service) DeletePlant(ctx context.Context, id string) error {
	st, err := s.Load(ctx)
	if err != nil {
		return err
	}
	kept := st.Cultivars[:0]
	found := false
	for _, p := range st.Cultivars {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrPlantNotFound, id)
	}
	st.Cultivars = kept
	return s.save(st)
}

// ToggleFavorite flips the favorite flag.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (*model.Plant, error) {
	return s.EditPlant(ctx, id, func(p *model.Plant) { p.Favorite = !p.Favorite })
}

// --- Care log ---

// ParseAction maps user input onto a care action.
func ParseAction(in string) (model.Action, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "water", "watered", "w":
		return model.Watered, nil
	case "fert", "fertilize", "fertilized", "f":
		return model.Fertilized, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, in)
}

// LogCare appends a care entry and recomputes the plant's last-care cache
// from the log.
func (s *Service) LogCare(ctx context.Context, plantID, date string, action model.Action, notes string) (*model.CareEntry, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	p := st.FindPlant(plantID)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrPlantNotFound, plantID)
	}
	if date == "" {
		date = dates.Today()
	}
	if _, err := dates.Parse(date); err != nil {
		return nil, fmt.Errorf("app: bad date %q: %w", date, err)
	}
	e := &model.CareEntry{
		ID:         model.NewID(plantID, date, string(action)),
		CultivarID: plantID,
		Date:       date,
		Action:     action,
		Notes:      strings.TrimSpace(notes),
	}
	st.Care = append(st.Care, e)
	st.RecomputeLastCare(p)
	if err := s.save(st); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteCare removes a care entry and recomputes the affected plant's cache,
// which may roll the last-care date back to an older entry.
func (s *Service) DeleteCare(ctx context.Context, id string) error {
	st, err := s.Load(ctx)
	if err != nil {
		return err
	}
	var affected string
	kept := st.Care[:0]
	found := false
	for _, c := range st.Care {
		if c.ID == id {
			found = true
			affected = c.CultivarID
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrEntryNotFound, id)
	}
	st.Care = kept
	st.RecomputeLastCare(st.FindPlant(affected))
	return s.save(st)
}

// CareFilter narrows the care log listing.
type CareFilter struct {
	PlantID string
	Action  model.Action
	From    string
	To      string
}

// CareLog lists care entries newest first, optionally filtered.
func (s *Service) CareLog(ctx context.Context, f CareFilter) ([]*model.CareEntry, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.CareEntry, 0, len(st.Care))
	for _, c := range st.Care {
		if f.PlantID != "" && c.CultivarID != f.PlantID {
			continue
		}
		if f.Action != "" && c.Action != f.Action {
			continue
		}
		if f.From != "" && c.Date < f.From {
			continue
		}
		if f.To != "" && c.Date > f.To {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// --- Tasks ---

// AddTask creates a manual one-off task.
func (s *Service) AddTask(ctx context.Context, title, date, icon, notes string) (*model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if date != "" {
		if _, err := dates.Parse(date); err != nil {
			return nil, fmt.Errorf("app: bad date %q: %w", date, err)
		}
	}
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	t := &model.Task{
		ID:        model.NewID(title, date),
		Title:     strings.TrimSpace(title),
		Date:      date,
		Icon:      icon,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: dates.Today(),
	}
	st.Tasks = append(st.Tasks, t)
	if err := s.save(st); err != nil {
		return nil, err
	}
	return t, nil
}

// CompleteTask deletes the task outright; manual tasks keep no history.
func (s *Service) CompleteTask(ctx context.Context, id string) error {
	st, err := s.Load(ctx)
	if err != nil {
		return err
	}
	kept := st.Tasks[:0]
	found := false
	for _, t := range st.Tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrTaskNotFound, id)
	}
	st.Tasks = kept
	return s.save(st)
}

// --- Projects ---

// Projects lists hybridization projects sorted by name.
func (s *Service) Projects(ctx context.Context) ([]*model.Project, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := append([]*model.Project{}, st.Projects...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetProject resolves a project by id or exact name.
func (s *Service) GetProject(ctx context.Context, q string) (*model.Project, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if p := st.FindProject(q); p != nil {
		return p, nil
	}
	for _, p := range st.Projects {
		if strings.EqualFold(p.Name, q) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrProjNotFound, q)
}

// AddProject creates a project in the planning phase.
func (s *Service) AddProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrTitleRequired
	}
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = model.NewID(p.Name)
	}
	now := dates.Today()
	if p.CreatedAt == "" {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	model.NormalizeProject(p)
	st.Projects = append(st.Projects, p)
	if err := s.save(st); err != nil {
		return nil, err
	}
	return p, nil
}

// EditProject applies mutate to the project with the given id and saves,
// restoring the timeline sort invariant afterwards.
func (s *Service) EditProject(ctx context.Context, id string, mutate func(*model.Project)) (*model.Project, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	p := st.FindProject(id)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrProjNotFound, id)
	}
	mutate(p)
	p.UpdatedAt = dates.Today()
	model.NormalizeProject(p)
	if err := s.save(st); err != nil {
		return nil, err
	}
	return p, nil
}

// SetProjectStatus moves a project through its closed phase set.
func (s *Service) SetProjectStatus(ctx context.Context, id string, status model.ProjectStatus) (*model.Project, error) {
	if !model.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.EditProject(ctx, id, func(p *model.Project) { p.Status = status })
}

// AddMilestone appends a dated note to the project timeline.
func (s *Service) AddMilestone(ctx context.Context, id, date, note string) (*model.Project, error) {
	if _, err := dates.Parse(date); err != nil {
		return nil, fmt.Errorf("app: bad date %q: %w", date, err)
	}
	return s.EditProject(ctx, id, func(p *model.Project) {
		p.Timeline = append(p.Timeline, model.Milestone{
			ID:   model.NewID(id, date, note),
			Date: date,
			Note: strings.TrimSpace(note),
		})
	})
}

// RemoveMilestone deletes a timeline entry by id.
func (s *Service) RemoveMilestone(ctx context.Context, id, milestoneID string) (*model.Project, error) {
	var found bool
	p, err := s.EditProject(ctx, id, func(p *model.Project) {
		kept := p.Timeline[:0]
		for _, m := range p.Timeline {
			if m.ID == milestoneID {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		p.Timeline = kept
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("app: milestone not found: %q", milestoneID)
	}
	return p, nil
}

// DeleteProject removes the project and everything it owns.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	st, err := s.Load(ctx)
	if err != nil {
		return err
	}
	kept := st.Projects[:0]
	found := false
	for _, p := range st.Projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrProjNotFound, id)
	}
	st.Projects = kept
	return s.save(st)
}

// --- Scheduling views ---

// Dashboard returns the upcoming/overdue list for the given window.
func (s *Service) Dashboard(ctx context.Context, today string, windowDays int) ([]schedule.UpcomingItem, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Upcoming(st, today, windowDays), nil
}

// Calendar projects every event source onto [start, end].
func (s *Service) Calendar(ctx context.Context, start, end, today string) (map[string][]calendar.Entry, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.Collect(st, start, end, today), nil
}

// CompleteDue marks a water/fertilize due item done: it logs a care entry
// dated today, which also refreshes the last-care cache so the next due date
// moves forward.
func (s *Service) CompleteDue(ctx context.Context, plantID string, action model.Action) (*model.CareEntry, error) {
	return s.LogCare(ctx, plantID, dates.Today(), action, "")
}
