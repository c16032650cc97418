// Package model holds the plant-collection domain types and the aggregate
// Store that is loaded from and saved to persistence as a single unit.
package model

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Action is a care-log action kind.
type Action string

const (
	Watered    Action = "Watered"
	Fertilized Action = "Fertilized"
)

// Plant is a single specimen in the collection. LastWater and LastFert are a
// denormalized cache of the most recent care-log date per action; they are
// recomputed from the log on every care mutation, never written ad hoc.
type Plant struct {
	ID           string `json:"id"`
	CultivarName string `json:"cultivarName"`
	Nickname     string `json:"nickname,omitempty"`

	Hybridizer  string `json:"hybridizer,omitempty"`
	Year        string `json:"year,omitempty"`
	Blossom     string `json:"blossom,omitempty"`
	Color       string `json:"color,omitempty"`
	Leaf        string `json:"leaf,omitempty"`
	Variegation string `json:"variegation,omitempty"`
	Pot         string `json:"pot,omitempty"`
	Location    string `json:"location,omitempty"`
	Acquired    string `json:"acquired,omitempty"`
	Source      string `json:"source,omitempty"`

	WaterInterval    int    `json:"waterInterval"`
	FertInterval     int    `json:"fertInterval"`
	FertilizerNPK    string `json:"fertilizerNpk,omitempty"`
	FertilizerMethod string `json:"fertilizerMethod,omitempty"`

	Notes    string `json:"notes,omitempty"`
	Photo    string `json:"photo,omitempty"`
	Favorite bool   `json:"favorite,omitempty"`

	LastWater string `json:"_lastWater,omitempty"`
	LastFert  string `json:"_lastFert,omitempty"`
}

// plantAlias tolerates the legacy "name" key used by early exports.
type plantAlias Plant

type plantWire struct {
	plantAlias
	LegacyName string `json:"name,omitempty"`
}

func (p *Plant) UnmarshalJSON(b []byte) error {
	var w plantWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*p = Plant(w.plantAlias)
	if p.CultivarName == "" {
		p.CultivarName = w.LegacyName
	}
	return nil
}

// Label renders the display name, preferring the nickname.
func (p *Plant) Label() string {
	if p == nil {
		return ""
	}
	if p.Nickname != "" {
		return fmt.Sprintf("%s (%s)", p.Nickname, p.CultivarName)
	}
	return p.CultivarName
}

// ComparePlants orders by cultivar name, then nickname.
func ComparePlants(a, b *Plant) bool {
	if a.CultivarName != b.CultivarName {
		return a.CultivarName < b.CultivarName
	}
	return a.Nickname < b.Nickname
}

// CareEntry is one performed care action. Entries are immutable once created;
// they are deleted, never edited. CultivarID is a reference, not ownership,
// and may dangle after the plant is deleted.
type CareEntry struct {
	ID         string `json:"id"`
	CultivarID string `json:"cultivarId"`
	Date       string `json:"date"`
	Action     Action `json:"action"`
	Notes      string `json:"notes,omitempty"`
}

// Task is a one-off manual reminder. Completing a task deletes it; no history
// is kept, unlike the care log.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ProjectStatus is the closed set of hybridization project phases.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "planning"
	StatusPollinated ProjectStatus = "pollinated"
	StatusSeedlings  ProjectStatus = "seedlings"
	StatusBlooming   ProjectStatus = "blooming"
	StatusRegistered ProjectStatus = "registered"
	StatusArchived   ProjectStatus = "archived"
)

// ProjectStatuses lists the valid phases in lifecycle order.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{
		StatusPlanning, StatusPollinated, StatusSeedlings,
		StatusBlooming, StatusRegistered, StatusArchived,
	}
}

// ValidStatus reports whether s is part of the closed status set.
func ValidStatus(s ProjectStatus) bool {
	for _, v := range ProjectStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// ParentRole describes which side of a cross a parent plant is.
type ParentRole string

const (
	RoleSeed    ParentRole = "seed"
	RolePollen  ParentRole = "pollen"
	RoleUnknown ParentRole = "unknown"
)

// Parent is a cross parent; PlantID optionally links back to a collection
// plant and may dangle.
type Parent struct {
	Name    string     `json:"name"`
	Role    ParentRole `json:"role"`
	PlantID string     `json:"plantId,omitempty"`
	Notes   string     `json:"notes,omitempty"`
}

// Offspring is a seedling raised from a cross.
type Offspring struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
	Date   string `json:"date,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Milestone is a dated timeline note; the timeline feeds the calendar as its
// third event source.
type Milestone struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Note string `json:"note,omitempty"`
}

// Variable is a free-form experiment factor on a project.
type Variable struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Project tracks a breeding/hybridization effort.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      string        `json:"type,omitempty"` // goal | exploratory
	Goal      string        `json:"goal,omitempty"`
	Traits    string        `json:"traits,omitempty"`
	Results   string        `json:"results,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Status    ProjectStatus `json:"status"`
	StartDate string        `json:"startDate,omitempty"`

	Parents   []Parent    `json:"parents"`
	Offspring []Offspring `json:"offspring"`
	Timeline  []Milestone `json:"timeline"`
	Variables []Variable  `json:"variables"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// SortTimeline restores the ascending-by-date timeline invariant. It is
// called after every timeline write.
func (p *Project) SortTimeline() {
	sort.SliceStable(p.Timeline, func(i, j int) bool {
		return p.Timeline[i].Date < p.Timeline[j].Date
	})
}

// Store is the aggregate root: the unit of persistence and of sync.
// UpdatedAt is the last-write timestamp used for last-writer-wins conflict
// resolution against a remote copy.
type Store struct {
	Cultivars []*Plant     `json:"cultivars"`
	Care      []*CareEntry `json:"care"`
	Projects  []*Project   `json:"projects"`
	Tasks     []*Task      `json:"tasks"`
	UpdatedAt string       `json:"updatedAt,omitempty"`
}

// NewStore returns an empty normalized store.
func NewStore() *Store {
	return Normalize(&Store{})
}

// Normalize repairs a store loaded from persistence or import: nil
// collections become empty, plants and projects get field defaults, and the
// timeline sort invariant is restored. It never fails; malformed pieces
// degrade to empty.
func Normalize(s *Store) *Store {
	if s == nil {
		s = &Store{}
	}
	if s.Cultivars == nil {
		s.Cultivars = []*Plant{}
	}
	if s.Care == nil {
		s.Care = []*CareEntry{}
	}
	if s.Projects == nil {
		s.Projects = []*Project{}
	}
	if s.Tasks == nil {
		s.Tasks = []*Task{}
	}
	kept := s.Cultivars[:0]
	for _, p := range s.Cultivars {
		if p == nil {
			continue
		}
		NormalizePlant(p)
		kept = append(kept, p)
	}
	s.Cultivars = kept

	care := s.Care[:0]
	for _, c := range s.Care {
		if c != nil {
			care = append(care, c)
		}
	}
	s.Care = care

	tasks := s.Tasks[:0]
	for _, t := range s.Tasks {
		if t != nil {
			tasks = append(tasks, t)
		}
	}
	s.Tasks = tasks

	projects := s.Projects[:0]
	for _, p := range s.Projects {
		if p == nil {
			continue
		}
		NormalizeProject(p)
		projects = append(projects, p)
	}
	s.Projects = projects
	return s
}

// NormalizePlant trims identity fields and clamps negative intervals. The
// last-care cache is not touched here; recomputing it needs the log and
// lives on Store.
func NormalizePlant(p *Plant) {
	p.CultivarName = strings.TrimSpace(p.CultivarName)
	p.Nickname = strings.TrimSpace(p.Nickname)
	if p.WaterInterval < 0 {
		p.WaterInterval = 0
	}
	if p.FertInterval < 0 {
		p.FertInterval = 0
	}
}

// NormalizeProject defaults the status and restores collection invariants.
func NormalizeProject(p *Project) {
	p.Name = strings.TrimSpace(p.Name)
	if !ValidStatus(p.Status) {
		p.Status = StatusPlanning
	}
	if p.Parents == nil {
		p.Parents = []Parent{}
	}
	if p.Offspring == nil {
		p.Offspring = []Offspring{}
	}
	if p.Timeline == nil {
		p.Timeline = []Milestone{}
	}
	if p.Variables == nil {
		p.Variables = []Variable{}
	}
	for i := range p.Timeline {
		if p.Timeline[i].ID == "" {
			p.Timeline[i].ID = NewID(p.ID, p.Timeline[i].Date, p.Timeline[i].Note)
		}
	}
	p.SortTimeline()
}

// FindPlant returns the plant with the given id, or nil.
func (s *Store) FindPlant(id string) *Plant {
	for _, p := range s.Cultivars {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// MatchPlant resolves a plant by id, exact label, or unique substring of the
// cultivar name or nickname.
func (s *Store) MatchPlant(q string) *Plant {
	if p := s.FindPlant(q); p != nil {
		return p
	}
	lq := strings.ToLower(strings.TrimSpace(q))
	if lq == "" {
		return nil
	}
	var hit *Plant
	for _, p := range s.Cultivars {
		name := strings.ToLower(p.CultivarName)
		nick := strings.ToLower(p.Nickname)
		if name == lq || nick == lq {
			return p
		}
		if strings.Contains(name, lq) || strings.Contains(nick, lq) {
			if hit != nil {
				return nil // ambiguous
			}
			hit = p
		}
	}
	return hit
}

// FindTask returns the task with the given id, or nil.
func (s *Store) FindTask(id string) *Task {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FindProject returns the project with the given id, or nil.
func (s *Store) FindProject(id string) *Project {
	for _, p := range s.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RecomputeLastCare derives the plant's last-care cache from the care log:
// the maximum logged date per action, or empty when no entry exists. Calling
// this after every care-log mutation keeps the cache consistent under all
// code paths, including import and restore.
func (s *Store) RecomputeLastCare(p *Plant) {
	if p == nil {
		return
	}
	p.LastWater = ""
	p.LastFert = ""
	for _, c := range s.Care {
		if c.CultivarID != p.ID {
			continue
		}
		switch c.Action {
		case Watered:
			if c.Date > p.LastWater {
				p.LastWater = c.Date
			}
		case Fertilized:
			if c.Date > p.LastFert {
				p.LastFert = c.Date
			}
		}
	}
}

// Touch stamps the store's last-write timestamp.
func (s *Store) Touch() {
	s.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// NewID derives a short stable id from the given parts plus the current time,
// in the same spirit as the journal entry keys.
func NewID(parts ...string) string {
	seed := strings.Join(parts, "|") + "|" + time.Now().Format(time.RFC3339Nano)
	sum := md5.Sum([]byte(seed))
	return fmt.Sprintf("%x", sum[:4])
}
