package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/violet/pkg/model"
)

// Persistence is the local durable storage contract. The whole store loads
// and saves as one unit; partial or malformed data on disk degrades to empty
// collections rather than failing.
type Persistence interface {
	Load(ctx context.Context) (*model.Store, error)
	Save(s *model.Store) error
}

// Keys for the per-collection records inside the diskv base path.
const (
	keyCultivars = "cultivars"
	keyCare      = "care"
	keyProjects  = "projects"
	keyTasks     = "tasks"
	keyMeta      = "meta"
)

type meta struct {
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// readInto unmarshals the record under key into v. A missing key or
// malformed payload leaves v untouched; the caller's zero value stands in.
func (p *persistence) readInto(key string, v interface{}) {
	if !p.d.Has(key) {
		return
	}
	raw, err := p.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
	}
}

func (p *persistence) Load(_ context.Context) (*model.Store, error) {
	s := &model.Store{}
	var m meta
	p.readInto(keyCultivars, &s.Cultivars)
	p.readInto(keyCare, &s.Care)
	p.readInto(keyProjects, &s.Projects)
	p.readInto(keyTasks, &s.Tasks)
	p.readInto(keyMeta, &m)
	s.UpdatedAt = m.UpdatedAt
	return model.Normalize(s), nil
}

func (p *persistence) Save(s *model.Store) error {
	if s == nil {
		s = model.NewStore()
	}
	records := []struct {
		key string
		v   interface{}
	}{
		{keyCultivars, s.Cultivars},
		{keyCare, s.Care},
		{keyProjects, s.Projects},
		{keyTasks, s.Tasks},
		{keyMeta, meta{UpdatedAt: s.UpdatedAt}},
	}
	for _, r := range records {
		data, err := json.Marshal(r.v)
		if err != nil {
			return fmt.Errorf("store: marshal %s: %w", r.key, err)
		}
		if err := p.d.Write(r.key, data); err != nil {
			return fmt.Errorf("store: write %s: %w", r.key, err)
		}
	}
	return nil
}
