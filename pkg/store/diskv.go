package store

import (
	"context"
	"encoding/json"

	"github.com/peterbourgon/diskv/v3"
)

// Collection keys. Each key holds one JSON-serialized collection (or
// document), written back whole after every mutation.
const (
	KeyTasks    = "tasks"
	KeyTags     = "tags"
	KeyBuckets  = "buckets"
	KeyVisuals  = "visuals"
	KeySettings = "settings"
)

// Persistence is the durable key-value namespace the stores load from at
// startup and write through to after every mutation.
type Persistence interface {
	// Load unmarshals the value stored under key into into. A missing key is
	// not an error; found reports whether anything was read.
	Load(key string, into any) (found bool, err error)
	// Save marshals from and writes it under key, replacing any prior value.
	Save(key string, from any) error
	// Watch streams change events for the namespace until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
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

func (p *persistence) Load(key string, into any) (bool, error) {
	if !p.d.Has(key) {
		return false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, into); err != nil {
		return false, err
	}
	return true, nil
}

func (p *persistence) Save(key string, from any) error {
	data, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}
