// Package app owns the in-memory tag, task, and bucket stores and the
// use-case operations over them. Collections load once at construction and
// every mutation writes the whole collection back through persistence.
//
// Service is not safe for concurrent use; all surfaces drive it from a single
// goroutine.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/calebjsmith7/cue/pkg/bucket"
	"github.com/calebjsmith7/cue/pkg/cue"
	"github.com/calebjsmith7/cue/pkg/store"
	"github.com/calebjsmith7/cue/pkg/tag"
	"github.com/calebjsmith7/cue/pkg/task"
)

type Service struct {
	Persistence store.Persistence
	Log         *zap.SugaredLogger

	tasks    []*task.Task
	tags     []tag.Tag
	buckets  []bucket.Bucket
	visuals  Visuals
	settings Settings
}

// Load builds a Service from the persisted collections. Read failures are
// logged and the store in question proceeds with its default; an absent tag
// collection seeds the defaults.
func Load(p store.Persistence, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Service{Persistence: p, Log: log}
	s.Reload()
	return s
}

// Reload re-reads every collection from persistence, discarding in-memory
// state. The terminal UI uses this when the watch reports an external write.
func (s *Service) Reload() {
	s.tasks = nil
	s.tags = nil
	s.buckets = nil
	s.visuals = DefaultVisuals()
	s.settings = DefaultSettings()

	if found := s.read(store.KeyTags, &s.tags); !found {
		s.tags = tag.Defaults()
	}
	s.read(store.KeyTasks, &s.tasks)
	s.read(store.KeyBuckets, &s.buckets)
	s.read(store.KeyVisuals, &s.visuals)
	s.read(store.KeySettings, &s.settings)
}

func (s *Service) read(key string, into any) bool {
	if s.Persistence == nil {
		return false
	}
	found, err := s.Persistence.Load(key, into)
	if err != nil {
		s.Log.Errorw("load failed, using defaults", "key", key, "error", err)
		return false
	}
	return found
}

// persist writes a collection through. Failures are logged and swallowed so a
// storage anomaly never surfaces to the caller.
func (s *Service) persist(key string, v any) {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.Save(key, v); err != nil {
		s.Log.Errorw("save failed", "key", key, "error", err)
	}
}

// ---- tags ----

// Tags returns a copy of the tag collection.
func (s *Service) Tags() []tag.Tag {
	return append([]tag.Tag(nil), s.tags...)
}

// AddTag creates a tag with the default urgency. Duplicate names are
// permitted; they conflate in the urgency table. A blank name is a logged
// no-op.
func (s *Service) AddTag(name string) tag.Tag {
	name = strings.TrimSpace(name)
	if name == "" {
		s.Log.Warnw("add tag: name required")
		return tag.Tag{}
	}
	t := tag.Tag{
		ID:      fmt.Sprintf("tag-%d", time.Now().UnixMilli()),
		Name:    name,
		Urgency: tag.DefaultUrgency,
	}
	s.tags = append(s.tags, t)
	s.persist(store.KeyTags, s.tags)
	return t
}

// UpdateTag merges the non-zero fields of partial into the tag with the same
// id. An unknown id is a logged no-op.
func (s *Service) UpdateTag(partial tag.Tag) {
	for i := range s.tags {
		if s.tags[i].ID != partial.ID {
			continue
		}
		if partial.Name != "" {
			s.tags[i].Name = partial.Name
		}
		if partial.Urgency != 0 {
			s.tags[i].Urgency = partial.Urgency
		}
		s.persist(store.KeyTags, s.tags)
		return
	}
	s.Log.Warnw("update tag: not found", "id", partial.ID)
}

// RemoveTag deletes the tag by id. Tasks referencing the name keep it; the
// dangling name scores the fallback urgency from then on.
func (s *Service) RemoveTag(id string) {
	kept := s.tags[:0]
	for _, t := range s.tags {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.tags) {
		s.Log.Warnw("remove tag: not found", "id", id)
		return
	}
	s.tags = kept
	s.persist(store.KeyTags, s.tags)
}

// UrgencyTable builds the name-to-urgency lookup for the current tags.
func (s *Service) UrgencyTable() tag.UrgencyTable {
	return tag.TableOf(s.tags)
}

// ---- tasks ----

// Tasks returns a copy of the task collection in stored order.
func (s *Service) Tasks() []*task.Task {
	out := make([]*task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.Clone())
	}
	return out
}

// TaskByID returns a copy of the matching task.
func (s *Service) TaskByID(id string) (*task.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return nil, false
}

// TasksInBucket returns copies of the tasks referencing the bucket id.
func (s *Service) TasksInBucket(bucketID string) []*task.Task {
	out := make([]*task.Task, 0)
	for _, t := range s.tasks {
		if t.BucketID == bucketID {
			out = append(out, t.Clone())
		}
	}
	return out
}

// AddTask appends the record and assigns a fresh id when none is set.
func (s *Service) AddTask(t *task.Task) *task.Task {
	if t == nil {
		s.Log.Warnw("add task: nil task")
		return nil
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	s.tasks = append(s.tasks, t)
	s.persist(store.KeyTasks, s.tasks)
	return t.Clone()
}

// RemoveTask deletes the task by id. An unknown id is a logged no-op.
func (s *Service) RemoveTask(id string) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.tasks) {
		s.Log.Warnw("remove task: not found", "id", id)
		return
	}
	s.tasks = kept
	s.persist(store.KeyTasks, s.tasks)
}

// CompleteTask finishes the task: non-recurring tasks are removed, recurring
// tasks advance their start date by one period and keep their id. An unknown
// id is a logged no-op.
func (s *Service) CompleteTask(id string) {
	for _, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if !t.IsRecurring {
			s.RemoveTask(id)
			return
		}
		t.StartDate = t.NextOccurrence()
		s.persist(store.KeyTasks, s.tasks)
		return
	}
	s.Log.Warnw("complete task: not found", "id", id)
}

// ReorderTasks replaces the task collection with the given order. A nil order
// is rejected (logged no-op). The cue recomputes its own order on every call,
// so reordering only affects stored order.
func (s *Service) ReorderTasks(order []*task.Task) {
	if order == nil {
		s.Log.Errorw("reorder: order must be a list")
		return
	}
	s.tasks = order
	s.persist(store.KeyTasks, s.tasks)
}

// EditTask replaces the task behind prevID with draft under a fresh id.
// Editing changes identity: consumers tracking the old id (the session
// exclusion set, reminders) will not see the edited task under it.
func (s *Service) EditTask(prevID string, draft *task.Task) *task.Task {
	if draft == nil {
		s.Log.Warnw("edit task: nil draft")
		return nil
	}
	if prevID != "" {
		s.RemoveTask(prevID)
	} else {
		s.Log.Debugw("edit task: no previous id")
	}
	draft.ID = uuid.NewString()
	return s.AddTask(draft)
}

// Cue returns the ranked, filtered view of currently-due tasks. The excluded
// set holds ids completed this session that should not reappear.
func (s *Service) Cue(excluded map[string]bool) []*task.Task {
	ranked := cue.Rank(s.tasks, tag.TableOf(s.tags), excluded, time.Now())
	out := make([]*task.Task, 0, len(ranked))
	for _, t := range ranked {
		out = append(out, t.Clone())
	}
	return out
}

// ---- buckets ----

// Buckets returns a copy of the bucket collection.
func (s *Service) Buckets() []bucket.Bucket {
	return append([]bucket.Bucket(nil), s.buckets...)
}

// FindBucket resolves a bucket by id, then by name.
func (s *Service) FindBucket(ref string) (bucket.Bucket, bool) {
	for _, b := range s.buckets {
		if b.ID == ref {
			return b, true
		}
	}
	for _, b := range s.buckets {
		if b.Name == ref {
			return b, true
		}
	}
	return bucket.Bucket{}, false
}

// AddBucket creates a bucket. A blank name is a logged no-op.
func (s *Service) AddBucket(name string) bucket.Bucket {
	name = strings.TrimSpace(name)
	if name == "" {
		s.Log.Warnw("add bucket: name required")
		return bucket.Bucket{}
	}
	b := bucket.Bucket{
		ID:   fmt.Sprintf("bucket-%d", time.Now().UnixMilli()),
		Name: name,
	}
	s.buckets = append(s.buckets, b)
	s.persist(store.KeyBuckets, s.buckets)
	return b
}

// RemoveBucket deletes the bucket and every task referencing it, so no
// orphaned tasks survive. An unknown id is a logged no-op for the bucket but
// still sweeps matching tasks.
func (s *Service) RemoveBucket(id string) {
	keptTasks := s.tasks[:0]
	for _, t := range s.tasks {
		if t.BucketID != id {
			keptTasks = append(keptTasks, t)
		}
	}
	if len(keptTasks) != len(s.tasks) {
		s.tasks = keptTasks
		s.persist(store.KeyTasks, s.tasks)
	}

	kept := s.buckets[:0]
	for _, b := range s.buckets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(s.buckets) {
		s.Log.Warnw("remove bucket: not found", "id", id)
		return
	}
	s.buckets = kept
	s.persist(store.KeyBuckets, s.buckets)
}
