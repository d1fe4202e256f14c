package app

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/calebjsmith7/cue/pkg/bucket"
	"github.com/calebjsmith7/cue/pkg/store"
	"github.com/calebjsmith7/cue/pkg/tag"
	"github.com/calebjsmith7/cue/pkg/task"
)

type memoryPersistence struct {
	data    map[string][]byte
	saveErr error
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{data: make(map[string][]byte)}
}

func (m *memoryPersistence) Load(key string, into any) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memoryPersistence) Save(key string, from any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	raw, err := json.Marshal(from)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func (m *memoryPersistence) seed(t *testing.T, key string, v any) {
	t.Helper()
	if err := m.Save(key, v); err != nil {
		t.Fatalf("seed %s: %v", key, err)
	}
}

func newTask(id, bucketID string, start time.Time) *task.Task {
	return &task.Task{
		ID:        id,
		Title:     "task " + id,
		BucketID:  bucketID,
		StartDate: task.Timestamp{Time: start},
	}
}

func TestLoadSeedsDefaultTags(t *testing.T) {
	svc := Load(newMemoryPersistence(), nil)

	tags := svc.Tags()
	if len(tags) != 10 {
		t.Fatalf("expected the 10 seed tags, got %d", len(tags))
	}
	if svc.UrgencyTable().Lookup("Follow Up") != 10 {
		t.Fatal("seed urgencies not loaded")
	}
}

func TestLoadPrefersStoredTags(t *testing.T) {
	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTags, []tag.Tag{{ID: "tag-x", Name: "Only", Urgency: 7}})

	svc := Load(mp, nil)
	tags := svc.Tags()
	if len(tags) != 1 || tags[0].Name != "Only" {
		t.Fatalf("stored tags should win over defaults, got %v", tags)
	}
}

func TestAddTagDefaults(t *testing.T) {
	svc := Load(newMemoryPersistence(), nil)

	created := svc.AddTag("  Errands ")
	if created.Name != "Errands" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Urgency != tag.DefaultUrgency {
		t.Fatalf("expected default urgency %d, got %d", tag.DefaultUrgency, created.Urgency)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	before := len(svc.Tags())
	svc.AddTag("   ")
	if len(svc.Tags()) != before {
		t.Fatal("blank tag name should be a no-op")
	}
}

func TestUpdateTag(t *testing.T) {
	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTags, []tag.Tag{{ID: "tag-x", Name: "Chore", Urgency: 5}})
	svc := Load(mp, nil)

	svc.UpdateTag(tag.Tag{ID: "tag-x", Urgency: 9})
	if got := svc.Tags()[0]; got.Urgency != 9 || got.Name != "Chore" {
		t.Fatalf("partial update should merge, got %+v", got)
	}

	svc.UpdateTag(tag.Tag{ID: "tag-missing", Urgency: 2})
	if got := svc.Tags()[0]; got.Urgency != 9 {
		t.Fatalf("unknown id should be a no-op, got %+v", got)
	}
}

func TestRemoveTagLeavesTaskNamesDangling(t *testing.T) {
	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTags, []tag.Tag{{ID: "tag-x", Name: "Hot", Urgency: 10}})
	mp.seed(t, store.KeyTasks, []*task.Task{
		{ID: "a", Title: "a", Tags: []string{"Hot"}, StartDate: task.Timestamp{Time: time.Now().AddDate(0, 0, -1)}},
	})
	svc := Load(mp, nil)

	svc.RemoveTag("tag-x")
	got, _ := svc.TaskByID("a")
	if len(got.Tags) != 1 || got.Tags[0] != "Hot" {
		t.Fatalf("task tag names must survive tag removal, got %v", got.Tags)
	}
	ranked := svc.Cue(nil)
	if len(ranked) != 1 {
		t.Fatalf("expected task still in cue, got %d", len(ranked))
	}
	// The dangling name now scores the fallback weight.
	if svc.UrgencyTable().Lookup("Hot") != 1 {
		t.Fatal("removed tag should fall back to urgency 1")
	}
}

func TestCompleteNonRecurringRemoves(t *testing.T) {
	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTasks, []*task.Task{newTask("a", "b1", time.Now())})
	svc := Load(mp, nil)

	svc.CompleteTask("a")
	if _, ok := svc.TaskByID("a"); ok {
		t.Fatal("completing a one-time task should remove it")
	}
}

func TestCompleteRecurringAdvances(t *testing.T) {
	start := time.Date(2026, time.May, 4, 7, 0, 0, 0, time.UTC)
	weekly := newTask("a", "b1", start)
	weekly.IsRecurring = true
	weekly.RecurringDetails = task.Weekly

	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTasks, []*task.Task{weekly})
	svc := Load(mp, nil)

	svc.CompleteTask("a")

	got, ok := svc.TaskByID("a")
	if !ok {
		t.Fatal("recurring task should survive completion under the same id")
	}
	if want := start.AddDate(0, 0, 7); !got.StartDate.Equal(want) {
		t.Fatalf("expected start %s, got %s", want, got.StartDate)
	}
}

func TestCompleteUnrecognizedRecurrenceKeepsDate(t *testing.T) {
	start := time.Date(2026, time.May, 4, 7, 0, 0, 0, time.UTC)
	odd := newTask("a", "b1", start)
	odd.IsRecurring = true
	odd.RecurringDetails = "Quarterly"

	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTasks, []*task.Task{odd})
	svc := Load(mp, nil)

	svc.CompleteTask("a")
	got, ok := svc.TaskByID("a")
	if !ok || !got.StartDate.Equal(start) {
		t.Fatalf("unrecognized recurrence should leave the date unchanged, got %+v ok=%v", got, ok)
	}
}

func TestCompleteMissingIDIsNoop(t *testing.T) {
	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTasks, []*task.Task{newTask("a", "b1", time.Now())})
	svc := Load(mp, nil)

	svc.CompleteTask("nope")
	if len(svc.Tasks()) != 1 {
		t.Fatal("completing a missing id must not change state")
	}
}

func TestEditTaskChangesIdentity(t *testing.T) {
	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTasks, []*task.Task{newTask("old", "b1", time.Now())})
	svc := Load(mp, nil)

	draft := newTask("", "b1", time.Now())
	draft.Title = "renamed"
	edited := svc.EditTask("old", draft)

	if edited.ID == "" || edited.ID == "old" {
		t.Fatalf("edit must produce a fresh id, got %q", edited.ID)
	}
	if _, ok := svc.TaskByID("old"); ok {
		t.Fatal("old id should be gone after edit")
	}
	got, ok := svc.TaskByID(edited.ID)
	if !ok || got.Title != "renamed" || got.BucketID != "b1" {
		t.Fatalf("edited record wrong: %+v ok=%v", got, ok)
	}
}

func TestRemoveBucketCascades(t *testing.T) {
	mp := newMemoryPersistence()
	mp.seed(t, store.KeyBuckets, []bucket.Bucket{{ID: "b1", Name: "Home"}, {ID: "b2", Name: "Work"}})
	mp.seed(t, store.KeyTasks, []*task.Task{
		newTask("a", "b1", time.Now()),
		newTask("b", "b1", time.Now()),
		newTask("c", "b1", time.Now()),
		newTask("d", "b2", time.Now()),
	})
	svc := Load(mp, nil)

	svc.RemoveBucket("b1")

	if got := svc.TasksInBucket("b1"); len(got) != 0 {
		t.Fatalf("expected no tasks left in b1, got %d", len(got))
	}
	if got := svc.Tasks(); len(got) != 1 || got[0].ID != "d" {
		t.Fatalf("unrelated tasks must survive, got %v", got)
	}
	if _, ok := svc.FindBucket("b1"); ok {
		t.Fatal("bucket should be gone")
	}
	if _, ok := svc.FindBucket("Work"); !ok {
		t.Fatal("other buckets must survive")
	}
}

func TestReorderTasks(t *testing.T) {
	mp := newMemoryPersistence()
	mp.seed(t, store.KeyTasks, []*task.Task{
		newTask("a", "b1", time.Now()),
		newTask("b", "b1", time.Now()),
	})
	svc := Load(mp, nil)

	tasks := svc.Tasks()
	svc.ReorderTasks([]*task.Task{tasks[1], tasks[0]})
	if got := svc.Tasks(); got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("reorder not applied: %v", got)
	}

	svc.ReorderTasks(nil)
	if got := svc.Tasks(); len(got) != 2 {
		t.Fatal("nil order must be rejected")
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	mp := newMemoryPersistence()
	svc := Load(mp, nil)

	b := svc.AddBucket("Home")
	added := svc.AddTask(newTask("", b.ID, time.Now()))
	svc.AddTag("Errands")

	// A second service over the same persistence sees everything.
	again := Load(mp, nil)
	if _, ok := again.TaskByID(added.ID); !ok {
		t.Fatal("task not persisted")
	}
	if _, ok := again.FindBucket("Home"); !ok {
		t.Fatal("bucket not persisted")
	}
	if again.UrgencyTable().Lookup("Errands") != tag.DefaultUrgency {
		t.Fatal("tag not persisted")
	}
}

func TestSaveFailuresAreSwallowed(t *testing.T) {
	mp := newMemoryPersistence()
	mp.saveErr = errors.New("disk full")
	svc := Load(mp, nil)

	added := svc.AddTask(newTask("", "b1", time.Now()))
	if added == nil {
		t.Fatal("mutation should succeed in memory despite save failure")
	}
	if _, ok := svc.TaskByID(added.ID); !ok {
		t.Fatal("in-memory state should reflect the mutation")
	}
}

func TestSettings(t *testing.T) {
	mp := newMemoryPersistence()
	svc := Load(mp, nil)

	if !svc.NotificationsEnabled() {
		t.Fatal("notifications default on")
	}
	svc.SetNotificationsEnabled(false)

	v := svc.Visuals()
	if v.Background != "wood_texture" {
		t.Fatalf("unexpected default visuals: %+v", v)
	}
	v.Background = "slate"
	svc.SetVisuals(v)

	again := Load(mp, nil)
	if again.NotificationsEnabled() {
		t.Fatal("notifications toggle not persisted")
	}
	if again.Visuals().Background != "slate" {
		t.Fatal("visuals not persisted")
	}
}
