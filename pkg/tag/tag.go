// Package tag holds the urgency-weighted labels tasks are ranked by.
package tag

// DefaultUrgency is assigned to newly created tags.
const DefaultUrgency = 5

// fallbackUrgency is scored for tag names with no table entry. Tasks keep tag
// names, not ids, so a renamed or deleted tag degrades to this weight instead
// of breaking the lookup.
const fallbackUrgency = 1

type Tag struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Urgency int    `json:"urgency"`
}

// UrgencyTable maps a tag name to its urgency weight (1-10).
type UrgencyTable map[string]int

// TableOf builds the lookup table for a tag collection. Stored urgencies at or
// below zero count as the fallback weight. With duplicate names the last entry
// wins.
func TableOf(tags []Tag) UrgencyTable {
	table := make(UrgencyTable, len(tags))
	for _, t := range tags {
		u := t.Urgency
		if u <= 0 {
			u = fallbackUrgency
		}
		table[t.Name] = u
	}
	return table
}

func (t UrgencyTable) Lookup(name string) int {
	if u, ok := t[name]; ok {
		return u
	}
	return fallbackUrgency
}

// Defaults is the seed collection used when no tags have been stored yet.
func Defaults() []Tag {
	return []Tag{
		{ID: "tag-1", Name: "Low Priority", Urgency: 1},
		{ID: "tag-2", Name: "Mid Priority", Urgency: 5},
		{ID: "tag-3", Name: "High Priority", Urgency: 9},
		{ID: "tag-4", Name: "Follow Up", Urgency: 10},
		{ID: "tag-5", Name: "Project", Urgency: 3},
		{ID: "tag-6", Name: "Big Project", Urgency: 2},
		{ID: "tag-7", Name: "Low Difficulty", Urgency: 9},
		{ID: "tag-8", Name: "Mid Difficulty", Urgency: 5},
		{ID: "tag-9", Name: "High Difficulty", Urgency: 1},
		{ID: "tag-10", Name: "R&D", Urgency: 1},
	}
}
