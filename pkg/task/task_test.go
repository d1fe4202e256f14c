package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNextOccurrence(t *testing.T) {
	start := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		details string
		want    time.Time
	}{
		{details: Daily, want: start.AddDate(0, 0, 1)},
		{details: Weekly, want: start.AddDate(0, 0, 7)},
		{details: Monthly, want: time.Date(2026, time.February, 5, 8, 0, 0, 0, time.UTC)},
		{details: "Fortnightly", want: start},
		{details: "", want: start},
	}
	for _, tc := range tests {
		t.Run(tc.details, func(t *testing.T) {
			tk := &Task{IsRecurring: true, RecurringDetails: tc.details, StartDate: Timestamp{start}}
			if got := tk.NextOccurrence(); !got.Equal(tc.want) {
				t.Fatalf("NextOccurrence(%q) = %s, want %s", tc.details, got, tc.want)
			}
		})
	}
}

func TestNextOccurrenceMonthlyOverflowNormalizes(t *testing.T) {
	// Jan 31 + 1 month lands in early March, same normalization the stored
	// dates have always had.
	tk := &Task{IsRecurring: true, RecurringDetails: Monthly,
		StartDate: Timestamp{time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)}}
	got := tk.NextOccurrence()
	if got.Month() != time.March || got.Day() != 3 {
		t.Fatalf("expected March 3, got %s", got)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	orig := Timestamp{time.Date(2026, time.June, 1, 15, 4, 5, 0, time.UTC)}
	data, err := json.Marshal(&orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(orig.Time) {
		t.Fatalf("round trip changed time: %s != %s", back, orig)
	}
}

func TestTimestampZero(t *testing.T) {
	var zero Timestamp
	data, err := json.Marshal(&zero)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("zero timestamp should marshal to empty string, got %s", data)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero time, got %s", back)
	}
}

func TestTaskJSONShape(t *testing.T) {
	tk := &Task{
		ID:               "id-1",
		Title:            "Water plants",
		BucketID:         "bucket-1",
		Tags:             []string{"Low Priority"},
		IsRecurring:      true,
		RecurringDetails: Weekly,
		StartDate:        Timestamp{time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)},
		Notes:            "back porch too",
	}
	data, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Task
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != tk.ID || back.Title != tk.Title || back.BucketID != tk.BucketID ||
		back.RecurringDetails != tk.RecurringDetails || back.Notes != tk.Notes ||
		!back.StartDate.Equal(tk.StartDate.Time) || len(back.Tags) != 1 {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestClone(t *testing.T) {
	orig := &Task{ID: "x", Tags: []string{"a", "b"}}
	cp := orig.Clone()
	cp.Tags[0] = "mutated"
	if orig.Tags[0] != "a" {
		t.Fatal("clone shares tag storage with original")
	}
}
