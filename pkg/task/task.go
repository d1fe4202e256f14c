package task

// Recurrence values recognized by the due-window rules and by completion.
// Anything else is carried along untouched but never surfaces in the cue.
const (
	Daily   = "Daily"
	Weekly  = "Weekly"
	Monthly = "Monthly"
)

func New(bucketID, title string) *Task {
	return &Task{
		Title:    title,
		BucketID: bucketID,
	}
}

type Task struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	BucketID         string    `json:"bucketId"`
	Tags             []string  `json:"tags"`
	IsRecurring      bool      `json:"isRecurring"`
	RecurringDetails string    `json:"recurringDetails,omitempty"`
	StartDate        Timestamp `json:"startDate"`
	Notes            string    `json:"notes,omitempty"`
}

// NextOccurrence returns the start date advanced by one recurrence period.
// Unrecognized recurrence values leave the date unchanged.
func (t *Task) NextOccurrence() Timestamp {
	switch t.RecurringDetails {
	case Daily:
		return Timestamp{t.StartDate.AddDate(0, 0, 1)}
	case Weekly:
		return Timestamp{t.StartDate.AddDate(0, 0, 7)}
	case Monthly:
		return Timestamp{t.StartDate.AddDate(0, 1, 0)}
	}
	return t.StartDate
}

// Clone returns a deep copy, tags included.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	if len(t.Tags) > 0 {
		cp.Tags = append([]string(nil), t.Tags...)
	}
	return &cp
}
