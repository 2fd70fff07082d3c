package domain

import (
	"strings"
	"time"
)

// Entry is a user-authored reflective journal entry evidencing one
// attribute within one activity. The four narrative fields follow the
// situation/task/action/result structure.
//
// Submitted transitions false→true exactly once, through the submission
// engine; no operation transitions it back.
type Entry struct {
	ID            int64
	AuthorID      int64
	ActivityID    int64
	AttributeCode string
	Title         string
	Situation     string
	Task          string
	Action        string
	Result        string
	Link          string
	Submitted     bool
	UpdateTime    time.Time
}

// EntryRef is one row of the entry listing.
type EntryRef struct {
	ID        int64
	Title     string
	Submitted bool
}

// EntryDetail is the full entry view including the owning activity's
// display name.
type EntryDetail struct {
	Entry
	ActivityName string
}

// SubmissionTotals aggregates a user's submitted entries: the total count
// and the number of distinct attribute codes among them.
type SubmissionTotals struct {
	Entries    int
	Attributes int
}

// WordCount returns the combined word count of the four narrative fields.
// Words are whitespace-separated tokens; title and link do not count.
func (e *Entry) WordCount() int {
	n := 0
	for _, field := range []string{e.Situation, e.Task, e.Action, e.Result} {
		n += len(strings.Fields(field))
	}
	return n
}
