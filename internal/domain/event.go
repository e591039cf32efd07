package domain

import "time"

// RawRecord is one row of an exported calendar log as produced by the
// tokenizer: column name to cell value. Lookups on missing columns yield "".
type RawRecord map[string]string

// Get returns the value for a column, or "" when the column is absent.
func (r RawRecord) Get(key string) string {
	return r[key]
}

// Event is a single normalized meeting occurrence. One Event is produced
// per raw row; billability filtering happens afterwards on Title.
//
// EndAt >= StartAt is not enforced: swapped columns or meetings crossing
// midnight in the source file yield a negative duration, which downstream
// aggregation sums as-is.
type Event struct {
	Title     string
	StartAt   time.Time
	EndAt     time.Time
	Attendees []string // required attendees, in source order
	StartRaw  string   // original start string, kept for diagnostics
}

// Duration returns the event length. May be negative for malformed rows.
func (e Event) Duration() time.Duration {
	return e.EndAt.Sub(e.StartAt)
}

// Hours returns the event length in fractional hours.
func (e Event) Hours() float64 {
	return e.Duration().Hours()
}
