package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the calendar-day format used by every `date` column.
const DateFormat = "2006-01-02"

// NewID generates an entity identifier of the form
// "<prefix>-<unix millis>-<random>". The random fragment comes from a
// UUID so two events in the same millisecond still get distinct IDs.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.New().String()[:8])
}

// Today returns the current local calendar day. Entities capture their
// date at event time; it is never recomputed from the timestamp on read.
func Today() string {
	return time.Now().Format(DateFormat)
}

// DateOf formats an instant as its local calendar day.
func DateOf(t time.Time) string {
	return t.Format(DateFormat)
}
