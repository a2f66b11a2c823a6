package models

import (
	"errors"
	"fmt"
)

// Source identifies which backend produced an outcome or error.
type Source string

const (
	SourceRelational Source = "relational"
	SourceIndexed    Source = "indexed"
)

// PageSize caps how many records either backend returns per lookup. Totals
// still reflect the full match count.
const PageSize = 10

// ErrInvalidQuery is returned before any backend is contacted.
var ErrInvalidQuery = errors.New("search query must not be empty")

// Record is the wire shape shared by both backends for one corpus entry.
type Record struct {
	ExternalID int    `json:"external_id"`
	Review     string `json:"review"`
	Sentiment  int    `json:"sentiment"`
}

// LookupOutcome is the immutable result of one backend lookup. ElapsedMillis
// covers the backend round-trip only, not serialization to the stream.
type LookupOutcome struct {
	Source        Source
	Records       []Record
	Total         int64
	ElapsedMillis int64
}

// ResultPage is the payload of a successful search event.
type ResultPage struct {
	Data  []Record `json:"data"`
	Total int64    `json:"total"`
}

// SearchEvent is one streamed message: either a result page or a tagged
// backend error, never both. Source is the discriminant.
type SearchEvent struct {
	Source Source      `json:"source"`
	Data   *ResultPage `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Time   int64       `json:"time"`
}

// Failed reports whether the event carries a backend error instead of results.
func (e SearchEvent) Failed() bool {
	return e.Error != ""
}

// BackendError tags a lookup failure with the backend it came from, so a
// caller can tell which half of the comparison broke.
type BackendError struct {
	Source Source
	Cause  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend: %v", e.Source, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// Scoreboard is the running tally of which backend answered first.
type Scoreboard struct {
	Races          int64 `json:"races"`
	RelationalWins int64 `json:"relational_wins"`
	IndexedWins    int64 `json:"indexed_wins"`
}
