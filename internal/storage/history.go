package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/leaflet/internal/trace"
)

// HistoryKey is the document holding past visualization requests.
const HistoryKey = "algorithm_history"

// RecentLimit is how many entries the history view shows.
const RecentLimit = 10

// TimestampLayout is the on-disk and display format of history timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp marshals as "YYYY-MM-DD HH:MM:SS" and also reads RFC 3339.
type Timestamp time.Time

func (t Timestamp) Time() time.Time { return time.Time(t) }

func (t Timestamp) String() string { return time.Time(t).Format(TimestampLayout) }

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{TimestampLayout, time.RFC3339Nano} {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*t = Timestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("storage: bad timestamp %q", s)
}

// HistoryEntry records one visualization request. The core never interprets
// entries; they are replayed through the CLI.
type HistoryEntry struct {
	ID        string          `json:"id,omitempty"`
	Algorithm trace.Algorithm `json:"algorithm"`
	Input     []float64       `json:"data"`
	Timestamp Timestamp       `json:"timestamp"`
}

func (e HistoryEntry) Label() string {
	return fmt.Sprintf("%s - %s", e.Algorithm, e.Timestamp)
}

// History is the append-only visualization log kept in a Store.
type History struct {
	store *Store
	now   func() time.Time
	newID func() string
}

func NewHistory(store *Store) *History {
	return &History{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Record appends a new entry for a finished visualization request.
func (h *History) Record(a trace.Algorithm, input []float64) (HistoryEntry, error) {
	data := make([]float64, len(input))
	copy(data, input)
	e := HistoryEntry{
		ID:        h.newID(),
		Algorithm: a,
		Input:     data,
		Timestamp: Timestamp(h.now().Truncate(time.Second)),
	}
	return e, h.Append(e)
}

func (h *History) Append(e HistoryEntry) error {
	entries := h.All()
	entries = append(entries, e)
	return h.store.Save(HistoryKey, entries)
}

// All returns every entry, oldest first. A missing or corrupt log is empty.
func (h *History) All() []HistoryEntry {
	var entries []HistoryEntry
	if !h.store.Load(HistoryKey, &entries) {
		return []HistoryEntry{}
	}
	return entries
}

// Recent returns at most n of the newest entries, oldest first.
func (h *History) Recent(n int) []HistoryEntry {
	entries := h.All()
	if n >= 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries
}

// Find resolves ref as an id, a unique id prefix, or a 1-based position.
func (h *History) Find(ref string) (HistoryEntry, error) {
	ref = strings.TrimSpace(ref)
	entries := h.All()

	var matches []HistoryEntry
	for _, e := range entries {
		if e.ID == ref {
			return e, nil
		}
		if ref != "" && strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return HistoryEntry{}, fmt.Errorf("%w: %q", ErrAmbiguous, ref)
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(entries) {
		return entries[n-1], nil
	}
	return HistoryEntry{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
}
