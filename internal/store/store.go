// Package store holds the records of one export session.
//
// A store is populated once per import and read-only afterwards; filtering
// and export never mutate it. Re-importing replaces or appends the full
// set before any query runs — there is no per-record update.
package store

import (
	"sort"

	"github.com/crimson-sun/atena/internal/model"
	"github.com/crimson-sun/atena/internal/normalize"
)

// Store is the in-memory record set for a single session.
type Store struct {
	records []model.Record
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Replace swaps in a freshly parsed record set, discarding the old one.
func (s *Store) Replace(records []model.Record) {
	s.records = records
}

// Append merges another import into the current set. The contract is that
// all imports complete before the first filter or export call.
func (s *Store) Append(records []model.Record) {
	s.records = append(s.records, records...)
}

// Records returns the held record set. Callers must not modify it.
func (s *Store) Records() []model.Record {
	return s.records
}

// Len returns the number of held records.
func (s *Store) Len() int {
	return len(s.records)
}

// CountByISP groups records by normalized provider name. Totals do not
// depend on record order.
func (s *Store) CountByISP() map[string]int {
	counts := make(map[string]int)
	for _, r := range s.records {
		counts[normalize.ISPName(r.ISPName)]++
	}
	return counts
}

// CountByCategory groups records by their raw category tag.
func (s *Store) CountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, r := range s.records {
		counts[r.Category]++
	}
	return counts
}

// Count is one row of a sorted counts view.
type Count struct {
	Name  string
	Total int
}

// SortByTotal orders a counts map by descending total for display, breaking
// ties by name so the view is stable between runs.
func SortByTotal(counts map[string]int) []Count {
	out := toSlice(counts)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SortByName orders a counts map lexically for display.
func SortByName(counts map[string]int) []Count {
	out := toSlice(counts)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func toSlice(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for name, total := range counts {
		out = append(out, Count{Name: name, Total: total})
	}
	return out
}
