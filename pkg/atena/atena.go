package atena

import (
	"fmt"
	"time"

	"github.com/crimson-sun/atena/internal/export"
	"github.com/crimson-sun/atena/internal/filter"
	"github.com/crimson-sun/atena/internal/model"
	"github.com/crimson-sun/atena/internal/normalize"
	"github.com/crimson-sun/atena/internal/parser"
	"github.com/crimson-sun/atena/internal/providers"
	"github.com/crimson-sun/atena/internal/sjis"
	"github.com/crimson-sun/atena/internal/store"
)

// Session holds the records of one export run. Populate it with Import
// calls, then query and export; it keeps no state between runs and is not
// safe for concurrent imports.
type Session struct {
	store  *store.Store
	master *providers.Master
	now    func() time.Time
}

// New creates a Session. Without options it uses the built-in provider
// master and the wall clock.
func New(opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	master := o.master
	if o.mastersFile != "" {
		m, err := providers.LoadFile(o.mastersFile)
		if err != nil {
			return nil, fmt.Errorf("atena: %w", err)
		}
		master = m
	}

	return &Session{
		store:  store.New(),
		master: master,
		now:    o.now,
	}, nil
}

// ImportFile reads one Shift_JIS export file, parses it, and appends the
// records to the session. Returns the number of records imported. A decode
// failure aborts the import with no partial result.
func (s *Session) ImportFile(path string, meta ImportMeta) (int, error) {
	text, err := sjis.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("atena: could not read file: %w", err)
	}
	return s.ImportText(text, meta), nil
}

// ImportText parses already-decoded text and appends the records.
func (s *Session) ImportText(text string, meta ImportMeta) int {
	records := parser.Parse(text, model.ImportMeta(meta))
	s.store.Append(records)
	return len(records)
}

// Reset discards all imported records.
func (s *Session) Reset() {
	s.store.Replace(nil)
}

// Len returns the number of imported records.
func (s *Session) Len() int {
	return s.store.Len()
}

// Records returns the full imported set.
func (s *Session) Records() []Record {
	return recordsFromModel(s.store.Records())
}

// CountsByISP groups the imported records by normalized provider name.
func (s *Session) CountsByISP() map[string]int {
	return s.store.CountByISP()
}

// CountsByCategory groups the imported records by raw category tag.
func (s *Session) CountsByCategory() map[string]int {
	return s.store.CountByCategory()
}

// Filter returns the subset matching every supplied criterion, in import
// order. Calling it twice with the same criteria yields identical results.
func (s *Session) Filter(c Criteria) []Record {
	return recordsFromModel(filter.Apply(s.store.Records(), criteriaToModel(c)))
}

// ResolveRecipient looks up the mailing recipient for a provider label.
// Returns nil when no master entry matches; that is not an error.
func (s *Session) ResolveRecipient(label string) *Recipient {
	return recipientFromProvider(s.master.Resolve(label))
}

// Recipients lists the provider master in declaration order.
func (s *Session) Recipients() []Recipient {
	all := s.master.All()
	out := make([]Recipient, len(all))
	for i := range all {
		out[i] = *recipientFromProvider(&all[i])
	}
	return out
}

// Webletter renders the mailing document for target over the given records.
// An unresolvable target degrades to raw-label passthrough with empty
// address columns.
func (s *Session) Webletter(records []Record, target string) string {
	return export.Webletter(recordsToModel(records), target, s.master, s.now())
}

// WriteWebletter renders and writes the mailing document. The second
// result reports whether Shift_JIS encoding succeeded (false means the
// UTF-8 BOM fallback was used).
func (s *Session) WriteWebletter(path string, records []Record, target string) (bool, error) {
	return export.WriteFile(path, s.Webletter(records, target))
}

// ReconciliationMap renders the VIPN mapping document for the records.
func (s *Session) ReconciliationMap(records []Record) string {
	return export.VIPNDocument(recordsToModel(records), s.now())
}

// WriteReconciliationMap renders and writes the VIPN mapping document.
func (s *Session) WriteReconciliationMap(path string, records []Record) (bool, error) {
	return export.WriteFile(path, s.ReconciliationMap(records))
}

// VIPN derives the provisional identification number for a record. Pure
// and stable across runs; two records differing only in hostname or import
// metadata share a VIPN.
func VIPN(r Record) string {
	return export.VIPN(recordToModel(r))
}

// NormalizeISP maps a raw provider label to its canonical name.
func NormalizeISP(label string) string {
	return normalize.ISPName(label)
}
