package store

import (
	"fmt"
	"strings"
)

// Store is the read-only collection of vet records. It is safe for concurrent
// use because it is never mutated after construction.
type Store struct {
	records []VetRecord
	byRegNo map[string]int
}

// New builds a Store from the given records. Registration numbers must be
// unique; they are the stable identity of a record.
func New(records []VetRecord) (*Store, error) {
	byRegNo := make(map[string]int, len(records))
	for i, rec := range records {
		if rec.RegistrationNo == "" {
			return nil, fmt.Errorf("record %d (%q): missing registration number", i, rec.Name)
		}
		if prev, ok := byRegNo[rec.RegistrationNo]; ok {
			return nil, fmt.Errorf("duplicate registration number %q (records %d and %d)", rec.RegistrationNo, prev, i)
		}
		byRegNo[rec.RegistrationNo] = i
	}
	return &Store{records: records, byRegNo: byRegNo}, nil
}

// All returns every record in dataset order. Callers must not mutate the
// returned slice.
func (s *Store) All() []VetRecord {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get looks up a record by registration number.
func (s *Store) Get(regNo string) (VetRecord, bool) {
	i, ok := s.byRegNo[regNo]
	if !ok {
		return VetRecord{}, false
	}
	return s.records[i], true
}

// FilterOptions narrow the register for directory browsing.
type FilterOptions struct {
	District      string // substring match against the district, either language
	Animal        string // substring match against the treats-animals list
	EmergencyOnly bool
	Query         string // substring match against name, address or services
	Limit         int    // 0 means no limit
}

// Filter returns the records matching every set option, in dataset order.
func (s *Store) Filter(opts FilterOptions) []VetRecord {
	district := strings.ToLower(strings.TrimSpace(opts.District))
	animal := strings.ToLower(strings.TrimSpace(opts.Animal))
	query := strings.ToLower(strings.TrimSpace(opts.Query))

	var out []VetRecord
	for _, rec := range s.records {
		if opts.EmergencyOnly && !rec.Emergency {
			continue
		}
		if district != "" && !strings.Contains(strings.ToLower(rec.District), district) {
			continue
		}
		if animal != "" && !strings.Contains(strings.ToLower(rec.TreatsAnimals), animal) {
			continue
		}
		if query != "" {
			name := strings.ToLower(rec.Name)
			address := strings.ToLower(rec.Address)
			services := strings.ToLower(rec.Services)
			if !strings.Contains(name, query) && !strings.Contains(address, query) && !strings.Contains(services, query) {
				continue
			}
		}
		out = append(out, rec)
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out
}
