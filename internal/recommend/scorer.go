package recommend

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vetfinder-hk/vetfinder/internal/store"
)

// Scoring weights. Each rule is independent and cumulative.
const (
	nameMatchScore     = 50
	addressMatchScore  = 30
	districtMatchScore = 40
	emergencyScore     = 100
	surgeryScore       = 80
	exoticScore        = 80
	experienceScore    = 30
	tokenMatchScore    = 5

	// experienceYears is the threshold for the long-experience bonus.
	experienceYears = 15

	// yearPivot splits two-digit registration years between 19xx and 20xx.
	yearPivot = 50
)

// defaultReason is attached when a record scored only through the per-token
// fallback, which carries no reason text of its own.
const defaultReason = "Matches your search criteria"

// The register records surgery and exotic-animal capability with these
// Chinese register terms; the gating rules match on them.
const (
	surgeryServiceTerm = "外科"
	exoticAnimalTerm   = "特殊"
)

// Scorer evaluates a single record against a query. The zero value is not
// usable; construct with NewScorer.
type Scorer struct {
	nowFunc func() time.Time
}

// NewScorer creates a Scorer using the wall clock for the experience rule.
func NewScorer() *Scorer {
	return &Scorer{nowFunc: time.Now}
}

// NewScorerAt creates a Scorer with a fixed clock, for deterministic tests.
func NewScorerAt(now time.Time) *Scorer {
	return &Scorer{nowFunc: func() time.Time { return now }}
}

// Score computes the additive heuristic score of rec against query, with an
// ordered list of human-readable reasons for the rules that fired. An empty
// query scores zero.
func (s *Scorer) Score(query string, rec store.VetRecord) (int, []string) {
	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	if lowerQuery == "" {
		return 0, nil
	}

	name := strings.ToLower(rec.Name)
	address := strings.ToLower(rec.Address)
	services := strings.ToLower(rec.Services)
	district := strings.ToLower(rec.District)
	treatsAnimals := strings.ToLower(rec.TreatsAnimals)

	score := 0
	var reasons []string

	// Direct substring matches.
	if strings.Contains(name, lowerQuery) {
		score += nameMatchScore
		reasons = append(reasons, "Name match")
	}
	if strings.Contains(address, lowerQuery) {
		score += addressMatchScore
		reasons = append(reasons, "Location match")
	}
	if strings.Contains(district, lowerQuery) {
		score += districtMatchScore
		reasons = append(reasons, "Located in "+rec.District)
	}

	// Category rules, each gated by a record attribute.
	if hasTrigger(lowerQuery, CategoryEmergency) && rec.Emergency {
		score += emergencyScore
		reasons = append(reasons, "24/7 Emergency Support")
	}
	if hasTrigger(lowerQuery, CategorySurgery) && strings.Contains(services, surgeryServiceTerm) {
		score += surgeryScore
		reasons = append(reasons, "Surgical Specialist")
	}
	if hasTrigger(lowerQuery, CategoryExotic) && strings.Contains(treatsAnimals, exoticAnimalTerm) {
		score += exoticScore
		reasons = append(reasons, "Exotic Animal Specialist")
	}

	// Experience bonus from the registration date's two-digit year.
	if years, ok := s.yearsRegistered(rec.RegistrationDate); ok && years > experienceYears {
		score += experienceScore
		reasons = append(reasons, "Highly experienced (15+ years)")
	}

	// Per-token fallback: +5 for each query token of at least two characters
	// found in name, address or services. Uncapped. Length is in characters,
	// not bytes, so a lone CJK character stays below the threshold.
	for _, token := range strings.Fields(lowerQuery) {
		if utf8.RuneCountInString(token) < 2 {
			continue
		}
		if strings.Contains(name, token) || strings.Contains(address, token) || strings.Contains(services, token) {
			score += tokenMatchScore
		}
	}

	return score, reasons
}

// yearsRegistered parses the trailing two-digit year of a day/month/year
// registration date and returns the full years elapsed since registration.
// Years below the pivot map to 2000+yy, the rest to 1900+yy.
func (s *Scorer) yearsRegistered(regDate string) (int, bool) {
	if !strings.Contains(regDate, "/") {
		return 0, false
	}
	parts := strings.Split(regDate, "/")
	year, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || year <= 0 {
		return 0, false
	}

	fullYear := 1900 + year
	if year < yearPivot {
		fullYear = 2000 + year
	}
	return s.nowFunc().Year() - fullYear, true
}

// ReasonString joins reasons for display, falling back to the default when no
// descriptive rule fired.
func ReasonString(reasons []string) string {
	if len(reasons) == 0 {
		return defaultReason
	}
	return strings.Join(reasons, ", ")
}
