package recommend

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vetfinder-hk/vetfinder/internal/cache"
	"github.com/vetfinder-hk/vetfinder/internal/observability"
	"github.com/vetfinder-hk/vetfinder/internal/store"
)

// DefaultLimit is the number of recommendations returned when the caller does
// not specify one.
const DefaultLimit = 5

// RecommendedVet pairs a record with the display reason for its ranking.
type RecommendedVet struct {
	store.VetRecord
	Reason string `json:"reason"`
}

// scoredCandidate is the transient pairing of a record with its score during
// a single ranking pass.
type scoredCandidate struct {
	record  store.VetRecord
	score   int
	reasons []string
}

// Ranker scores every record of the register against a query and returns the
// best matches. It is a pure function of (query, limit, register) aside from
// the optional result cache.
type Ranker struct {
	store  *store.Store
	scorer *Scorer
	logger *observability.Logger
	cache  cache.Client
	ttl    time.Duration
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker)

// WithCache enables result caching with the given TTL.
func WithCache(client cache.Client, ttl time.Duration) RankerOption {
	return func(r *Ranker) {
		r.cache = client
		r.ttl = ttl
	}
}

// WithScorer replaces the default scorer, mainly to pin the clock in tests.
func WithScorer(s *Scorer) RankerOption {
	return func(r *Ranker) {
		r.scorer = s
	}
}

// NewRanker creates a Ranker over the given register.
func NewRanker(st *store.Store, logger *observability.Logger, opts ...RankerOption) *Ranker {
	r := &Ranker{
		store:  st,
		scorer: NewScorer(),
		logger: logger.WithComponent("ranker"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend scores every record against query, discards non-matches, sorts
// descending by score (stable, so equal scores keep register order) and
// returns at most limit results with their reasons attached.
func (r *Ranker) Recommend(ctx context.Context, query string, limit int) []RecommendedVet {
	if limit <= 0 {
		return nil
	}

	if cached, ok := r.fromCache(ctx, query, limit); ok {
		return cached
	}

	var candidates []scoredCandidate
	for _, rec := range r.store.All() {
		score, reasons := r.scorer.Score(query, rec)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, scoredCandidate{record: rec, score: score, reasons: reasons})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]RecommendedVet, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, RecommendedVet{
			VetRecord: c.record,
			Reason:    ReasonString(c.reasons),
		})
	}

	r.logger.WithOperation("recommend").Debug().
		Str("query", query).
		Int("limit", limit).
		Int("matches", len(results)).
		Msg("Ranked recommendations")

	r.toCache(ctx, query, limit, results)
	return results
}

func (r *Ranker) fromCache(ctx context.Context, query string, limit int) ([]RecommendedVet, bool) {
	if r.cache == nil {
		return nil, false
	}

	data, err := r.cache.Get(ctx, cacheKey(query, limit))
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			r.logger.Warn().Err(err).Msg("Recommendation cache read failed")
		}
		return nil, false
	}

	var results []RecommendedVet
	if err := json.Unmarshal(data, &results); err != nil {
		r.logger.Warn().Err(err).Msg("Recommendation cache entry corrupt")
		return nil, false
	}
	return results, true
}

func (r *Ranker) toCache(ctx context.Context, query string, limit int, results []RecommendedVet) {
	if r.cache == nil {
		return
	}

	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKey(query, limit), data, r.ttl); err != nil {
		r.logger.Warn().Err(err).Msg("Recommendation cache write failed")
	}
}

func cacheKey(query string, limit int) string {
	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf("rec:%s:%d", hex.EncodeToString(sum[:8]), limit)
}
