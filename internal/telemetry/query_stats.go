// Package telemetry keeps in-memory statistics about catalog searches.
// Nothing is persisted or reported externally.
package telemetry

import (
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// TermCount is a search term and how often it was searched.
type TermCount struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

// Snapshot is a point-in-time copy of the query statistics.
type Snapshot struct {
	TotalSearches     int64       `json:"totalSearches"`
	ZeroResultCount   int64       `json:"zeroResultCount"`
	TopTerms          []TermCount `json:"topTerms"`
	ZeroResultQueries []string    `json:"zeroResultQueries"`
	Since             time.Time   `json:"since"`
}

// QueryStats counts search terms in a bounded LRU, so rarely used terms are
// evicted once capacity is reached. Safe for concurrent use.
type QueryStats struct {
	mu sync.RWMutex

	terms           *lru.Cache[string, int64]
	zeroResults     *lru.Cache[string, struct{}]
	totalSearches   int64
	zeroResultCount int64
	since           time.Time
}

// NewQueryStats creates a collector tracking up to capacity distinct terms.
func NewQueryStats(capacity int) *QueryStats {
	if capacity <= 0 {
		capacity = 100
	}
	terms, _ := lru.New[string, int64](capacity)
	zeroResults, _ := lru.New[string, struct{}](capacity)
	return &QueryStats{
		terms:       terms,
		zeroResults: zeroResults,
		since:       time.Now().UTC(),
	}
}

// ExtractTerms lowercases a query and splits it into terms of at least two characters.
func ExtractTerms(query string) []string {
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len(w) >= 2 {
			terms = append(terms, w)
		}
	}
	return terms
}

// Record counts one search. Blank queries are browsing, not searching, and are ignored.
func (s *QueryStats) Record(query string, resultCount int) {
	// keys outlive the caller's buffer
	normalized := strings.Clone(strings.ToLower(strings.TrimSpace(query)))
	if normalized == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalSearches++
	for _, term := range ExtractTerms(normalized) {
		count, _ := s.terms.Get(term)
		s.terms.Add(term, count+1)
	}
	if resultCount == 0 {
		s.zeroResultCount++
		s.zeroResults.Add(normalized, struct{}{})
	}
}

// Snapshot returns the statistics with at most limit top terms, most searched first.
// A limit <= 0 returns all tracked terms.
func (s *QueryStats) Snapshot(limit int) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	terms := make([]TermCount, 0, s.terms.Len())
	for _, term := range s.terms.Keys() {
		if count, ok := s.terms.Peek(term); ok {
			terms = append(terms, TermCount{Term: term, Count: count})
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})
	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}

	return Snapshot{
		TotalSearches:     s.totalSearches,
		ZeroResultCount:   s.zeroResultCount,
		TopTerms:          terms,
		ZeroResultQueries: s.zeroResults.Keys(),
		Since:             s.since,
	}
}
