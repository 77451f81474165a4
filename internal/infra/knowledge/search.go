package knowledge

import (
	"sort"
	"strings"

	"huggiesd/internal/domain"
)

// Lexical scoring weights. These are observable behavior: they decide ranking
// order, so they must stay in sync with what clients were tuned against.
const (
	titleWeight    = 5
	questionWeight = 4
	tagWeight      = 3
	answerWeight   = 1
)

// Searcher ranks knowledge records against a free-text query with a fixed
// lexical heuristic. It holds no state beyond the store reference.
type Searcher struct {
	store *Store
}

// NewSearcher builds a Searcher over the given store.
func NewSearcher(store *Store) *Searcher {
	return &Searcher{store: store}
}

// Search returns up to topN records ordered by descending score, ties broken
// by storage order. Records scoring zero are excluded. An empty query yields
// no results.
func (s *Searcher) Search(query string, topN int) []domain.KnowledgeRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || topN <= 0 {
		return nil
	}
	tokens := strings.Fields(q)

	type hit struct {
		score int
		index int
	}
	var hits []hit
	for i, record := range s.store.All() {
		score := scoreRecord(record, q, tokens)
		if score > 0 {
			hits = append(hits, hit{score: score, index: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > topN {
		hits = hits[:topN]
	}
	out := make([]domain.KnowledgeRecord, 0, len(hits))
	for _, h := range hits {
		out = append(out, s.store.All()[h.index])
	}
	return out
}

// scoreRecord mixes two matching directions: the whole query as a substring
// of title/question, and each tag as a substring of the query.
func scoreRecord(record domain.KnowledgeRecord, q string, tokens []string) int {
	score := 0
	if strings.Contains(strings.ToLower(record.Title), q) {
		score += titleWeight
	}
	if strings.Contains(strings.ToLower(record.Question), q) {
		score += questionWeight
	}
	for _, tag := range record.Tags {
		if strings.Contains(q, strings.ToLower(tag)) {
			score += tagWeight
		}
	}
	answer := strings.ToLower(record.Answer)
	for _, token := range tokens {
		if strings.Contains(answer, token) {
			score += answerWeight
		}
	}
	return score
}
