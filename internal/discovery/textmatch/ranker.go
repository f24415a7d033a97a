package textmatch

import (
	"strings"
	"unicode/utf8"

	"vitrine/internal/domain/entity"
)

const (
	// Query words must be longer than this to count towards word overlap.
	minOverlapWordLen = 2
	// Fuzzy matching only applies to queries longer than this.
	minFuzzyQueryLen = 3
	// Absolute edit distance accepted as a fuzzy hit.
	maxFuzzyDistance = 2
	// Name distance below this fraction of the query length is also a fuzzy hit.
	fuzzyDistanceRatio = 0.3
)

// Ranker scores merchants against a normalized query.
// A Ranker is immutable and safe for concurrent use.
type Ranker struct {
	weights Weights
}

// NewRanker creates a ranker; zero or missing weights fall back to DefaultWeights.
func NewRanker(weights *Weights) *Ranker {
	return &Ranker{weights: *mergeWithDefaults(weights)}
}

// Score returns the relevance of merchant for query, which must already be normalized.
// A score of zero means the merchant does not match.
func (r *Ranker) Score(merchant *entity.Merchant, query string) int {
	if merchant == nil || query == "" {
		return 0
	}

	name := Normalize(merchant.Name)
	tags := normalizeAll(merchant.Tags)

	score := r.nameTier(name, query)

	for _, tag := range tags {
		if strings.Contains(tag, query) {
			score += r.weights.Tag

			break
		}
	}

	if description := Normalize(merchant.Description); description != "" && strings.Contains(description, query) {
		score += r.weights.Description
	}

	score += r.weights.WordOverlap * wordOverlap(Words(name), Words(query))

	if score == 0 && utf8.RuneCountInString(query) > minFuzzyQueryLen {
		score += r.fuzzy(name, tags, query)
	}

	return score
}

func (r *Ranker) nameTier(name, query string) int {
	switch {
	case name == query:
		return r.weights.ExactName
	case strings.HasPrefix(name, query):
		return r.weights.PrefixName
	case strings.Contains(name, query):
		return r.weights.SubstringName
	default:
		return 0
	}
}

// fuzzy awards points for a name within edit distance of the query
// plus points for every tag within edit distance.
func (r *Ranker) fuzzy(name string, tags []string, query string) int {
	score := 0
	queryLen := float64(utf8.RuneCountInString(query))

	if d := Distance(name, query); d <= maxFuzzyDistance || float64(d) < fuzzyDistanceRatio*queryLen {
		score += r.weights.Fuzzy
	}

	for _, tag := range tags {
		if Distance(tag, query) <= maxFuzzyDistance {
			score += r.weights.Fuzzy
		}
	}

	return score
}

// wordOverlap counts query words (longer than minOverlapWordLen) contained in some name word.
func wordOverlap(nameWords, queryWords []string) int {
	matches := 0
	for _, qw := range queryWords {
		if utf8.RuneCountInString(qw) <= minOverlapWordLen {
			continue
		}
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) {
				matches++

				break
			}
		}
	}

	return matches
}

// MatchesCategory reports whether merchant belongs to category.
// The wildcard entity.CategoryAll and the empty category match every merchant;
// otherwise the category must equal, after normalization, one of the merchant's tags or its CategoryID.
func MatchesCategory(merchant *entity.Merchant, category string) bool {
	category = Normalize(category)
	if category == "" || category == entity.CategoryAll {
		return true
	}

	if Normalize(merchant.CategoryID) == category {
		return true
	}

	for _, tag := range merchant.Tags {
		if Normalize(tag) == category {
			return true
		}
	}

	return false
}

func normalizeAll(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		if n := Normalize(v); n != "" {
			normalized = append(normalized, n)
		}
	}

	return normalized
}
