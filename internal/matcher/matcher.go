// Package matcher ranks registered commands against free-text queries.
package matcher

import (
	"sort"

	"github.com/scificmdr/scificmdr/internal/commands"
	"github.com/scificmdr/scificmdr/internal/logging"
)

// ScoreCutoff is the minimum score a candidate needs to be returned
const ScoreCutoff = 75.0

// Corpus supplies the searchable display texts in a stable order
type Corpus interface {
	Entries() []commands.Entry
}

// Result is one ranked candidate for a query
type Result struct {
	DisplayText string
	Score       float64
	Name        string
}

// Matcher scores every corpus entry against a query
type Matcher struct {
	corpus Corpus
	scorer Scorer
}

// New creates a matcher using WRatio
func New(corpus Corpus) *Matcher {
	return NewWithScorer(corpus, WRatio)
}

// NewWithScorer creates a matcher with a custom similarity metric
func NewWithScorer(corpus Corpus, scorer Scorer) *Matcher {
	return &Matcher{corpus: corpus, scorer: scorer}
}

// Match returns the entries scoring at least ScoreCutoff, best first.
// Equal scores keep corpus order. Results are recomputed on every call.
func (m *Matcher) Match(query string) []Result {
	timer := logging.Start("match")
	results := []Result{}

	q := Process(query)
	if q == "" {
		logging.EndWithCount(timer, 0)
		return results
	}

	for _, entry := range m.corpus.Entries() {
		score := m.scorer(q, Process(entry.DisplayText))
		if score < ScoreCutoff {
			continue
		}
		results = append(results, Result{
			DisplayText: entry.DisplayText,
			Score:       score,
			Name:        entry.Name,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	logging.EndWithCount(timer, len(results))
	return results
}

// DisplayTexts extracts the display texts of results in order
func DisplayTexts(results []Result) []string {
	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.DisplayText
	}
	return texts
}
