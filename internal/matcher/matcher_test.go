package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scificmdr/scificmdr/internal/commands"
)

func newFruitRegistry(t *testing.T) *commands.Registry {
	t.Helper()

	r := commands.NewRegistry()
	require.NoError(t, r.Register("apple", "is a red fruit"))
	require.NoError(t, r.Register("cherry", "a red fruit"))
	require.NoError(t, r.Register("banana", "is a yellow fruit"))
	return r
}

func names(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestMatch_Red(t *testing.T) {
	m := New(newFruitRegistry(t))

	results := m.Match("red")
	require.Len(t, results, 2)
	assert.Equal(t, []string{"apple", "cherry"}, names(results))
	assert.Equal(t, "apple : is a red fruit", results[0].DisplayText)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, ScoreCutoff)
	}
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestMatch_QueryIsCaseInsensitive(t *testing.T) {
	m := New(newFruitRegistry(t))

	assert.Equal(t, names(m.Match("red")), names(m.Match("RED")))
}

func TestMatch_EmptyRegistry(t *testing.T) {
	m := New(commands.NewRegistry())

	for _, query := range []string{"", "red", "anything at all"} {
		results := m.Match(query)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestMatch_EmptyQuery(t *testing.T) {
	m := New(newFruitRegistry(t))

	// Queries with nothing to compare match nothing
	assert.Empty(t, m.Match(""))
	assert.Empty(t, m.Match("   "))
	assert.Empty(t, m.Match(" : "))
}

func TestMatch_NoCandidate(t *testing.T) {
	m := New(newFruitRegistry(t))

	results := m.Match("zzzzzz")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestMatch_OrderedByScore(t *testing.T) {
	r := commands.NewRegistry()
	require.NoError(t, r.Register("pineapple", "is a yellow and green fruit"))
	require.NoError(t, r.Register("apple", ""))

	results := New(r).Match("apple")
	require.Len(t, results, 2)
	// Exact match on the bare name outranks the earlier registration
	assert.Equal(t, []string{"apple", "pineapple"}, names(results))
	assert.InDelta(t, 100, results[0].Score, 0.001)
}

func TestMatch_TiesKeepRegistrationOrder(t *testing.T) {
	scorer := func(query, choice string) float64 { return 80 }

	r := commands.NewRegistry()
	for _, name := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, r.Register(name, ""))
	}

	results := NewWithScorer(r, scorer).Match("x")
	assert.Equal(t, []string{"delta", "alpha", "charlie", "bravo"}, names(results))
}

func TestMatch_CustomScorerThreshold(t *testing.T) {
	scores := map[string]float64{"a": 74.99, "b": 75, "c": 100}
	scorer := func(query, choice string) float64 { return scores[choice] }

	r := commands.NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, r.Register(name, ""))
	}

	results := NewWithScorer(r, scorer).Match("q")
	assert.Equal(t, []string{"c", "b"}, names(results))
}

func TestMatch_Deregistered(t *testing.T) {
	r := newFruitRegistry(t)
	m := New(r)

	require.Contains(t, names(m.Match("red")), "cherry")
	require.NoError(t, r.Deregister("cherry"))

	assert.Equal(t, []string{"apple"}, names(m.Match("red")))
}

func TestMatch_SeesNewRegistrations(t *testing.T) {
	r := newFruitRegistry(t)
	m := New(r)

	require.NoError(t, r.Register("plum", "a red fruit"))
	assert.Contains(t, names(m.Match("red")), "plum")
}

func TestDisplayTexts(t *testing.T) {
	results := []Result{
		{DisplayText: "apple : is a red fruit", Name: "apple"},
		{DisplayText: "cherry : a red fruit", Name: "cherry"},
	}

	assert.Equal(t, []string{"apple : is a red fruit", "cherry : a red fruit"}, DisplayTexts(results))
	assert.Empty(t, DisplayTexts(nil))
}
