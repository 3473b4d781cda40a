package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Apple", "apple"},
		{"apple : is a red fruit", "apple   is a red fruit"},
		{"  Hello, World!  ", "hello  world"},
		{"", ""},
		{" :: ", ""},
		{"Über-cool", "über cool"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Process(tt.input))
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "apple", "apple", 100},
		{"both empty", "", "", 100},
		{"one empty", "apple", "", 0},
		{"one substitution", "abc", "abd", 100 * 2.0 / 3.0},
		{"completely different", "abc", "xyz", 0},
		{"symmetric", "kitten", "sitting", 100 * (1 - 3.0/7.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Ratio(tt.a, tt.b), 0.001)
			assert.InDelta(t, tt.expected, Ratio(tt.b, tt.a), 0.001)
		})
	}
}

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"substring", "red", "apple   is a red fruit", 100},
		{"order independent", "apple   is a red fruit", "red", 100},
		{"both empty", "", "", 100},
		{"empty needle", "", "apple", 0},
		{"prefix overhang", "xap", "apple", 100 * 2.0 / 3.0},
		{"no overlap", "zzz", "apple", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PartialRatio(tt.a, tt.b), 0.001)
		})
	}
}

func TestTokenSortRatio(t *testing.T) {
	assert.InDelta(t, 100, TokenSortRatio("red fruit", "fruit red"), 0.001)
	assert.Less(t, TokenSortRatio("red fruit", "yellow fruit"), 100.0)
}

func TestTokenSetRatio(t *testing.T) {
	assert.InDelta(t, 100, TokenSetRatio("red fruit", "is a red fruit"), 0.001)
	assert.InDelta(t, 0, TokenSetRatio("", "apple"), 0.001)
	assert.Less(t, TokenSetRatio("red apple", "green apple"), 100.0)
	assert.Greater(t, TokenSetRatio("red apple", "green apple"), 0.0)
}

func TestPartialTokenRatio(t *testing.T) {
	assert.InDelta(t, 100, PartialTokenRatio("red", "apple is a red fruit"), 0.001)
	assert.InDelta(t, 0, PartialTokenRatio("apple", ""), 0.001)
	assert.Less(t, PartialTokenRatio("zzz", "apple is a red fruit"), 50.0)
}

func TestWRatio(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		choice   string
		expected float64
	}{
		{"exact", "apple", "apple", 100},
		{"empty query", "", "apple", 0},
		{"empty choice", "apple", "", 0},
		// Short query inside a long choice: partial ratio at 0.9 scale
		{"partial", "red", "apple   is a red fruit", 90},
		{"partial cherry", "red", "cherry   a red fruit", 90},
		// Similar lengths: token ratio at 0.95 scale beats plain ratio
		{"reordered words", "fruit red", "red fruit", 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, WRatio(tt.query, tt.choice), 0.001)
		})
	}
}

func TestWRatio_LongChoicePenalty(t *testing.T) {
	// Length ratio of 8 or more scales partial matches by 0.6
	score := WRatio("red", "banana   is a yellow fruit and red")
	assert.InDelta(t, 100*0.6, score, 0.001)
}

func TestWRatio_Range(t *testing.T) {
	inputs := []string{"a", "apple", "red fruit", "banana   is a yellow fruit", "zz top"}
	for _, a := range inputs {
		for _, b := range inputs {
			score := WRatio(a, b)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}
