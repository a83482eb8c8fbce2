package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStopsAtFirstNonEmpty(t *testing.T) {
	snap, err := LoadSnapshot("<html><body></body></html>")
	require.NoError(t, err)

	var calls []string
	strategy := func(name string, out []int) Strategy[int] {
		return Strategy[int]{Name: name, Extract: func(*Snapshot) []int {
			calls = append(calls, name)
			return out
		}}
	}

	res := Run(snap, strategy("a", nil), strategy("b", []int{1, 2}), strategy("c", []int{3}))

	assert.Equal(t, "b", res.Strategy)
	assert.Equal(t, []int{1, 2}, res.Records)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestRunAllEmpty(t *testing.T) {
	snap, err := LoadSnapshot("")
	require.NoError(t, err)

	res := Run(snap, Strategy[string]{Name: "x", Extract: func(*Snapshot) []string { return []string{} }})

	assert.Equal(t, ModeNone, res.Strategy)
	assert.NotNil(t, res.Records)
	assert.Empty(t, res.Records)
}
