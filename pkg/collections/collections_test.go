package collections_test

import (
	"testing"

	"github.com/alkime/creatoros/pkg/collections"

	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("basic types", func(t *testing.T) {
		strs := []string{"a", "bb", "ccc"}
		lengths := collections.Apply(strs, func(s string) int {
			return len(s)
		})

		require.Equal(t, []int{1, 2, 3}, lengths)
	})

	t.Run("empty input", func(t *testing.T) {
		out := collections.Apply([]int{}, func(i int) int { return i })
		require.NotNil(t, out)
		require.Empty(t, out)
	})
}

func TestTake(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		n        int
		expected []int
	}{
		{name: "fewer than n", items: []int{1, 2}, n: 3, expected: []int{1, 2}},
		{name: "exactly n", items: []int{1, 2, 3}, n: 3, expected: []int{1, 2, 3}},
		{name: "more than n", items: []int{1, 2, 3, 4, 5}, n: 3, expected: []int{1, 2, 3}},
		{name: "zero", items: []int{1}, n: 0, expected: []int{}},
		{name: "negative", items: []int{1}, n: -1, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, collections.Take(tt.items, tt.n))
		})
	}
}

func TestFilter(t *testing.T) {
	evens := collections.Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	require.Equal(t, []int{2, 4}, evens)

	none := collections.Filter([]int{1, 3}, func(i int) bool { return i%2 == 0 })
	require.Empty(t, none)
}
