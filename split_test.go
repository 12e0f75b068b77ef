package unslpk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRangesCoverage(t *testing.T) {
	for total := 0; total <= 64; total++ {
		for workers := 1; workers <= 9; workers++ {
			ranges := splitRanges(total, workers)
			require.Len(t, ranges, workers)

			next := 0
			for i, r := range ranges {
				assert.Equal(t, next, r.start, "total=%d workers=%d range=%d", total, workers, i)

				size := r.end - r.start
				assert.GreaterOrEqual(t, size, total/workers, "total=%d workers=%d range=%d", total, workers, i)
				assert.LessOrEqual(t, size, total/workers+1, "total=%d workers=%d range=%d", total, workers, i)

				next = r.end
			}
			require.Equal(t, total, next)
		}
	}
}

func TestSplitRangesLargerRangesFirst(t *testing.T) {
	assert.Equal(t, []indexRange{{0, 3}, {3, 6}, {6, 8}, {8, 10}}, splitRanges(10, 4))
}

func TestSplitRangesSingleWorker(t *testing.T) {
	assert.Equal(t, []indexRange{{0, 7}}, splitRanges(7, 1))
}

func TestSplitRangesEmpty(t *testing.T) {
	ranges := splitRanges(0, 4)
	require.Len(t, ranges, 4)
	for _, r := range ranges {
		assert.True(t, r.empty())
	}
}

func TestSplitRangesFewerEntriesThanWorkers(t *testing.T) {
	assert.Equal(t, []indexRange{{0, 1}, {1, 2}, {2, 2}, {2, 2}}, splitRanges(2, 4))
}
