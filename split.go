package unslpk

// indexRange is a half-open interval [start, end) of package entry indices,
// owned by exactly one worker.
type indexRange struct {
	start, end int
}

func (r indexRange) empty() bool {
	return r.start >= r.end
}

// splitRanges partitions [0, total) into workers contiguous ranges. Every
// range has size total/workers or one more, with the larger ranges first,
// so the ranges always cover every index exactly once. Ranges may be empty
// when total < workers.
func splitRanges(total, workers int) []indexRange {
	size := total / workers
	rem := total % workers

	ranges := make([]indexRange, workers)
	start := 0
	for i := range ranges {
		end := start + size
		if i < rem {
			end++
		}
		ranges[i] = indexRange{start: start, end: end}
		start = end
	}
	return ranges
}
