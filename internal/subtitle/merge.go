package subtitle

import "sort"

// Merge combines any number of entry sequences into one sequence ordered by
// start time and renumbered 1..N. The sort is stable, so entries with equal
// start keep their arrival order: all of the first sequence's ties sort
// before the second's. Inputs need not be pre-sorted; empty sequences are
// fine and contribute nothing.
func Merge(seqs ...[]Entry) []Entry {
	total := 0
	for _, seq := range seqs {
		total += len(seq)
	}

	merged := make([]Entry, 0, total)
	for _, seq := range seqs {
		merged = append(merged, CloneAll(seq)...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Start < merged[j].Start
	})

	for i := range merged {
		merged[i].Index = i + 1
	}

	return merged
}
