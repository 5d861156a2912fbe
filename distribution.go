package gridword

// Distribution holds, for each of the 26 letters, the fraction of total
// letter occurrences seen across the words passed to the builder's Add
// (see DawgBuilder.Publish for which words are counted). It is
// purely descriptive data owned by the Dawg (spec: "the final, immutable
// pair (node arena, letter frequency distribution)"); building a weighted
// letter bag or a "steal the best letter" heuristic from it is the job of
// an external collaborator and is not implemented here.
type Distribution struct {
	Weights [26]float64
}

// newDistribution computes weights = counts[i]/sum for each letter. If sum
// is zero (no words were ever accepted), all weights are left at zero.
func newDistribution(counts [26]uint32, sum uint32) Distribution {
	var d Distribution
	if sum == 0 {
		return d
	}
	total := float64(sum)
	for i, c := range counts {
		d.Weights[i] = float64(c) / total
	}
	return d
}
