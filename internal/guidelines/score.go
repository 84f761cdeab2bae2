package guidelines

// ComplianceScore computes the deduction-based score for an
// evaluation. Each triggered rule deducts an equal share of 100,
// derived from the full table size regardless of how many slots carry
// detection logic. The result is clamped to [0,100].
func ComplianceScore(triggered, total int) int {
	if total <= 0 {
		return 100
	}

	score := 100 - triggered*(100/total)
	if score < 0 {
		return 0
	}
	return score
}
