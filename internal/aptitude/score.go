package aptitude

// Score counts the answers that match the answer key. Entries beyond the
// catalog are ignored and missing entries count as wrong.
func Score(answers []int) int {
	score := 0
	for i, a := range answers {
		if i >= len(catalog) {
			break
		}
		if a == catalog[i].Correct {
			score++
		}
	}
	return score
}

// Complete reports whether every question has a valid answer.
func Complete(answers []int) bool {
	if len(answers) != len(catalog) {
		return false
	}
	for i, a := range answers {
		if !ValidAnswer(i, a) {
			return false
		}
	}
	return true
}

// Tier buckets a score into a coarse band used by guidance text.
type Tier string

const (
	TierStrong     Tier = "strong"
	TierSolid      Tier = "solid"
	TierDeveloping Tier = "developing"
)

// TierFor returns the band for score out of Count().
func TierFor(score int) Tier {
	switch {
	case score >= 4:
		return TierStrong
	case score >= 2:
		return TierSolid
	default:
		return TierDeveloping
	}
}
