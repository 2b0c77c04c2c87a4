package generation

// Difficulty is the tier requested from the model for an adaptive quiz.
type Difficulty string

// Difficulty tiers.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Score thresholds, inclusive lower bounds.
const (
	HardThreshold   = 80.0
	MediumThreshold = 60.0
)

// DifficultyForScore maps a performance percentage to a tier: 80 and above is
// hard, 60 up to 80 is medium, everything else (including out-of-range and
// NaN input) is easy. The score is not clamped.
func DifficultyForScore(score float64) Difficulty {
	switch {
	case score >= HardThreshold:
		return DifficultyHard
	case score >= MediumThreshold:
		return DifficultyMedium
	default:
		return DifficultyEasy
	}
}
