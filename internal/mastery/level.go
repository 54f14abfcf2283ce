package mastery

// Level is the five-step mastery scale used at card, lesson, module, and
// overall granularity. Levels are totally ordered.
type Level int

const (
	LevelNew Level = iota
	LevelLearning
	LevelFamiliar
	LevelProficient
	LevelMastered
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelNew:
		return "new"
	case LevelLearning:
		return "learning"
	case LevelFamiliar:
		return "familiar"
	case LevelProficient:
		return "proficient"
	case LevelMastered:
		return "mastered"
	default:
		return "unknown"
	}
}

// AtLeast reports whether l is at or above the given level.
func (l Level) AtLeast(other Level) bool {
	return l >= other
}

// Stability thresholds (days) for the card-level buckets.
const (
	familiarStabilityMax   = 7.0
	proficientStabilityMax = 30.0
)
