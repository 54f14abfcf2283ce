package mastery

// ModuleMastery is the derived rollup for one module.
type ModuleMastery struct {
	ModuleID         string
	Level            Level
	Lessons          []LessonMastery
	LevelCounts      map[Level]int
	MeanQuizScore    float64 // mean best score over lessons with at least one attempt
	AttemptedLessons int
}

// OverallMastery is the rollup across every module in the catalog.
type OverallMastery struct {
	Level       Level
	Modules     []ModuleMastery
	LevelCounts map[Level]int
}

// CalculateModuleMastery rolls lesson mastery up to a module level.
func (a *Aggregator) CalculateModuleMastery(moduleID string, lessons []LessonMastery) ModuleMastery {
	mm := ModuleMastery{
		ModuleID:    moduleID,
		Level:       LevelNew,
		Lessons:     lessons,
		LevelCounts: make(map[Level]int),
	}

	var quizSum float64
	for _, l := range lessons {
		mm.LevelCounts[l.Level]++
		if l.QuizAttempts > 0 {
			mm.AttemptedLessons++
			quizSum += l.QuizScore
		}
	}
	if mm.AttemptedLessons > 0 {
		mm.MeanQuizScore = quizSum / float64(mm.AttemptedLessons)
	}

	mm.Level = bucketLevels(levelsOf(lessons), mm.MeanQuizScore)
	return mm
}

// CalculateOverallMastery applies the module bucketing rule one level up,
// over the modules themselves. The quiz-score gate uses the mean of the
// modules' own mean quiz scores, weighted by attempted lessons.
func (a *Aggregator) CalculateOverallMastery(modules []ModuleMastery) OverallMastery {
	om := OverallMastery{
		Level:       LevelNew,
		Modules:     modules,
		LevelCounts: make(map[Level]int),
	}

	var quizSum float64
	var attempted int
	levels := make([]Level, len(modules))
	for i, m := range modules {
		om.LevelCounts[m.Level]++
		levels[i] = m.Level
		if m.AttemptedLessons > 0 {
			attempted += m.AttemptedLessons
			quizSum += m.MeanQuizScore * float64(m.AttemptedLessons)
		}
	}
	var meanQuiz float64
	if attempted > 0 {
		meanQuiz = quizSum / float64(attempted)
	}

	om.Level = bucketLevels(levels, meanQuiz)
	return om
}

func levelsOf(lessons []LessonMastery) []Level {
	levels := make([]Level, len(lessons))
	for i, l := range lessons {
		levels[i] = l.Level
	}
	return levels
}

// bucketLevels buckets a set of child levels into a parent level:
// New when every child is New, Mastered when at least 90% are Mastered,
// Proficient when at least 80% are Proficient or better and the mean
// attempted-quiz score is at least 80, Familiar when at least 50% are
// Familiar or better, Learning otherwise.
func bucketLevels(levels []Level, meanQuizScore float64) Level {
	if len(levels) == 0 {
		return LevelNew
	}

	n := float64(len(levels))
	var nonNew, mastered, proficientUp, familiarUp int
	for _, l := range levels {
		if l != LevelNew {
			nonNew++
		}
		if l == LevelMastered {
			mastered++
		}
		if l.AtLeast(LevelProficient) {
			proficientUp++
		}
		if l.AtLeast(LevelFamiliar) {
			familiarUp++
		}
	}

	switch {
	case nonNew == 0:
		return LevelNew
	case float64(mastered)/n >= 0.9:
		return LevelMastered
	case float64(proficientUp)/n >= 0.8 && meanQuizScore >= 80:
		return LevelProficient
	case float64(familiarUp)/n >= 0.5:
		return LevelFamiliar
	default:
		return LevelLearning
	}
}
