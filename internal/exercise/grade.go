package exercise

// Submission carries a learner's answer to one exercise. Exactly one field
// is meaningful for a given exercise kind.
type Submission struct {
	Text     string   // choice: the chosen option; fill/audio: typed text
	Sequence []string // order: picked words, in order
	Solved   bool     // match: all pairs were found
}

// Grade decides whether a submission answers the exercise correctly.
// Pure: same inputs always produce the same result. A submission to an
// unknown kind is never correct, and grading never returns an error.
func Grade(ex Exercise, sub Submission) bool {
	switch ex.Kind {
	case KindChoice:
		return gradeChoice(ex, sub.Text)
	case KindFill, KindAudio:
		return matchesKey(ex.Answer, sub.Text)
	case KindOrder:
		return gradeOrder(ex.Order, sub.Sequence)
	case KindMatch:
		return sub.Solved
	}
	return false
}

// gradeChoice compares the chosen option verbatim against a single answer,
// and under normalization against a set-valued answer.
func gradeChoice(ex Exercise, chosen string) bool {
	if ex.Answer.IsSet() {
		return containsNormalized(ex.Answer.AnyOf, chosen)
	}
	return chosen == ex.Answer.Single
}

// matchesKey applies the normalization rule shared by fill and audio
// exercises. An empty submission never matches a non-empty answer.
func matchesKey(key AnswerKey, text string) bool {
	if key.IsSet() {
		return containsNormalized(key.AnyOf, text)
	}
	return Normalize(text) == Normalize(key.Single)
}

// gradeOrder compares sequences element by element, verbatim. Ordering
// exercises never normalize tokens.
func gradeOrder(want, got []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
