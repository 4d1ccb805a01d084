package ledger

const (
	// MaxHearts is the life cap; hearts refill to this once per day.
	MaxHearts = 5

	// XPPerCorrect is the experience awarded per correct lesson answer.
	XPPerCorrect = 10

	// XPPerQuickPoint is the experience awarded per quick-test point.
	XPPerQuickPoint = 8

	// QuickTestLength is the fixed number of quick-test questions.
	QuickTestLength = 5

	// DefaultAvatar is the mascot, used until onboarding picks another.
	DefaultAvatar = "🦜"
)

// LessonMastery is the cumulative per-lesson counter pair. It only ever
// grows; lessons never reset it.
type LessonMastery struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// LearnerProfile is the single persisted learner record. The Ledger owns
// it exclusively and is the only component that writes it to storage.
type LearnerProfile struct {
	Name           string                   `json:"name"`
	Avatar         string                   `json:"avatar"`
	XP             int                      `json:"xp"`
	Hearts         int                      `json:"hearts"`
	Streak         int                      `json:"streak"`
	LastPlayedDate string                   `json:"last_played_date"`
	LastRefillDate string                   `json:"last_refill_date"`
	Mastery        map[string]LessonMastery `json:"mastery_by_lesson"`
}

// Default is the first-run profile: full hearts, everything else zero.
func Default() LearnerProfile {
	return LearnerProfile{
		Avatar:  DefaultAvatar,
		Hearts:  MaxHearts,
		Mastery: make(map[string]LessonMastery),
	}
}

// Registered reports whether onboarding has completed. A profile moves
// from Unregistered to Registered exactly once, by setting a name; only
// an explicit reset moves it back.
func (p LearnerProfile) Registered() bool {
	return p.Name != ""
}

// MasteryPercent returns the display percentage for a lesson, 0 when the
// lesson has never been played.
func (p LearnerProfile) MasteryPercent(lessonID string) int {
	m, ok := p.Mastery[lessonID]
	if !ok || m.Total == 0 {
		return 0
	}
	pct := m.Correct * 100 / m.Total
	if pct > 100 {
		pct = 100
	}
	return pct
}
