package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNameRequired is returned when onboarding is attempted without a name.
var ErrNameRequired = errors.New("a name is required")

// ProfileStore is the durable key-value collaborator the Ledger writes
// through. Load returns (nil, nil) when no well-formed record exists; the
// Ledger recovers by substituting defaults, never by failing.
type ProfileStore interface {
	Load(ctx context.Context) (*LearnerProfile, error)
	Save(ctx context.Context, p LearnerProfile) error
	Delete(ctx context.Context) error
}

// Ledger owns the learner profile and applies its state transitions.
// Every transition is total: the rules themselves cannot fail, only the
// write through the store can.
type Ledger struct {
	store   ProfileStore
	profile LearnerProfile

	// Now supplies the clock for calendar-day comparisons. Tests override it.
	Now func() time.Time
}

// Open loads the profile (defaulting on absent or malformed data) and runs
// the startup refill reconciliation.
func Open(ctx context.Context, store ProfileStore) (*Ledger, error) {
	l := &Ledger{store: store, profile: Default(), Now: time.Now}

	p, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if p != nil {
		l.profile = *p
		if l.profile.Mastery == nil {
			l.profile.Mastery = make(map[string]LessonMastery)
		}
	}

	if err := l.Reconcile(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// Profile returns a copy of the current profile.
func (l *Ledger) Profile() LearnerProfile {
	p := l.profile
	p.Mastery = make(map[string]LessonMastery, len(l.profile.Mastery))
	for id, m := range l.profile.Mastery {
		p.Mastery[id] = m
	}
	return p
}

// Reconcile refills hearts to the cap on the first call of each calendar
// day. Idempotent: repeated calls on the same day are no-ops.
func (l *Ledger) Reconcile(ctx context.Context) error {
	today := dateString(l.Now())
	if l.profile.LastRefillDate == today {
		return nil
	}
	l.profile.Hearts = MaxHearts
	l.profile.LastRefillDate = today
	return l.save(ctx)
}

// CompleteLesson folds a finished lesson into the profile: XP for correct
// answers, hearts lost for wrong ones, cumulative mastery, and the streak.
// Returns the updated profile and the session summary for display.
func (l *Ledger) CompleteLesson(ctx context.Context, lessonID string, correct, wrong int) (LearnerProfile, SessionResult, error) {
	now := l.Now()

	l.profile.XP += correct * XPPerCorrect

	l.profile.Hearts -= wrong
	if l.profile.Hearts < 0 {
		l.profile.Hearts = 0
	}

	m := l.profile.Mastery[lessonID]
	m.Total += correct + wrong
	m.Correct += correct
	l.profile.Mastery[lessonID] = m

	l.applyStreak(now)
	l.profile.LastPlayedDate = dateString(now)

	result := SessionResult{Correct: correct, Wrong: wrong}
	if err := l.save(ctx); err != nil {
		return l.profile, result, err
	}
	return l.Profile(), result, nil
}

// CompleteQuickTest folds a quick-test score into the profile. Quick tests
// award XP and extend the streak but are not attributed to any lesson, so
// mastery and hearts are untouched.
func (l *Ledger) CompleteQuickTest(ctx context.Context, score int) (LearnerProfile, SessionResult, error) {
	now := l.Now()

	l.profile.XP += score * XPPerQuickPoint
	l.applyStreak(now)
	l.profile.LastPlayedDate = dateString(now)

	result := SessionResult{Correct: score, Wrong: QuickTestLength - score}
	if err := l.save(ctx); err != nil {
		return l.profile, result, err
	}
	return l.Profile(), result, nil
}

// applyStreak implements the shared streak rule. Playing today always
// counts as at least one streak day: a gap resets to 1, never 0.
func (l *Ledger) applyStreak(now time.Time) {
	last := l.profile.LastPlayedDate
	switch {
	case last == "":
		l.profile.Streak = 1
	case last == yesterdayString(now):
		l.profile.Streak++
	case last != dateString(now):
		l.profile.Streak = 1
	}
	// Already played today: streak unchanged.
}

// SetIdentity overwrites the cosmetic fields. The name must be non-empty;
// that is the only validation onboarding performs.
func (l *Ledger) SetIdentity(ctx context.Context, name, avatar string) error {
	if name == "" {
		return ErrNameRequired
	}
	l.profile.Name = name
	if avatar != "" {
		l.profile.Avatar = avatar
	}
	return l.save(ctx)
}

// Reset destroys the stored record and reinitializes the profile, moving
// the learner back to the unregistered state.
func (l *Ledger) Reset(ctx context.Context) error {
	if err := l.store.Delete(ctx); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	l.profile = Default()
	return l.Reconcile(ctx)
}

func (l *Ledger) save(ctx context.Context) error {
	if err := l.store.Save(ctx, l.profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
