package ledger

import (
	"context"
	"testing"
	"time"
)

// memStore is an in-memory ProfileStore for tests.
type memStore struct {
	record *LearnerProfile
	saves  int
}

func (s *memStore) Load(ctx context.Context) (*LearnerProfile, error) {
	if s.record == nil {
		return nil, nil
	}
	p := *s.record
	return &p, nil
}

func (s *memStore) Save(ctx context.Context, p LearnerProfile) error {
	s.saves++
	cp := p
	s.record = &cp
	return nil
}

func (s *memStore) Delete(ctx context.Context) error {
	s.record = nil
	return nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func openAt(t *testing.T, store *memStore, today string) *Ledger {
	t.Helper()
	l := &Ledger{store: store, profile: Default(), Now: func() time.Time { return day(today) }}
	p, err := store.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		l.profile = *p
		if l.profile.Mastery == nil {
			l.profile.Mastery = make(map[string]LessonMastery)
		}
	}
	if err := l.Reconcile(context.Background()); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestOpenDefaultsOnAbsentRecord(t *testing.T) {
	store := &memStore{}
	l := openAt(t, store, "2026-08-29")

	p := l.Profile()
	if p.XP != 0 || p.Hearts != MaxHearts || p.Streak != 0 {
		t.Errorf("fresh profile = xp:%d hearts:%d streak:%d", p.XP, p.Hearts, p.Streak)
	}
	if p.Registered() {
		t.Error("fresh profile must be unregistered")
	}
	if p.LastRefillDate != "2026-08-29" {
		t.Errorf("LastRefillDate = %q, want today", p.LastRefillDate)
	}
}

func TestLessonCompletionEndToEnd(t *testing.T) {
	store := &memStore{}
	l := openAt(t, store, "2026-08-29")

	p, res, err := l.CompleteLesson(context.Background(), "L1", 4, 1)
	if err != nil {
		t.Fatal(err)
	}

	if p.XP != 40 {
		t.Errorf("XP = %d, want 40", p.XP)
	}
	if p.Hearts != 4 {
		t.Errorf("Hearts = %d, want 4", p.Hearts)
	}
	if p.Streak != 1 {
		t.Errorf("Streak = %d, want 1", p.Streak)
	}
	if p.LastPlayedDate != "2026-08-29" {
		t.Errorf("LastPlayedDate = %q, want today", p.LastPlayedDate)
	}
	if m := p.Mastery["L1"]; m.Total != 5 || m.Correct != 4 {
		t.Errorf("Mastery[L1] = %+v, want {5 4}", m)
	}
	if res.Correct != 4 || res.Wrong != 1 {
		t.Errorf("result = %+v", res)
	}
	if res.Medal() != MedalSilver {
		t.Errorf("medal = %s, want silver at 80%%", res.Medal())
	}
	if store.record == nil {
		t.Fatal("completion must persist the profile")
	}
}

func TestMasteryAccumulates(t *testing.T) {
	store := &memStore{}
	l := openAt(t, store, "2026-08-29")
	ctx := context.Background()

	if _, _, err := l.CompleteLesson(ctx, "L2", 3, 1); err != nil {
		t.Fatal(err)
	}
	p, _, err := l.CompleteLesson(ctx, "L2", 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	if m := p.Mastery["L2"]; m.Total != 6 || m.Correct != 5 {
		t.Errorf("Mastery[L2] = %+v, want {6 5}", m)
	}
}

func TestStreakRule(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	// Day 1: first ever play.
	l := openAt(t, store, "2026-08-01")
	p, _, _ := l.CompleteLesson(ctx, "L1", 5, 0)
	if p.Streak != 1 {
		t.Fatalf("day 1 streak = %d, want 1", p.Streak)
	}

	// Same day: second completion leaves the streak unchanged.
	p, _, _ = l.CompleteLesson(ctx, "L1", 5, 0)
	if p.Streak != 1 {
		t.Fatalf("same-day streak = %d, want 1", p.Streak)
	}

	// Day 2 (consecutive): +1.
	l = openAt(t, store, "2026-08-02")
	p, _, _ = l.CompleteLesson(ctx, "L1", 5, 0)
	if p.Streak != 2 {
		t.Fatalf("day 2 streak = %d, want 2", p.Streak)
	}

	// Day 3 (consecutive): +1.
	l = openAt(t, store, "2026-08-03")
	p, _, _ = l.CompleteLesson(ctx, "L1", 5, 0)
	if p.Streak != 3 {
		t.Fatalf("day 3 streak = %d, want 3", p.Streak)
	}

	// Skip to day 6: reset to exactly 1, never 0.
	l = openAt(t, store, "2026-08-06")
	p, _, _ = l.CompleteLesson(ctx, "L1", 5, 0)
	if p.Streak != 1 {
		t.Fatalf("post-gap streak = %d, want 1", p.Streak)
	}
}

func TestHeartsClampAndDailyRefill(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	l := openAt(t, store, "2026-08-01")
	p, _, _ := l.CompleteLesson(ctx, "L1", 0, 9)
	if p.Hearts != 0 {
		t.Fatalf("hearts = %d, want clamp at 0", p.Hearts)
	}

	// Same-day reconcile is a no-op.
	if err := l.Reconcile(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Profile().Hearts != 0 {
		t.Fatal("same-day reconcile must not refill")
	}

	// Next day: refilled to exactly 5, idempotently.
	l = openAt(t, store, "2026-08-02")
	if l.Profile().Hearts != MaxHearts {
		t.Fatalf("hearts = %d, want %d after daily refill", l.Profile().Hearts, MaxHearts)
	}
	saves := store.saves
	if err := l.Reconcile(ctx); err != nil {
		t.Fatal(err)
	}
	if store.saves != saves {
		t.Error("repeated same-day reconcile must not write")
	}
}

func TestQuickTest(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	l := openAt(t, store, "2026-08-29")

	p, res, err := l.CompleteQuickTest(ctx, 4)
	if err != nil {
		t.Fatal(err)
	}
	if p.XP != 32 {
		t.Errorf("XP = %d, want 32", p.XP)
	}
	if res.Correct != 4 || res.Wrong != 1 {
		t.Errorf("result = %+v, want {4 1}", res)
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1", p.Streak)
	}
	if len(p.Mastery) != 0 {
		t.Error("quick tests must not touch mastery")
	}
	if p.Hearts != MaxHearts {
		t.Error("quick tests must not touch hearts")
	}
}

func TestXPMonotonicallyNonDecreasing(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	l := openAt(t, store, "2026-08-29")

	prev := 0
	steps := []func() (LearnerProfile, SessionResult, error){
		func() (LearnerProfile, SessionResult, error) { return l.CompleteLesson(ctx, "L1", 0, 5) },
		func() (LearnerProfile, SessionResult, error) { return l.CompleteQuickTest(ctx, 0) },
		func() (LearnerProfile, SessionResult, error) { return l.CompleteLesson(ctx, "L2", 3, 2) },
		func() (LearnerProfile, SessionResult, error) { return l.CompleteQuickTest(ctx, 5) },
	}
	for i, step := range steps {
		p, _, err := step()
		if err != nil {
			t.Fatal(err)
		}
		if p.XP < prev {
			t.Fatalf("step %d: XP decreased %d -> %d", i, prev, p.XP)
		}
		prev = p.XP
	}
}

func TestSetIdentityAndReset(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()
	l := openAt(t, store, "2026-08-29")

	if err := l.SetIdentity(ctx, "", "🦄"); err != ErrNameRequired {
		t.Errorf("empty name: err = %v, want ErrNameRequired", err)
	}
	if err := l.SetIdentity(ctx, "Ana", "🦄"); err != nil {
		t.Fatal(err)
	}
	p := l.Profile()
	if !p.Registered() || p.Name != "Ana" || p.Avatar != "🦄" {
		t.Errorf("after onboarding: %+v", p)
	}

	l.CompleteLesson(ctx, "L1", 4, 1)
	if err := l.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	p = l.Profile()
	if p.Registered() || p.XP != 0 || p.Streak != 0 || len(p.Mastery) != 0 {
		t.Errorf("after reset: %+v", p)
	}
	if p.Hearts != MaxHearts {
		t.Errorf("after reset hearts = %d, want %d", p.Hearts, MaxHearts)
	}
}

func TestMalformedRecordFallsBackToDefault(t *testing.T) {
	// The store contract maps malformed rows to (nil, nil); Open must treat
	// that identically to first run.
	store := &memStore{}
	l := openAt(t, store, "2026-08-29")
	if l.Profile().Hearts != MaxHearts {
		t.Error("malformed/absent record must yield the default profile")
	}
}
