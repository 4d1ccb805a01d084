package profile

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/store"
)

// memStore implements ledger.ProfileStore in memory for testing.
type memStore struct {
	saved *ledger.LearnerProfile
}

func (m *memStore) Load(_ context.Context) (*ledger.LearnerProfile, error) {
	return m.saved, nil
}
func (m *memStore) Save(_ context.Context, p ledger.LearnerProfile) error {
	m.saved = &p
	return nil
}
func (m *memStore) Delete(_ context.Context) error {
	m.saved = nil
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	led, err := ledger.Open(context.Background(), &memStore{})
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	if err := led.SetIdentity(context.Background(), "Lia", "🦜"); err != nil {
		t.Fatalf("set identity: %v", err)
	}
	return led
}

func TestProfileScreen_Title(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	p := New(testLedger(t), st.SessionRepo())
	if p.Title() != "Perfil" {
		t.Errorf("Title = %q, want %q", p.Title(), "Perfil")
	}
}

func TestProfileScreen_ResetClearsHistoryAndProfile(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	sessions := st.SessionRepo()
	if err := sessions.Append(ctx, store.SessionRecord{Kind: store.SessionLesson, LessonID: "l-1", Correct: 3, XP: 30}); err != nil {
		t.Fatalf("append: %v", err)
	}

	led := testLedger(t)
	p := New(led, sessions)

	p.Update(keyPress('r'))
	_, cmd := p.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command leaving the profile screen")
	}

	records, err := sessions.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("history rows = %d after reset, want 0", len(records))
	}
	if led.Profile().Registered() {
		t.Error("profile must be unregistered after reset")
	}
}

func TestProfileScreen_ResetHistoryFailureKeepsProfile(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	sessions := st.SessionRepo()
	_ = st.Close()

	led := testLedger(t)
	p := New(led, sessions)

	p.Update(keyPress('r'))
	_, cmd := p.Update(keyPress('y'))
	if cmd != nil {
		t.Error("a failed reset must stay on the profile screen")
	}
	if p.errMsg == "" {
		t.Fatal("expected the history error to land on screen")
	}
	if !strings.Contains(p.errMsg, "clear history") {
		t.Errorf("errMsg = %q, want a clear-history wrap", p.errMsg)
	}
	if p.mode != modeView {
		t.Errorf("mode = %v after failure, want view", p.mode)
	}
	if !led.Profile().Registered() {
		t.Error("profile must survive a failed history wipe")
	}
	if !strings.Contains(p.View(80, 24), "clear history") {
		t.Error("expected the error in the rendered view")
	}
}
