package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/router"
)

func testInput() Input {
	return Input{
		Title:   "Saudações",
		Result:  ledger.SessionResult{Correct: 5, Wrong: 1},
		XP:      50,
		Streak:  3,
		Hearts:  4,
		TotalXP: 180,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testInput())
	if s.Title() != "Resultado" {
		t.Errorf("Title = %q, want %q", s.Title(), "Resultado")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testInput())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "+50 XP") {
		t.Error("expected XP line in view")
	}
	if !strings.Contains(view, "5/6") {
		t.Error("expected correct/total line in view")
	}
}

func TestSummaryScreen_MedalShown(t *testing.T) {
	s := New(Input{Result: ledger.SessionResult{Correct: 9, Wrong: 1}})
	if !strings.Contains(s.View(80, 24), "Ouro") {
		t.Error("expected gold medal label at 90% accuracy")
	}
}

func TestSummaryScreen_QuickHidesHearts(t *testing.T) {
	in := testInput()
	in.Quick = true
	if strings.Contains(New(in).View(80, 24), "❤") {
		t.Error("quick test summary must not show hearts")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testInput())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatalf("expected a pop command for key %q", code)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Fatalf("expected PopScreenMsg for key %q", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testInput())
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
