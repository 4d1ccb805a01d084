package session

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asouza/lorito/internal/catalog"
	"github.com/asouza/lorito/internal/exercise"
	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/router"
	"github.com/asouza/lorito/internal/screen"
	"github.com/asouza/lorito/internal/screens/summary"
	"github.com/asouza/lorito/internal/speech"
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

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps(t *testing.T) Deps {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	led, err := ledger.Open(context.Background(), &memStore{})
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}

	return Deps{Ledger: led, Sessions: st.SessionRepo(), Speaker: speech.Noop{}}
}

func testLesson(exercises ...exercise.Exercise) catalog.Lesson {
	return catalog.Lesson{ID: "l-test", Title: "Teste", Exercises: exercises}
}

func choiceExercise() exercise.Exercise {
	return exercise.Exercise{
		Kind:    exercise.KindChoice,
		Prompt:  "Como se diz 'cachorro' em inglês?",
		Options: []string{"cat", "dog", "bird"},
		Answer:  exercise.AnswerKey{Single: "dog"},
	}
}

func fillExercise() exercise.Exercise {
	return exercise.Exercise{
		Kind:   exercise.KindFill,
		Prompt: "Complete: good ___ (manhã)",
		Answer: exercise.AnswerKey{AnyOf: []string{"morning"}},
	}
}

func TestSessionScreen_Title(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{choiceExercise()})
	if s.Title() != "Teste Rápido" {
		t.Errorf("Title = %q, want %q", s.Title(), "Teste Rápido")
	}
}

func TestSessionScreen_View(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{choiceExercise()})
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

// selectOption points the cursor at the shown option with the given
// label, wherever the shuffle put it.
func selectOption(t *testing.T, s *SessionScreen, label string) {
	t.Helper()
	for i, opt := range s.choiceOpts {
		if opt == label {
			s.choiceSel = i
			return
		}
	}
	t.Fatalf("option %q not shown", label)
}

func TestSessionScreen_ChoiceSubmitCorrect(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{choiceExercise()})

	selectOption(t, s, "dog")
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if !ss.lastCorrect {
		t.Error("expected correct answer for 'dog'")
	}
	if ss.correct != 1 || ss.wrong != 0 {
		t.Errorf("counters = %d/%d, want 1/0", ss.correct, ss.wrong)
	}
	if cmd == nil {
		t.Error("expected a tick command scheduling the next exercise")
	}
}

func TestSessionScreen_ChoiceNumberKeySubmits(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{choiceExercise()})

	// The number key submits the option at that shown position.
	wrongAt := 0
	for i, opt := range s.choiceOpts {
		if opt != "dog" {
			wrongAt = i
			break
		}
	}
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress(rune('1' + wrongAt)))
	ss := scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Error("expected feedback after number-key submit")
	}
	if ss.lastCorrect {
		t.Errorf("expected %q to be wrong", ss.choiceOpts[wrongAt])
	}
}

func TestSessionScreen_ChoiceOptionsShuffledPermutation(t *testing.T) {
	ex := choiceExercise()
	s := NewQuickTest(testDeps(t), []exercise.Exercise{ex})

	if len(s.choiceOpts) != len(ex.Options) {
		t.Fatalf("shown options = %d, want %d", len(s.choiceOpts), len(ex.Options))
	}
	seen := make(map[string]int)
	for _, opt := range s.choiceOpts {
		seen[opt]++
	}
	for _, opt := range ex.Options {
		if seen[opt] != 1 {
			t.Errorf("option %q shown %d times, want 1", opt, seen[opt])
		}
	}
}

func TestSessionScreen_FillSubmitNormalized(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{fillExercise()})

	s.input.Model.SetValue("  MORNING ")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.lastCorrect {
		t.Error("expected normalized fill answer to be correct")
	}
}

func TestSessionScreen_FillEmptySubmitIgnored(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{fillExercise()})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.showingFeedback {
		t.Error("empty input must not submit")
	}
}

func TestSessionScreen_OrderPickAndSubmit(t *testing.T) {
	ex := exercise.Exercise{
		Kind:   exercise.KindOrder,
		Prompt: "Monte a frase",
		Words:  []string{"I", "like", "apples"},
		Order:  []string{"I", "like", "apples"},
	}
	s := NewQuickTest(testDeps(t), []exercise.Exercise{ex})

	// Pick the pool words in the expected sequence, then submit.
	var scr screen.Screen = s
	for _, want := range ex.Order {
		ss := scr.(*SessionScreen)
		for i, w := range ss.order.Pool() {
			if w == want {
				ss.choiceSel = i
				break
			}
		}
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Error("expected feedback after submitting a full sentence")
	}
	if !ss.lastCorrect {
		t.Error("expected the assembled sequence to be correct")
	}
}

func TestSessionScreen_OrderBackspaceUndoes(t *testing.T) {
	ex := exercise.Exercise{
		Kind:  exercise.KindOrder,
		Words: []string{"hola", "amigo"},
		Order: []string{"hola", "amigo"},
	}
	s := NewQuickTest(testDeps(t), []exercise.Exercise{ex})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyBackspace))
	ss := scr.(*SessionScreen)

	if len(ss.order.Picked()) != 0 {
		t.Errorf("picked = %d words after undo, want 0", len(ss.order.Picked()))
	}
	if len(ss.order.Pool()) != 2 {
		t.Errorf("pool = %d words after undo, want 2", len(ss.order.Pool()))
	}
}

func TestSessionScreen_MatchCompletesAsOneCorrect(t *testing.T) {
	ex := exercise.Exercise{
		Kind:   exercise.KindMatch,
		Prompt: "Ligue os pares",
		Pairs:  []exercise.Pair{{Left: "dog", Right: "cachorro"}},
	}
	deps := testDeps(t)
	s := NewLesson(deps, testLesson(ex))

	cardIndex := func(label string) int {
		for i, c := range s.match.Cards() {
			if c.Label == label {
				return i
			}
		}
		t.Fatalf("card %q not on the board", label)
		return -1
	}

	var scr screen.Screen = s
	s.matchSel = cardIndex("dog")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	s.matchSel = cardIndex("cachorro")
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Error("expected feedback once the board is cleared")
	}
	if !ss.lastCorrect {
		t.Error("a cleared board counts as one correct answer")
	}
	if ss.correct != 1 || ss.wrong != 0 {
		t.Errorf("counters = %d/%d, want 1/0", ss.correct, ss.wrong)
	}
}

func TestSessionScreen_FeedbackAdvancesToNext(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{choiceExercise(), fillExercise()})

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(feedbackDoneMsg{})
	ss := scr.(*SessionScreen)

	if ss.index != 1 {
		t.Errorf("index = %d after feedback, want 1", ss.index)
	}
	if ss.showingFeedback {
		t.Error("feedback should be dismissed before the next exercise")
	}
}

func TestSessionScreen_KeysIgnoredDuringFeedback(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{choiceExercise(), fillExercise()})

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	scr, _ = scr.Update(keyPress('1'))
	ss := scr.(*SessionScreen)

	if ss.correct+ss.wrong != 1 {
		t.Errorf("answers counted = %d, want 1", ss.correct+ss.wrong)
	}
}

func TestSessionScreen_QuickFinishFoldsIntoLedger(t *testing.T) {
	deps := testDeps(t)
	s := NewQuickTest(deps, []exercise.Exercise{choiceExercise()})

	selectOption(t, s, "dog")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(feedbackDoneMsg{})
	if cmd == nil {
		t.Fatal("expected a finish command after the last exercise")
	}

	msg := cmd()
	fin, ok := msg.(finishedMsg)
	if !ok {
		t.Fatalf("expected finishedMsg, got %T", msg)
	}
	if fin.Err != nil {
		t.Fatalf("finish: %v", fin.Err)
	}
	if fin.XP != ledger.XPPerQuickPoint {
		t.Errorf("XP = %d, want %d", fin.XP, ledger.XPPerQuickPoint)
	}
	if got := deps.Ledger.Profile().XP; got != ledger.XPPerQuickPoint {
		t.Errorf("ledger XP = %d, want %d", got, ledger.XPPerQuickPoint)
	}

	// The finish message swaps the session for the summary screen.
	_, cmd = scr.Update(fin)
	if cmd == nil {
		t.Fatal("expected a replace command after finishedMsg")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected summary screen, got %T", replace.Screen)
	}
}

func TestSessionScreen_LessonFinishRecordsHistory(t *testing.T) {
	deps := testDeps(t)
	s := NewLesson(deps, testLesson(choiceExercise()))

	selectOption(t, s, "dog")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(feedbackDoneMsg{})
	if cmd == nil {
		t.Fatal("expected a finish command")
	}
	if fin := cmd().(finishedMsg); fin.Err != nil {
		t.Fatalf("finish: %v", fin.Err)
	}

	records, err := deps.Sessions.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("history rows = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.Kind != store.SessionLesson {
		t.Errorf("kind = %q, want %q", rec.Kind, store.SessionLesson)
	}
	if rec.LessonID != "l-test" {
		t.Errorf("lesson ID = %q, want %q", rec.LessonID, "l-test")
	}
	if rec.XP != ledger.XPPerCorrect {
		t.Errorf("XP = %d, want %d", rec.XP, ledger.XPPerCorrect)
	}
}

func TestSessionScreen_AudioFailureShowsNotice(t *testing.T) {
	ex := exercise.Exercise{
		Kind:   exercise.KindAudio,
		Prompt: "Good morning, friend!",
		Speak:  &exercise.Speak{Text: "Good morning, friend!", Locale: "en-US"},
		Answer: exercise.AnswerKey{AnyOf: []string{"good morning friend"}},
	}
	s := NewQuickTest(testDeps(t), []exercise.Exercise{ex})

	var scr screen.Screen = s
	scr, _ = scr.Update(spokenMsg{Err: speech.ErrUnavailable})
	ss := scr.(*SessionScreen)

	if !strings.Contains(ss.View(80, 24), "Áudio indisponível") {
		t.Error("expected an audio-unavailable notice in the view")
	}
}

func TestSessionScreen_AudioSuccessNoNotice(t *testing.T) {
	ex := exercise.Exercise{
		Kind:   exercise.KindAudio,
		Prompt: "Good morning, friend!",
		Speak:  &exercise.Speak{Text: "Good morning, friend!", Locale: "en-US"},
		Answer: exercise.AnswerKey{AnyOf: []string{"good morning friend"}},
	}
	s := NewQuickTest(testDeps(t), []exercise.Exercise{ex})

	var scr screen.Screen = s
	scr, _ = scr.Update(spokenMsg{})
	ss := scr.(*SessionScreen)

	if strings.Contains(ss.View(80, 24), "Áudio indisponível") {
		t.Error("notice must only show after a playback failure")
	}
}

func TestSessionScreen_FinishSurfacesHistoryError(t *testing.T) {
	deps := testDeps(t)
	st, err := store.Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	deps.Sessions = st.SessionRepo()
	_ = st.Close()

	s := NewQuickTest(deps, []exercise.Exercise{choiceExercise()})
	selectOption(t, s, "dog")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(feedbackDoneMsg{})
	if cmd == nil {
		t.Fatal("expected a finish command")
	}

	fin, ok := cmd().(finishedMsg)
	if !ok {
		t.Fatal("expected finishedMsg")
	}
	if fin.Err == nil {
		t.Fatal("expected an error when the history store is closed")
	}
	if !strings.Contains(fin.Err.Error(), "record history") {
		t.Errorf("err = %v, want a record-history wrap", fin.Err)
	}

	scr, _ = scr.Update(fin)
	ss := scr.(*SessionScreen)
	if ss.errMsg == "" {
		t.Error("expected the error to land on screen")
	}
	if !strings.Contains(ss.View(80, 24), "Error") {
		t.Error("expected the error view")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := NewQuickTest(testDeps(t), []exercise.Exercise{choiceExercise()})
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
