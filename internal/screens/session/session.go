package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/asouza/lorito/internal/catalog"
	"github.com/asouza/lorito/internal/exercise"
	"github.com/asouza/lorito/internal/ledger"
	"github.com/asouza/lorito/internal/router"
	"github.com/asouza/lorito/internal/screen"
	"github.com/asouza/lorito/internal/screens/summary"
	"github.com/asouza/lorito/internal/speech"
	"github.com/asouza/lorito/internal/store"
	"github.com/asouza/lorito/internal/ui/components"
	"github.com/asouza/lorito/internal/ui/layout"
)

// Feedback stays up briefly and then the next exercise loads on its own.
// Quick tests run a touch faster to keep the drill rhythm.
const (
	lessonFeedbackDelay = 900 * time.Millisecond
	quickFeedbackDelay  = 700 * time.Millisecond
)

// Mode selects between a lesson run and a quick test run.
type Mode int

const (
	ModeLesson Mode = iota
	ModeQuick
)

// Deps are the collaborators a session needs.
type Deps struct {
	Ledger   *ledger.Ledger
	Sessions *store.SessionRepo
	Speaker  speech.Speaker
}

// SessionScreen runs a sequence of exercises and folds the outcome into
// the learner profile when the last one is answered.
type SessionScreen struct {
	deps      Deps
	mode      Mode
	lessonID  string
	title     string
	exercises []exercise.Exercise

	index   int
	correct int
	wrong   int

	// Interaction state for the current exercise.
	choiceOpts []string
	choiceSel  int
	input      components.TextInput
	order      *exercise.OrderRound
	match      *exercise.MatchRound
	matchSel   int

	showingFeedback bool
	lastCorrect     bool
	finishing       bool
	speechNotice    bool
	errMsg          string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// NewLesson creates a session over the lesson's exercises in catalog order.
func NewLesson(deps Deps, l catalog.Lesson) *SessionScreen {
	s := &SessionScreen{
		deps:      deps,
		mode:      ModeLesson,
		lessonID:  l.ID,
		title:     l.Title,
		exercises: l.Exercises,
	}
	s.prepare()
	return s
}

// NewQuickTest creates a session over a pre-drawn set of quick questions.
func NewQuickTest(deps Deps, exercises []exercise.Exercise) *SessionScreen {
	s := &SessionScreen{
		deps:      deps,
		mode:      ModeQuick,
		title:     "Teste Rápido",
		exercises: exercises,
	}
	s.prepare()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.exerciseCmds()
}

func (s *SessionScreen) Title() string {
	return s.title
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	ex := s.current()
	if ex == nil || s.showingFeedback {
		return nil
	}
	switch ex.Kind {
	case exercise.KindChoice:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Leave"},
		}
	case exercise.KindOrder:
		return []layout.KeyHint{
			{Key: "←→", Description: "Word"},
			{Key: "Enter", Description: "Pick / submit"},
			{Key: "Backspace", Description: "Undo"},
		}
	case exercise.KindMatch:
		return []layout.KeyHint{
			{Key: "←→↑↓", Description: "Card"},
			{Key: "Enter", Description: "Flip"},
			{Key: "Esc", Description: "Leave"},
		}
	case exercise.KindAudio:
		return []layout.KeyHint{
			{Key: "Ctrl+P", Description: "Listen again"},
			{Key: "Enter", Description: "Answer"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

// current returns the exercise being shown, nil after the last one.
func (s *SessionScreen) current() *exercise.Exercise {
	if s.index < 0 || s.index >= len(s.exercises) {
		return nil
	}
	return &s.exercises[s.index]
}

// prepare sets up the interaction state for the current exercise.
func (s *SessionScreen) prepare() {
	s.choiceOpts = nil
	s.choiceSel = 0
	s.matchSel = 0
	s.order = nil
	s.match = nil
	s.speechNotice = false

	ex := s.current()
	if ex == nil {
		return
	}
	switch ex.Kind {
	case exercise.KindChoice:
		s.choiceOpts = exercise.Shuffle(ex.Options)
	case exercise.KindFill, exercise.KindAudio:
		s.input = components.NewTextInput("Digite a resposta...", 60)
	case exercise.KindOrder:
		s.order = exercise.NewOrderRound(ex.Words)
	case exercise.KindMatch:
		s.match = exercise.NewMatchRound(ex.Pairs)
	}
}

// exerciseCmds returns the startup commands for the current exercise.
func (s *SessionScreen) exerciseCmds() tea.Cmd {
	ex := s.current()
	if ex == nil {
		return s.finish()
	}
	var cmds []tea.Cmd
	switch ex.Kind {
	case exercise.KindFill:
		cmds = append(cmds, s.input.Init())
	case exercise.KindAudio:
		cmds = append(cmds, s.input.Init(), s.speakCmd())
	}
	return tea.Batch(cmds...)
}

// speakCmd plays the current exercise's phrase out loud.
func (s *SessionScreen) speakCmd() tea.Cmd {
	ex := s.current()
	if ex == nil || ex.Speak == nil || s.deps.Speaker == nil {
		return nil
	}
	text, locale := ex.Speak.Text, ex.Speak.Locale
	speaker := s.deps.Speaker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return spokenMsg{Err: speaker.Say(ctx, text, locale)}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case finishedMsg:
		return s.handleFinished(msg)

	case spokenMsg:
		// Playback failure is non-fatal; the phrase stays readable on
		// screen, with a notice so the learner knows why it is silent.
		if msg.Err != nil {
			s.speechNotice = true
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.textActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// textActive reports whether the text input should receive messages.
func (s *SessionScreen) textActive() bool {
	ex := s.current()
	if ex == nil || s.showingFeedback || s.finishing {
		return false
	}
	return ex.Kind == exercise.KindFill || ex.Kind == exercise.KindAudio
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.showingFeedback || s.finishing {
		return s, nil
	}
	ex := s.current()
	if ex == nil {
		return s, nil
	}

	key := msg.String()
	switch ex.Kind {
	case exercise.KindChoice:
		return s.handleChoiceKey(key)
	case exercise.KindFill, exercise.KindAudio:
		return s.handleTextKey(ex, key, msg)
	case exercise.KindOrder:
		return s.handleOrderKey(ex, key)
	case exercise.KindMatch:
		return s.handleMatchKey(key)
	}
	return s, nil
}

func (s *SessionScreen) handleChoiceKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.choiceSel > 0 {
			s.choiceSel--
		}
	case "down", "j":
		if s.choiceSel < len(s.choiceOpts)-1 {
			s.choiceSel++
		}
	case "enter":
		return s.submit(exercise.Submission{Text: s.choiceOpts[s.choiceSel]})
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(s.choiceOpts) {
			s.choiceSel = n - 1
			return s.submit(exercise.Submission{Text: s.choiceOpts[s.choiceSel]})
		}
	}
	return s, nil
}

func (s *SessionScreen) handleTextKey(ex *exercise.Exercise, key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter":
		if s.input.Value() == "" {
			return s, nil
		}
		return s.submit(exercise.Submission{Text: s.input.Value()})
	case "ctrl+p":
		if ex.Kind == exercise.KindAudio {
			return s, s.speakCmd()
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) handleOrderKey(ex *exercise.Exercise, key string) (screen.Screen, tea.Cmd) {
	pool := s.order.Pool()
	switch key {
	case "left", "h":
		if s.choiceSel > 0 {
			s.choiceSel--
		}
	case "right", "l":
		if s.choiceSel < len(pool)-1 {
			s.choiceSel++
		}
	case "backspace":
		if n := len(s.order.Picked()); n > 0 {
			s.order.Undo(n - 1)
			if s.choiceSel >= len(s.order.Pool()) {
				s.choiceSel = len(s.order.Pool()) - 1
			}
		}
	case "enter":
		if len(pool) == 0 {
			return s.submit(s.order.Submission())
		}
		s.order.Pick(s.choiceSel)
		if s.choiceSel >= len(s.order.Pool()) {
			s.choiceSel = len(s.order.Pool()) - 1
		}
		if s.choiceSel < 0 {
			s.choiceSel = 0
		}
	}
	return s, nil
}

func (s *SessionScreen) handleMatchKey(key string) (screen.Screen, tea.Cmd) {
	cards := s.match.Cards()
	switch key {
	case "left", "h", "up", "k":
		if s.matchSel > 0 {
			s.matchSel--
		}
	case "right", "l", "down", "j":
		if s.matchSel < len(cards)-1 {
			s.matchSel++
		}
	case "enter":
		if s.match.Select(s.matchSel) {
			// Board cleared; the whole exercise counts as one correct answer.
			return s.showFeedback(true)
		}
	}
	return s, nil
}

// submit grades the submission and shows feedback.
func (s *SessionScreen) submit(sub exercise.Submission) (screen.Screen, tea.Cmd) {
	ex := s.current()
	if ex == nil {
		return s, nil
	}
	return s.showFeedback(exercise.Grade(*ex, sub))
}

func (s *SessionScreen) showFeedback(correct bool) (screen.Screen, tea.Cmd) {
	s.lastCorrect = correct
	if correct {
		s.correct++
	} else {
		s.wrong++
	}
	s.showingFeedback = true

	delay := lessonFeedbackDelay
	if s.mode == ModeQuick {
		delay = quickFeedbackDelay
	}
	return s, tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.index++
	if s.current() == nil {
		s.finishing = true
		return s, s.finish()
	}
	s.prepare()
	return s, s.exerciseCmds()
}

// finish folds the run into the profile and records it in history.
func (s *SessionScreen) finish() tea.Cmd {
	mode, lessonID := s.mode, s.lessonID
	correct, wrong := s.correct, s.wrong
	led, sessions := s.deps.Ledger, s.deps.Sessions

	return func() tea.Msg {
		ctx := context.Background()

		var (
			profile ledger.LearnerProfile
			result  ledger.SessionResult
			xp      int
			err     error
		)
		if mode == ModeQuick {
			xp = correct * ledger.XPPerQuickPoint
			profile, result, err = led.CompleteQuickTest(ctx, correct)
		} else {
			xp = correct * ledger.XPPerCorrect
			profile, result, err = led.CompleteLesson(ctx, lessonID, correct, wrong)
		}
		if err != nil {
			return finishedMsg{Err: err}
		}

		kind := store.SessionLesson
		if mode == ModeQuick {
			kind = store.SessionQuickTest
		}
		if err := sessions.Append(ctx, store.SessionRecord{
			Kind:     kind,
			LessonID: lessonID,
			Correct:  result.Correct,
			Wrong:    result.Wrong,
			XP:       xp,
		}); err != nil {
			// The profile is already saved at this point; only the
			// history row is missing.
			return finishedMsg{Err: fmt.Errorf("record history: %w", err)}
		}

		return finishedMsg{Profile: profile, Result: result, XP: xp}
	}
}

func (s *SessionScreen) handleFinished(msg finishedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	sum := summary.New(summary.Input{
		Title:   s.title,
		Quick:   s.mode == ModeQuick,
		Result:  msg.Result,
		XP:      msg.XP,
		Streak:  msg.Profile.Streak,
		Hearts:  msg.Profile.Hearts,
		TotalXP: msg.Profile.XP,
	})
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}
