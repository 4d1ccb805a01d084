package session

import "github.com/asouza/lorito/internal/ledger"

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct{}

// spokenMsg is sent when a TTS playback attempt finishes.
type spokenMsg struct {
	Err error
}

// finishedMsg is sent when the session result has been folded into the
// profile and recorded in history.
type finishedMsg struct {
	Profile ledger.LearnerProfile
	Result  ledger.SessionResult
	XP      int
	Err     error
}
