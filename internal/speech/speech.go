// Package speech reads exercise prompts aloud through whatever TTS
// command the host system provides.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrUnavailable is returned when no TTS command is installed. Listening
// exercises still work; the learner just reads the text instead.
var ErrUnavailable = errors.New("speech: no tts command available")

// Speaker voices a phrase in the given BCP 47 locale.
type Speaker interface {
	Say(ctx context.Context, text, locale string) error
}

// engine is one known TTS command and how to pass it a locale.
type engine struct {
	name string
	args func(text, locale string) []string
}

var engines = []engine{
	{"say", func(text, locale string) []string {
		// macOS say picks the voice from the system; locale is advisory.
		return []string{text}
	}},
	{"espeak-ng", func(text, locale string) []string {
		return []string{"-v", locale, text}
	}},
	{"espeak", func(text, locale string) []string {
		return []string{"-v", locale, text}
	}},
	{"spd-say", func(text, locale string) []string {
		return []string{"-l", locale, text}
	}},
}

// CommandSpeaker shells out to the first TTS command found on PATH.
type CommandSpeaker struct {
	engine engine
}

// NewCommandSpeaker probes PATH for a supported TTS command.
func NewCommandSpeaker() (*CommandSpeaker, error) {
	for _, e := range engines {
		if _, err := exec.LookPath(e.name); err == nil {
			return &CommandSpeaker{engine: e}, nil
		}
	}
	return nil, ErrUnavailable
}

func (s *CommandSpeaker) Say(ctx context.Context, text, locale string) error {
	if text == "" {
		return nil
	}
	cmd := exec.CommandContext(ctx, s.engine.name, s.engine.args(text, locale)...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("speech: %s: %w", s.engine.name, err)
	}
	return nil
}

// Noop is a Speaker that does nothing. Used in tests.
type Noop struct{}

func (Noop) Say(context.Context, string, string) error { return nil }

// Unavailable is a Speaker for hosts without any TTS command. Every Say
// reports ErrUnavailable so callers can show a notice instead of audio.
type Unavailable struct{}

func (Unavailable) Say(context.Context, string, string) error { return ErrUnavailable }

// Best returns a working speaker. When the host has no TTS command it
// returns Unavailable rather than nil, so playback attempts surface
// ErrUnavailable instead of failing silently.
func Best() Speaker {
	if s, err := NewCommandSpeaker(); err == nil {
		return s
	}
	return Unavailable{}
}
