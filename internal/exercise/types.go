package exercise

// Kind discriminates the exercise variants.
type Kind string

const (
	KindChoice Kind = "choice"
	KindFill   Kind = "fill"
	KindOrder  Kind = "order"
	KindMatch  Kind = "match"
	KindAudio  Kind = "audio"
)

// Pair is one left/right card pairing in a match exercise.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Speak is the spoken prompt of an audio exercise. Playback is delegated
// to the speech collaborator; it plays no part in grading.
type Speak struct {
	Text   string `json:"text"`
	Locale string `json:"locale"`
}

// AnswerKey is the accepted answer for a text-answer exercise: either a
// single string or any member of a set of acceptable strings.
type AnswerKey struct {
	Single string   `json:"single,omitempty"`
	AnyOf  []string `json:"any_of,omitempty"`
}

// IsSet reports whether the key accepts any of several strings.
func (k AnswerKey) IsSet() bool {
	return len(k.AnyOf) > 0
}

// Exercise is one graded question within a lesson. Kind selects which of
// the optional fields are meaningful.
type Exercise struct {
	Kind    Kind      `json:"kind"`
	Prompt  string    `json:"prompt"`
	Options []string  `json:"options,omitempty"` // choice: presented options
	Words   []string  `json:"words,omitempty"`   // order: word pool
	Order   []string  `json:"order,omitempty"`   // order: expected sequence
	Pairs   []Pair    `json:"pairs,omitempty"`   // match
	Speak   *Speak    `json:"speak,omitempty"`   // audio
	Answer  AnswerKey `json:"answer,omitempty"`  // choice/fill/audio
}
