package exercise

import "testing"

var greetingPairs = []Pair{
	{Left: "Hello", Right: "Olá"},
	{Left: "Goodbye", Right: "Tchau"},
	{Left: "Please", Right: "Por favor"},
	{Left: "Thanks", Right: "Obrigado(a)"},
}

// cardIndex finds a card by label within the shuffled spread.
func cardIndex(t *testing.T, r *MatchRound, label string) int {
	t.Helper()
	for i, c := range r.Cards() {
		if c.Label == label {
			return i
		}
	}
	t.Fatalf("card %q not found", label)
	return -1
}

func TestMatchRoundCompletesOnce(t *testing.T) {
	r := NewMatchRound(greetingPairs)

	completed := 0
	for _, p := range greetingPairs {
		if r.Select(cardIndex(t, r, p.Left)) {
			completed++
		}
		if r.Select(cardIndex(t, r, p.Right)) {
			completed++
		}
	}

	if completed != 1 {
		t.Errorf("round reported success %d times, want exactly 1", completed)
	}
	if !r.Done() {
		t.Error("round must be done after all pairs matched")
	}
	if !Grade(Exercise{Kind: KindMatch, Pairs: greetingPairs}, r.Submission()) {
		t.Error("completed round must grade correct")
	}

	// Further clicks after completion are inert.
	if r.Select(0) {
		t.Error("selections after completion must not report success again")
	}
}

func TestMatchRoundInvalidPairDeselects(t *testing.T) {
	r := NewMatchRound(greetingPairs)

	hello := cardIndex(t, r, "Hello")
	tchau := cardIndex(t, r, "Tchau")

	if r.Select(hello) {
		t.Fatal("first selection must not complete the round")
	}
	// Hello/Tchau are not a pair: no penalty, Tchau becomes pending.
	if r.Select(tchau) {
		t.Fatal("invalid pair must not complete the round")
	}
	if r.IsFound(hello) || r.IsFound(tchau) {
		t.Error("invalid pair must not mark cards found")
	}
	if !r.IsPending(tchau) {
		t.Error("most recent click must become the new pending selection")
	}

	// Tchau + Goodbye is valid from the new pending selection.
	goodbye := cardIndex(t, r, "Goodbye")
	r.Select(goodbye)
	if !r.IsFound(tchau) || !r.IsFound(goodbye) {
		t.Error("valid pair must mark both cards found")
	}
}

func TestMatchRoundFoundIsMonotonic(t *testing.T) {
	r := NewMatchRound(greetingPairs)

	hello := cardIndex(t, r, "Hello")
	ola := cardIndex(t, r, "Olá")
	r.Select(hello)
	r.Select(ola)
	if !r.IsFound(hello) || !r.IsFound(ola) {
		t.Fatal("pair not marked found")
	}

	// Clicking a found card is ignored and can never unmatch it.
	r.Select(hello)
	r.Select(ola)
	if !r.IsFound(hello) || !r.IsFound(ola) {
		t.Error("found cards must stay found")
	}
}

func TestMatchRoundMatchesEitherOrientation(t *testing.T) {
	r := NewMatchRound(greetingPairs)

	// Right-side card first, then its left partner.
	ola := cardIndex(t, r, "Olá")
	hello := cardIndex(t, r, "Hello")
	r.Select(ola)
	r.Select(hello)
	if !r.IsFound(ola) || !r.IsFound(hello) {
		t.Error("pairs must match in either left/right orientation")
	}
}

func TestMatchRoundSameSideIsInvalid(t *testing.T) {
	r := NewMatchRound(greetingPairs)

	hello := cardIndex(t, r, "Hello")
	thanks := cardIndex(t, r, "Thanks")
	r.Select(hello)
	r.Select(thanks)
	if r.IsFound(hello) || r.IsFound(thanks) {
		t.Error("two cards from the same side must not match")
	}
}
