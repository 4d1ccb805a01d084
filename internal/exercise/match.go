package exercise

// Side tells which deck a match card belongs to.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Card is one face in a pair-matching exercise.
type Card struct {
	Label string
	Side  Side
}

// MatchRound tracks a pair-matching exercise: a shuffled spread of cards
// from both decks, the pending selection, and the found set. Found cards
// never become un-found, and the round completes exactly once, when every
// pair has been matched.
type MatchRound struct {
	pairs   []Pair
	cards   []Card
	found   map[int]bool
	pending int
	done    bool
}

// NewMatchRound builds and shuffles the card spread for the given pairs.
func NewMatchRound(pairs []Pair) *MatchRound {
	cards := make([]Card, 0, 2*len(pairs))
	for _, p := range pairs {
		cards = append(cards, Card{Label: p.Left, Side: SideLeft})
	}
	for _, p := range pairs {
		cards = append(cards, Card{Label: p.Right, Side: SideRight})
	}
	return &MatchRound{
		pairs:   pairs,
		cards:   Shuffle(cards),
		found:   make(map[int]bool),
		pending: -1,
	}
}

// Cards returns the shuffled spread.
func (r *MatchRound) Cards() []Card {
	return r.cards
}

// IsFound reports whether the card at index i has been matched.
func (r *MatchRound) IsFound(i int) bool {
	return r.found[i]
}

// IsPending reports whether the card at index i is the pending selection.
func (r *MatchRound) IsPending(i int) bool {
	return r.pending == i
}

// Done reports whether every pair has been matched.
func (r *MatchRound) Done() bool {
	return r.done
}

// Select handles a click on the card at index i. A valid second selection
// (opposite side, labels paired in either orientation) marks both cards
// found; an invalid one records no penalty and makes the clicked card the
// new pending selection. Select returns true exactly once, when the final
// pair is matched.
func (r *MatchRound) Select(i int) bool {
	if r.done || i < 0 || i >= len(r.cards) || r.found[i] {
		return false
	}
	if r.pending < 0 || r.pending == i {
		r.pending = i
		return false
	}

	a, b := r.cards[r.pending], r.cards[i]
	if a.Side != b.Side && r.isPair(a.Label, b.Label) {
		r.found[r.pending] = true
		r.found[i] = true
		r.pending = -1
		if len(r.found) == len(r.cards) {
			r.done = true
			return true
		}
		return false
	}

	r.pending = i
	return false
}

// Submission captures the round outcome for grading.
func (r *MatchRound) Submission() Submission {
	return Submission{Solved: r.done}
}

func (r *MatchRound) isPair(x, y string) bool {
	for _, p := range r.pairs {
		if (p.Left == x && p.Right == y) || (p.Left == y && p.Right == x) {
			return true
		}
	}
	return false
}
