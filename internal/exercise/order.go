package exercise

// OrderRound tracks a word-ordering exercise in progress: a shuffled pool
// of remaining words and the sequence picked so far. The round yields a
// single submission for the whole exercise.
type OrderRound struct {
	pool   []string
	picked []string
}

// NewOrderRound shuffles the word pool and starts with nothing picked.
func NewOrderRound(words []string) *OrderRound {
	return &OrderRound{pool: Shuffle(words)}
}

// Pool returns the words still available to pick.
func (r *OrderRound) Pool() []string {
	return r.pool
}

// Picked returns the sequence assembled so far.
func (r *OrderRound) Picked() []string {
	return r.picked
}

// Pick moves the pool word at index i to the end of the picked sequence.
func (r *OrderRound) Pick(i int) {
	if i < 0 || i >= len(r.pool) {
		return
	}
	r.picked = append(r.picked, r.pool[i])
	r.pool = append(r.pool[:i:i], r.pool[i+1:]...)
}

// Undo returns the picked word at index i to the pool.
func (r *OrderRound) Undo(i int) {
	if i < 0 || i >= len(r.picked) {
		return
	}
	r.pool = append(r.pool, r.picked[i])
	r.picked = append(r.picked[:i:i], r.picked[i+1:]...)
}

// Submission captures the picked sequence for grading.
func (r *OrderRound) Submission() Submission {
	seq := make([]string, len(r.picked))
	copy(seq, r.picked)
	return Submission{Sequence: seq}
}

// Reset reshuffles the pool and clears the picked sequence, as after a
// wrong submission.
func (r *OrderRound) Reset(words []string) {
	r.pool = Shuffle(words)
	r.picked = nil
}
