package game

import "math/rand"

// Outcome is the result of submitting a guess.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeAlreadyResolved
	OutcomeInvalidColor
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeAlreadyResolved:
		return "already resolved"
	case OutcomeInvalidColor:
		return "invalid color"
	default:
		return "unknown"
	}
}

// Session owns the current round and the running score. It is not safe
// for concurrent use; the platform layer drives it from a single event
// loop.
type Session struct {
	rng    *rand.Rand
	params Params
	round  Round
	score  int
}

// NewSession creates a session with its own seeded RNG and starts the
// first round. The seed makes sessions fully deterministic for testing;
// callers wanting variety pass a time-based seed.
func NewSession(p Params, seed int64) *Session {
	s := &Session{
		rng:    rand.New(rand.NewSource(seed)),
		params: p,
	}
	s.StartRound()
	return s
}

// StartRound replaces the current round with a freshly generated one and
// returns a snapshot of it. The score is untouched.
func (s *Session) StartRound() Round {
	s.round = newRound(s.rng, s.params)
	return s.round.snapshot()
}

// Guess resolves a guess against the current round's target.
//
// A malformed color is rejected with OutcomeInvalidColor before any
// comparison. Once a round is correct further guesses report
// OutcomeAlreadyResolved and cannot double-count the score. A wrong
// guess marks the round incorrect but keeps it active, so the player may
// retry the same round until it is guessed or replaced.
func (s *Session) Guess(c Color) Outcome {
	if err := c.Validate(); err != nil {
		return OutcomeInvalidColor
	}
	if s.round.Status == StatusCorrect {
		return OutcomeAlreadyResolved
	}
	if c == s.round.Target {
		s.round.Status = StatusCorrect
		s.score++
		return OutcomeCorrect
	}
	s.round.Status = StatusIncorrect
	return OutcomeIncorrect
}

// Reset zeroes the score and starts a fresh round.
func (s *Session) Reset() {
	s.score = 0
	s.StartRound()
}

// Score returns the running score.
func (s *Session) Score() int {
	return s.score
}

// Round returns a read-only snapshot of the current round.
func (s *Session) Round() Round {
	return s.round.snapshot()
}

// Params returns the generation parameters the session was created with.
func (s *Session) Params() Params {
	return s.params
}
