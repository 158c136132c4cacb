package fairness

import (
	"errors"
	"fmt"

	"github.com/OlimovAlibek/iTransition/random"
)

// ErrViolation is returned when a revealed (key, secret) pair does not
// reproduce the published tag. The round must be treated as untrusted.
var ErrViolation = errors.New("fairness: revealed value does not match the published commitment")

// ErrNotContributed is returned when a reveal is attempted before the
// counterpart's contribution is locked in.
var ErrNotContributed = errors.New("fairness: reveal before contribution")

// Outcome is the result of a completed round. Consumed once by the
// caller, never persisted by the package.
type Outcome struct {
	Range        int
	Secret       int
	Contribution int
	Combined     int // (Secret + Contribution) mod Range
	Key          []byte
	Tag          []byte
}

// Round sequences one run of the agreement protocol and enforces the
// commit -> contribute -> reveal ordering.
type Round struct {
	commitment   *Commitment
	contribution int
	contributed  bool
}

// NewRound creates the round's commitment. Its tag and range are
// immediately publishable.
func NewRound(src random.Source, valueRange, keySize int) (*Round, error) {
	c, err := NewCommitment(src, valueRange, keySize)
	if err != nil {
		return nil, err
	}
	return &Round{commitment: c}, nil
}

// Range returns the agreed value range.
func (r *Round) Range() int { return r.commitment.Range() }

// Tag returns the published commitment tag.
func (r *Round) Tag() []byte { return r.commitment.Tag() }

// Contribute locks in the counterpart's value. It must lie in
// [0, range) and can be set only once.
func (r *Round) Contribute(value int) error {
	if r.contributed {
		return errors.New("fairness: contribution already recorded")
	}
	if value < 0 || value >= r.commitment.Range() {
		return fmt.Errorf("fairness: contribution %d outside [0, %d)", value, r.commitment.Range())
	}
	r.contribution = value
	r.contributed = true
	return nil
}

// Resolve reveals the secret, verifies it against the published tag
// and returns the combined outcome. It fails with ErrNotContributed if
// no contribution was recorded, and with ErrViolation if the reveal
// does not reproduce the tag.
func (r *Round) Resolve() (Outcome, error) {
	if !r.contributed {
		return Outcome{}, ErrNotContributed
	}
	secret, key := r.commitment.Reveal()
	tag := r.commitment.Tag()
	if !VerifyTag(key, secret, tag) {
		return Outcome{}, ErrViolation
	}
	return Outcome{
		Range:        r.commitment.Range(),
		Secret:       secret,
		Contribution: r.contribution,
		Combined:     (secret + r.contribution) % r.commitment.Range(),
		Key:          key,
		Tag:          tag,
	}, nil
}
