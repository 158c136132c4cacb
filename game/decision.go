package game

import (
	"errors"

	"github.com/OlimovAlibek/iTransition/dice"
	"github.com/OlimovAlibek/iTransition/fairness"
)

// ErrCancelled is returned by a DecisionSource when the counterpart
// walks away from a prompt. The session aborts mid-transition and no
// result is produced.
var ErrCancelled = errors.New("game: cancelled")

// PromptKind identifies an interactive decision point.
type PromptKind int

const (
	// PromptFirstMove asks for a contribution in {0, 1} to settle who
	// moves first.
	PromptFirstMove PromptKind = iota
	// PromptDie asks to pick one of the unused dice by index.
	PromptDie
	// PromptFace asks for a contribution in [0, Range) toward a throw.
	PromptFace
)

// Prompt describes one decision point. For PromptDie the valid answers
// are the Options; otherwise any value in [0, Range).
type Prompt struct {
	Kind    PromptKind
	Player  Player // whose throw a PromptFace contributes to
	Range   int
	Options []int
}

// DecisionSource supplies the human side of every decision point. The
// console front-end prompts for a token; tests script the answers.
// Implementations must return either a valid answer or an error.
type DecisionSource interface {
	Decide(Prompt) (int, error)
}

// Observer receives the session's narration events. The console
// front-end renders them; tests usually pass NopObserver.
type Observer interface {
	MatrixComputed(set dice.Set, m dice.Matrix)
	CommitmentPublished(purpose string, valueRange int, tag []byte)
	Revealed(purpose string, out fairness.Outcome)
	FirstMoverDecided(p Player)
	DieChosen(p Player, index int, d dice.Die)
	FaceThrown(p Player, face int)
	Resolved(r Result)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) MatrixComputed(dice.Set, dice.Matrix)    {}
func (NopObserver) CommitmentPublished(string, int, []byte) {}
func (NopObserver) Revealed(string, fairness.Outcome)       {}
func (NopObserver) FirstMoverDecided(Player)                {}
func (NopObserver) DieChosen(Player, int, dice.Die)         {}
func (NopObserver) FaceThrown(Player, int)                  {}
func (NopObserver) Resolved(Result)                         {}
