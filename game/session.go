// Package game sequences one duel: the probability matrix for display,
// the coin-flip for move order, two die selections, two throws through
// the agreement protocol, and the resolution. The whole game is
// synchronous and owned by a single Session value; nothing survives it
// except the audit transcript handed to the caller.
package game

import (
	"fmt"
	"log/slog"

	"github.com/OlimovAlibek/iTransition/dice"
	"github.com/OlimovAlibek/iTransition/fairness"
	"github.com/OlimovAlibek/iTransition/random"
	"github.com/OlimovAlibek/iTransition/transcript"
)

// Player identifies one of the two parties.
type Player int

const (
	Human Player = iota
	Opponent
)

func (p Player) String() string {
	if p == Human {
		return "you"
	}
	return "opponent"
}

func (p Player) other() Player {
	if p == Human {
		return Opponent
	}
	return Human
}

// Verdict is the final outcome of a duel.
type Verdict int

const (
	HumanWins Verdict = iota
	OpponentWins
	Draw
)

func (v Verdict) String() string {
	switch v {
	case HumanWins:
		return "you win"
	case OpponentWins:
		return "you lose"
	default:
		return "draw"
	}
}

// Result is the resolved duel: who moved first, which dice were taken
// and what they showed.
type Result struct {
	Verdict      Verdict
	FirstMover   Player
	HumanDie     int // die index
	OpponentDie  int
	HumanFace    int // face value thrown
	OpponentFace int
}

// Options configures a Session. Decisions is required; everything else
// has a production default.
type Options struct {
	Decisions DecisionSource
	Observer  Observer      // default NopObserver
	Source    random.Source // default random.NewSecure()
	Policy    Policy        // default UniformPolicy
	KeySize   int           // default fairness.MinKeySize
	Logger    *slog.Logger  // default slog.Default()
}

// Session owns the state of one duel. Create with NewSession, run
// once with Run, then discard.
type Session struct {
	set       dice.Set
	matrix    dice.Matrix
	decisions DecisionSource
	observer  Observer
	src       random.Source
	policy    Policy
	keySize   int
	log       *slog.Logger
	trail     *transcript.Transcript

	used   []int // die indices taken so far, grows to exactly 2
	chosen map[Player]int
	thrown map[Player]int
}

// NewSession validates the dice set and prepares a session.
func NewSession(set dice.Set, opts Options) (*Session, error) {
	if len(set) < dice.MinDice {
		return nil, &dice.ConfigError{Reason: fmt.Sprintf("at least %d dice are required, got %d", dice.MinDice, len(set))}
	}
	if opts.Decisions == nil {
		return nil, fmt.Errorf("game: a decision source is required")
	}
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	if opts.Source == nil {
		opts.Source = random.NewSecure()
	}
	if opts.Policy == nil {
		opts.Policy = UniformPolicy{}
	}
	if opts.KeySize == 0 {
		opts.KeySize = fairness.MinKeySize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Session{
		set:       set,
		decisions: opts.Decisions,
		observer:  opts.Observer,
		src:       opts.Source,
		policy:    opts.Policy,
		keySize:   opts.KeySize,
		log:       opts.Logger,
		trail:     transcript.New(),
		chosen:    make(map[Player]int),
		thrown:    make(map[Player]int),
	}, nil
}

// Transcript exposes the audit chain of the session's fairness rounds.
func (s *Session) Transcript() *transcript.Transcript { return s.trail }

// Matrix returns the probability matrix, available after Run started.
func (s *Session) Matrix() dice.Matrix { return s.matrix }

func (s *Session) unused() []int {
	var free []int
outer:
	for i := range s.set {
		for _, u := range s.used {
			if u == i {
				continue outer
			}
		}
		free = append(free, i)
	}
	return free
}

func (s *Session) take(p Player, index int) {
	s.used = append(s.used, index)
	s.chosen[p] = index
	s.observer.DieChosen(p, index, s.set[index])
}
