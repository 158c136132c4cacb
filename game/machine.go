package game

import (
	"fmt"

	"github.com/OlimovAlibek/iTransition/dice"
	"github.com/OlimovAlibek/iTransition/fairness"
)

// Run plays the duel to completion: matrix, first-move decision, die
// selections, throws, resolution. It returns ErrCancelled (wrapped) if
// the counterpart abandons a prompt, and fairness.ErrViolation if a
// reveal fails verification; in both cases no Result is produced.
func (s *Session) Run() (Result, error) {
	s.matrix = dice.Compute(s.set)
	s.observer.MatrixComputed(s.set, s.matrix)

	first, err := s.decideFirstMover()
	if err != nil {
		return Result{}, err
	}

	order := [2]Player{first, first.other()}
	for _, p := range order {
		if err := s.selectDie(p); err != nil {
			return Result{}, err
		}
	}
	for _, p := range order {
		if err := s.throwFor(p); err != nil {
			return Result{}, err
		}
	}
	return s.resolve(first), nil
}

// decideFirstMover runs the agreement protocol with range 2. A
// combined index of 0 means the counterpart matched the committed bit
// and moves first.
func (s *Session) decideFirstMover() (Player, error) {
	out, err := s.agree(Prompt{Kind: PromptFirstMove, Range: 2}, "first move")
	if err != nil {
		return Human, err
	}
	first := Opponent
	if out.Combined == 0 {
		first = Human
	}
	s.log.Debug("first mover decided", "player", first.String(), "combined", out.Combined)
	s.observer.FirstMoverDecided(first)
	return first, nil
}

func (s *Session) selectDie(p Player) error {
	free := s.unused()
	if p == Opponent {
		s.take(p, s.policy.Choose(s.set, s.matrix, free, s.src))
		return nil
	}
	choice, err := s.decisions.Decide(Prompt{Kind: PromptDie, Player: p, Range: len(s.set), Options: free})
	if err != nil {
		return fmt.Errorf("die selection: %w", err)
	}
	for _, i := range free {
		if i == choice {
			s.take(p, i)
			return nil
		}
	}
	return fmt.Errorf("die selection: index %d is not available", choice)
}

// throwFor rolls p's chosen die: one agreement round with range equal
// to the face count, the combined index selecting the face.
func (s *Session) throwFor(p Player) error {
	index := s.chosen[p]
	purpose := fmt.Sprintf("%s throw (die %d)", p, index)
	out, err := s.agree(Prompt{Kind: PromptFace, Player: p, Range: dice.FaceCount}, purpose)
	if err != nil {
		return err
	}
	face := s.set[index][out.Combined]
	s.thrown[p] = face
	s.observer.FaceThrown(p, face)
	return nil
}

// agree runs one commit/contribute/reveal round and records it in the
// transcript. The tag is published to the observer before the
// contribution is requested; the ordering must not change.
func (s *Session) agree(prompt Prompt, purpose string) (fairness.Outcome, error) {
	round, err := fairness.NewRound(s.src, prompt.Range, s.keySize)
	if err != nil {
		return fairness.Outcome{}, err
	}
	s.observer.CommitmentPublished(purpose, round.Range(), round.Tag())

	contribution, err := s.decisions.Decide(prompt)
	if err != nil {
		return fairness.Outcome{}, fmt.Errorf("%s: %w", purpose, err)
	}
	if err := round.Contribute(contribution); err != nil {
		return fairness.Outcome{}, fmt.Errorf("%s: %w", purpose, err)
	}
	out, err := round.Resolve()
	if err != nil {
		return fairness.Outcome{}, fmt.Errorf("%s: %w", purpose, err)
	}
	if err := s.trail.Append(purpose, round.Range(), out); err != nil {
		return fairness.Outcome{}, fmt.Errorf("%s: %w", purpose, err)
	}
	s.observer.Revealed(purpose, out)
	return out, nil
}

func (s *Session) resolve(first Player) Result {
	r := Result{
		FirstMover:   first,
		HumanDie:     s.chosen[Human],
		OpponentDie:  s.chosen[Opponent],
		HumanFace:    s.thrown[Human],
		OpponentFace: s.thrown[Opponent],
	}
	switch {
	case r.HumanFace > r.OpponentFace:
		r.Verdict = HumanWins
	case r.HumanFace < r.OpponentFace:
		r.Verdict = OpponentWins
	default:
		r.Verdict = Draw
	}
	s.observer.Resolved(r)
	return r
}
