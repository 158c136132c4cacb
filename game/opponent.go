package game

import (
	"github.com/OlimovAlibek/iTransition/dice"
	"github.com/OlimovAlibek/iTransition/random"
)

// Policy selects the opponent's die from the unused pool.
type Policy interface {
	Choose(set dice.Set, m dice.Matrix, unused []int, src random.Source) int
}

// UniformPolicy picks uniformly among the unused dice. This is the
// baseline behavior: no optimization against the probability matrix.
type UniformPolicy struct{}

func (UniformPolicy) Choose(_ dice.Set, _ dice.Matrix, unused []int, src random.Source) int {
	return unused[src.Intn(len(unused))]
}

// GreedyPolicy picks the die whose worst-case win probability against
// the rest of the pool is highest. Ties go to the lowest index, so the
// choice is deterministic.
type GreedyPolicy struct{}

func (GreedyPolicy) Choose(_ dice.Set, m dice.Matrix, unused []int, _ random.Source) int {
	best := unused[0]
	bestScore := -1.0
	for _, i := range unused {
		score := 2.0 // above any probability
		for _, j := range unused {
			if j == i {
				continue
			}
			if m[i][j] < score {
				score = m[i][j]
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}
