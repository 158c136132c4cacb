package dice

// Matrix holds the pairwise win probabilities of a Set. Entry (i, j),
// i != j, is the fraction of the 36 face pairs where die i's face is
// strictly greater than die j's face. Ties count toward neither side,
// so (i, j) and (j, i) do not in general sum to 1. The diagonal is 0:
// a die is never played against itself.
type Matrix [][]float64

// Compute enumerates every ordered die pair and every face pair.
// Pure and deterministic; computed once per game.
func Compute(set Set) Matrix {
	m := make(Matrix, len(set))
	for i := range set {
		m[i] = make([]float64, len(set))
		for j := range set {
			if i == j {
				continue
			}
			wins := 0
			for _, a := range set[i] {
				for _, b := range set[j] {
					if a > b {
						wins++
					}
				}
			}
			m[i][j] = float64(wins) / float64(FaceCount*FaceCount)
		}
	}
	return m
}
