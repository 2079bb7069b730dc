package game

import "fmt"

// ScoringMode selects the heuristic used by Score.
type ScoringMode string

const (
	// ScoringNumber counts material only, kings weighing 4 men.
	ScoringNumber ScoringMode = "Number"
	// ScoringNumberAndPotential also rewards men for their progress towards the
	// promotion row, and weighs kings 5 men.
	ScoringNumberAndPotential ScoringMode = "NumberAndPotential"
)

const potentialWeight = 0.05

func ParseScoringMode(s string) (ScoringMode, error) {
	switch ScoringMode(s) {
	case ScoringNumber, ScoringNumberAndPotential:
		return ScoringMode(s), nil
	}
	return "", fmt.Errorf("unknown scoring mode %q", s)
}

func (mode ScoringMode) kingWeight() float64 {
	if mode == ScoringNumberAndPotential {
		return 5
	}
	return 4
}

// Score evaluates b as the ratio of one side's weighted material to the other's. With
// firstBotColor set the ratio is black over white; otherwise the sides are swapped first.
// When the denominator side has no material Score returns Inf, when the numerator side
// has none it returns 0. The two extremes are not symmetric around any neutral value.
func Score(b Board, firstBotColor bool, mode ScoringMode) float64 {
	var whiteMen, whiteKings, blackMen, blackKings float64
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			switch b[i][j] {
			case WhiteMan:
				whiteMen++
				if mode == ScoringNumberAndPotential {
					whiteMen += potentialWeight * float64(Size-1-i)
				}
			case BlackMan:
				blackMen++
				if mode == ScoringNumberAndPotential {
					blackMen += potentialWeight * float64(i)
				}
			case WhiteKing:
				whiteKings++
			case BlackKing:
				blackKings++
			}
		}
	}
	if !firstBotColor {
		whiteMen, blackMen = blackMen, whiteMen
		whiteKings, blackKings = blackKings, whiteKings
	}
	if whiteMen+whiteKings == 0 {
		return Inf
	}
	if blackMen+blackKings == 0 {
		return 0
	}
	k := mode.kingWeight()
	return (blackMen + blackKings*k) / (whiteMen + whiteKings*k)
}

// Evaluator returns an Evaluate function bound to mode.
func Evaluator(mode ScoringMode) Evaluate {
	return func(b Board, firstBotColor bool) float64 {
		return Score(b, firstBotColor, mode)
	}
}
