// Package quiz asks how many copies of a rank are still unseen.
package quiz

import (
	"math/rand/v2"

	"github.com/palemoky/landlord-trainer/internal/game/card"
)

// PointsPerCorrect is awarded for each correct answer.
const PointsPerCorrect = 10

// MaxGuess is the largest count a rank can have left.
const MaxGuess = 4

// DefaultPool weights jokers, 2s and aces over the other called ranks.
var DefaultPool = []card.Rank{
	card.RankRedJoker, card.RankBlackJoker,
	card.Rank2, card.Rank2,
	card.RankA, card.RankA,
	card.RankK, card.Rank7, card.Rank10, card.RankJ, card.RankQ,
}

// DefaultWeightedProbability is how often the weighted pool is used.
const DefaultWeightedProbability = 0.7

// Picker samples the rank to ask about.
type Picker struct {
	Pool                []card.Rank
	WeightedProbability float64
}

// NewPicker returns a picker over DefaultPool.
func NewPicker() Picker {
	return Picker{Pool: DefaultPool, WeightedProbability: DefaultWeightedProbability}
}

// Pick draws from the weighted pool with WeightedProbability, otherwise
// uniformly from all ranks. A nil rng uses the global source.
func (p Picker) Pick(rng *rand.Rand) card.Rank {
	float := rand.Float64
	intN := rand.IntN
	if rng != nil {
		float = rng.Float64
		intN = rng.IntN
	}

	if len(p.Pool) > 0 && float() < p.WeightedProbability {
		return p.Pool[intN(len(p.Pool))]
	}
	return card.AllRanks[intN(card.NumRanks)]
}

// Quiz is one open question. Expected is frozen when the quiz is presented.
type Quiz struct {
	Rank     card.Rank
	Expected int
}

// Open presents rank r against the current remaining counts.
func Open(r card.Rank, remaining card.Counts) Quiz {
	return Quiz{Rank: r, Expected: remaining.Get(r)}
}

// Check reports whether guess is the frozen answer. Out-of-range guesses are
// simply wrong.
func (q Quiz) Check(guess int) bool {
	return guess == q.Expected
}

// Board is the running score across quizzes.
type Board struct {
	Score    int
	Streak   int
	Answered int
	Correct  int
}

// Apply folds one answer into the board.
func (b Board) Apply(correct bool) Board {
	b.Answered++
	if correct {
		b.Score += PointsPerCorrect
		b.Streak++
		b.Correct++
	} else {
		b.Streak = 0
	}
	return b
}
