package rule

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/landlord-trainer/internal/game/card"
)

var testIDSeq atomic.Int64

// c 创建带唯一 ID 的测试用牌
func c(rank card.Rank, suit card.Suit) card.Card {
	return card.Card{ID: fmt.Sprintf("t-%d", testIDSeq.Add(1)), Rank: rank, Suit: suit}
}

func bj() card.Card { return c(card.RankBlackJoker, card.Joker) }
func rj() card.Card { return c(card.RankRedJoker, card.Joker) }

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    []card.Card
		expected Analysis
	}{
		{"empty", nil, Analysis{Type: Invalid}},
		{"single 3", []card.Card{c(card.Rank3, card.Spade)}, Analysis{Single, 3, 1}},
		{"single red joker", []card.Card{rj()}, Analysis{Single, 17, 1}},
		{"pair of 2s", []card.Card{c(card.Rank2, card.Spade), c(card.Rank2, card.Heart)}, Analysis{Pair, 15, 2}},
		{"rocket", []card.Card{bj(), rj()}, Analysis{Rocket, RocketValue, 2}},
		{"rocket reversed", []card.Card{rj(), bj()}, Analysis{Rocket, RocketValue, 2}},
		{"trio", []card.Card{c(card.RankK, card.Spade), c(card.RankK, card.Heart), c(card.RankK, card.Club)}, Analysis{Trio, 13, 3}},
		{
			"bomb of 3s",
			[]card.Card{c(card.Rank3, card.Spade), c(card.Rank3, card.Heart), c(card.Rank3, card.Diamond), c(card.Rank3, card.Club)},
			Analysis{Bomb, 3, 4},
		},
		{"mismatched pair", []card.Card{c(card.Rank3, card.Spade), c(card.Rank4, card.Heart)}, Analysis{Type: Invalid}},
		{"joker with card", []card.Card{bj(), c(card.Rank3, card.Heart)}, Analysis{Type: Invalid}},
		{"trio with single", []card.Card{c(card.Rank5, card.Spade), c(card.Rank5, card.Heart), c(card.Rank5, card.Club), c(card.Rank6, card.Club)}, Analysis{Type: Invalid}},
		{
			"straight",
			[]card.Card{c(card.Rank3, card.Spade), c(card.Rank4, card.Spade), c(card.Rank5, card.Spade), c(card.Rank6, card.Spade), c(card.Rank7, card.Spade)},
			Analysis{Type: Invalid},
		},
		{
			"five of a kind is not a shape",
			[]card.Card{c(card.Rank9, card.Spade), c(card.Rank9, card.Heart), c(card.Rank9, card.Club), c(card.Rank9, card.Diamond), c(card.Rank9, card.Spade)},
			Analysis{Type: Invalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Analyze(tt.cards)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, Analyze(tt.cards), "analysis is deterministic")
		})
	}
}

func TestHandType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "对子", Pair.String())
	assert.Equal(t, "王炸", Rocket.String())
	assert.Equal(t, "无效", Invalid.String())
	assert.Equal(t, "无效", HandType(42).String())
}

func TestCanBeat(t *testing.T) {
	t.Parallel()

	single5 := Analysis{Single, 5, 1}
	single9 := Analysis{Single, 9, 1}
	pair9 := Analysis{Pair, 9, 2}
	bomb3 := Analysis{Bomb, 3, 4}
	bomb7 := Analysis{Bomb, 7, 4}
	rocket := Analysis{Rocket, RocketValue, 2}
	none := Analysis{Type: Invalid}

	tests := []struct {
		name     string
		next     Analysis
		last     Analysis
		expected bool
	}{
		{"higher single", single9, single5, true},
		{"lower single", single5, single9, false},
		{"equal single", single5, single5, false},
		{"different type", pair9, single5, false},
		{"bomb beats pair", bomb3, pair9, true},
		{"bigger bomb", bomb7, bomb3, true},
		{"smaller bomb", bomb3, bomb7, false},
		{"rocket beats bomb", rocket, bomb7, true},
		{"nothing beats rocket", bomb7, rocket, false},
		{"rocket on rocket", rocket, rocket, false},
		{"anything on empty table", single5, none, true},
		{"invalid never beats", none, single5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CanBeat(tt.next, tt.last))
		})
	}
}
