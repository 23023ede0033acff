// Package speech derives the spoken line for a play. It only produces text;
// voices and playback belong to the narrator.
package speech

import (
	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/rule"
)

// Pass is spoken when a player does not play.
const Pass = "不要"

// Rocket is spoken for the joker pair.
const Rocket = "王炸"

// BombSuffix ends every bomb line.
const BombSuffix = " 炸弹"

// fallback is spoken for a set of cards that is not a recognised shape.
const fallback = "一手牌"

var rankWords = map[card.Rank]string{
	card.Rank10:         "十",
	card.RankJ:          "钩",
	card.RankQ:          "皮蛋",
	card.RankK:          "K",
	card.RankA:          "尖",
	card.Rank2:          "二",
	card.RankBlackJoker: "小王",
	card.RankRedJoker:   "大王",
}

// RankWord is how a rank is called out at the table.
func RankWord(r card.Rank) string {
	if w, ok := rankWords[r]; ok {
		return w
	}
	return r.String()
}

// ForPlay returns the line for the given play; an empty play is a pass.
func ForPlay(cards []card.Card) string {
	if len(cards) == 0 {
		return Pass
	}
	return ForAnalysis(rule.Analyze(cards), cards[0].Rank)
}

// ForAnalysis builds the line from an already computed classification.
func ForAnalysis(a rule.Analysis, r card.Rank) string {
	word := RankWord(r)
	switch a.Type {
	case rule.Single:
		return word
	case rule.Pair:
		return "对" + word
	case rule.Trio:
		return "三个" + word
	case rule.Bomb:
		return "四个" + word + BombSuffix
	case rule.Rocket:
		return Rocket
	default:
		return fallback
	}
}
