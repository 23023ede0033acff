package rule

import (
	"github.com/palemoky/landlord-trainer/internal/game/card"
)

// HandType 定义牌型。训练器只识别五种基本牌型，其余一律视为无效
type HandType int

const (
	Invalid HandType = iota
	Single           // 单张
	Pair             // 对子
	Trio             // 三张不带
	Bomb             // 炸弹（四张相同）
	Rocket           // 王炸（双王）
)

// RocketValue 王炸的比较值，大于任何普通点数
const RocketValue = 999

// handTypeNames 牌型名称映射表
var handTypeNames = map[HandType]string{
	Single: "单张",
	Pair:   "对子",
	Trio:   "三张",
	Bomb:   "炸弹",
	Rocket: "王炸",
}

func (h HandType) String() string {
	if name, ok := handTypeNames[h]; ok {
		return name
	}
	return "无效"
}

// shapeSize 每种牌型需要的张数
var shapeSize = map[HandType]int{
	Single: 1,
	Pair:   2,
	Trio:   3,
	Bomb:   4,
	Rocket: 2,
}

// Analysis 牌型分析结果
type Analysis struct {
	Type   HandType
	Value  int // 比较大小用的值：同点数牌型为该点数，王炸为 RocketValue
	Length int
}

// IsValid 是否为可出的牌型
func (a Analysis) IsValid() bool {
	return a.Type != Invalid
}

// invalid 无效牌型统一返回零值
var invalid = Analysis{Type: Invalid}

// Analyze 分析一组牌的牌型。空牌或不支持的组合返回 Invalid
func Analyze(cards []card.Card) Analysis {
	n := len(cards)
	if n == 0 {
		return invalid
	}

	if n == 2 && isRocket(cards) {
		return Analysis{Type: Rocket, Value: RocketValue, Length: 2}
	}

	first := cards[0].Value()
	for _, c := range cards[1:] {
		if c.Value() != first {
			return invalid
		}
	}

	switch n {
	case 1:
		return Analysis{Type: Single, Value: first, Length: 1}
	case 2:
		return Analysis{Type: Pair, Value: first, Length: 2}
	case 3:
		return Analysis{Type: Trio, Value: first, Length: 3}
	case 4:
		return Analysis{Type: Bomb, Value: first, Length: 4}
	}
	return invalid
}

// isRocket 两张牌恰好是一张小王一张大王
func isRocket(cards []card.Card) bool {
	var black, red bool
	for _, c := range cards {
		switch c.Rank {
		case card.RankBlackJoker:
			black = true
		case card.RankRedJoker:
			red = true
		}
	}
	return black && red
}

// CanBeat 判断 next 是否能大过 last
func CanBeat(next, last Analysis) bool {
	if !next.IsValid() {
		return false
	}
	if !last.IsValid() {
		return true
	}

	// 王炸最大
	if last.Type == Rocket {
		return false
	}
	if next.Type == Rocket {
		return true
	}

	// 炸弹可以大过任何非炸弹牌型
	if next.Type == Bomb && last.Type != Bomb {
		return true
	}

	if next.Type != last.Type {
		return false
	}
	return next.Value > last.Value
}
