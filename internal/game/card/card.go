package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit 定义花色
type Suit int

// Rank 定义点数，数值即牌力 (3..17)
type Rank int

// CardColor 定义牌的颜色，仅用于展示
type CardColor int

const (
	Black CardColor = iota
	Red
)

const (
	Spade   Suit = iota // 黑桃
	Heart               // 红心
	Club                // 梅花
	Diamond             // 方块
	Joker               // 王牌（无花色）
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Spade:   "♠",
	Heart:   "♥",
	Club:    "♣",
	Diamond: "♦",
	Joker:   "",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

const (
	Rank3 Rank = iota + 3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
	Rank2
	RankBlackJoker // 小王
	RankRedJoker   // 大王
)

// NumRanks 点数种类数量（13 种普通点数 + 2 张王）
const NumRanks = 15

// AllRanks 从小到大的全部点数
var AllRanks = [NumRanks]Rank{
	Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10,
	RankJ, RankQ, RankK, RankA, Rank2, RankBlackJoker, RankRedJoker,
}

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "10",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankA:          "A",
	Rank2:          "2",
	RankBlackJoker: "BJ",
	RankRedJoker:   "RJ",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Index 返回点数在定长表中的下标 (0..14)
func (r Rank) Index() int {
	return int(r - Rank3)
}

// Valid 判断是否为合法点数
func (r Rank) Valid() bool {
	return r >= Rank3 && r <= RankRedJoker
}

// IsJoker 判断是否为大小王
func (r Rank) IsJoker() bool {
	return r == RankBlackJoker || r == RankRedJoker
}

// InitialCount 一副牌中该点数的张数
func (r Rank) InitialCount() int {
	if r.IsJoker() {
		return 1
	}
	return 4
}

// RankFromString 解析点数字符串，大小写不敏感，10 也可以写作 T
func RankFromString(s string) (Rank, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "T" {
		return Rank10, nil
	}
	for r, name := range rankNames {
		if name == key {
			return r, nil
		}
	}
	return -1, fmt.Errorf("无法识别的点数: %q", s)
}

// Card 定义一张牌。ID 区分同点数同花色以外的每一张实体牌
type Card struct {
	ID    string
	Suit  Suit
	Rank  Rank
	Color CardColor
}

// Value 返回比较用的牌力
func (c Card) Value() int {
	return int(c.Rank)
}

func (c Card) String() string {
	if c.Suit == Joker {
		return c.Rank.String()
	}
	return c.Suit.String() + c.Rank.String()
}
