package card

import (
	"fmt"
	"math/rand/v2"
)

const (
	// DeckSize 一副牌的张数
	DeckSize = 54
	// PlayerCount 座位数
	PlayerCount = 3
	// HoleCardCount 底牌张数
	HoleCardCount = 3
	// dealtPerPlayer 轮流发牌时每人分到的张数
	dealtPerPlayer = (DeckSize - HoleCardCount) / PlayerCount
)

// Deck 定义一副牌
type Deck []Card

// NewDeck 按固定顺序生成一副 54 张的牌，ID 依次为 card-0 ... card-53
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	id := 0
	next := func() string {
		s := fmt.Sprintf("card-%d", id)
		id++
		return s
	}
	for r := Rank3; r <= Rank2; r++ {
		for s := Spade; s <= Diamond; s++ {
			color := Black
			if s == Heart || s == Diamond {
				color = Red
			}
			deck = append(deck, Card{ID: next(), Suit: s, Rank: r, Color: color})
		}
	}
	deck = append(deck,
		Card{ID: next(), Suit: Joker, Rank: RankBlackJoker, Color: Black},
		Card{ID: next(), Suit: Joker, Rank: RankRedJoker, Color: Red},
	)
	return deck
}

// Shuffle 返回洗好的新牌组，不修改输入。rng 为 nil 时使用全局随机源
func Shuffle(d Deck, rng *rand.Rand) Deck {
	out := make(Deck, len(d))
	copy(out, d)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if rng != nil {
		rng.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	return out
}

// DealResult 发牌结果
type DealResult struct {
	Hands     [PlayerCount][]Card
	Landlord  int
	HoleCards []Card
}

// Deal 洗牌、随机选出地主、轮流发 51 张，剩余 3 张底牌归地主。
// 每手牌按牌力从大到小排序
func Deal(rng *rand.Rand) DealResult {
	deck := Shuffle(NewDeck(), rng)

	var landlord int
	if rng != nil {
		landlord = rng.IntN(PlayerCount)
	} else {
		landlord = rand.IntN(PlayerCount)
	}

	var result DealResult
	result.Landlord = landlord
	for i := range PlayerCount {
		result.Hands[i] = make([]Card, 0, dealtPerPlayer+HoleCardCount)
	}
	for i := 0; i < DeckSize-HoleCardCount; i++ {
		seat := i % PlayerCount
		result.Hands[seat] = append(result.Hands[seat], deck[i])
	}
	result.HoleCards = append([]Card(nil), deck[DeckSize-HoleCardCount:]...)
	result.Hands[landlord] = append(result.Hands[landlord], result.HoleCards...)

	for i := range result.Hands {
		SortDesc(result.Hands[i])
	}

	mustBeValidDeal(result)
	return result
}

// mustBeValidDeal 校验发牌结果，任何重叠或遗漏都是程序错误
func mustBeValidDeal(r DealResult) {
	seen := make(map[string]struct{}, DeckSize)
	for seat, hand := range r.Hands {
		want := dealtPerPlayer
		if seat == r.Landlord {
			want += HoleCardCount
		}
		if len(hand) != want {
			panic(fmt.Sprintf("card: seat %d dealt %d cards, want %d", seat, len(hand), want))
		}
		for _, c := range hand {
			if _, dup := seen[c.ID]; dup {
				panic(fmt.Sprintf("card: card %s dealt twice", c.ID))
			}
			seen[c.ID] = struct{}{}
		}
	}
	if len(seen) != DeckSize {
		panic(fmt.Sprintf("card: dealt %d distinct cards, want %d", len(seen), DeckSize))
	}
}

// Counts 按点数下标记录的张数表，15 种点数始终存在
type Counts [NumRanks]int

// Get 返回某点数的张数
func (c Counts) Get(r Rank) int {
	return c[r.Index()]
}

// Total 所有点数张数之和
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// InitialCounts 一副完整牌的点数分布：普通点数各 4 张，大小王各 1 张
func InitialCounts() Counts {
	var counts Counts
	for _, r := range AllRanks {
		counts[r.Index()] = r.InitialCount()
	}
	return counts
}
