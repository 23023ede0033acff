package rule

import "github.com/palemoky/landlord-trainer/internal/game/card"

// SelectPlay 机器人出牌策略：给定手牌和桌面上需要压的牌，返回要出的牌，
// 返回 nil 表示不要。返回的牌一定取自 hand，且一定是可识别的牌型
func SelectPlay(hand, table []card.Card) []card.Card {
	if len(hand) == 0 {
		return nil
	}

	tableAnalysis := Analyze(table)

	// 自由出牌：桌面为空或桌面牌型无效。优先三张，其次对子，最后最小的单张
	if len(table) == 0 || !tableAnalysis.IsValid() {
		return selectFreePlay(hand)
	}

	// 王炸压不住
	if tableAnalysis.Type == Rocket {
		return nil
	}

	// 优先尝试找同类型的最小牌
	if tableAnalysis.Type != Bomb {
		for _, candidate := range PossibleHands(hand, tableAnalysis.Type) {
			if candidate[0].Value() > tableAnalysis.Value {
				return candidate
			}
		}
	}

	// 否则尝试用最小的炸弹
	if result := findSmallestBomb(hand, tableAnalysis); result != nil {
		return result
	}

	// 最后尝试王炸
	if rockets := PossibleHands(hand, Rocket); len(rockets) > 0 {
		return rockets[0]
	}

	return nil
}

// selectFreePlay 自由出牌时的选择
func selectFreePlay(hand []card.Card) []card.Card {
	if trios := PossibleHands(hand, Trio); len(trios) > 0 {
		return trios[0]
	}
	if pairs := PossibleHands(hand, Pair); len(pairs) > 0 {
		return pairs[0]
	}
	return []card.Card{card.SortAsc(hand)[0]}
}

// findSmallestBomb 找到能压住桌面的最小炸弹。桌面是炸弹时必须更大
func findSmallestBomb(hand []card.Card, table Analysis) []card.Card {
	for _, bomb := range PossibleHands(hand, Bomb) {
		if table.Type != Bomb || bomb[0].Value() > table.Value {
			return bomb
		}
	}
	return nil
}

// PossibleHands 从手牌中提取指定牌型的所有候选组合。
// 每个点数最多给出一组，按点数从小到大排列
func PossibleHands(hand []card.Card, t HandType) [][]card.Card {
	if t == Rocket {
		if rocket := findRocket(hand); rocket != nil {
			return [][]card.Card{rocket}
		}
		return nil
	}

	size, ok := shapeSize[t]
	if !ok {
		return nil
	}

	counts := card.CountRanks(hand)
	sorted := card.SortAsc(hand)

	var results [][]card.Card
	for _, r := range card.AllRanks {
		if counts.Get(r) < size {
			continue
		}
		results = append(results, findCardsWithRank(sorted, r, size))
	}
	return results
}

// findCardsWithRank 从手牌中找到指定点数的牌
func findCardsWithRank(hand []card.Card, rank card.Rank, count int) []card.Card {
	result := make([]card.Card, 0, count)
	for _, c := range hand {
		if c.Rank == rank {
			result = append(result, c)
			if len(result) == count {
				break
			}
		}
	}
	return result
}

// findRocket 找到王炸
func findRocket(hand []card.Card) []card.Card {
	var black, red *card.Card
	for i := range hand {
		switch hand[i].Rank {
		case card.RankBlackJoker:
			black = &hand[i]
		case card.RankRedJoker:
			red = &hand[i]
		}
	}
	if black != nil && red != nil {
		return []card.Card{*black, *red}
	}
	return nil
}
