package card

import (
	"fmt"
	"slices"
	"strings"
)

// SortDesc 原地按牌力从大到小排序，同点数按花色稳定排列
func SortDesc(hand []Card) {
	slices.SortStableFunc(hand, func(a, b Card) int {
		if a.Rank != b.Rank {
			return int(b.Rank) - int(a.Rank)
		}
		return int(a.Suit) - int(b.Suit)
	})
}

// SortAsc 返回按牌力从小到大排序的拷贝
func SortAsc(hand []Card) []Card {
	out := slices.Clone(hand)
	slices.SortStableFunc(out, func(a, b Card) int {
		if a.Rank != b.Rank {
			return int(a.Rank) - int(b.Rank)
		}
		return int(a.Suit) - int(b.Suit)
	})
	return out
}

// CountRanks 统计手牌中各点数的数量
func CountRanks(hand []Card) Counts {
	var counts Counts
	for _, c := range hand {
		counts[c.Rank.Index()]++
	}
	return counts
}

// RemoveCards 按 ID 从手牌中移除指定的牌，返回新切片。
// 要移除的牌不在手牌中属于程序错误，直接 panic
func RemoveCards(hand, toRemove []Card) []Card {
	ids := make(map[string]struct{}, len(toRemove))
	for _, c := range toRemove {
		ids[c.ID] = struct{}{}
	}

	result := make([]Card, 0, len(hand))
	for _, c := range hand {
		if _, ok := ids[c.ID]; ok {
			delete(ids, c.ID)
			continue
		}
		result = append(result, c)
	}
	if len(ids) > 0 {
		missing := make([]string, 0, len(ids))
		for id := range ids {
			missing = append(missing, id)
		}
		slices.Sort(missing)
		panic(fmt.Sprintf("card: cards not in hand: %s", strings.Join(missing, ",")))
	}
	return result
}

// Format 把一组牌格式化为 "♠3 ♥3" 形式
func Format(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
