package rule

import "github.com/palemoky/landlord-trainer/internal/game/card"

// CanBeatWithHand 检查整手牌中是否存在能应对 table 的出法。
// 桌面为空时总是可以出牌
func CanBeatWithHand(hand, table []card.Card) bool {
	return len(SelectPlay(hand, table)) > 0
}

// IsLegalResponse 判断 play 是否是对 table 的合法应对：
// 必须是可识别牌型，且在桌面非空时能压过桌面
func IsLegalResponse(play, table []card.Card) bool {
	a := Analyze(play)
	if !a.IsValid() {
		return false
	}
	t := Analyze(table)
	if !t.IsValid() {
		return true
	}
	return CanBeat(a, t)
}
