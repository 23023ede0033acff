// Package match holds the match state machine. A State is treated as an
// immutable value: Next returns a new State and never writes through the old
// one, so snapshots handed to observers stay stable.
package match

import (
	"fmt"
	"slices"

	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/counter"
)

// Phase 对局阶段
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	RoundOver
)

var phaseNames = map[Phase]string{
	NotStarted: "未开始",
	InProgress: "进行中",
	RoundOver:  "已结束",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "未知"
}

// HumanSeat 被观察的玩家座位
const HumanSeat = 0

// Player 一个座位上的玩家
type Player struct {
	ID         int
	Name       string
	IsLandlord bool
	Hand       []card.Card
}

// State 一局的全部状态，由发牌一次性创建
type State struct {
	Phase   Phase
	Players [card.PlayerCount]Player

	TurnIndex    int
	LastPlayerID int
	Landlord     int
	Winner       int

	// TableHand 最近一次成功出的牌
	TableHand []card.Card
	Ledger    counter.Ledger

	PlayedHistoryCount int
	// ConsecutivePasses 自上次出牌以来连续不要的次数
	ConsecutivePasses int

	Message string
}

// New 根据发牌结果创建一局，由地主先出
func New(deal card.DealResult, names [card.PlayerCount]string) State {
	s := State{
		Phase:        InProgress,
		TurnIndex:    deal.Landlord,
		LastPlayerID: deal.Landlord,
		Landlord:     deal.Landlord,
		Winner:       -1,
		Ledger:       counter.NewLedger(),
	}
	for i := range s.Players {
		name := names[i]
		if name == "" {
			name = fmt.Sprintf("玩家%d", i+1)
		}
		s.Players[i] = Player{
			ID:         i,
			Name:       name,
			IsLandlord: i == deal.Landlord,
			Hand:       slices.Clone(deal.Hands[i]),
		}
	}
	s.Message = fmt.Sprintf("游戏开始！地主是 %s", s.Players[deal.Landlord].Name)
	return s
}

// IsFreePlay 当前玩家是否可以自由出牌：桌面为空，或其余两家都不要
func (s State) IsFreePlay() bool {
	return len(s.TableHand) == 0 || s.ConsecutivePasses >= card.PlayerCount-1
}

// FinishedSeat 返回已经出完牌的座位
func (s State) FinishedSeat() (int, bool) {
	for i, p := range s.Players {
		if len(p.Hand) == 0 {
			return i, true
		}
	}
	return -1, false
}

// RemainingTotal 尚未出现的牌总数
func (s State) RemainingTotal() int {
	return s.Ledger.Remaining().Total()
}

// HandTotal 三家手牌总数
func (s State) HandTotal() int {
	total := 0
	for _, p := range s.Players {
		total += len(p.Hand)
	}
	return total
}

// QuizDue 本步之后成功出牌数是否为 every 的正整数倍
func (s State) QuizDue(every int) bool {
	return every > 0 && s.PlayedHistoryCount > 0 && s.PlayedHistoryCount%every == 0
}

// Clone 深拷贝，供快照使用
func (s State) Clone() State {
	out := s
	for i := range out.Players {
		out.Players[i].Hand = slices.Clone(s.Players[i].Hand)
	}
	out.TableHand = slices.Clone(s.TableHand)
	return out
}
