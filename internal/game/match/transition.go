package match

import (
	"fmt"

	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/rule"
	"github.com/palemoky/landlord-trainer/internal/game/speech"
)

// EventKind 一步推进产生的事件类型
type EventKind int

const (
	EventNone EventKind = iota
	EventPlayed
	EventPassed
	EventGameOver
)

// Event 描述刚刚发生了什么，供界面和播报使用
type Event struct {
	Kind     EventKind
	Seat     int
	Cards    []card.Card
	Analysis rule.Analysis
	Speech   string
}

// Next 推进一步：当前座位出牌或不要，然后轮到下家。
// 已有玩家出完牌时只结束对局，不出牌。s 本身不会被修改
func Next(s State) (State, Event) {
	if s.Phase != InProgress {
		return s, Event{Kind: EventNone, Seat: -1}
	}

	next := s

	if seat, done := s.FinishedSeat(); done {
		next.Phase = RoundOver
		next.Winner = seat
		next.Message = fmt.Sprintf("游戏结束！%s 出完了牌", s.Players[seat].Name)
		return next, Event{Kind: EventGameOver, Seat: seat}
	}

	seat := s.TurnIndex
	current := s.Players[seat]

	var table []card.Card
	if !s.IsFreePlay() {
		table = s.TableHand
	}

	play := rule.SelectPlay(current.Hand, table)

	var ev Event
	if len(play) > 0 {
		next.Players[seat].Hand = card.RemoveCards(current.Hand, play)
		next.TableHand = play
		next.LastPlayerID = seat
		next.Ledger = s.Ledger.Record(play, seat)
		next.PlayedHistoryCount++
		next.ConsecutivePasses = 0
		next.Message = fmt.Sprintf("%s 出牌", current.Name)

		analysis := rule.Analyze(play)
		ev = Event{
			Kind:     EventPlayed,
			Seat:     seat,
			Cards:    play,
			Analysis: analysis,
			Speech:   speech.ForAnalysis(analysis, play[0].Rank),
		}
	} else {
		next.ConsecutivePasses++
		next.Message = fmt.Sprintf("%s 不要", current.Name)
		ev = Event{Kind: EventPassed, Seat: seat, Speech: speech.Pass}
	}

	next.TurnIndex = (seat + 1) % card.PlayerCount
	return next, ev
}
