package trainer

import (
	"slices"
	"time"

	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/counter"
	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/game/quiz"
)

// Snapshot 某一时刻的只读状态，所有切片都是拷贝
type Snapshot struct {
	// Version 每次变更递增，观察者可据此丢弃乱序到达的旧快照
	Version uint64
	// GameID 每局一个 UUID，未开局时为空
	GameID string

	Phase        match.Phase
	Players      [card.PlayerCount]match.Player
	TurnIndex    int
	LastPlayerID int
	Landlord     int
	Winner       int
	TableHand    []card.Card

	RemainingCounts    card.Counts
	PlayedCardHistory  counter.History
	PlayedHistoryCount int
	Recorder           []counter.BoardRow

	Message string

	Score        int
	QuizStreak   int
	QuizAnswered int
	QuizCorrect  int
	IsQuizOpen   bool
	Quiz         quiz.Quiz

	IsAutoPlaying    bool
	AutoPlayInterval time.Duration
	ShowMyHand       bool
}

// MyHand 被观察座位的手牌
func (s Snapshot) MyHand() []card.Card {
	return s.Players[match.HumanSeat].Hand
}

// changedLocked 记录一次变更并返回新快照
func (t *Trainer) changedLocked() Snapshot {
	t.version++
	return t.snapshotLocked()
}

// snapshotLocked 必须在持有 t.mu 时调用
func (t *Trainer) snapshotLocked() Snapshot {
	st := t.state.Clone()

	snap := Snapshot{
		Version:            t.version,
		GameID:             t.gameID,
		Phase:              st.Phase,
		Players:            st.Players,
		TurnIndex:          st.TurnIndex,
		LastPlayerID:       st.LastPlayerID,
		Landlord:           st.Landlord,
		Winner:             st.Winner,
		TableHand:          st.TableHand,
		RemainingCounts:    st.Ledger.Remaining(),
		PlayedCardHistory:  st.Ledger.History(),
		PlayedHistoryCount: st.PlayedHistoryCount,
		Message:            st.Message,
		Score:              t.board.Score,
		QuizStreak:         t.board.Streak,
		QuizAnswered:       t.board.Answered,
		QuizCorrect:        t.board.Correct,
		IsAutoPlaying:      t.autoPlaying,
		AutoPlayInterval:   t.interval,
		ShowMyHand:         t.showMyHand,
	}
	if st.Phase != match.NotStarted {
		snap.Recorder = counter.Board(st.Ledger, st.Players[match.HumanSeat].Hand, t.showMyHand)
	}
	if t.quiz != nil {
		snap.IsQuizOpen = true
		snap.Quiz = *t.quiz
	}
	return snap
}

// Clone 深拷贝快照
func (s Snapshot) Clone() Snapshot {
	out := s
	for i := range out.Players {
		out.Players[i].Hand = slices.Clone(s.Players[i].Hand)
	}
	out.TableHand = slices.Clone(s.TableHand)
	out.PlayedCardHistory = s.PlayedCardHistory.Clone()
	if s.Recorder != nil {
		out.Recorder = make([]counter.BoardRow, len(s.Recorder))
		for i, row := range s.Recorder {
			out.Recorder[i] = counter.BoardRow{Rank: row.Rank, Slots: slices.Clone(row.Slots)}
		}
	}
	return out
}
