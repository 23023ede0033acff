package view

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/game/quiz"
	"github.com/palemoky/landlord-trainer/internal/trainer"
)

func startedSnapshot(t *testing.T) trainer.Snapshot {
	t.Helper()
	s := trainer.DefaultSettings()
	s.Names = [card.PlayerCount]string{"小赢", "老赢", "老输"}
	s.QuizProbability = 0
	tr := trainer.New(s, trainer.WithRand(rand.New(rand.NewPCG(1, 2))))
	t.Cleanup(tr.Close)
	tr.StartNewGame()
	require.NoError(t, tr.PlayNext())
	return tr.Snapshot()
}

func TestRenderGameRules(t *testing.T) {
	t.Parallel()

	result := RenderGameRules()

	tests := []struct {
		name     string
		contains string
	}{
		{"goal section", "【训练目标】"},
		{"card type section", "【牌型说明】"},
		{"single", "单牌"},
		{"pair", "对子"},
		{"trio", "三张"},
		{"bomb", "炸弹"},
		{"rocket", "王炸"},
		{"play rules section", "【出牌规则】"},
		{"shortcut section", "【快捷键】"},
		{"new game key", "N："},
		{"show hand key", "M："},
		{"quiz key", "K："},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, result, tt.contains)
		})
	}
	assert.NotContains(t, result, "顺子", "straights are not played")
}

func TestTrainerView_NotStarted(t *testing.T) {
	t.Parallel()

	tr := trainer.New(trainer.DefaultSettings())
	t.Cleanup(tr.Close)

	out := TrainerView(Screen{Snap: tr.Snapshot(), Width: 100, Height: 40, Help: "n 新局"})
	assert.Contains(t, out, "斗地主记牌训练")
	assert.Contains(t, out, "等待开始新的一局")
	assert.Contains(t, out, "n 新局")
	assert.NotContains(t, out, "记牌器")
}

func TestTrainerView_InProgress(t *testing.T) {
	t.Parallel()

	snap := startedSnapshot(t)
	ev := match.Event{Kind: match.EventPlayed, Seat: snap.LastPlayerID, Speech: "对尖"}

	out := TrainerView(Screen{Snap: snap, LastEvent: ev, Width: 160, Height: 60})
	assert.Contains(t, out, "记牌器")
	assert.Contains(t, out, "记牌板")
	assert.Contains(t, out, "小赢")
	assert.Contains(t, out, "对尖")
	assert.Contains(t, out, snap.Message)
	assert.Contains(t, out, "得分 0")
}

func TestTrainerView_Notice(t *testing.T) {
	t.Parallel()

	snap := startedSnapshot(t)
	out := TrainerView(Screen{Snap: snap, Notice: "本局已结束", IsError: true})
	assert.Contains(t, out, "本局已结束")
}

func TestTrainerView_QuizHidesCounter(t *testing.T) {
	t.Parallel()

	snap := startedSnapshot(t)
	snap.IsQuizOpen = true
	snap.Quiz = quiz.Quiz{Rank: card.Rank2, Expected: 3}

	out := TrainerView(Screen{Snap: snap, QuizInput: "> _", Width: 100, Height: 40})
	assert.Contains(t, out, "记牌测验")
	assert.Contains(t, out, "2 还剩几张")
	assert.Contains(t, out, "> _")
	assert.NotContains(t, out, "记牌器")
}

func TestTrainerView_Rules(t *testing.T) {
	t.Parallel()

	snap := startedSnapshot(t)
	out := TrainerView(Screen{Snap: snap, ShowRules: true, Width: 100, Height: 50})
	assert.Contains(t, out, "【快捷键】")
}

func TestRenderCounterGrid(t *testing.T) {
	t.Parallel()

	counts := card.InitialCounts()
	counts[card.Rank2.Index()] = 0
	out := RenderCounterGrid(counts)

	assert.Contains(t, out, "R ")
	assert.Contains(t, out, "B ")
	assert.Contains(t, out, "0")
	assert.Contains(t, out, "4")
}

func TestRenderRecorder(t *testing.T) {
	t.Parallel()

	snap := startedSnapshot(t)
	out := RenderRecorder(snap)
	assert.Contains(t, out, "M 键标出我的手牌")

	snap.ShowMyHand = true
	out = RenderRecorder(snap)
	assert.Contains(t, out, "我的手牌")
}

func TestRenderHand(t *testing.T) {
	t.Parallel()

	assert.Contains(t, RenderHand(match.Player{Name: "小赢"}, false), "(无手牌)")

	p := match.Player{
		Name:       "小赢",
		IsLandlord: true,
		Hand:       []card.Card{{ID: "a", Suit: card.Heart, Rank: card.RankA, Color: card.Red}},
	}
	out := RenderHand(p, true)
	assert.Contains(t, out, "(1张)")
	assert.Contains(t, out, "👑")
	assert.Contains(t, out, "A")
}

func TestRenderStatus_RoundOver(t *testing.T) {
	t.Parallel()

	snap := startedSnapshot(t)
	snap.Phase = match.RoundOver
	snap.Message = "游戏结束！老赢 出完了牌"

	out := RenderStatus(snap, match.Event{Kind: match.EventGameOver, Seat: 1})
	assert.Contains(t, out, "游戏结束")
	assert.Contains(t, out, "再来一局")
	assert.NotContains(t, out, "🔊")
}
