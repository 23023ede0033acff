package report

import (
	"bytes"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/trainer"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func playMatch(t *testing.T, seed uint64, quizProbability float64) (trainer.Snapshot, *Recorder) {
	t.Helper()

	s := trainer.DefaultSettings()
	s.Names = [card.PlayerCount]string{"小赢", "老赢", "老输"}
	s.QuizProbability = quizProbability
	rec := NewRecorder()
	tr := trainer.New(s,
		trainer.WithRand(rand.New(rand.NewPCG(seed, seed))),
		trainer.WithObserver(rec),
	)
	t.Cleanup(tr.Close)

	snap, err := Play(tr)
	require.NoError(t, err)
	return snap, rec
}

func TestPlay_FinishesMatch(t *testing.T) {
	t.Parallel()

	snap, rec := playMatch(t, 1, 0)
	assert.Equal(t, match.RoundOver, snap.Phase)

	entries := rec.Entries()
	require.NotEmpty(t, entries)
	lastEntry := entries[len(entries)-1]
	assert.Equal(t, match.EventGameOver, lastEntry.Kind)
	assert.Equal(t, snap.Winner, lastEntry.Seat)

	plays := 0
	for i, e := range entries {
		assert.Equal(t, i+1, e.Step)
		if e.Kind == match.EventPlayed {
			plays++
			assert.NotEmpty(t, e.Cards)
		}
	}
	assert.Equal(t, snap.PlayedHistoryCount, plays)
	assert.Zero(t, rec.Quizzes())
}

func TestPlay_SkipsQuizzes(t *testing.T) {
	t.Parallel()

	snap, rec := playMatch(t, 2, 1)
	assert.Equal(t, match.RoundOver, snap.Phase)
	assert.Equal(t, snap.PlayedHistoryCount/trainer.DefaultQuizEvery, rec.Quizzes())
	assert.Zero(t, snap.QuizAnswered)
}

func TestRender(t *testing.T) {
	t.Parallel()

	snap, rec := playMatch(t, 3, 0)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, snap, rec))
	out := buf.String()

	for _, want := range []string{"对局报告", "出牌记录", "记牌器", "记牌板", "小赢", "老赢", "老输", "获胜", snap.GameID} {
		assert.Contains(t, out, want)
	}
	for _, e := range rec.Entries() {
		if e.Kind == match.EventPlayed {
			assert.Contains(t, out, e.Speech)
		}
	}
}

func TestRender_Unfinished(t *testing.T) {
	t.Parallel()

	tr := trainer.New(trainer.DefaultSettings())
	t.Cleanup(tr.Close)
	tr.StartNewGame()

	out := Render(tr.Snapshot(), nil, 0)
	assert.Contains(t, out, "对局未结束")
}
