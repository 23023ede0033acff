package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/speech"
)

func TestCueFor(t *testing.T) {
	t.Parallel()

	bomb := []card.Card{
		{ID: "a", Rank: card.Rank9, Suit: card.Spade},
		{ID: "b", Rank: card.Rank9, Suit: card.Heart},
		{ID: "c", Rank: card.Rank9, Suit: card.Club},
		{ID: "d", Rank: card.Rank9, Suit: card.Diamond},
	}
	rocket := []card.Card{
		{ID: "e", Rank: card.RankBlackJoker, Suit: card.Joker},
		{ID: "f", Rank: card.RankRedJoker, Suit: card.Joker},
	}
	pair := []card.Card{
		{ID: "g", Rank: card.Rank2, Suit: card.Spade},
		{ID: "h", Rank: card.Rank2, Suit: card.Heart},
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{"pass", speech.Pass, CuePass},
		{"bomb", speech.ForPlay(bomb), CueBomb},
		{"rocket", speech.ForPlay(rocket), CueRocket},
		{"pair", speech.ForPlay(pair), CuePlay},
		{"single joker", speech.ForPlay(rocket[:1]), CuePlay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CueFor(tt.text))
		})
	}
}

func TestSoundManager_SpeakWithoutInit(t *testing.T) {
	t.Parallel()

	sm := NewSoundManager("")
	assert.Equal(t, DefaultDir, sm.dir)
	assert.NotPanics(t, func() {
		sm.Speak(speech.Pass, 1)
		sm.Close()
	})
}

func TestSeatCue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "play_0", SeatCue(CuePlay, 0))
	assert.Equal(t, "rocket_2", SeatCue(CueRocket, 2))
}
