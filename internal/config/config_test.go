package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-trainer/internal/game/card"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
trainer:
  autoplay_interval_ms: 800
  seed: 42
players: ["me", "left", "right"]
quiz:
  every_plays: 4
  probability: 0.5
  weighted_probability: 0.9
  weighted_pool: ["2", "a", "rj"]
sound:
  enabled: false
  dir: "/tmp/sounds"
log:
  dir: "/tmp/logs"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 800, cfg.Trainer.AutoPlayIntervalMS)
	assert.Equal(t, 800*time.Millisecond, cfg.Trainer.AutoPlayInterval())
	assert.Equal(t, uint64(42), cfg.Trainer.Seed)
	assert.Equal(t, [card.PlayerCount]string{"me", "left", "right"}, cfg.PlayerNames())
	assert.Equal(t, 4, cfg.Quiz.EveryPlays)
	assert.InDelta(t, 0.5, cfg.Quiz.Probability, 1e-9)
	assert.InDelta(t, 0.9, cfg.Quiz.WeightedProbability, 1e-9)
	assert.False(t, cfg.Sound.SoundEnabled())
	assert.Equal(t, "/tmp/sounds", cfg.Sound.Dir)
	assert.Equal(t, "/tmp/logs", cfg.Log.Dir)

	ranks, err := cfg.Quiz.PoolRanks()
	require.NoError(t, err)
	assert.Equal(t, []card.Rank{card.Rank2, card.RankA, card.RankRedJoker}, ranks)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "invalid: yaml: :::"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, defaultAutoPlayIntervalMS, cfg.Trainer.AutoPlayIntervalMS)
	assert.Equal(t, defaultPlayers, cfg.Players)
	assert.Equal(t, defaultQuizEvery, cfg.Quiz.EveryPlays)
	assert.InDelta(t, defaultQuizProbability, cfg.Quiz.Probability, 1e-9)
	assert.InDelta(t, defaultWeightedProbability, cfg.Quiz.WeightedProbability, 1e-9)
	assert.Len(t, cfg.Quiz.WeightedPool, 11)
	assert.True(t, cfg.Sound.SoundEnabled())
	assert.Equal(t, defaultSoundDir, cfg.Sound.Dir)
}

func TestLoad_ClampsInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"too fast", "trainer:\n  autoplay_interval_ms: 10\n", minAutoPlayIntervalMS},
		{"too slow", "trainer:\n  autoplay_interval_ms: 600000\n", maxAutoPlayIntervalMS},
		{"in range", "trainer:\n  autoplay_interval_ms: 3000\n", 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Trainer.AutoPlayIntervalMS)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"bad rank in pool", "quiz:\n  weighted_pool: [\"2\", \"Z\"]\n"},
		{"probability above one", "quiz:\n  probability: 1.5\n"},
		{"too many players", "players: [a, b, c, d]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDefault(t *testing.T) {
	// Note: Not parallel because Default() reads the environment

	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, defaultAutoPlayIntervalMS, cfg.Trainer.AutoPlayIntervalMS)
	assert.Equal(t, 1500*time.Millisecond, cfg.Trainer.AutoPlayInterval())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	// Not parallel because it modifies environment variables

	t.Setenv("TRAINER_AUTOPLAY_INTERVAL_MS", "2500")
	t.Setenv("TRAINER_SEED", "7")
	t.Setenv("TRAINER_SOUND", "false")
	t.Setenv("TRAINER_LOG_DIR", "/tmp/env-logs")

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 2500, cfg.Trainer.AutoPlayIntervalMS)
	assert.Equal(t, uint64(7), cfg.Trainer.Seed)
	assert.False(t, cfg.Sound.SoundEnabled())
	assert.Equal(t, "/tmp/env-logs", cfg.Log.Dir)
}

func TestPlayerNames_Partial(t *testing.T) {
	t.Parallel()

	cfg := &Config{Players: []string{"only"}}
	assert.Equal(t, [card.PlayerCount]string{"only", "", ""}, cfg.PlayerNames())
}
