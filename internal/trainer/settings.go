package trainer

import (
	"math/rand/v2"
	"time"

	"github.com/palemoky/landlord-trainer/internal/config"
	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/quiz"
)

const (
	DefaultInterval = 1500 * time.Millisecond
	MinInterval     = 200 * time.Millisecond
	MaxInterval     = 10 * time.Second

	DefaultQuizEvery       = 8
	DefaultQuizProbability = 0.3
)

// Settings 训练器参数
type Settings struct {
	Names [card.PlayerCount]string

	Interval    time.Duration
	MinInterval time.Duration
	MaxInterval time.Duration

	QuizEvery       int
	QuizProbability float64
	Picker          quiz.Picker

	// Seed 为 0 时使用随机种子
	Seed uint64
}

// DefaultSettings 返回默认参数
func DefaultSettings() Settings {
	return Settings{
		Interval:        DefaultInterval,
		MinInterval:     MinInterval,
		MaxInterval:     MaxInterval,
		QuizEvery:       DefaultQuizEvery,
		QuizProbability: DefaultQuizProbability,
		Picker:          quiz.NewPicker(),
	}
}

// SettingsFromConfig 从配置文件构造参数
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	s := DefaultSettings()
	pool, err := cfg.Quiz.PoolRanks()
	if err != nil {
		return s, err
	}

	s.Names = cfg.PlayerNames()
	s.Interval = cfg.Trainer.AutoPlayInterval()
	s.QuizEvery = cfg.Quiz.EveryPlays
	s.QuizProbability = cfg.Quiz.Probability
	s.Picker = quiz.Picker{Pool: pool, WeightedProbability: cfg.Quiz.WeightedProbability}
	s.Seed = cfg.Trainer.Seed
	return s, nil
}

// clamp 把间隔限制在 [MinInterval, MaxInterval]
func (s Settings) clamp(d time.Duration) time.Duration {
	if s.MinInterval > 0 && d < s.MinInterval {
		return s.MinInterval
	}
	if s.MaxInterval > 0 && d > s.MaxInterval {
		return s.MaxInterval
	}
	return d
}

func (s Settings) newRand() *rand.Rand {
	if s.Seed != 0 {
		return rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
