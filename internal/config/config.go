package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/palemoky/landlord-trainer/internal/game/card"
)

const (
	defaultAutoPlayIntervalMS  = 1500
	minAutoPlayIntervalMS      = 200
	maxAutoPlayIntervalMS      = 10000
	defaultQuizEvery           = 8
	defaultQuizProbability     = 0.3
	defaultWeightedProbability = 0.7
	defaultSoundDir            = "assets/sounds"
)

var (
	defaultPlayers      = []string{"小赢 (我)", "老赢 (爸)", "老输 (妈)"}
	defaultWeightedPool = []string{"RJ", "BJ", "2", "2", "A", "A", "K", "7", "10", "J", "Q"}
)

// Config 训练器配置
type Config struct {
	Trainer TrainerConfig `yaml:"trainer"`
	Players []string      `yaml:"players"`
	Quiz    QuizConfig    `yaml:"quiz"`
	Sound   SoundConfig   `yaml:"sound"`
	Log     LogConfig     `yaml:"log"`
}

// TrainerConfig 自动出牌配置
type TrainerConfig struct {
	AutoPlayIntervalMS int    `yaml:"autoplay_interval_ms"` // 自动出牌间隔（毫秒）
	Seed               uint64 `yaml:"seed"`                 // 随机种子，0 表示随机
}

// QuizConfig 记牌测验配置
type QuizConfig struct {
	EveryPlays          int      `yaml:"every_plays"`          // 每出多少手牌检查一次
	Probability         float64  `yaml:"probability"`          // 检查时弹出测验的概率
	WeightedProbability float64  `yaml:"weighted_probability"` // 使用加权题库的概率
	WeightedPool        []string `yaml:"weighted_pool"`        // 加权题库
}

// SoundConfig 播报配置
type SoundConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LogConfig 日志配置
type LogConfig struct {
	Dir string `yaml:"dir"` // 为空时使用 ~/.landlord-trainer
}

// AutoPlayInterval 返回自动出牌间隔
func (c *TrainerConfig) AutoPlayInterval() time.Duration {
	return time.Duration(c.AutoPlayIntervalMS) * time.Millisecond
}

// SoundEnabled 是否开启播报音效
func (c *SoundConfig) SoundEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// PoolRanks 把题库解析为点数
func (c *QuizConfig) PoolRanks() ([]card.Rank, error) {
	ranks := make([]card.Rank, 0, len(c.WeightedPool))
	for _, s := range c.WeightedPool {
		r, err := card.RankFromString(s)
		if err != nil {
			return nil, fmt.Errorf("quiz.weighted_pool: %w", err)
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}

// PlayerNames 返回三个座位的名字
func (c *Config) PlayerNames() [card.PlayerCount]string {
	var names [card.PlayerCount]string
	copy(names[:], c.Players)
	return names
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	var cfg Config
	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	if len(c.Players) > card.PlayerCount {
		return fmt.Errorf("players: at most %d names, got %d", card.PlayerCount, len(c.Players))
	}
	if c.Quiz.Probability < 0 || c.Quiz.Probability > 1 {
		return fmt.Errorf("quiz.probability must be within [0,1], got %v", c.Quiz.Probability)
	}
	if c.Quiz.WeightedProbability < 0 || c.Quiz.WeightedProbability > 1 {
		return fmt.Errorf("quiz.weighted_probability must be within [0,1], got %v", c.Quiz.WeightedProbability)
	}
	if _, err := c.Quiz.PoolRanks(); err != nil {
		return err
	}
	return nil
}

// applyDefaults 设置默认值
func applyDefaults(cfg *Config) {
	switch {
	case cfg.Trainer.AutoPlayIntervalMS == 0:
		cfg.Trainer.AutoPlayIntervalMS = defaultAutoPlayIntervalMS
	case cfg.Trainer.AutoPlayIntervalMS < minAutoPlayIntervalMS:
		cfg.Trainer.AutoPlayIntervalMS = minAutoPlayIntervalMS
	case cfg.Trainer.AutoPlayIntervalMS > maxAutoPlayIntervalMS:
		cfg.Trainer.AutoPlayIntervalMS = maxAutoPlayIntervalMS
	}
	if len(cfg.Players) == 0 {
		cfg.Players = append([]string(nil), defaultPlayers...)
	}
	if cfg.Quiz.EveryPlays <= 0 {
		cfg.Quiz.EveryPlays = defaultQuizEvery
	}
	if cfg.Quiz.Probability == 0 {
		cfg.Quiz.Probability = defaultQuizProbability
	}
	if cfg.Quiz.WeightedProbability == 0 {
		cfg.Quiz.WeightedProbability = defaultWeightedProbability
	}
	if len(cfg.Quiz.WeightedPool) == 0 {
		cfg.Quiz.WeightedPool = append([]string(nil), defaultWeightedPool...)
	}
	if cfg.Sound.Dir == "" {
		cfg.Sound.Dir = defaultSoundDir
	}
}

// applyEnv 环境变量覆盖配置文件
func applyEnv(cfg *Config) {
	if v, err := strconv.Atoi(os.Getenv("TRAINER_AUTOPLAY_INTERVAL_MS")); err == nil {
		cfg.Trainer.AutoPlayIntervalMS = v
	}
	if v, err := strconv.ParseUint(os.Getenv("TRAINER_SEED"), 10, 64); err == nil {
		cfg.Trainer.Seed = v
	}
	if v, err := strconv.ParseBool(os.Getenv("TRAINER_SOUND")); err == nil {
		cfg.Sound.Enabled = &v
	}
	if v := os.Getenv("TRAINER_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
}
