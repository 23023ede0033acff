package main

import (
	"flag"
	"log"
	"os"

	"github.com/palemoky/landlord-trainer/internal/config"
	"github.com/palemoky/landlord-trainer/internal/logger"
	"github.com/palemoky/landlord-trainer/internal/report"
	"github.com/palemoky/landlord-trainer/internal/sound"
	"github.com/palemoky/landlord-trainer/internal/trainer"
	"github.com/palemoky/landlord-trainer/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	headless := flag.Bool("headless", false, "不启动界面，自动打完一局并输出报告")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if err := logger.Init(cfg.Log.Dir); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	settings, err := trainer.SettingsFromConfig(cfg)
	if err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	if *headless {
		runHeadless(settings)
		return
	}

	sm := sound.NewSoundManager(cfg.Sound.Dir)
	if cfg.Sound.SoundEnabled() {
		if err := sm.Init(); err != nil {
			logger.LogError("初始化音效失败: %v", err)
		}
	}
	defer sm.Close()

	obs := ui.NewObserver()
	tr := trainer.New(settings, trainer.WithObserver(obs), trainer.WithNarrator(sm))
	if err := ui.Run(tr, obs); err != nil {
		logger.LogError("界面异常退出: %v", err)
		log.Fatalf("启动训练器时出错: %v", err)
	}
}

func runHeadless(settings trainer.Settings) {
	rec := report.NewRecorder()
	tr := trainer.New(settings, trainer.WithObserver(rec))
	defer tr.Close()

	snap, err := report.Play(tr)
	if werr := report.Write(os.Stdout, snap, rec); werr != nil {
		logger.LogError("输出报告失败: %v", werr)
	}
	if err != nil {
		logger.LogError("对局未完成: %v", err)
		log.Fatalf("对局未完成: %v", err)
	}
}
