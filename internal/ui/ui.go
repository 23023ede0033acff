// Package ui is the terminal front end of the trainer.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/landlord-trainer/internal/trainer"
)

// observerBuffer 通知通道容量
const observerBuffer = 64

// NewObserver 创建供 trainer.WithObserver 使用的通道观察者
func NewObserver() *ChannelObserver {
	return NewChannelObserver(observerBuffer)
}

// Run 启动全屏界面，直到用户退出
func Run(tr *trainer.Trainer, obs *ChannelObserver) error {
	model := NewTrainerModel(tr, obs)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	tr.Close()
	obs.Stop()
	return err
}
