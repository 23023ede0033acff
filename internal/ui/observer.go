package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/trainer"
)

// UpdateMsg 训练器状态变更（用于 tea.Msg）
type UpdateMsg struct {
	Snapshot trainer.Snapshot
	Event    match.Event
}

// ChannelObserver 把训练器的通知转成 tea.Msg
type ChannelObserver struct {
	ch   chan tea.Msg
	done chan struct{}
	once sync.Once
}

func NewChannelObserver(size int) *ChannelObserver {
	return &ChannelObserver{
		ch:   make(chan tea.Msg, size),
		done: make(chan struct{}),
	}
}

// OnUpdate 通道满时丢弃：模型处理任何一条通知都会重新读取最新快照
func (o *ChannelObserver) OnUpdate(snap trainer.Snapshot, ev match.Event) {
	select {
	case <-o.done:
		return
	default:
	}

	select {
	case o.ch <- UpdateMsg{Snapshot: snap, Event: ev}:
	default:
	}
}

// Stop 界面退出后不再接收通知
func (o *ChannelObserver) Stop() {
	o.once.Do(func() { close(o.done) })
}

// listen 等待下一条通知
func (o *ChannelObserver) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-o.ch:
			return msg
		case <-o.done:
			return nil
		}
	}
}
