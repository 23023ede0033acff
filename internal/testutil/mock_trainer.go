//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/trainer"
)

// MockNarrator 实现 trainer.Narrator 的 mock
type MockNarrator struct {
	mock.Mock
}

func (m *MockNarrator) Speak(text string, seat int) {
	m.Called(text, seat)
}

// MockObserver 实现 trainer.Observer 的 mock
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) OnUpdate(snap trainer.Snapshot, ev match.Event) {
	m.Called(snap, ev)
}

// EventOfKind 匹配指定类型的事件
func EventOfKind(kind match.EventKind) any {
	return mock.MatchedBy(func(ev match.Event) bool { return ev.Kind == kind })
}

// SilentNarrator 只记录播报，不使用 testify（用于不需要断言调用的测试）
type SilentNarrator struct {
	Lines []string
	Seats []int
}

func (n *SilentNarrator) Speak(text string, seat int) {
	n.Lines = append(n.Lines, text)
	n.Seats = append(n.Seats, seat)
}
