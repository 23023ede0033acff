package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/landlord-trainer/internal/apperrors"
	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/game/quiz"
	"github.com/palemoky/landlord-trainer/internal/trainer"
	"github.com/palemoky/landlord-trainer/internal/ui/view"
)

// speedStep 每次 +/- 调整的出牌间隔
const speedStep = 250 * time.Millisecond

// noticeTTL 提示信息显示时长
const noticeTTL = 3 * time.Second

// ClearNoticeMsg 清除提示信息
type ClearNoticeMsg struct{}

// TrainerModel 训练器界面
type TrainerModel struct {
	trainer  *trainer.Trainer
	observer *ChannelObserver

	snap      trainer.Snapshot
	lastEvent match.Event

	keys  keyMap
	help  help.Model
	input textinput.Model

	width  int
	height int

	notice    string
	isError   bool
	showRules bool
}

// NewTrainerModel obs 必须已注册为 tr 的观察者
func NewTrainerModel(tr *trainer.Trainer, obs *ChannelObserver) *TrainerModel {
	ti := textinput.New()
	ti.Placeholder = "0-4"
	ti.CharLimit = 1
	ti.Width = 6

	return &TrainerModel{
		trainer:   tr,
		observer:  obs,
		snap:      tr.Snapshot(),
		lastEvent: match.Event{Kind: match.EventNone, Seat: -1},
		keys:      newKeyMap(),
		help:      help.New(),
		input:     ti,
	}
}

func (m *TrainerModel) Init() tea.Cmd {
	return tea.Batch(m.observer.listen(), textinput.Blink)
}

func (m *TrainerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case UpdateMsg:
		if msg.Event.Kind != match.EventNone {
			m.lastEvent = msg.Event
		}
		m.refresh()
		// 继续监听
		cmds = append(cmds, m.observer.listen())

	case ClearNoticeMsg:
		m.notice = ""
		m.isError = false

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	if m.snap.IsQuizOpen {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *TrainerModel) View() string {
	return view.TrainerView(view.Screen{
		Snap:      m.snap,
		LastEvent: m.lastEvent,
		Width:     m.width,
		Height:    m.height,
		QuizInput: m.input.View(),
		Help:      m.help.View(m.keys),
		Notice:    m.notice,
		IsError:   m.isError,
		ShowRules: m.showRules,
	})
}

// refresh 重新读取最新快照并同步输入框焦点
func (m *TrainerModel) refresh() {
	m.snap = m.trainer.Snapshot()
	if m.snap.IsQuizOpen && !m.input.Focused() {
		m.input.SetValue("")
		m.input.Focus()
	} else if !m.snap.IsQuizOpen && m.input.Focused() {
		m.input.Blur()
	}
}

func (m *TrainerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.snap.IsQuizOpen {
		return m.handleQuizKey(msg)
	}
	if m.showRules {
		if key.Matches(msg, m.keys.Rules, m.keys.Quit) {
			m.showRules = false
		}
		return nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.NewGame):
		m.trainer.StartNewGame()
		m.lastEvent = match.Event{Kind: match.EventNone, Seat: -1}
	case key.Matches(msg, m.keys.AutoPlay):
		err = m.trainer.SetAutoPlaying(!m.snap.IsAutoPlaying)
	case key.Matches(msg, m.keys.Step):
		err = m.trainer.PlayNext()
	case key.Matches(msg, m.keys.Faster):
		err = m.trainer.SetAutoPlaySpeed(max(m.snap.AutoPlayInterval-speedStep, speedStep))
	case key.Matches(msg, m.keys.Slower):
		err = m.trainer.SetAutoPlaySpeed(m.snap.AutoPlayInterval + speedStep)
	case key.Matches(msg, m.keys.MyHand):
		m.trainer.ToggleShowMyHand()
	case key.Matches(msg, m.keys.Quiz):
		err = m.trainer.OpenQuiz()
	case key.Matches(msg, m.keys.Rules):
		m.showRules = true
	default:
		return nil
	}

	m.refresh()
	if err != nil {
		return m.setNotice(describe(err), true)
	}
	return nil
}

func (m *TrainerModel) handleQuizKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		_ = m.trainer.CloseQuiz()
		m.refresh()
		return nil

	case tea.KeyEnter:
		guess, ok := parseGuess(m.input.Value())
		if !ok {
			m.input.SetValue("")
			return m.setNotice(fmt.Sprintf("请输入 0-%d 之间的数字", quiz.MaxGuess), true)
		}
		res, err := m.trainer.SubmitQuizAnswer(guess)
		m.refresh()
		if err != nil {
			return m.setNotice(describe(err), true)
		}
		if res.Correct {
			return m.setNotice(fmt.Sprintf("✅ 正确！%s 还剩 %d 张", res.Rank, res.Expected), false)
		}
		return m.setNotice(fmt.Sprintf("❌ 错误，%s 还剩 %d 张，你答 %d", res.Rank, res.Expected, res.Guess), true)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *TrainerModel) quit() tea.Cmd {
	m.trainer.Close()
	m.observer.Stop()
	return tea.Quit
}

func (m *TrainerModel) setNotice(text string, isError bool) tea.Cmd {
	m.notice = text
	m.isError = isError
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}

// parseGuess 只接受 [0, MaxGuess]
func parseGuess(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > quiz.MaxGuess {
		return 0, false
	}
	return n, true
}

func describe(err error) string {
	var ge *apperrors.GameError
	if errors.As(err, &ge) {
		return "⚠️ " + ge.Message
	}
	return fmt.Sprintf("⚠️ %v", err)
}
