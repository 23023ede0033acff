// Package trainer drives a match for the card-memory trainer. It owns the
// match state, the quiz board and the autoplay timer; front ends read
// snapshots through an Observer and send commands back.
package trainer

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/landlord-trainer/internal/apperrors"
	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/counter"
	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/game/quiz"
	"github.com/palemoky/landlord-trainer/internal/logger"
)

// Observer 每次状态变更后收到快照和刚发生的事件
type Observer interface {
	OnUpdate(snap Snapshot, ev match.Event)
}

// ObserverFunc 函数适配器
type ObserverFunc func(Snapshot, match.Event)

func (f ObserverFunc) OnUpdate(snap Snapshot, ev match.Event) { f(snap, ev) }

// Narrator 播报每一次出牌或不要
type Narrator interface {
	Speak(text string, seat int)
}

// QuizResult 一次作答的结果
type QuizResult struct {
	Rank     card.Rank
	Guess    int
	Expected int
	Correct  bool
	Board    quiz.Board
}

// Option 构造参数
type Option func(*Trainer)

// WithRand 注入随机源，用于可复现的发牌和出题
func WithRand(rng *rand.Rand) Option {
	return func(t *Trainer) { t.rng = rng }
}

// WithObserver 注册观察者，可多次使用
func WithObserver(o Observer) Option {
	return func(t *Trainer) { t.observers = append(t.observers, o) }
}

// WithNarrator 设置播报者
func WithNarrator(n Narrator) Option {
	return func(t *Trainer) { t.narrator = n }
}

// Trainer 训练器。所有命令在 mu 下执行完毕，观察者在锁外通知
type Trainer struct {
	mu sync.Mutex

	settings Settings
	rng      *rand.Rand

	gameID     string
	state      match.State
	board      quiz.Board
	quiz       *quiz.Quiz
	showMyHand bool

	autoPlaying bool
	interval    time.Duration
	timer       *time.Timer
	// generation 每次取消自动出牌时递增，过期的定时回调据此丢弃
	generation uint64

	version uint64
	closed  bool

	observers []Observer
	narrator  Narrator
}

// New 创建训练器，此时尚未发牌
func New(settings Settings, opts ...Option) *Trainer {
	if settings.QuizEvery <= 0 {
		settings.QuizEvery = DefaultQuizEvery
	}
	if settings.Interval <= 0 {
		settings.Interval = DefaultInterval
	}

	t := &Trainer{
		settings: settings,
		interval: settings.clamp(settings.Interval),
		state: match.State{
			Phase:        match.NotStarted,
			LastPlayerID: -1,
			Landlord:     -1,
			Winner:       -1,
			Ledger:       counter.NewLedger(),
			Message:      "等待开始新的一局",
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = settings.newRand()
	}
	return t
}

// Snapshot 返回当前状态的拷贝
func (t *Trainer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// StartNewGame 发牌开始新的一局。上一局的定时器、测验和自动出牌全部作废
func (t *Trainer) StartNewGame() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}

	t.cancelAutoPlayLocked()
	t.autoPlaying = false
	t.quiz = nil

	deal := card.Deal(t.rng)
	t.gameID = uuid.NewString()
	t.state = match.New(deal, t.settings.Names)
	logger.LogInfo("新的一局 %s 开始，地主: %s (座位 %d)", t.gameID, t.state.Players[deal.Landlord].Name, deal.Landlord)

	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, noEvent())
}

// PlayNext 手动推进一步
func (t *Trainer) PlayNext() error {
	t.mu.Lock()
	if err := t.checkPlayableLocked(); err != nil {
		t.mu.Unlock()
		return err
	}

	ev := t.stepLocked()
	if t.autoPlaying {
		// 手动推进后重新计时
		t.armLocked()
	}
	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, ev)
	return nil
}

// SetAutoPlaying 开关自动出牌。关闭总是成功
func (t *Trainer) SetAutoPlaying(on bool) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}

	if on {
		if err := t.checkPlayableLocked(); err != nil {
			t.mu.Unlock()
			return err
		}
		t.autoPlaying = true
		t.armLocked()
	} else {
		t.autoPlaying = false
		t.cancelAutoPlayLocked()
	}

	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, noEvent())
	return nil
}

// SetAutoPlaySpeed 设置自动出牌间隔，超出范围的值会被限制到边界
func (t *Trainer) SetAutoPlaySpeed(d time.Duration) error {
	if d <= 0 {
		return apperrors.ErrBadSpeed
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}

	t.interval = t.settings.clamp(d)
	if t.autoPlaying {
		t.armLocked()
	}
	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, noEvent())
	return nil
}

// SubmitQuizAnswer 回答当前测验。无论对错测验都会关闭，自动出牌保持暂停
func (t *Trainer) SubmitQuizAnswer(guess int) (QuizResult, error) {
	t.mu.Lock()
	if t.quiz == nil {
		t.mu.Unlock()
		return QuizResult{}, apperrors.ErrNoQuiz
	}

	q := *t.quiz
	correct := q.Check(guess)
	t.board = t.board.Apply(correct)
	t.quiz = nil

	if correct {
		t.state.Message = fmt.Sprintf("回答正确！%s 还剩 %d 张，+%d 分", q.Rank, q.Expected, quiz.PointsPerCorrect)
	} else {
		t.state.Message = fmt.Sprintf("回答错误，%s 还剩 %d 张", q.Rank, q.Expected)
	}
	logger.LogInfo("记牌测验: %s 答 %d 实际 %d 正确=%v 得分=%d 连对=%d",
		q.Rank, guess, q.Expected, correct, t.board.Score, t.board.Streak)

	result := QuizResult{Rank: q.Rank, Guess: guess, Expected: q.Expected, Correct: correct, Board: t.board}
	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, noEvent())
	return result, nil
}

// CloseQuiz 不作答直接关闭测验，不计分
func (t *Trainer) CloseQuiz() error {
	t.mu.Lock()
	if t.quiz == nil {
		t.mu.Unlock()
		return apperrors.ErrNoQuiz
	}

	t.quiz = nil
	t.state.Message = "已跳过记牌测验"
	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, noEvent())
	return nil
}

// OpenQuiz 手动出一道记牌题，会暂停自动出牌
func (t *Trainer) OpenQuiz() error {
	t.mu.Lock()
	switch {
	case t.closed:
		t.mu.Unlock()
		return nil
	case t.state.Phase == match.NotStarted:
		t.mu.Unlock()
		return apperrors.ErrGameNotStart
	case t.quiz != nil:
		t.mu.Unlock()
		return apperrors.ErrQuizOpen
	}

	t.openQuizLocked()
	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, noEvent())
	return nil
}

// ToggleShowMyHand 记牌板上是否标出自己手里的牌
func (t *Trainer) ToggleShowMyHand() {
	t.mu.Lock()
	t.showMyHand = !t.showMyHand
	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, noEvent())
}

// Close 停止定时器，之后的命令不再生效
func (t *Trainer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.autoPlaying = false
	t.cancelAutoPlayLocked()
}

// --- 内部实现 ---

func noEvent() match.Event {
	return match.Event{Kind: match.EventNone, Seat: -1}
}

func (t *Trainer) checkPlayableLocked() error {
	switch {
	case t.closed, t.state.Phase == match.NotStarted:
		return apperrors.ErrGameNotStart
	case t.state.Phase == match.RoundOver:
		return apperrors.ErrGameOver
	case t.quiz != nil:
		return apperrors.ErrQuizOpen
	}
	return nil
}

// stepLocked 推进一步并处理测验触发和结束
func (t *Trainer) stepLocked() match.Event {
	next, ev := match.Next(t.state)
	t.state = next

	switch ev.Kind {
	case match.EventPlayed:
		if t.quiz == nil && next.QuizDue(t.settings.QuizEvery) && t.rng.Float64() < t.settings.QuizProbability {
			t.openQuizLocked()
		}
	case match.EventGameOver:
		t.autoPlaying = false
		t.cancelAutoPlayLocked()
		logger.LogInfo("本局结束，%s 获胜，共出牌 %d 手", next.Players[ev.Seat].Name, next.PlayedHistoryCount)
	}
	return ev
}

// openQuizLocked 抽题并冻结答案，同时暂停自动出牌
func (t *Trainer) openQuizLocked() {
	r := t.settings.Picker.Pick(t.rng)
	q := quiz.Open(r, t.state.Ledger.Remaining())
	t.quiz = &q

	t.autoPlaying = false
	t.cancelAutoPlayLocked()
	t.state.Message = fmt.Sprintf("记牌测验：%s 还剩几张？", r)
	logger.LogInfo("记牌测验开启: %s (已出牌 %d 手)", r, t.state.PlayedHistoryCount)
}

// cancelAutoPlayLocked 停止定时器并作废所有已安排的回调
func (t *Trainer) cancelAutoPlayLocked() {
	t.generation++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// armLocked 重新安排下一次自动出牌
func (t *Trainer) armLocked() {
	t.cancelAutoPlayLocked()
	if !t.autoPlaying || t.closed || t.quiz != nil || t.state.Phase != match.InProgress {
		return
	}

	gen := t.generation
	t.timer = time.AfterFunc(t.interval, func() {
		t.tick(gen)
	})
}

// tick 定时回调，generation 不一致说明已被取消
func (t *Trainer) tick(gen uint64) {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	t.mu.Lock()
	if gen != t.generation || t.closed || !t.autoPlaying || t.checkPlayableLocked() != nil {
		t.mu.Unlock()
		return
	}

	ev := t.stepLocked()
	t.armLocked()
	snap := t.changedLocked()
	t.mu.Unlock()

	t.publish(snap, ev)
}

func (t *Trainer) publish(snap Snapshot, ev match.Event) {
	if t.narrator != nil && (ev.Kind == match.EventPlayed || ev.Kind == match.EventPassed) {
		t.narrator.Speak(ev.Speech, ev.Seat)
	}
	for _, o := range t.observers {
		o.OnUpdate(snap.Clone(), ev)
	}
}
