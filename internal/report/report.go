// Package report plays a match without a terminal UI and renders a summary
// with pterm.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"github.com/palemoky/landlord-trainer/internal/apperrors"
	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/counter"
	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/trainer"
)

// maxSteps 防止意外死循环
const maxSteps = 2000

// Entry 一条出牌记录
type Entry struct {
	Step      int
	Seat      int
	Kind      match.EventKind
	Cards     string
	Speech    string
	Remaining int
}

// Recorder 收集对局事件，实现 trainer.Observer
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
	quizzes int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnUpdate(snap trainer.Snapshot, ev match.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch ev.Kind {
	case match.EventPlayed, match.EventPassed, match.EventGameOver:
		r.entries = append(r.entries, Entry{
			Step:      len(r.entries) + 1,
			Seat:      ev.Seat,
			Kind:      ev.Kind,
			Cards:     card.Format(ev.Cards),
			Speech:    ev.Speech,
			Remaining: snap.RemainingCounts.Total(),
		})
	}
	if snap.IsQuizOpen && ev.Kind == match.EventPlayed {
		r.quizzes++
	}
}

// Entries 返回记录的拷贝
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Quizzes 自动弹出的测验次数
func (r *Recorder) Quizzes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quizzes
}

// Play 开一局并手动推进到结束。弹出的测验直接跳过
func Play(tr *trainer.Trainer) (trainer.Snapshot, error) {
	tr.StartNewGame()

	for range maxSteps {
		err := tr.PlayNext()
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrGameOver):
			return tr.Snapshot(), nil
		case errors.Is(err, apperrors.ErrQuizOpen):
			if err := tr.CloseQuiz(); err != nil {
				return tr.Snapshot(), fmt.Errorf("close quiz: %w", err)
			}
		default:
			return tr.Snapshot(), err
		}
	}
	return tr.Snapshot(), fmt.Errorf("match did not finish within %d steps", maxSteps)
}

// Write 渲染报告并写入 w
func Write(w io.Writer, snap trainer.Snapshot, rec *Recorder) error {
	_, err := io.WriteString(w, Render(snap, rec.Entries(), rec.Quizzes()))
	return err
}

// Render 生成完整报告
func Render(snap trainer.Snapshot, entries []Entry, quizzes int) string {
	var sb strings.Builder

	sb.WriteString(pterm.DefaultHeader.WithFullWidth().Sprint("斗地主记牌训练 · 对局报告"))
	sb.WriteString("\n")
	if snap.GameID != "" {
		sb.WriteString(pterm.FgGray.Sprint("对局 " + snap.GameID))
		sb.WriteString("\n")
	}

	sb.WriteString(pterm.DefaultSection.Sprint("玩家"))
	sb.WriteString(renderPlayers(snap))
	sb.WriteString("\n")

	sb.WriteString(pterm.DefaultSection.Sprint("出牌记录"))
	sb.WriteString(renderLog(snap, entries))
	sb.WriteString("\n")

	sb.WriteString(pterm.DefaultSection.Sprint("记牌器"))
	sb.WriteString(renderCounter(snap.RemainingCounts))
	sb.WriteString("\n")

	sb.WriteString(pterm.DefaultSection.Sprint("记牌板"))
	sb.WriteString(renderBoard(snap))
	sb.WriteString("\n")

	sb.WriteString(renderResult(snap, quizzes))
	return sb.String()
}

func seatName(snap trainer.Snapshot, seat int) string {
	if seat < 0 || seat >= card.PlayerCount {
		return "-"
	}
	return snap.Players[seat].Name
}

// renderPlayers 玩家信息，地主高亮
func renderPlayers(snap trainer.Snapshot) string {
	var sb strings.Builder
	for i, p := range snap.Players {
		icon := "👨"
		style := pterm.NewStyle(pterm.FgLightWhite)
		if p.IsLandlord {
			icon = "👑"
			style = pterm.NewStyle(pterm.FgLightYellow, pterm.Bold)
		}
		sb.WriteString(style.Sprintf("%s [%d] %s", icon, i, p.Name))
		fmt.Fprintf(&sb, "  剩余牌数: %d", len(p.Hand))
		if len(p.Hand) > 0 {
			sb.WriteString("  " + card.Format(p.Hand))
		}
		sb.WriteString("\n")
	}
	return pterm.DefaultBox.WithTitle("座位").WithTitleTopCenter().Sprint(strings.TrimRight(sb.String(), "\n")) + "\n"
}

// renderLog 每一步的出牌和播报
func renderLog(snap trainer.Snapshot, entries []Entry) string {
	data := pterm.TableData{{"步", "玩家", "出牌", "播报", "未出现"}}
	for _, e := range entries {
		cards := e.Cards
		switch e.Kind {
		case match.EventPassed:
			cards = pterm.FgGray.Sprint("-")
		case match.EventGameOver:
			cards = pterm.LightGreen("出完")
		}
		data = append(data, []string{
			fmt.Sprintf("%d", e.Step),
			seatName(snap, e.Seat),
			cards,
			e.Speech,
			fmt.Sprintf("%d", e.Remaining),
		})
	}
	out, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	return out + "\n"
}

// renderCounter 每个点数还剩几张
func renderCounter(remaining card.Counts) string {
	header, counts := []string{}, []string{}
	for _, r := range counter.GridOrder {
		header = append(header, r.String())

		n := remaining.Get(r)
		var s string
		switch {
		case n == 0:
			s = pterm.NewStyle(pterm.FgRed, pterm.Strikethrough).Sprintf(" %d ", n)
		case n <= 2:
			s = pterm.NewStyle(pterm.FgYellow).Sprintf(" %d ", n)
		default:
			s = pterm.NewStyle(pterm.FgGreen).Sprintf(" %d ", n)
		}
		counts = append(counts, s)
	}

	out, _ := pterm.DefaultTable.WithData(pterm.TableData{header, counts}).WithBoxed().Srender()
	return out + "\n"
}

// renderBoard 每个点数的每一张由谁打出
func renderBoard(snap trainer.Snapshot) string {
	data := pterm.TableData{{"点数", "1", "2", "3", "4"}}
	for _, row := range snap.Recorder {
		line := []string{row.Rank.String()}
		for _, slot := range row.Slots {
			switch slot.Kind {
			case counter.SlotPlayed:
				line = append(line, seatName(snap, slot.Seat))
			case counter.SlotInMyHand:
				line = append(line, "●")
			default:
				line = append(line, "·")
			}
		}
		data = append(data, line)
	}
	out, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	return out + "\n"
}

func renderResult(snap trainer.Snapshot, quizzes int) string {
	if snap.Phase != match.RoundOver {
		return pterm.Warning.Sprintfln("对局未结束: %s", snap.Message)
	}

	side := "农民"
	if snap.Winner == snap.Landlord {
		side = "地主"
	}
	return pterm.Success.Sprintfln("%s (%s) 获胜! 共出牌 %d 手, 弹出测验 %d 次",
		seatName(snap, snap.Winner), side, snap.PlayedHistoryCount, quizzes)
}
