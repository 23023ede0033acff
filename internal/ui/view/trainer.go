// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/counter"
	"github.com/palemoky/landlord-trainer/internal/game/match"
	"github.com/palemoky/landlord-trainer/internal/game/rule"
	"github.com/palemoky/landlord-trainer/internal/trainer"
	"github.com/palemoky/landlord-trainer/internal/ui/common"
)

const nameWidth = 10

// Screen 渲染一帧所需的全部数据
type Screen struct {
	Snap      trainer.Snapshot
	LastEvent match.Event
	Width     int
	Height    int

	QuizInput string // 已渲染的输入框
	Help      string // 已渲染的快捷键提示
	Notice    string
	IsError   bool
	ShowRules bool
}

// TrainerView renders the whole trainer screen.
func TrainerView(sc Screen) string {
	s := sc.Snap

	if sc.ShowRules {
		return place(sc, RenderGameRules())
	}
	if s.IsQuizOpen {
		return place(sc, RenderQuiz(s, sc.QuizInput))
	}

	var sb strings.Builder
	sb.WriteString(RenderHeader(s))
	sb.WriteString("\n")

	if s.Phase == match.NotStarted {
		sb.WriteString(common.BoxStyle.Render(s.Message))
	} else {
		top := lipgloss.JoinHorizontal(lipgloss.Top, RenderCounterGrid(s.RemainingCounts), "  ", RenderRecorder(s))
		sb.WriteString(top)
		sb.WriteString("\n")
		sb.WriteString(RenderMiddle(s))
		sb.WriteString("\n")
		sb.WriteString(RenderHand(s.Players[match.HumanSeat], s.TurnIndex == match.HumanSeat && s.Phase == match.InProgress))
		sb.WriteString("\n")
		sb.WriteString(RenderStatus(s, sc.LastEvent))
	}

	if sc.Notice != "" {
		sb.WriteString("\n")
		if sc.IsError {
			sb.WriteString(common.ErrorStyle.Render(sc.Notice))
		} else {
			sb.WriteString(sc.Notice)
		}
	}
	if sc.Help != "" {
		sb.WriteString("\n")
		sb.WriteString(common.PromptStyle.Render(sc.Help))
	}

	return place(sc, sb.String())
}

func place(sc Screen, content string) string {
	if sc.Width <= 0 || sc.Height <= 0 {
		return content
	}
	return lipgloss.Place(sc.Width, sc.Height, lipgloss.Center, lipgloss.Center, content)
}

// RenderHeader 标题、得分和自动出牌状态
func RenderHeader(s trainer.Snapshot) string {
	title := common.TitleStyle("🃏 斗地主记牌训练")

	auto := "⏸ 手动"
	if s.IsAutoPlaying {
		auto = "▶ 自动"
	}
	stats := fmt.Sprintf("得分 %d | 连对 %d | 正确 %d/%d | %s %s | %s",
		s.Score, s.QuizStreak, s.QuizCorrect, s.QuizAnswered,
		auto, formatInterval(s.AutoPlayInterval), s.Phase)

	return lipgloss.JoinVertical(lipgloss.Center, title, common.GrayStyle.Render(stats))
}

func formatInterval(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// RenderCounterGrid 记牌器：每个点数还剩几张
func RenderCounterGrid(remaining card.Counts) string {
	names := make([]string, 0, len(common.DisplayOrder))
	counts := make([]string, 0, len(common.DisplayOrder))
	for _, r := range common.DisplayOrder {
		name := r.String()
		switch r {
		case card.RankRedJoker:
			name = "R"
		case card.RankBlackJoker:
			name = "B"
		}
		n := remaining.Get(r)
		names = append(names, fmt.Sprintf("%-2s", name))
		counts = append(counts, common.CountStyle(n).Render(fmt.Sprintf("%-2d", n)))
	}

	var sb strings.Builder
	sb.WriteString("记牌器\n")
	sb.WriteString(strings.Join(names, "│") + "\n")
	sb.WriteString(strings.Repeat("─", len(names)*3-1) + "\n")
	sb.WriteString(strings.Join(counts, "│"))
	return common.BoxStyle.Render(sb.String())
}

// RenderRecorder 记牌板：每张牌由谁打出
func RenderRecorder(s trainer.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("记牌板 ")
	for i, p := range s.Players {
		sb.WriteString(common.SeatStyles[i].Render(fmt.Sprintf("%d", i)))
		sb.WriteString(" " + common.TruncateName(p.Name, nameWidth) + " ")
	}
	sb.WriteString("\n")

	for _, row := range s.Recorder {
		fmt.Fprintf(&sb, "%-2s ", row.Rank.String())
		for _, slot := range row.Slots {
			sb.WriteString(renderSlot(slot))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	if s.ShowMyHand {
		sb.WriteString(common.GrayStyle.Render(common.SlotMyHandGlyph + " 我的手牌"))
	} else {
		sb.WriteString(common.GrayStyle.Render("M 键标出我的手牌"))
	}
	return common.BoxStyle.Render(sb.String())
}

func renderSlot(slot counter.Slot) string {
	switch slot.Kind {
	case counter.SlotPlayed:
		return common.SeatStyles[slot.Seat].Render(fmt.Sprintf("%d", slot.Seat))
	case counter.SlotInMyHand:
		return common.SeatStyles[match.HumanSeat].Render(common.SlotMyHandGlyph)
	default:
		return common.GrayStyle.Render(common.SlotEmptyGlyph)
	}
}

// RenderMiddle 两个对手和桌面上的牌
func RenderMiddle(s trainer.Snapshot) string {
	parts := make([]string, 0, card.PlayerCount)
	for i := 1; i < card.PlayerCount; i++ {
		seat := (match.HumanSeat + i) % card.PlayerCount
		parts = append(parts, renderOpponent(s, seat))
	}
	parts = append(parts, renderTable(s))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderOpponent(s trainer.Snapshot, seat int) string {
	p := s.Players[seat]
	icon := common.FarmerIcon
	if p.IsLandlord {
		icon = common.LandlordIcon
	}

	name := common.TruncateName(p.Name, nameWidth)
	if s.TurnIndex == seat && s.Phase == match.InProgress {
		name = common.TurnIcon + common.TurnStyle.Render(name)
	}
	info := fmt.Sprintf("%s %s\n🃏 %d张", icon, name, len(p.Hand))
	return common.BoxStyle.Width(18).Render(info)
}

func renderTable(s trainer.Snapshot) string {
	if len(s.TableHand) == 0 {
		return common.BoxStyle.Width(28).Render("(等待出牌...)")
	}

	cards := make([]string, 0, len(s.TableHand))
	for _, c := range s.TableHand {
		cards = append(cards, common.CardStyle(c).Render(c.String()))
	}

	who := ""
	if s.LastPlayerID >= 0 && s.LastPlayerID < card.PlayerCount {
		who = common.TruncateName(s.Players[s.LastPlayerID].Name, nameWidth)
	}
	content := fmt.Sprintf("%s: %s\n%s", who, strings.Join(cards, " "), rule.Analyze(s.TableHand).Type)
	return common.BoxStyle.Width(28).Render(content)
}

// RenderHand 被观察座位的手牌
func RenderHand(p match.Player, myTurn bool) string {
	icon := common.FarmerIcon
	if p.IsLandlord {
		icon = common.LandlordIcon
	}
	title := fmt.Sprintf("%s %s (%d张)", icon, p.Name, len(p.Hand))
	if myTurn {
		title = common.TurnIcon + common.TurnStyle.Render(title)
	}

	if len(p.Hand) == 0 {
		return common.BoxStyle.Render(title + "\n(无手牌)")
	}

	var rankStr, suitStr strings.Builder
	for _, c := range p.Hand {
		style := common.CardStyle(c).Align(lipgloss.Center).Margin(0, 1)
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Rank.String())))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Suit.String())))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, rankStr.String(), suitStr.String())
	return common.BoxStyle.Render(content)
}

// RenderStatus 局面消息和最近一次播报
func RenderStatus(s trainer.Snapshot, ev match.Event) string {
	lines := []string{s.Message}
	if (ev.Kind == match.EventPlayed || ev.Kind == match.EventPassed) && ev.Seat >= 0 {
		speaker := common.SeatStyles[ev.Seat].Render(s.Players[ev.Seat].Name)
		lines = append(lines, fmt.Sprintf("%s %s: %s", common.SpeakerIcon, speaker, ev.Speech))
	}
	if s.Phase == match.RoundOver {
		lines = append(lines, "按 N 再来一局")
	}
	return common.PromptStyle.Render(strings.Join(lines, "\n"))
}

// RenderQuiz 记牌测验弹窗
func RenderQuiz(s trainer.Snapshot, input string) string {
	var sb strings.Builder
	sb.WriteString(common.TitleStyle("🧠 记牌测验"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "已经出了 %d 手牌\n", s.PlayedHistoryCount)
	fmt.Fprintf(&sb, "%s 还剩几张没出现？(0-%d)\n\n", s.Quiz.Rank, s.Quiz.Rank.InitialCount())
	sb.WriteString(input)
	sb.WriteString("\n\n")
	sb.WriteString(common.GrayStyle.Render("回车提交 · ESC 跳过"))
	return common.QuizStyle.Render(sb.String())
}
