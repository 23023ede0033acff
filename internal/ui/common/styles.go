// Package common provides shared styles and utilities for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/landlord-trainer/internal/game/card"
	"github.com/palemoky/landlord-trainer/internal/game/counter"
)

// Icon constants
const (
	LandlordIcon = "👑"
	FarmerIcon   = "🧑‍🌾"
	TurnIcon     = "👉"
	SpeakerIcon  = "🔊"

	SlotEmptyGlyph  = "·"
	SlotMyHandGlyph = "●"
)

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	TurnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	QuizStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("212")).Padding(1, 3)

	// 记牌数量配色：出完、所剩不多、充足
	CountGoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	CountLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	CountFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// SeatStyles 记牌板上每个座位的颜色
	SeatStyles = [card.PlayerCount]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
	}

	DisplayOrder = counter.GridOrder
)

// CardStyle 按牌面颜色选择样式
func CardStyle(c card.Card) lipgloss.Style {
	if c.Color == card.Red {
		return RedStyle
	}
	return BlackStyle
}

// CountStyle 按剩余张数选择样式
func CountStyle(remaining int) lipgloss.Style {
	switch {
	case remaining == 0:
		return CountGoneStyle
	case remaining <= 2:
		return CountLowStyle
	default:
		return CountFullStyle
	}
}
