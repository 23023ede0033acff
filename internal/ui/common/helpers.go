// Package common provides shared utilities for the UI.
package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ellipsis = "…"

// TruncateName 按显示宽度截断玩家名，中文占两格
func TruncateName(name string, maxWidth int) string {
	if lipgloss.Width(name) <= maxWidth {
		return name
	}

	limit := maxWidth - lipgloss.Width(ellipsis)
	var sb strings.Builder
	w := 0
	for _, r := range name {
		rw := lipgloss.Width(string(r))
		if w+rw > limit {
			break
		}
		sb.WriteRune(r)
		w += rw
	}
	return sb.String() + ellipsis
}
