package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	NewGame  key.Binding
	AutoPlay key.Binding
	Step     key.Binding
	Faster   key.Binding
	Slower   key.Binding
	MyHand   key.Binding
	Quiz     key.Binding
	Rules    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NewGame:  key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "新局")),
		AutoPlay: key.NewBinding(key.WithKeys(" "), key.WithHelp("空格", "自动/暂停")),
		Step:     key.NewBinding(key.WithKeys("enter", "right"), key.WithHelp("回车", "出一步")),
		Faster:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "加速")),
		Slower:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "减速")),
		MyHand:   key.NewBinding(key.WithKeys("m", "M"), key.WithHelp("m", "标出手牌")),
		Quiz:     key.NewBinding(key.WithKeys("k", "K"), key.WithHelp("k", "测验")),
		Rules:    key.NewBinding(key.WithKeys("h", "H", "?"), key.WithHelp("h", "帮助")),
		Quit:     key.NewBinding(key.WithKeys("q", "Q", "ctrl+c", "esc"), key.WithHelp("q", "退出")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewGame, k.AutoPlay, k.Step, k.Faster, k.Slower, k.MyHand, k.Quiz, k.Rules, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewGame, k.AutoPlay, k.Step},
		{k.Faster, k.Slower, k.MyHand},
		{k.Quiz, k.Rules, k.Quit},
	}
}
