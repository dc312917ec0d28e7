package card

import "github.com/charmbracelet/bubbles/key"

// keyMap горячие клавиши карточки трека
type keyMap struct {
	RateDown    key.Binding
	RateUp      key.Binding
	RateDownBig key.Binding
	RateUpBig   key.Binding
	Compose     key.Binding
	SwitchFocus key.Binding
	Submit      key.Binding
	Cancel      key.Binding
	Back        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		RateDown:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "оценка -1")),
		RateUp:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "оценка +1")),
		RateDownBig: key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "-10")),
		RateUpBig:   key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "+10")),
		Compose:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "добавить комментарий")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "текст/оценка")),
		Submit:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "отправить")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "отмена")),
		Back:        key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "назад")),
	}
}

// browseKeys подсказка, когда форма закрыта
type browseKeys struct{ k keyMap }

func (b browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{b.k.RateDown, b.k.RateUp, b.k.RateUpBig, b.k.Compose, b.k.Back}
}

func (b browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{b.ShortHelp()}
}

// composeKeys подсказка для открытой формы
type composeKeys struct{ k keyMap }

func (c composeKeys) ShortHelp() []key.Binding {
	return []key.Binding{c.k.SwitchFocus, c.k.RateDown, c.k.RateUp, c.k.Submit, c.k.Cancel}
}

func (c composeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{c.ShortHelp()}
}
