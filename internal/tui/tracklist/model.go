// Package tracklist содержит модель списка треков главного экрана
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2).Bold(true)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	metaStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ratingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

const (
	// ratingStep шаг изменения оценки стрелками
	ratingStep = 1
	// ratingBigStep шаг изменения оценки стрелками с Shift
	ratingBigStep = 10
)

// TrackSelectedMsg отправляется при открытии карточки трека
type TrackSelectedMsg struct {
	TrackID int
}

// ComposeMsg отправляется при нажатии "Добавить" комментарий на треке
type ComposeMsg struct {
	TrackID int
}

// RateMsg отправляется при изменении оценки пользователя
type RateMsg struct {
	TrackID int
	Value   int
}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track data.Track
}

func (i trackItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.track.Artist, i.track.Title, i.track.Genre)
}

// trackItemDelegate реализует отображение элементов списка в две строки
type trackItemDelegate struct {
	formatter *utils.NumberFormatter
}

func (d trackItemDelegate) Height() int                             { return 2 }
func (d trackItemDelegate) Spacing() int                            { return 1 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	// Первая строка: название, исполнитель, оценка
	head := fmt.Sprintf("%-32s %-20s %s",
		utils.TruncateString(i.track.Title, 32),
		utils.TruncateString(i.track.Artist, 20),
		ratingStyle.Render(utils.FormatRating(i.track.Rating)))

	// Вторая строка: жанр, прослушивания, комментарии, оценка пользователя
	meta := []string{
		i.track.Genre,
		"▶ " + d.formatter.Int(i.track.Plays),
		fmt.Sprintf("💬 %d", len(i.track.Comments)),
	}
	if i.track.HasUserRating() {
		meta = append(meta, fmt.Sprintf("Ваша оценка: %d", i.track.UserRatingValue()))
	}
	line := metaStyle.Render(strings.Join(meta, " · "))

	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("> "+head)+"\n"+selectedItemStyle.Render("  "+line))
		return
	}
	fmt.Fprint(w, itemStyle.Render(head)+"\n"+itemStyle.Render(line))
}

// Model представляет модель списка треков
type Model struct {
	list     list.Model
	quitting bool
}

// NewModel создает новую модель списка треков
func NewModel(tracks []data.Track, formatter *utils.NumberFormatter) *Model {
	l := list.New(toItems(tracks), trackItemDelegate{formatter: formatter}, 0, 0)
	l.Title = "Новая музыка"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list: l,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет элементы без сброса выделения
func (m *Model) RefreshData(tracks []data.Track) {
	m.list.SetItems(toItems(tracks))
}

// SelectedTrack возвращает выделенный трек
func (m *Model) SelectedTrack() (data.Track, bool) {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok {
		return data.Track{}, false
	}
	return item.track, true
}

// SetSize задает размер списка
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if t, ok := m.SelectedTrack(); ok {
				return m, func() tea.Msg {
					return TrackSelectedMsg{TrackID: t.ID}
				}
			}
			return m, nil

		case "a":
			if t, ok := m.SelectedTrack(); ok {
				return m, func() tea.Msg {
					return ComposeMsg{TrackID: t.ID}
				}
			}
			return m, nil

		case "left", "right", "shift+left", "shift+right":
			if t, ok := m.SelectedTrack(); ok {
				value := data.ClampRating(t.UserRatingValue() + ratingDelta(keyMsg.String()))
				return m, func() tea.Msg {
					return RateMsg{TrackID: t.ID, Value: value}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	extraHelp := helpStyle.Render("Enter: карточка • ←/→: оценка (Shift ±10) • a: комментарий • q: выход")
	return m.list.View() + "\n" + extraHelp
}

func ratingDelta(key string) int {
	switch key {
	case "left":
		return -ratingStep
	case "right":
		return ratingStep
	case "shift+left":
		return -ratingBigStep
	default:
		return ratingBigStep
	}
}

func toItems(tracks []data.Track) []list.Item {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}
	return items
}
