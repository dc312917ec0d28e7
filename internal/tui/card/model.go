// Package card содержит модель экрана карточки трека с формой комментария
package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-musicrate/internal/composer"
	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/utils"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	artistStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(16)
	sectionStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	commentStyle  = lipgloss.NewStyle().PaddingLeft(2).MarginTop(1)
	authorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginRight(2)
	composerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			MarginTop(1)
	containerStyle = lipgloss.NewStyle().Margin(1, 2)
)

const (
	ratingStep    = 1
	ratingBigStep = 10
	barWidth      = 30
)

// GoBackMsg отправляется для возврата к списку треков
type GoBackMsg struct{}

// RateMsg отправляется при изменении оценки пользователя в карточке
type RateMsg struct {
	TrackID int
	Value   int
}

// SubmitCommentMsg просит главную модель отправить черновик
type SubmitCommentMsg struct{}

// Model представляет модель карточки трека
type Model struct {
	track         data.Track
	composer      composer.Composer
	textarea      textarea.Model
	ratingFocused bool
	bar           progress.Model
	keys          keyMap
	help          help.Model
	formatter     *utils.NumberFormatter
	width         int
}

// NewModel создает карточку трека
func NewModel(t data.Track, c composer.Composer, formatter *utils.NumberFormatter) *Model {
	ta := textarea.New()
	ta.Placeholder = "Поделитесь впечатлением о треке..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 500
	ta.SetWidth(60)
	ta.SetHeight(3)

	m := &Model{
		track:     t,
		textarea:  ta,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage()),
		keys:      defaultKeyMap(),
		help:      help.New(),
		formatter: formatter,
	}
	m.SetComposer(c)
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	if m.composer.IsOpenFor(m.track.ID) && !m.ratingFocused {
		return textarea.Blink
	}
	return nil
}

// Track возвращает отображаемый трек
func (m *Model) Track() data.Track {
	return m.track
}

// SetTrack обновляет данные трека, например после изменения хранилища
func (m *Model) SetTrack(t data.Track) {
	m.track = t
}

// Composer возвращает текущее состояние формы
func (m *Model) Composer() composer.Composer {
	return m.composer
}

// SetComposer заменяет состояние формы и синхронизирует поле ввода
func (m *Model) SetComposer(c composer.Composer) {
	m.composer = c
	m.ratingFocused = false
	m.textarea.SetValue(c.DraftText())
	if c.IsOpenFor(m.track.ID) {
		m.textarea.Focus()
		return
	}
	m.textarea.Blur()
}

// OpenComposer открывает форму для трека, если она еще не открыта
func (m *Model) OpenComposer(trackID int) {
	if m.composer.IsOpenFor(trackID) {
		return
	}
	m.SetComposer(m.composer.Toggle(trackID))
}

// SetSize задает ширину карточки
func (m *Model) SetSize(width, _ int) {
	m.width = width
	m.help.Width = width
	m.textarea.SetWidth(max(20, min(60, width-8)))
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	if m.composer.IsOpenFor(m.track.ID) {
		return m.updateComposer(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return GoBackMsg{} }

	case key.Matches(keyMsg, m.keys.RateDown, m.keys.RateUp, m.keys.RateDownBig, m.keys.RateUpBig):
		value := data.ClampRating(m.track.UserRatingValue() + m.ratingDelta(keyMsg))
		id := m.track.ID
		return m, func() tea.Msg { return RateMsg{TrackID: id, Value: value} }

	case key.Matches(keyMsg, m.keys.Compose):
		m.SetComposer(m.composer.Toggle(m.track.ID))
		return m, textarea.Blink
	}

	return m, nil
}

// updateComposer обрабатывает ввод при открытой форме
func (m *Model) updateComposer(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.SetComposer(m.composer.Cancel())
			return m, nil

		case key.Matches(keyMsg, m.keys.Submit):
			return m, func() tea.Msg { return SubmitCommentMsg{} }

		case key.Matches(keyMsg, m.keys.SwitchFocus):
			m.ratingFocused = !m.ratingFocused
			if m.ratingFocused {
				m.textarea.Blur()
				return m, nil
			}
			return m, m.textarea.Focus()
		}

		if m.ratingFocused {
			switch {
			case key.Matches(keyMsg, m.keys.RateDown, m.keys.RateUp, m.keys.RateDownBig, m.keys.RateUpBig):
				m.composer = m.composer.SetDraftRating(m.composer.DraftRating() + m.ratingDelta(keyMsg))
			case key.Matches(keyMsg, m.keys.Compose):
				m.SetComposer(m.composer.Toggle(m.track.ID))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.composer = m.composer.SetDraftText(m.textarea.Value())
	return m, cmd
}

func (m *Model) ratingDelta(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, m.keys.RateDown):
		return -ratingStep
	case key.Matches(msg, m.keys.RateUp):
		return ratingStep
	case key.Matches(msg, m.keys.RateDownBig):
		return -ratingBigStep
	default:
		return ratingBigStep
	}
}

// View отображает карточку
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.track.Title) + "\n")
	b.WriteString(artistStyle.Render(m.track.Artist) + "\n\n")

	b.WriteString(labelStyle.Render("Жанр:") + m.track.Genre + "\n")
	b.WriteString(labelStyle.Render("Прослушивания:") + m.formatter.Int(m.track.Plays) + "\n")
	b.WriteString(labelStyle.Render("Рейтинг:") +
		m.bar.ViewAs(float64(m.track.Rating)/data.MaxRating) + " " + utils.FormatRating(m.track.Rating) + "\n")

	userRating := "не выставлена"
	if m.track.HasUserRating() {
		userRating = utils.FormatRating(m.track.UserRatingValue())
	}
	b.WriteString(labelStyle.Render("Ваша оценка:") +
		m.bar.ViewAs(float64(m.track.UserRatingValue())/data.MaxRating) + " " + userRating + "\n")

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Комментарии (%d)", len(m.track.Comments))) + "\n")
	if len(m.track.Comments) == 0 {
		b.WriteString(metaStyle.Render("  Пока нет комментариев") + "\n")
	}
	for _, c := range m.track.Comments {
		head := authorStyle.Render(c.User) + "  " +
			utils.FormatRating(c.Rating) + "  " + metaStyle.Render(c.Date)
		b.WriteString(commentStyle.Render(head+"\n"+c.Text) + "\n")
	}

	if m.composer.IsOpenFor(m.track.ID) {
		b.WriteString(m.composerView() + "\n")
	} else {
		b.WriteString("\n" + buttonStyle.Render("[ Добавить ]") + "\n")
	}

	b.WriteString("\n" + m.helpView())
	return containerStyle.Render(b.String())
}

func (m *Model) composerView() string {
	ratingStyle := blurredStyle
	if m.ratingFocused {
		ratingStyle = focusedStyle
	}

	rating := ratingStyle.Render(fmt.Sprintf("Ваша оценка: %d/100", m.composer.DraftRating())) + " " +
		m.bar.ViewAs(float64(m.composer.DraftRating())/data.MaxRating)

	buttons := buttonStyle.Render("[ Отправить ]") + buttonStyle.Render("[ Отмена ]")

	return composerStyle.Render(strings.Join([]string{
		"Новый комментарий",
		m.textarea.View(),
		rating,
		buttons,
	}, "\n"))
}

func (m *Model) helpView() string {
	if m.composer.IsOpenFor(m.track.ID) {
		return m.help.View(composeKeys{m.keys})
	}
	return m.help.View(browseKeys{m.keys})
}
