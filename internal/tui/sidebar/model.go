// Package sidebar отрисовывает шапку и боковую панель главного экрана:
// статистику, топ треков, жанры и активность за неделю.
package sidebar

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/utils"
	"github.com/hazadus/go-musicrate/internal/views"
)

var (
	logoStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			MarginLeft(2)
	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")).
			MarginBottom(1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle      = lipgloss.NewStyle().Bold(true)
	tagStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// Width ширина боковой панели по умолчанию
const Width = 36

// Model боковая панель. Не хранит копию треков: данные передаются
// в View при каждой отрисовке.
type Model struct {
	stats     views.StatPanel
	rng       *rand.Rand
	formatter *utils.NumberFormatter
	bar       progress.Model
	width     int
}

// NewModel создает боковую панель
func NewModel(stats views.StatPanel, rng *rand.Rand, formatter *utils.NumberFormatter) *Model {
	m := &Model{
		stats:     stats,
		rng:       rng,
		formatter: formatter,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.SetWidth(Width)
	return m
}

// SetWidth задает ширину панели
func (m *Model) SetWidth(width int) {
	m.width = width
	m.bar.Width = max(5, width-12)
}

// Header отрисовывает шапку приложения
func Header(width int) string {
	row := logoStyle.Render("MusicRate") + badgeStyle.Render("Личный профиль")
	return headerStyle.Width(max(width, lipgloss.Width(row))).Render(row)
}

// View отрисовывает все панели для текущего списка треков
func (m *Model) View(tracks []data.Track) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.panel("Ваша статистика", m.statsView()),
		m.panel("Топ треков", m.topView(tracks)),
		m.panel("Жанры", m.genresView(tracks)),
		m.panel("Активность за неделю", m.activityView()),
	)
}

func (m *Model) panel(title, body string) string {
	return panelStyle.Width(m.width).Render(panelTitleStyle.Render(title) + "\n" + body)
}

func (m *Model) statsView() string {
	rows := []struct{ label, value string }{
		{"Оценок", m.formatter.Int(m.stats.TotalRatings)},
		{"Средняя оценка", m.formatter.Float(m.stats.AvgRating)},
		{"Прослушиваний", m.formatter.Int(m.stats.TotalPlays)},
		{"Любимый жанр", m.stats.FavoriteGenre},
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = labelStyle.Render(r.label+": ") + valueStyle.Render(r.value)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) topView(tracks []data.Track) string {
	top := views.TopTracks(tracks, views.TopCount)
	lines := make([]string, len(top))
	for i, t := range top {
		lines[i] = fmt.Sprintf("%d. %s %s\n   %s",
			i+1,
			utils.TruncateString(t.Title, m.width-14),
			valueStyle.Render(utils.FormatRating(t.Rating)),
			labelStyle.Render(t.Artist))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) genresView(tracks []data.Track) string {
	genres := views.Genres(tracks)
	tags := make([]string, len(genres))
	for i, g := range genres {
		tags[i] = tagStyle.Render("#" + g)
	}
	return lipgloss.NewStyle().Width(m.width - 2).Render(strings.Join(tags, " "))
}

// activityView пересчитывает случайные столбцы на каждой отрисовке
func (m *Model) activityView() string {
	days := views.WeeklyActivity(m.rng)
	lines := make([]string, len(days))
	for i, d := range days {
		lines[i] = fmt.Sprintf("%s %s %2d", d.Day, m.bar.ViewAs(float64(d.Value)/100), d.Value)
	}
	return strings.Join(lines, "\n")
}
