package tui

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/track"
	"github.com/hazadus/go-musicrate/internal/tui/app"
	"github.com/hazadus/go-musicrate/internal/tui/card"
	"github.com/hazadus/go-musicrate/internal/tui/tracklist"
	"github.com/hazadus/go-musicrate/internal/utils"
	"github.com/hazadus/go-musicrate/internal/views"
)

func newTestModel(t *testing.T) *app.MainModel {
	t.Helper()
	logger := zaptest.NewLogger(t)
	return app.NewMainModel(app.Options{
		Store:                track.NewStore(data.DefaultCatalog(), track.Options{Logger: logger}),
		Stats:                views.DefaultStatPanel(),
		Rand:                 rand.New(rand.NewPCG(7, 7)),
		Formatter:            utils.NewNumberFormatter("en"),
		Logger:               logger,
		DefaultCommentRating: 85,
	})
}

// send передает сообщение модели и выполняет полученную команду,
// если она возвращает сообщение для главной модели
func send(t *testing.T, m *app.MainModel, msg tea.Msg) *app.MainModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(*app.MainModel)
	require.True(t, ok)

	if cmd == nil {
		return model
	}
	switch next := cmd().(type) {
	case tracklist.TrackSelectedMsg, tracklist.ComposeMsg, tracklist.RateMsg,
		card.RateMsg, card.SubmitCommentMsg, card.GoBackMsg:
		return send(t, model, next)
	}
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMainModelRouting(t *testing.T) {
	model := newTestModel(t)
	assert.Equal(t, app.CatalogScreen, model.Screen())

	model = send(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, app.CardScreen, model.Screen())

	model = send(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, app.CatalogScreen, model.Screen())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRatingFromCatalogAndCard(t *testing.T) {
	model := newTestModel(t)

	model = send(t, model, tea.KeyMsg{Type: tea.KeyShiftRight})
	tr, ok := model.Store().TrackByID(1)
	require.True(t, ok)
	assert.Equal(t, 10, tr.UserRatingValue())

	model = send(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = send(t, model, tea.KeyMsg{Type: tea.KeyRight})
	tr, _ = model.Store().TrackByID(1)
	assert.Equal(t, 11, tr.UserRatingValue())

	// Остальные треки не затронуты
	other, _ := model.Store().TrackByID(2)
	assert.False(t, other.HasUserRating())
}

func TestComposeAndSubmit(t *testing.T) {
	model := newTestModel(t)

	model = send(t, model, runes("a"))
	require.Equal(t, app.CardScreen, model.Screen())

	// Пустой комментарий не отправляется
	model = send(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	tr, _ := model.Store().TrackByID(1)
	assert.Len(t, tr.Comments, 2)

	// Команды мигания курсора не выполняются: они ждут таймер
	for _, r := range "Отлично" {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		model = updated.(*app.MainModel)
	}
	model = send(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})

	tr, _ = model.Store().TrackByID(1)
	require.Len(t, tr.Comments, 3)
	added := tr.Comments[2]
	assert.Equal(t, 5, added.ID)
	assert.Equal(t, "Вы", added.User)
	assert.Equal(t, "Отлично", added.Text)
	assert.Equal(t, 85, added.Rating)
	assert.Equal(t, "Только что", added.Date)

	assert.Contains(t, model.View(), "Комментарии (3)")
}

func TestMainModelView(t *testing.T) {
	model := newTestModel(t)
	model = send(t, model, tea.WindowSizeMsg{Width: 140, Height: 50})

	view := model.View()
	assert.Contains(t, view, "MusicRate")
	assert.Contains(t, view, "Новая музыка")
	assert.Contains(t, view, "Топ треков")
	assert.Contains(t, view, "Активность за неделю")

	model = send(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	view = model.View()
	assert.Contains(t, view, "Комментарии (2)")
	assert.Contains(t, view, "Ваша статистика")
}
