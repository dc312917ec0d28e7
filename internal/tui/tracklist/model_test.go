package tracklist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/utils"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(data.DefaultCatalog().Tracks, utils.NewNumberFormatter("en"))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	model := newTestModel(t)

	require.NotNil(t, model)
	assert.Len(t, model.list.Items(), 4)

	selected, ok := model.SelectedTrack()
	require.True(t, ok)
	assert.Equal(t, 1, selected.ID)
}

func TestEnterSelectsTrack(t *testing.T) {
	model := newTestModel(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, TrackSelectedMsg{TrackID: 1}, cmd())
}

func TestComposeKey(t *testing.T) {
	model := newTestModel(t)

	_, cmd := model.Update(runes("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, ComposeMsg{TrackID: 1}, cmd())
}

func TestRatingKeys(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 1},
		{tea.KeyMsg{Type: tea.KeyShiftRight}, 10},
		{tea.KeyMsg{Type: tea.KeyLeft}, 0},
		{tea.KeyMsg{Type: tea.KeyShiftLeft}, 0},
	}

	for _, tc := range tests {
		model := newTestModel(t)
		_, cmd := model.Update(tc.msg)
		require.NotNil(t, cmd, tc.msg.String())
		assert.Equal(t, RateMsg{TrackID: 1, Value: tc.expected}, cmd(), tc.msg.String())
	}
}

func TestRatingKeysStartFromUserRating(t *testing.T) {
	tracks := data.DefaultCatalog().Tracks
	rating := 95
	tracks[0].UserRating = &rating

	model := NewModel(tracks, utils.NewNumberFormatter("en"))
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	require.NotNil(t, cmd)
	assert.Equal(t, RateMsg{TrackID: 1, Value: 100}, cmd())
}

func TestRefreshDataKeepsSelection(t *testing.T) {
	model := newTestModel(t)
	model.list.Select(2)

	tracks := data.DefaultCatalog().Tracks
	rating := 40
	tracks[2].UserRating = &rating
	model.RefreshData(tracks)

	selected, ok := model.SelectedTrack()
	require.True(t, ok)
	assert.Equal(t, 3, selected.ID)
	assert.Equal(t, 40, selected.UserRatingValue())
}

func TestQuit(t *testing.T) {
	model := newTestModel(t)

	_, cmd := model.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, model.View(), "До свидания!")
}

func TestViewShowsTracks(t *testing.T) {
	model := newTestModel(t)
	model.SetSize(100, 40)

	view := model.View()
	assert.Contains(t, view, "Новая музыка")
	assert.Contains(t, view, "Midnight City")
	assert.Contains(t, view, "15,420")
	assert.Contains(t, view, "87/100")
}
