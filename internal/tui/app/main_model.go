// Package app содержит основную логику TUI приложения
package app

import (
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/hazadus/go-musicrate/internal/composer"
	"github.com/hazadus/go-musicrate/internal/track"
	"github.com/hazadus/go-musicrate/internal/tui/card"
	"github.com/hazadus/go-musicrate/internal/tui/sidebar"
	"github.com/hazadus/go-musicrate/internal/tui/tracklist"
	"github.com/hazadus/go-musicrate/internal/utils"
	"github.com/hazadus/go-musicrate/internal/views"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// CatalogScreen - экран каталога со списком треков
	CatalogScreen ScreenType = iota
	// CardScreen - экран карточки трека
	CardScreen
)

// Options зависимости главной модели
type Options struct {
	Store                *track.Store
	Stats                views.StatPanel
	Rand                 *rand.Rand
	Formatter            *utils.NumberFormatter
	Logger               *zap.Logger
	DefaultCommentRating int
}

// MainModel представляет главную модель TUI. Владеет текущим снимком
// хранилища; подмодели только отправляют сообщения об изменениях.
type MainModel struct {
	store          *track.Store
	logger         *zap.Logger
	formatter      *utils.NumberFormatter
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	sidebarModel   *sidebar.Model
	cardModel      *card.Model
	composer       composer.Composer // Состояние формы, пока карточка закрыта
	width          int
	height         int
}

// NewMainModel создает новую главную модель
func NewMainModel(opts Options) *MainModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Formatter == nil {
		opts.Formatter = utils.NewNumberFormatter(utils.DefaultLocale)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &MainModel{
		store:          opts.Store,
		logger:         opts.Logger,
		formatter:      opts.Formatter,
		currentScreen:  CatalogScreen,
		tracklistModel: tracklist.NewModel(opts.Store.Tracks(), opts.Formatter),
		sidebarModel:   sidebar.NewModel(opts.Stats, opts.Rand, opts.Formatter),
		composer:       composer.New(opts.DefaultCommentRating),
	}
}

// Store возвращает текущий снимок хранилища
func (m *MainModel) Store() *track.Store {
	return m.store
}

// Screen возвращает активный экран
func (m *MainModel) Screen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tracklist.TrackSelectedMsg:
		return m, m.openCard(msg.TrackID, false)

	case tracklist.ComposeMsg:
		return m, m.openCard(msg.TrackID, true)

	case tracklist.RateMsg:
		m.setRating(msg.TrackID, msg.Value)
		return m, nil

	case card.RateMsg:
		m.setRating(msg.TrackID, msg.Value)
		return m, nil

	case card.SubmitCommentMsg:
		if m.cardModel == nil {
			return m, nil
		}
		next, c, ok := composer.Submit(m.store, m.cardModel.Composer())
		if !ok {
			m.logger.Debug("комментарий не отправлен: пустой текст")
			return m, nil
		}
		m.store = next
		m.cardModel.SetComposer(c)
		m.refresh()
		return m, nil

	case card.GoBackMsg:
		// Возвращаемся к списку треков
		m.currentScreen = CatalogScreen
		if m.cardModel != nil {
			m.composer = m.cardModel.Composer()
		}
		m.cardModel = nil
		m.tracklistModel.RefreshData(m.store.Tracks())
		return m, nil
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case CatalogScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case CardScreen:
		if m.cardModel != nil {
			m.cardModel, cmd = m.cardModel.Update(msg)
		}
	}
	return m, cmd
}

func (m *MainModel) openCard(trackID int, compose bool) tea.Cmd {
	t, ok := m.store.TrackByID(trackID)
	if !ok {
		m.logger.Warn("карточка для неизвестного трека", zap.Int("track_id", trackID))
		return nil
	}

	m.cardModel = card.NewModel(t, m.composer, m.formatter)
	if compose {
		m.cardModel.OpenComposer(trackID)
		m.logger.Debug("форма комментария открыта", zap.Int("track_id", trackID))
	}
	m.currentScreen = CardScreen
	m.resize()
	return m.cardModel.Init()
}

func (m *MainModel) setRating(trackID, value int) {
	m.store = m.store.SetUserRating(trackID, value)
	m.refresh()
}

// refresh передает новый снимок подмоделям
func (m *MainModel) refresh() {
	m.tracklistModel.RefreshData(m.store.Tracks())
	if m.cardModel != nil {
		if t, ok := m.store.TrackByID(m.cardModel.Track().ID); ok {
			m.cardModel.SetTrack(t)
		}
	}
}

func (m *MainModel) resize() {
	if m.width == 0 {
		return
	}
	headerHeight := lipgloss.Height(sidebar.Header(m.width))
	listWidth := max(20, m.width-sidebar.Width-4)
	m.tracklistModel.SetSize(listWidth, m.height-headerHeight)
	if m.cardModel != nil {
		m.cardModel.SetSize(listWidth, m.height-headerHeight)
	}
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var main string
	switch m.currentScreen {
	case CatalogScreen:
		main = m.tracklistModel.View()
	case CardScreen:
		if m.cardModel == nil {
			return "Ошибка: модель карточки не инициализирована"
		}
		main = m.cardModel.View()
	default:
		return "Неизвестный экран"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, main, m.sidebarModel.View(m.store.Tracks()))
	return lipgloss.JoinVertical(lipgloss.Left, sidebar.Header(m.width), body)
}
