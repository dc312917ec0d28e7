package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hazadus/go-musicrate/internal/config"
	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/logger"
	"github.com/hazadus/go-musicrate/internal/metadata"
	"github.com/hazadus/go-musicrate/internal/track"
	"github.com/hazadus/go-musicrate/internal/utils"
)

// Application содержит общее состояние для всех команд
type Application struct {
	Config    *config.Config
	Catalog   *data.Catalog
	Store     *track.Store
	Logger    *zap.Logger
	Formatter *utils.NumberFormatter

	viper   *viper.Viper
	cfgFile string
}

// NewApplication создает приложение с собственным экземпляром viper
func NewApplication() *Application {
	return &Application{
		viper:  viper.New(),
		Logger: zap.NewNop(),
	}
}

// initialize загружает конфигурацию, журнал и каталог
func (app *Application) initialize() error {
	cfg, err := config.LoadConfig(app.viper, app.cfgFile)
	if err != nil {
		return err
	}
	app.Config = cfg

	log, err := logger.New(logger.DefaultConfig(cfg.LogLevel, cfg.LogFile))
	if err != nil {
		return err
	}
	app.Logger = log

	catalog, err := app.loadCatalog()
	if err != nil {
		return err
	}
	app.Catalog = catalog
	app.Store = track.NewStore(catalog, track.Options{
		UserLabel:    cfg.UserLabel,
		JustNowLabel: cfg.JustNowLabel,
		Logger:       log,
	})
	app.Formatter = utils.NewNumberFormatter(cfg.Locale)

	app.Logger.Info("приложение запущено",
		zap.Int("tracks", app.Store.Len()),
		zap.String("catalog_file", cfg.CatalogFile),
		zap.String("music_dir", cfg.MusicDir),
	)
	return nil
}

// loadCatalog выбирает источник треков: директория с музыкой,
// затем файл каталога, затем встроенный набор
func (app *Application) loadCatalog() (*data.Catalog, error) {
	switch {
	case app.Config.MusicDir != "":
		catalog, err := metadata.NewExtractor().ScanDir(app.Config.MusicDir)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования %s: %w", app.Config.MusicDir, err)
		}
		return catalog, nil

	case app.Config.CatalogFile != "":
		catalog, err := data.LoadCatalog(app.Config.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки каталога: %w", err)
		}
		return catalog, nil

	default:
		return data.DefaultCatalog(), nil
	}
}

func main() {
	app := NewApplication()
	rootCmd := app.createRootCommand()

	err := rootCmd.Execute()
	_ = app.Logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
