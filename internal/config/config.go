// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/hazadus/go-musicrate/internal/composer"
	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/track"
	"github.com/hazadus/go-musicrate/internal/utils"
	"github.com/hazadus/go-musicrate/internal/views"
)

const (
	// DefaultConfigName имя файла конфигурации в домашней директории (без расширения)
	DefaultConfigName = ".musicrate"
	// EnvPrefix префикс переменных окружения
	EnvPrefix = "MUSICRATE"
	// DefaultLogFile файл журнала по умолчанию
	DefaultLogFile = "~/.musicrate/musicrate.log"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	CatalogFile          string          `mapstructure:"catalog_file"` // YAML каталог вместо встроенного
	MusicDir             string          `mapstructure:"music_dir"`    // Директория с аудио файлами вместо каталога
	LogFile              string          `mapstructure:"log_file"`
	LogLevel             string          `mapstructure:"log_level"`
	UserLabel            string          `mapstructure:"user_label"`
	JustNowLabel         string          `mapstructure:"just_now_label"`
	DefaultCommentRating int             `mapstructure:"default_comment_rating"`
	Locale               string          `mapstructure:"locale"`
	Stats                views.StatPanel `mapstructure:"stats"`
}

// SetDefaults задает значения по умолчанию
func SetDefaults(v *viper.Viper) {
	stats := views.DefaultStatPanel()

	v.SetDefault("catalog_file", "")
	v.SetDefault("music_dir", "")
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("log_level", "info")
	v.SetDefault("user_label", track.DefaultUserLabel)
	v.SetDefault("just_now_label", track.DefaultJustNowLabel)
	v.SetDefault("default_comment_rating", composer.DefaultDraftRating)
	v.SetDefault("locale", utils.DefaultLocale)
	v.SetDefault("stats.total_ratings", stats.TotalRatings)
	v.SetDefault("stats.avg_rating", stats.AvgRating)
	v.SetDefault("stats.total_plays", stats.TotalPlays)
	v.SetDefault("stats.favorite_genre", stats.FavoriteGenre)
}

// LoadConfig загружает конфигурацию из файла, переменных окружения и .env.
// Пустой cfgFile означает поиск ~/.musicrate.yaml, отсутствие которого не ошибка.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	// .env не перезаписывает уже заданные переменные окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("ошибка чтения .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
		}
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(home)
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	for _, p := range []*string{&config.CatalogFile, &config.MusicDir, &config.LogFile} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return nil, err
		}
		*p = expanded
	}
	config.DefaultCommentRating = data.ClampRating(config.DefaultCommentRating)

	return config, nil
}
