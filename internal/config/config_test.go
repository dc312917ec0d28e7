package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withHome подменяет домашнюю директорию на временную
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	home := withHome(t)

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.CatalogFile)
	assert.Equal(t, "", cfg.MusicDir)
	assert.Equal(t, filepath.Join(home, ".musicrate", "musicrate.log"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Вы", cfg.UserLabel)
	assert.Equal(t, "Только что", cfg.JustNowLabel)
	assert.Equal(t, 85, cfg.DefaultCommentRating)
	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, 47, cfg.Stats.TotalRatings)
	assert.InDelta(t, 86.3, cfg.Stats.AvgRating, 1e-9)
	assert.Equal(t, 2340, cfg.Stats.TotalPlays)
	assert.Equal(t, "Electronic", cfg.Stats.FavoriteGenre)
}

func TestLoadConfigFromHomeFile(t *testing.T) {
	home := withHome(t)

	raw := `catalog_file: "~/catalog.yaml"
user_label: "Гость"
stats:
  favorite_genre: "Ambient"
  total_plays: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ".musicrate.yaml"), []byte(raw), 0644))

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "catalog.yaml"), cfg.CatalogFile)
	assert.Equal(t, "Гость", cfg.UserLabel)
	assert.Equal(t, "Ambient", cfg.Stats.FavoriteGenre)
	assert.Equal(t, 10, cfg.Stats.TotalPlays)
	// Незаданные ключи берутся из значений по умолчанию
	assert.Equal(t, 47, cfg.Stats.TotalRatings)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	withHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_comment_rating: 150\nlocale: en\n"), 0644))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.DefaultCommentRating, "оценка приводится к 0-100")
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	withHome(t)
	t.Setenv("MUSICRATE_USER_LABEL", "env-user")
	t.Setenv("MUSICRATE_STATS_FAVORITE_GENRE", "Trip Hop")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "env-user", cfg.UserLabel)
	assert.Equal(t, "Trip Hop", cfg.Stats.FavoriteGenre)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	withHome(t)

	_, err := LoadConfig(viper.New(), "/non/existent/config.yaml")
	assert.ErrorContains(t, err, "ошибка чтения конфигурации")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	withHome(t)
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user_label: \"x\"\ninvalid_field: [unclosed array\n"), 0644))

	_, err := LoadConfig(viper.New(), path)
	assert.Error(t, err)
}
