package main

import (
	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами.
// Без подкоманды запускается интерфейс.
func (app *Application) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "musicrate",
		Short: "Rate music and share comments in the terminal",
		Long:  `MusicRate: a personal music rating page with a track catalog, comments and listening stats.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.initialize()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.musicrate.yaml)")
	flags.String("catalog", "", "YAML catalog file to load instead of the built-in tracks")
	flags.String("music-dir", "", "directory with audio files to build the catalog from")
	flags.String("log-file", "", "log file path (default is ~/.musicrate/musicrate.log)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	bindings := map[string]string{
		"catalog_file": "catalog",
		"music_dir":    "music-dir",
		"log_file":     "log-file",
		"log_level":    "log-level",
	}
	for key, flag := range bindings {
		// Ошибка возможна только при отсутствии флага
		_ = app.viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(app.createTUICommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createTopCommand())
	rootCmd.AddCommand(app.createGenresCommand())
	rootCmd.AddCommand(app.createStatsCommand())
	rootCmd.AddCommand(app.createExportCommand())

	return rootCmd
}
