package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// createExportCommand создает команду export, сохраняющую текущий каталог в YAML.
// Полученный файл можно передать через --catalog.
func (app *Application) createExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file path]",
		Short: "Save the current catalog to a YAML file",
		Long:  `Write the loaded catalog (built-in, scanned or from file) to a YAML file for editing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.exportCatalog(cmd.OutOrStdout(), args[0])
		},
	}
}

func (app *Application) exportCatalog(out io.Writer, path string) error {
	if err := app.Catalog.SaveCatalog(path); err != nil {
		return fmt.Errorf("ошибка сохранения каталога: %w", err)
	}
	fmt.Fprintf(out, "✅ Каталог сохранен: %s (треков: %d)\n", path, len(app.Catalog.Tracks))
	return nil
}
