package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-musicrate/internal/views"
)

// createGenresCommand создает команду genres
func (app *Application) createGenresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List distinct genres",
		Long:  `Print each genre of the catalog once, in order of first appearance.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.listGenres(cmd.OutOrStdout())
			return nil
		},
	}
}

func (app *Application) listGenres(out io.Writer) {
	for _, g := range views.Genres(app.Store.Tracks()) {
		fmt.Fprintln(out, g)
	}
}
