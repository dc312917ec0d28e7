package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-musicrate/internal/views"
)

// createTopCommand создает команду top
func (app *Application) createTopCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show top rated tracks",
		Long:  `Display tracks sorted by rating. Tracks with equal ratings keep catalog order.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 0 {
				return fmt.Errorf("количество треков не может быть отрицательным: %d", count)
			}
			return app.topTracks(cmd.OutOrStdout(), count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", views.TopCount, "number of tracks to show")

	return cmd
}

func (app *Application) topTracks(out io.Writer, n int) error {
	fmt.Fprintln(out, "🏆 Топ треков")
	return app.renderTracks(out, views.TopTracks(app.Store.Tracks(), n))
}
