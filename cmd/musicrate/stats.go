package main

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// createStatsCommand создает команду stats
func (app *Application) createStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show profile statistics",
		Long:  `Display the profile statistics panel: ratings, average rating, plays and favorite genre.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.showStats(cmd.OutOrStdout())
		},
	}
}

func (app *Application) showStats(out io.Writer) error {
	stats := app.Config.Stats

	table := tablewriter.NewWriter(out)
	table.Header([]string{"Показатель", "Значение"})
	rows := [][]string{
		{"Оценок", app.Formatter.Int(stats.TotalRatings)},
		{"Средняя оценка", app.Formatter.Float(stats.AvgRating)},
		{"Прослушиваний", app.Formatter.Int(stats.TotalPlays)},
		{"Любимый жанр", stats.FavoriteGenre},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
