package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks from the catalog",
		Long:  `Display a table of all tracks with ratings, plays and comment counts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.listTracks(cmd.OutOrStdout())
		},
	}
}

func (app *Application) listTracks(out io.Writer) error {
	tracks := app.Store.Tracks()
	fmt.Fprintf(out, "📚 Найдено треков: %d\n\n", len(tracks))
	return app.renderTracks(out, tracks)
}

// renderTracks выводит треки таблицей
func (app *Application) renderTracks(out io.Writer, tracks []data.Track) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"ID", "Исполнитель", "Название", "Жанр", "Рейтинг", "Ваша оценка", "Прослушивания", "Комментарии"})

	for _, t := range tracks {
		userRating := "-"
		if t.HasUserRating() {
			userRating = utils.FormatRating(t.UserRatingValue())
		}
		row := []string{
			strconv.Itoa(t.ID),
			utils.TruncateString(t.Artist, 28),
			utils.TruncateString(t.Title, 28),
			t.Genre,
			utils.FormatRating(t.Rating),
			userRating,
			app.Formatter.Int(t.Plays),
			strconv.Itoa(len(t.Comments)),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}
