// Package views содержит производные представления каталога.
// Все функции чистые и пересчитываются при каждой отрисовке.
package views

import (
	"math/rand/v2"
	"slices"

	"github.com/hazadus/go-musicrate/internal/data"
)

// TopCount размер списка лучших треков
const TopCount = 3

// Weekdays подписи столбцов недельной активности
var Weekdays = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// DayActivity значение активности за день
type DayActivity struct {
	Day   string
	Value int // 0-99
}

// StatPanel статистика пользователя. Значения задаются конфигурацией
// и не вычисляются из треков.
type StatPanel struct {
	TotalRatings  int     `mapstructure:"total_ratings"`
	AvgRating     float64 `mapstructure:"avg_rating"`
	TotalPlays    int     `mapstructure:"total_plays"`
	FavoriteGenre string  `mapstructure:"favorite_genre"`
}

// DefaultStatPanel значения панели статистики по умолчанию
func DefaultStatPanel() StatPanel {
	return StatPanel{
		TotalRatings:  47,
		AvgRating:     86.3,
		TotalPlays:    2340,
		FavoriteGenre: "Electronic",
	}
}

// TopTracks возвращает первые n треков по убыванию общей оценки.
// Треки с равной оценкой сохраняют исходный порядок.
func TopTracks(tracks []data.Track, n int) []data.Track {
	sorted := make([]data.Track, len(tracks))
	copy(sorted, tracks)
	slices.SortStableFunc(sorted, func(a, b data.Track) int {
		return b.Rating - a.Rating
	})

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Genres возвращает жанры без повторов в порядке первого появления
func Genres(tracks []data.Track) []string {
	seen := make(map[string]struct{}, len(tracks))
	genres := make([]string, 0, len(tracks))
	for _, t := range tracks {
		if _, ok := seen[t.Genre]; ok {
			continue
		}
		seen[t.Genre] = struct{}{}
		genres = append(genres, t.Genre)
	}
	return genres
}

// WeeklyActivity возвращает случайную активность по дням недели.
// Данные демонстрационные и не связаны с треками.
func WeeklyActivity(rng *rand.Rand) []DayActivity {
	days := make([]DayActivity, len(Weekdays))
	for i, day := range Weekdays {
		days[i] = DayActivity{Day: day, Value: rng.IntN(100)}
	}
	return days
}
