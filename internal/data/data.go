// Package data содержит модели треков и комментариев и загрузку каталога
package data

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	// MinRating минимальное значение оценки
	MinRating = 0
	// MaxRating максимальное значение оценки
	MaxRating = 100
)

var (
	// ErrEmptyCatalog возвращается, если в каталоге нет ни одного трека
	ErrEmptyCatalog = errors.New("каталог пуст")
	// ErrDuplicateTrackID возвращается, если ID треков повторяются
	ErrDuplicateTrackID = errors.New("повторяющийся ID трека")
)

// Comment комментарий пользователя к треку
type Comment struct {
	ID     int    `yaml:"id"`
	User   string `yaml:"user"`
	Text   string `yaml:"text"`
	Rating int    `yaml:"rating"` // Собственная оценка комментария, 0-100
	Date   string `yaml:"date"`   // Подпись для отображения, не метка времени
}

// Track трек каталога
type Track struct {
	ID         int       `yaml:"id"`
	Title      string    `yaml:"title"`
	Artist     string    `yaml:"artist"`
	Genre      string    `yaml:"genre"`
	Rating     int       `yaml:"rating"`                // Общая оценка сообщества
	UserRating *int      `yaml:"user_rating,omitempty"` // Оценка текущего пользователя, если выставлена
	Plays      int       `yaml:"plays"`
	Comments   []Comment `yaml:"comments"`
}

// HasUserRating сообщает, выставлял ли пользователь оценку треку
func (t Track) HasUserRating() bool {
	return t.UserRating != nil
}

// UserRatingValue возвращает оценку пользователя или 0
func (t Track) UserRatingValue() int {
	if t.UserRating == nil {
		return 0
	}
	return *t.UserRating
}

// Clone возвращает копию трека, не разделяющую срез комментариев и указатель оценки
func (t Track) Clone() Track {
	c := t
	if t.UserRating != nil {
		v := *t.UserRating
		c.UserRating = &v
	}
	c.Comments = make([]Comment, len(t.Comments))
	copy(c.Comments, t.Comments)
	return c
}

// Catalog набор треков, с которого начинается сессия
type Catalog struct {
	Tracks []Track `yaml:"tracks"`
}

// LoadCatalog загружает каталог из YAML файла
func LoadCatalog(filePath string) (*Catalog, error) {
	path, err := homedir.Expand(filePath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла каталога: %w", err)
	}

	catalog := &Catalog{}
	if err := yaml.Unmarshal(raw, catalog); err != nil {
		return nil, fmt.Errorf("ошибка разбора каталога: %w", err)
	}
	if err := catalog.Normalize(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// SaveCatalog записывает каталог в YAML файл
func (c *Catalog) SaveCatalog(filePath string) error {
	path, err := homedir.Expand(filePath)
	if err != nil {
		return err
	}

	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("ошибка сериализации каталога: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла каталога: %w", err)
	}
	return nil
}

// Normalize проверяет уникальность ID и приводит оценки к диапазону 0-100.
// Трекам без ID присваиваются следующие свободные номера.
func (c *Catalog) Normalize() error {
	if len(c.Tracks) == 0 {
		return ErrEmptyCatalog
	}

	maxID := 0
	for _, t := range c.Tracks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	seen := make(map[int]struct{}, len(c.Tracks))
	for i := range c.Tracks {
		t := &c.Tracks[i]
		if t.ID <= 0 {
			maxID++
			t.ID = maxID
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateTrackID, t.ID)
		}
		seen[t.ID] = struct{}{}

		t.Rating = ClampRating(t.Rating)
		if t.UserRating != nil {
			v := ClampRating(*t.UserRating)
			t.UserRating = &v
		}
		if t.Comments == nil {
			t.Comments = make([]Comment, 0)
		}
		for j := range t.Comments {
			t.Comments[j].Rating = ClampRating(t.Comments[j].Rating)
		}
	}
	return nil
}

// MaxCommentID возвращает наибольший ID комментария в каталоге
func (c *Catalog) MaxCommentID() int {
	maxID := 0
	for _, t := range c.Tracks {
		for _, cm := range t.Comments {
			if cm.ID > maxID {
				maxID = cm.ID
			}
		}
	}
	return maxID
}

// TrackByID возвращает трек по ID
func (c *Catalog) TrackByID(id int) (*Track, error) {
	for i := range c.Tracks {
		if c.Tracks[i].ID == id {
			return &c.Tracks[i], nil
		}
	}
	return nil, fmt.Errorf("трека с ID %d не найдено", id)
}

// ClampRating приводит значение к диапазону оценок
func ClampRating(v int) int {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}
