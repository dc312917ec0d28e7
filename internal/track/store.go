// Package track содержит хранилище треков сессии и переходы его состояния
package track

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/hazadus/go-musicrate/internal/data"
)

const (
	// DefaultUserLabel имя автора комментариев текущего пользователя
	DefaultUserLabel = "Вы"
	// DefaultJustNowLabel подпись даты нового комментария
	DefaultJustNowLabel = "Только что"
)

// IDSource выдает монотонно растущие ID комментариев
type IDSource struct {
	last atomic.Int64
}

// NewIDSource создает источник, следующий ID которого будет start+1
func NewIDSource(start int) *IDSource {
	s := &IDSource{}
	s.last.Store(int64(start))
	return s
}

// Next возвращает следующий ID
func (s *IDSource) Next() int {
	return int(s.last.Add(1))
}

// Options настройки хранилища
type Options struct {
	UserLabel    string
	JustNowLabel string
	Logger       *zap.Logger
}

// Store неизменяемый снимок треков сессии.
// Каждая операция возвращает новый снимок, исходный не меняется.
type Store struct {
	tracks []data.Track
	ids    *IDSource
	opts   Options
}

// NewStore создает хранилище из каталога
func NewStore(catalog *data.Catalog, opts Options) *Store {
	if opts.UserLabel == "" {
		opts.UserLabel = DefaultUserLabel
	}
	if opts.JustNowLabel == "" {
		opts.JustNowLabel = DefaultJustNowLabel
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	tracks := make([]data.Track, len(catalog.Tracks))
	for i, t := range catalog.Tracks {
		tracks[i] = t.Clone()
	}

	return &Store{
		tracks: tracks,
		ids:    NewIDSource(catalog.MaxCommentID()),
		opts:   opts,
	}
}

// Tracks возвращает копию списка треков в исходном порядке
func (s *Store) Tracks() []data.Track {
	out := make([]data.Track, len(s.tracks))
	for i, t := range s.tracks {
		out[i] = t.Clone()
	}
	return out
}

// Len возвращает количество треков
func (s *Store) Len() int {
	return len(s.tracks)
}

// TrackByID возвращает копию трека по ID
func (s *Store) TrackByID(id int) (data.Track, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return data.Track{}, false
	}
	return s.tracks[i].Clone(), true
}

// SetUserRating выставляет оценку пользователя треку.
// Для несуществующего ID возвращается тот же снимок.
func (s *Store) SetUserRating(trackID, value int) *Store {
	i := s.indexOf(trackID)
	if i < 0 {
		s.opts.Logger.Debug("оценка для неизвестного трека проигнорирована", zap.Int("track_id", trackID))
		return s
	}

	v := data.ClampRating(value)
	next := s.replace(i, func(t *data.Track) {
		t.UserRating = &v
	})
	s.opts.Logger.Debug("оценка пользователя изменена",
		zap.Int("track_id", trackID),
		zap.Int("user_rating", v),
	)
	return next
}

// AddComment добавляет комментарий к треку.
// Пустой после обрезки пробелов текст и неизвестный ID не меняют снимок,
// второй результат в этом случае false.
func (s *Store) AddComment(trackID int, text string, rating int) (*Store, bool) {
	if strings.TrimSpace(text) == "" {
		s.opts.Logger.Debug("пустой комментарий отклонен", zap.Int("track_id", trackID))
		return s, false
	}

	i := s.indexOf(trackID)
	if i < 0 {
		s.opts.Logger.Debug("комментарий для неизвестного трека проигнорирован", zap.Int("track_id", trackID))
		return s, false
	}

	comment := data.Comment{
		ID:     s.ids.Next(),
		User:   s.opts.UserLabel,
		Text:   text,
		Rating: data.ClampRating(rating),
		Date:   s.opts.JustNowLabel,
	}
	next := s.replace(i, func(t *data.Track) {
		t.Comments = append(t.Comments, comment)
	})
	s.opts.Logger.Debug("комментарий добавлен",
		zap.Int("track_id", trackID),
		zap.Int("comment_id", comment.ID),
		zap.Int("rating", comment.Rating),
	)
	return next, true
}

// replace строит новый снимок, в котором трек с индексом i изменен функцией fn
func (s *Store) replace(i int, fn func(t *data.Track)) *Store {
	tracks := make([]data.Track, len(s.tracks))
	copy(tracks, s.tracks)

	updated := s.tracks[i].Clone()
	fn(&updated)
	tracks[i] = updated

	return &Store{
		tracks: tracks,
		ids:    s.ids,
		opts:   s.opts,
	}
}

func (s *Store) indexOf(id int) int {
	for i := range s.tracks {
		if s.tracks[i].ID == id {
			return i
		}
	}
	return -1
}
