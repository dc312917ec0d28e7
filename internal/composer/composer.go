// Package composer содержит состояние формы нового комментария
package composer

import (
	"github.com/hazadus/go-musicrate/internal/data"
	"github.com/hazadus/go-musicrate/internal/track"
)

// DefaultDraftRating оценка черновика по умолчанию
const DefaultDraftRating = 85

// Composer черновик комментария. Нулевое значение означает закрытую форму.
// Открыта форма может быть только для одного трека.
type Composer struct {
	trackID       int
	open          bool
	draftText     string
	draftRating   int
	defaultRating int
}

// New создает закрытую форму с заданной оценкой по умолчанию
func New(defaultRating int) Composer {
	r := data.ClampRating(defaultRating)
	return Composer{draftRating: r, defaultRating: r}
}

// IsOpen сообщает, открыта ли форма
func (c Composer) IsOpen() bool {
	return c.open
}

// IsOpenFor сообщает, открыта ли форма для трека
func (c Composer) IsOpenFor(trackID int) bool {
	return c.open && c.trackID == trackID
}

// TrackID возвращает трек открытой формы
func (c Composer) TrackID() (int, bool) {
	return c.trackID, c.open
}

// DraftText текст черновика
func (c Composer) DraftText() string {
	return c.draftText
}

// DraftRating оценка черновика
func (c Composer) DraftRating() int {
	return c.draftRating
}

// Toggle переключает форму для трека: закрытая открывается,
// открытая для этого же трека закрывается, открытая для другого
// переходит на новый трек со сбросом черновика.
func (c Composer) Toggle(trackID int) Composer {
	if c.IsOpenFor(trackID) {
		return c.Cancel()
	}
	reset := c.Cancel()
	reset.open = true
	reset.trackID = trackID
	return reset
}

// Cancel закрывает форму и сбрасывает черновик
func (c Composer) Cancel() Composer {
	return Composer{draftRating: c.defaultRating, defaultRating: c.defaultRating}
}

// SetDraftText меняет текст черновика, если форма открыта
func (c Composer) SetDraftText(text string) Composer {
	if !c.open {
		return c
	}
	c.draftText = text
	return c
}

// SetDraftRating меняет оценку черновика, если форма открыта
func (c Composer) SetDraftRating(rating int) Composer {
	if !c.open {
		return c
	}
	c.draftRating = data.ClampRating(rating)
	return c
}

// Submit отправляет черновик в хранилище. При успехе форма закрывается,
// при пустом тексте хранилище и черновик остаются прежними.
func Submit(store *track.Store, c Composer) (*track.Store, Composer, bool) {
	if !c.open {
		return store, c, false
	}
	next, ok := store.AddComment(c.trackID, c.draftText, c.draftRating)
	if !ok {
		return store, c, false
	}
	return next, c.Cancel(), true
}
