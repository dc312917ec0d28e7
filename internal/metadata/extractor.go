// Package metadata собирает каталог треков из тегов аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/hazadus/go-musicrate/internal/data"
)

const (
	unknownArtist = "Unknown Artist"
	unknownGenre  = "Unknown"
)

// supportedExtensions расширения файлов, которые читает tag
var supportedExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
}

// TrackMetadata хранит метаданные трека
type TrackMetadata struct {
	Artist string
	Title  string
	Genre  string
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	m, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultMetadata(source)
	}

	fallback := e.getDefaultMetadata(source)
	result := TrackMetadata{
		Artist: strings.TrimSpace(m.Artist()),
		Title:  strings.TrimSpace(m.Title()),
		Genre:  strings.TrimSpace(m.Genre()),
	}
	if result.Title == "" {
		result.Title = fallback.Title
	}
	if result.Artist == "" {
		result.Artist = fallback.Artist
	}
	if result.Genre == "" {
		result.Genre = unknownGenre
	}
	return result
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// ScanDir строит каталог из аудио файлов директории (без вложенных).
// Файлы упорядочены по имени, ID назначаются с 1.
func (e *Extractor) ScanDir(dir string) (*data.Catalog, error) {
	path, err := homedir.Expand(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения директории: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	catalog := &data.Catalog{Tracks: make([]data.Track, 0, len(names))}
	for i, name := range names {
		m := e.ExtractFromFile(filepath.Join(path, name))
		catalog.Tracks = append(catalog.Tracks, data.Track{
			ID:       i + 1,
			Title:    m.Title,
			Artist:   m.Artist,
			Genre:    m.Genre,
			Comments: make([]data.Comment, 0),
		})
	}

	if err := catalog.Normalize(); err != nil {
		return nil, fmt.Errorf("каталог из %s: %w", path, err)
	}
	return catalog, nil
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) TrackMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	// Пытаемся разобрать имя файла в формате "Artist - Title"
	parts := strings.Split(nameWithoutExt, " - ")
	if len(parts) >= 2 {
		return TrackMetadata{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
			Genre:  unknownGenre,
		}
	}

	return TrackMetadata{
		Artist: unknownArtist,
		Title:  nameWithoutExt,
		Genre:  unknownGenre,
	}
}
