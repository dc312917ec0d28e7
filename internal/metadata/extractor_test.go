package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-musicrate/internal/data"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestExtractFromFileWithoutTags(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Artist - Title.mp3", []byte("fake content"))

	m := NewExtractor().ExtractFromFile(path)
	assert.Equal(t, "Artist", m.Artist)
	assert.Equal(t, "Title", m.Title)
	assert.Equal(t, unknownGenre, m.Genre)
}

func TestExtractFromCorruptedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Unknown - Track.mp3", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD})

	m := NewExtractor().ExtractFromFile(path)
	assert.Equal(t, "Unknown", m.Artist)
	assert.Equal(t, "Track", m.Title)
}

func TestExtractFromReader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Test - Song.mp3", []byte("test content"))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	m := NewExtractor().ExtractFromReader(file, path)
	assert.Equal(t, "Test", m.Artist)
	assert.Equal(t, "Song", m.Title)
}

func TestGetDefaultMetadata(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		source string
		artist string
		title  string
	}{
		{"/path/to/Artist - Title.mp3", "Artist", "Title"},
		{"/path/to/SimpleTrack.mp3", unknownArtist, "SimpleTrack"},
		{"/path/to/Artist - Album - Title.mp3", "Artist", "Album - Title"},
	}

	for _, tc := range tests {
		m := extractor.getDefaultMetadata(tc.source)
		assert.Equal(t, tc.artist, m.Artist, tc.source)
		assert.Equal(t, tc.title, m.Title, tc.source)
		assert.Equal(t, unknownGenre, m.Genre, tc.source)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Moby - Porcelain.mp3", []byte("x"))
	writeFile(t, dir, "M83 - Midnight City.flac", []byte("x"))
	writeFile(t, dir, "notes.txt", []byte("not audio"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mp3"), 0755))

	catalog, err := NewExtractor().ScanDir(dir)
	require.NoError(t, err)
	require.Len(t, catalog.Tracks, 2)

	first := catalog.Tracks[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "M83", first.Artist)
	assert.Equal(t, "Midnight City", first.Title)
	assert.Equal(t, 0, first.Rating)
	assert.NotNil(t, first.Comments)

	second := catalog.Tracks[1]
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "Moby", second.Artist)
}

func TestScanDirEmpty(t *testing.T) {
	_, err := NewExtractor().ScanDir(t.TempDir())
	assert.ErrorIs(t, err, data.ErrEmptyCatalog)
}

func TestScanDirMissing(t *testing.T) {
	_, err := NewExtractor().ScanDir("/non/existent/dir")
	assert.ErrorContains(t, err, "ошибка чтения директории")
}
