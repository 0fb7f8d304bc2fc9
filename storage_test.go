package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHighScoreStoreMissingFile(t *testing.T) {
	store := &FileHighScoreStore{Path: filepath.Join(t.TempDir(), "highscore.txt")}
	assert.Equal(t, 0, store.Load())
}

func TestFileHighScoreStoreRoundTrip(t *testing.T) {
	store := &FileHighScoreStore{Path: filepath.Join(t.TempDir(), "highscore.txt")}
	require.NoError(t, store.Save(12345))
	assert.Equal(t, 12345, store.Load())
}

func TestFileHighScoreStoreToleratesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	require.NoError(t, os.WriteFile(path, []byte("  42\n"), 0o644))
	store := &FileHighScoreStore{Path: path}
	assert.Equal(t, 42, store.Load())
}

func TestFileHighScoreStoreGarbageReadsAsZero(t *testing.T) {
	for _, content := range []string{"not-a-number", "", "-5", "12x"} {
		path := filepath.Join(t.TempDir(), "highscore.txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		store := &FileHighScoreStore{Path: path}
		assert.Equal(t, 0, store.Load(), "content %q", content)
	}
}
