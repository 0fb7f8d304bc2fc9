package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Theme  string `json:"theme"`
	Sound  bool   `json:"sound"`
	Volume int    `json:"volume"`
	Shadow bool   `json:"shadow"`
}

func loadConfig() (Config, error) {
	config := Config{
		Theme:  themes[0].Name,
		Sound:  true,
		Volume: 70,
		Shadow: true,
	}
	path, err := configPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, err
	}
	if config.Theme == "" {
		config.Theme = themes[0].Name
	}
	if config.Volume < 0 {
		config.Volume = 0
	}
	if config.Volume > 100 {
		config.Volume = 100
	}
	return config, nil
}

func saveConfig(config Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// HighScoreStore is the persistence contract the engine invokes: Load at
// construction, Save on a new-high-score game over. Saves are best effort.
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

// FileHighScoreStore keeps the high score as a plain integer in a text file.
type FileHighScoreStore struct {
	Path string
}

// NewFileHighScoreStore stores the high score next to the config file. When
// the config directory cannot be resolved it falls back to the working
// directory, keeping the store usable.
func NewFileHighScoreStore() *FileHighScoreStore {
	dir, err := appConfigDir()
	if err != nil {
		DebugLogf("high score dir fallback: %v", err)
		return &FileHighScoreStore{Path: "highscore.txt"}
	}
	return &FileHighScoreStore{Path: filepath.Join(dir, "highscore.txt")}
}

// Load returns the stored high score, or 0 when the file is missing or does
// not parse.
func (s *FileHighScoreStore) Load() int {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

func (s *FileHighScoreStore) Save(score int) error {
	return os.WriteFile(s.Path, []byte(strconv.Itoa(score)), 0o644)
}

func configPath() (string, error) {
	dir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func appConfigDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, "terminal-tetris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
