package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// HighScoreStore persists the best score as a decimal text file.
// A nil store, or one with an empty path, never touches the filesystem.
type HighScoreStore struct {
	path string
}

// NewHighScoreStore creates a store backed by path.
func NewHighScoreStore(path string) *HighScoreStore {
	return &HighScoreStore{path: path}
}

// Path returns the backing file path.
func (s *HighScoreStore) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Load reads the stored high score. A missing or unreadable file yields 0.
func (s *HighScoreStore) Load() int {
	if s == nil || s.path == "" {
		return 0
	}
	score, err := s.read()
	if err != nil {
		slog.Info("high score unavailable, starting at 0", "path", s.path, "err", err)
		return 0
	}
	return score
}

func (s *HighScoreStore) read() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parsing high score: %w", err)
	}
	if score < 0 {
		return 0, fmt.Errorf("negative high score %d", score)
	}
	return score, nil
}

// Save overwrites the stored high score.
func (s *HighScoreStore) Save(score int) error {
	if s == nil || s.path == "" {
		return nil
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("writing high score: %w", err)
	}
	return nil
}

// SaveOrWarn saves the score and logs a warning on failure.
func (s *HighScoreStore) SaveOrWarn(score int) {
	if err := s.Save(score); err != nil {
		slog.Warn("failed to persist high score", "path", s.path, "score", score, "err", err)
	}
}
