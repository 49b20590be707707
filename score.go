package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoreObject   = "scores"
	scoreProperty = "best"
)

type savedScores struct {
	HighScore int `yaml:"high_score"`
}

// ScoreStore persists the best run across sessions. A nil manager degrades to
// in-memory only, so sandboxed platforms still work.
type ScoreStore struct {
	manager *gdata.Manager
	best    int
}

// OpenScoreStore opens the platform save location. Failure to open is not
// fatal; the store falls back to memory.
func OpenScoreStore() *ScoreStore {
	m, err := gdata.Open(gdata.Config{AppName: "reefdiver"})
	if err != nil {
		log.Printf("[score] save storage unavailable: %v", err)
		m = nil
	}
	s := &ScoreStore{manager: m}
	if err := s.load(); err != nil {
		log.Printf("[score] load high score: %v", err)
	}
	return s
}

// NewMemoryScoreStore returns a store that never persists, for tests.
func NewMemoryScoreStore() *ScoreStore {
	return &ScoreStore{}
}

func (s *ScoreStore) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}
	var saved savedScores
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("unmarshal scores: %w", err)
	}
	s.best = saved.HighScore
	return nil
}

// Best returns the best score seen so far.
func (s *ScoreStore) Best() int {
	return s.best
}

// Submit records a finished run's score. Returns true if it is a new best.
func (s *ScoreStore) Submit(score int) bool {
	if score <= s.best {
		return false
	}
	s.best = score
	if s.manager == nil {
		return true
	}
	data, err := yaml.Marshal(savedScores{HighScore: s.best})
	if err != nil {
		log.Printf("[score] marshal high score: %v", err)
		return true
	}
	if err := s.manager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		log.Printf("[score] save high score: %v", err)
	}
	return true
}
