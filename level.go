package main

import (
	"fmt"

	"github.com/milk9111/reefdiver/levels"
	"gopkg.in/yaml.v3"
)

// Level is the parsed layout of one dive: a player spawn, a boss arena, and a
// flat list of entity records the scene builder turns into live objects.
type Level struct {
	Name     string         `yaml:"name"`
	Width    float64        `yaml:"width"`
	Player   SpawnPoint     `yaml:"player"`
	Boss     *BossRecord    `yaml:"boss"`
	Entities []EntityRecord `yaml:"entities"`
}

type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BossRecord struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	PatrolMinX float64 `yaml:"patrol_min_x"`
	PatrolMaxX float64 `yaml:"patrol_max_x"`
}

// EntityRecord is one placed object. Width, height and damaging only apply to
// some types; unused fields stay zero.
type EntityRecord struct {
	Type     string  `yaml:"type"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Damaging bool    `yaml:"damaging"`
}

// LoadLevel reads and parses a level by name, e.g. "reef".
func LoadLevel(name string) (*Level, error) {
	data, err := levels.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	return ParseLevel(data)
}

// ParseLevel parses level yaml and applies defaults for missing values.
func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 {
		lvl.Width = 1280
	}
	return &lvl, nil
}
