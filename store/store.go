// Package store persists user settings and the single-player record with
// gdata. Every method on a nil *Store is a no-op that returns defaults.
package store

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/puckduel/config"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey = "settings"
	recordKey   = "record"
)

// Settings is what the player last chose.
type Settings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	RelayURL   string  `json:"relayUrl,omitempty"`
	LastRoom   string  `json:"lastRoom,omitempty"`
	Difficulty string  `json:"difficulty,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		SFXVolume:  cfg.Audio.DefaultSFXVol,
		Difficulty: cfg.BotDifficultyNormal.String(),
	}
}

// Record tracks finished single-player matches per difficulty.
type Record struct {
	Played  int `json:"played"`
	Won     int `json:"won"`
	BestGap int `json:"bestGap"` // largest winning margin
}

type backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

type Store struct {
	b backend
}

// Open opens the per-user data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{b: m}, nil
}

func (s *Store) LoadSettings() (Settings, error) {
	out := DefaultSettings()
	if err := s.load(settingsKey, &out); err != nil {
		return DefaultSettings(), err
	}
	return out, nil
}

func (s *Store) SaveSettings(v Settings) error {
	return s.save(settingsKey, v)
}

// Records returns the record for every difficulty played so far.
func (s *Store) Records() (map[string]Record, error) {
	out := make(map[string]Record)
	if err := s.load(recordKey, &out); err != nil {
		return make(map[string]Record), err
	}
	return out, nil
}

// RecordResult adds a finished match against the AI and returns the updated
// record for that difficulty.
func (s *Store) RecordResult(d cfg.BotDifficulty, own, opponent int) (Record, error) {
	all, err := s.Records()
	if err != nil {
		log.Printf("[store] discarding unreadable record: %v", err)
	}
	r := all[d.String()]
	r.Played++
	if own > opponent {
		r.Won++
		r.BestGap = max(r.BestGap, own-opponent)
	}
	all[d.String()] = r
	return r, s.save(recordKey, all)
}

func (s *Store) load(key string, v any) error {
	if s == nil || s.b == nil {
		return nil
	}
	data, err := s.b.LoadItem(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(key string, v any) error {
	if s == nil || s.b == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.b.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
