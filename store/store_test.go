package store

import (
	"errors"
	"testing"

	cfg "github.com/automoto/puckduel/config"
)

type memBackend struct {
	items map[string][]byte
	fail  error
}

func (m *memBackend) LoadItem(key string) ([]byte, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	return m.items[key], nil
}

func (m *memBackend) SaveItem(key string, data []byte) error {
	if m.fail != nil {
		return m.fail
	}
	m.items[key] = data
	return nil
}

func newMemStore() (*Store, *memBackend) {
	b := &memBackend{items: make(map[string][]byte)}
	return &Store{b: b}, b
}

func TestSettingsDefaultThenSaved(t *testing.T) {
	s, _ := newMemStore()
	got, err := s.LoadSettings()
	if err != nil || got != DefaultSettings() {
		t.Fatalf("fresh settings = %+v, %v", got, err)
	}

	want := Settings{SFXVolume: 0.3, Muted: true, LastRoom: "4821", Difficulty: "hard"}
	if err := s.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if got, _ := s.LoadSettings(); got != want {
		t.Fatalf("settings = %+v, want %+v", got, want)
	}
}

func TestCorruptSettingsFallBack(t *testing.T) {
	s, b := newMemStore()
	b.items[settingsKey] = []byte("{")
	got, err := s.LoadSettings()
	if err == nil {
		t.Fatalf("no error for corrupt settings")
	}
	if got != DefaultSettings() {
		t.Fatalf("settings = %+v, want defaults", got)
	}
}

func TestRecordResult(t *testing.T) {
	s, _ := newMemStore()
	s.RecordResult(cfg.BotDifficultyNormal, 7, 3)
	s.RecordResult(cfg.BotDifficultyNormal, 7, 6)
	r, err := s.RecordResult(cfg.BotDifficultyNormal, 2, 7)
	if err != nil {
		t.Fatalf("RecordResult: %v", err)
	}
	if r != (Record{Played: 3, Won: 2, BestGap: 4}) {
		t.Fatalf("record = %+v", r)
	}

	all, _ := s.Records()
	if _, ok := all[cfg.BotDifficultyHard.String()]; ok {
		t.Fatalf("hard record created without a match")
	}
}

func TestBackendErrorsAreWrapped(t *testing.T) {
	s, b := newMemStore()
	b.fail = errors.New("disk full")
	if err := s.SaveSettings(DefaultSettings()); !errors.Is(err, b.fail) {
		t.Fatalf("err = %v, want wrapped disk full", err)
	}
}

func TestNilStore(t *testing.T) {
	var s *Store
	if got, err := s.LoadSettings(); err != nil || got != DefaultSettings() {
		t.Fatalf("nil store settings = %+v, %v", got, err)
	}
	if _, err := s.RecordResult(cfg.BotDifficultyEasy, 7, 0); err != nil {
		t.Fatalf("nil store RecordResult: %v", err)
	}
}
