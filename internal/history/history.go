// Package history persists the user's past fit checks and application
// preferences as JSON under a dot-directory in the home folder. This is
// local convenience storage, not a database.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"roomfit/internal/fit"
	"roomfit/internal/units"
)

// DefaultConfigDir returns the default directory for application files.
// On all platforms this is ~/.roomfit/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".roomfit")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultHistoryPath returns the default path for the saved-checks file.
func DefaultHistoryPath() string {
	return filepath.Join(DefaultConfigDir(), "history.json")
}

// AppConfig holds application-wide preferences.
type AppConfig struct {
	DefaultUnits string `json:"default_units"` // "metric" or "imperial"
	HistoryLimit int    `json:"history_limit"` // max saved checks, 0 = unlimited
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultUnits: string(units.Metric),
		HistoryLimit: 50,
	}
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.DefaultUnits == "" {
		config.DefaultUnits = string(units.Metric)
	}
	return config, nil
}

// SavedCheck is one past fit check, flattened for listing.
type SavedCheck struct {
	ID             string  `json:"id"`
	CreatedAt      string  `json:"created_at"`
	Units          string  `json:"units"`
	RoomID         string  `json:"room_id"`
	RoomLabel      string  `json:"room_label"`
	ItemID         string  `json:"item_id"`
	ItemLabel      string  `json:"item_label"`
	RoomLengthCm   float64 `json:"room_length_cm"`
	RoomWidthCm    float64 `json:"room_width_cm"`
	ItemLengthCm   float64 `json:"item_length_cm"`
	ItemWidthCm    float64 `json:"item_width_cm"`
	Rotated        bool    `json:"rotated"`
	OccupancyRatio float64 `json:"occupancy_ratio"`
	Verdict        string  `json:"verdict"`
}

// NewSavedCheck flattens a fit analysis into a history entry.
func NewSavedCheck(analysis fit.FitAnalysis, sys units.System) SavedCheck {
	return SavedCheck{
		ID:             uuid.New().String()[:8],
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		Units:          string(sys),
		RoomID:         analysis.Room.ID,
		RoomLabel:      analysis.Room.Label,
		ItemID:         analysis.Item.ID,
		ItemLabel:      analysis.Item.Label,
		RoomLengthCm:   analysis.RoomLengthCm,
		RoomWidthCm:    analysis.RoomWidthCm,
		ItemLengthCm:   analysis.ItemLengthCm,
		ItemWidthCm:    analysis.ItemWidthCm,
		Rotated:        analysis.Best.Rotated,
		OccupancyRatio: analysis.Best.OccupancyRatio,
		Verdict:        analysis.Best.Verdict.String(),
	}
}

// Store holds the saved checks, newest first.
type Store struct {
	Checks []SavedCheck `json:"checks"`
}

// Add prepends a check and trims the store to limit entries (0 = no trim).
func (s *Store) Add(check SavedCheck, limit int) {
	s.Checks = append([]SavedCheck{check}, s.Checks...)
	if limit > 0 && len(s.Checks) > limit {
		s.Checks = s.Checks[:limit]
	}
}

// Remove deletes a check by ID. Returns true if found and removed.
func (s *Store) Remove(id string) bool {
	for i, c := range s.Checks {
		if c.ID == id {
			s.Checks = append(s.Checks[:i], s.Checks[i+1:]...)
			return true
		}
	}
	return false
}

// Load reads a Store from the given path.
// If the file does not exist, it returns an empty store with no error.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{Checks: []SavedCheck{}}, nil
		}
		return Store{}, err
	}
	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return Store{}, err
	}
	if store.Checks == nil {
		store.Checks = []SavedCheck{}
	}
	return store, nil
}

// Save persists a Store to the given path as JSON.
func Save(path string, store Store) error {
	return writeJSON(path, store)
}

func writeJSON(path string, v interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
