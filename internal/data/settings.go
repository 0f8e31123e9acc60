package data

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/achantasri/JanAwaaz/internal/types"
)

// Operational settings live in the settings table and are cached in process.
const (
	// SettingMaintenanceBanner is a notice the frontend shows above
	// everything else while non-empty.
	SettingMaintenanceBanner = "maintenance_banner"
	// SettingVotingDisabled pauses vote casting platform-wide when "1".
	SettingVotingDisabled = "voting_disabled"
)

var (
	settingsCache map[string]string
	settingsMu    sync.RWMutex
)

// LoadSettings fills the cache from the settings table.
func LoadSettings(db *gorm.DB) error {
	var rows []types.Setting
	if err := db.Find(&rows).Error; err != nil {
		return err
	}

	settingsMu.Lock()
	defer settingsMu.Unlock()
	settingsCache = make(map[string]string, len(rows))
	for _, s := range rows {
		settingsCache[s.Name] = s.Value
	}
	return nil
}

// RefreshSettings reloads the cache. The API main calls it periodically so
// settings written by another instance take effect without a restart.
func RefreshSettings(db *gorm.DB) error { return LoadSettings(db) }

// GetSetting returns a cached setting value, empty when unset.
func GetSetting(name string) string {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settingsCache[name]
}

// SetSetting updates the in-process cache only; SaveSetting persists.
func SetSetting(name, value string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if settingsCache == nil {
		settingsCache = make(map[string]string)
	}
	settingsCache[name] = value
}

// SaveSetting upserts one settings row and updates the local cache. Other
// instances pick the change up on their next refresh.
func (s *Store) SaveSetting(ctx context.Context, name, value string) error {
	var row types.Setting
	if err := s.db.WithContext(ctx).Where(types.Setting{Name: name}).
		Assign(types.Setting{Value: value}).FirstOrCreate(&row).Error; err != nil {
		return err
	}
	SetSetting(name, value)
	return nil
}

// MaintenanceBanner returns the operator notice, empty when none is set.
func MaintenanceBanner() string { return GetSetting(SettingMaintenanceBanner) }

// VotingDisabled reports whether vote casting is paused platform-wide.
func VotingDisabled() bool { return GetSetting(SettingVotingDisabled) == "1" }
