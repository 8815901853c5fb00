package models

import "time"

// UserSettings is the persisted settings document for one user.
// Values are stored verbatim; unknown keys survive a round trip.
type UserSettings struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Settings  JSONMap   `json:"settings" db:"settings"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SettingsStorageKey is the local storage key for client settings
const SettingsStorageKey = "elevateHub_settings"

// DefaultSettings returns a fresh copy of the application defaults.
func DefaultSettings() JSONMap {
	return JSONMap{
		// Appearance
		"theme":        "dark",
		"colorScheme":  "blue",
		"accentColor":  "#3B82F6",
		"borderRadius": float64(8),
		"fontSize":     float64(16),
		"fontFamily":   "Inter",
		"lineHeight":   1.5,
		"compactMode":  false,
		"sidebarWidth": float64(280),
		// Accessibility
		"highContrast":  false,
		"reducedMotion": false,
		"screenReader":  false,
		// Notifications
		"desktopNotifications":  true,
		"emailNotifications":    true,
		"soundEnabled":          true,
		"notificationFrequency": "realtime",
		// Locale
		"language":   "en",
		"dateFormat": "MM/dd/yyyy",
		"timeFormat": "12h",
		"timezone":   "UTC",
		// Privacy
		"analyticsEnabled": true,
		"sessionTimeout":   "30m",
		"twoFactorAuth":    false,
		"activityLogging":  true,
	}
}

// MergeSettings overlays saved values on top of the defaults.
func MergeSettings(saved JSONMap) JSONMap {
	merged := DefaultSettings()
	for k, v := range saved {
		merged[k] = v
	}
	return merged
}
