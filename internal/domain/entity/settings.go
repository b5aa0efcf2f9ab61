// Package entity contains the core business objects of the project.
package entity

import "strings"

// Shared profile keys holding the global mode toggles.
const (
	SettingMultiLocation      = "use_multiple_locations"
	SettingSingleOrganization = "multiple_locations_same_organization"
	SettingShareBusinessInfo  = "multiple_locations_shared_business_info"
	SettingShareOpeningHours  = "multiple_locations_shared_opening_hours"
	SettingUse24HourFormat    = "opening_hours_24h"
)

// Settings is the explicit mode configuration passed into every resolver call.
// It is read from the shared profile once per request by the caller.
type Settings struct {
	MultiLocation      bool `json:"multi_location"`
	SingleOrganization bool `json:"single_organization"`
	ShareBusinessInfo  bool `json:"share_business_info"`
	ShareOpeningHours  bool `json:"share_opening_hours"`
	Use24HourFormat    bool `json:"use_24h_format"`
}

// SharesBusinessInfo reports whether locations inherit shared business fields.
// The raw toggle only counts for a single organization managing many locations.
func (s Settings) SharesBusinessInfo() bool {
	return s.MultiLocation && s.SingleOrganization && s.ShareBusinessInfo
}

// SharesOpeningHours reports whether locations inherit shared opening hours.
func (s Settings) SharesOpeningHours() bool {
	return s.MultiLocation && s.SingleOrganization && s.ShareOpeningHours
}

// SettingsFromValues builds Settings from raw shared profile values.
func SettingsFromValues(values map[string]string) Settings {
	return Settings{
		MultiLocation:      IsAffirmative(values[SettingMultiLocation]),
		SingleOrganization: IsAffirmative(values[SettingSingleOrganization]),
		ShareBusinessInfo:  IsAffirmative(values[SettingShareBusinessInfo]),
		ShareOpeningHours:  IsAffirmative(values[SettingShareOpeningHours]),
		Use24HourFormat:    IsAffirmative(values[SettingUse24HourFormat]),
	}
}

// IsAffirmative interprets a stored toggle value. Absent and unknown values are negative.
func IsAffirmative(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "1", "true", "yes":
		return true
	default:
		return false
	}
}
