package speech

import (
	"fmt"
	"strconv"
	"strings"
)

// Profile is a named speaking-rate preset.
type Profile int

// Speaking-rate presets.
const (
	ProfileSlow Profile = iota
	ProfileNormal
	ProfileFast
	ProfileCustom
)

var presetWPM = map[Profile]int{
	ProfileSlow:   100,
	ProfileNormal: 130,
	ProfileFast:   160,
}

var profileNames = map[Profile]string{
	ProfileSlow:   "slow",
	ProfileNormal: "normal",
	ProfileFast:   "fast",
	ProfileCustom: "custom",
}

// Profiles returns all profiles in display order.
func Profiles() []Profile {
	return []Profile{ProfileSlow, ProfileNormal, ProfileFast, ProfileCustom}
}

func (p Profile) String() string {
	if name, ok := profileNames[p]; ok {
		return name
	}
	return fmt.Sprintf("profile(%d)", int(p))
}

// Next returns the following profile, wrapping after custom.
func (p Profile) Next() Profile {
	profiles := Profiles()
	for i, candidate := range profiles {
		if candidate == p {
			return profiles[(i+1)%len(profiles)]
		}
	}
	return ProfileNormal
}

// PresetWPM returns the fixed rate of a preset. It reports false for custom.
func (p Profile) PresetWPM() (int, bool) {
	wpm, ok := presetWPM[p]
	return wpm, ok
}

// ParseProfile parses a profile name, ignoring case.
func ParseProfile(name string) (Profile, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Profiles() {
		if profileNames[p] == normalized {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown profile %q (available: slow, normal, fast, custom)", ErrInvalidConfiguration, name)
}

// ParseWPM parses user input for a custom rate.
func ParseWPM(value string) (int, error) {
	wpm, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: wpm %q is not a whole number", ErrInvalidConfiguration, value)
	}
	if wpm <= 0 {
		return 0, fmt.Errorf("%w: wpm must be > 0, got %d", ErrInvalidConfiguration, wpm)
	}
	return wpm, nil
}

// Rate selects a speaking rate: a preset, or custom with its own WPM.
type Rate struct {
	Profile   Profile
	CustomWPM int
}

// WPM resolves the rate to words per minute.
func (r Rate) WPM() (int, error) {
	if r.Profile == ProfileCustom {
		if r.CustomWPM <= 0 {
			return 0, fmt.Errorf("%w: custom wpm must be > 0, got %d", ErrInvalidConfiguration, r.CustomWPM)
		}
		return r.CustomWPM, nil
	}
	wpm, ok := r.Profile.PresetWPM()
	if !ok {
		return 0, fmt.Errorf("%w: unknown profile %s", ErrInvalidConfiguration, r.Profile)
	}
	return wpm, nil
}
