// Package model defines shared data structures.
package model

import "github.com/verte-zerg/tuispeak/internal/speech"

// Config defines estimation settings after config file and flags are merged.
type Config struct {
	Profile         speech.Profile
	CustomWPM       int
	IncludePauses   bool
	SentencePauseMs int64
	ClausePauseMs   int64
}

// Rate returns the speaking rate selected by the config.
func (c Config) Rate() speech.Rate {
	return speech.Rate{Profile: c.Profile, CustomWPM: c.CustomWPM}
}

// Options resolves the config into estimator options.
func (c Config) Options() (speech.Options, error) {
	wpm, err := c.Rate().WPM()
	if err != nil {
		return speech.Options{}, err
	}
	return speech.Options{
		WPM:           float64(wpm),
		IncludePauses: c.IncludePauses,
		Pauses:        speech.NewPauseTable(c.SentencePauseMs, c.ClausePauseMs),
	}, nil
}

// SegmentEstimate captures the estimate for one sentence of a text.
type SegmentEstimate struct {
	Index   int
	Text    string
	Words   int
	PauseMs int64
	TotalMs int64
}

// ProfileEstimate is the estimate of a whole text at one preset rate.
type ProfileEstimate struct {
	Profile speech.Profile
	WPM     int
	TotalMs int64
}
