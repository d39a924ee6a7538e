package stats

import (
	"github.com/verte-zerg/tuispeak/internal/model"
	"github.com/verte-zerg/tuispeak/internal/speech"
)

// Report contains precomputed data for report rendering.
type Report struct {
	Rate      speech.Rate
	Options   speech.Options
	Breakdown speech.Breakdown
	Segments  []model.SegmentEstimate
	Profiles  []model.ProfileEstimate
}

// BuildReport estimates text as a whole, per sentence and per preset rate.
func BuildReport(text string, cfg model.Config) (Report, error) {
	opts, err := cfg.Options()
	if err != nil {
		return Report{}, err
	}
	breakdown, err := speech.Analyze(text, opts)
	if err != nil {
		return Report{}, err
	}
	segments, err := segmentEstimates(text, opts)
	if err != nil {
		return Report{}, err
	}
	profiles, err := profileEstimates(text, cfg, opts)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Rate:      cfg.Rate(),
		Options:   opts,
		Breakdown: breakdown,
		Segments:  segments,
		Profiles:  profiles,
	}, nil
}

func segmentEstimates(text string, opts speech.Options) ([]model.SegmentEstimate, error) {
	sentences := speech.Sentences(text, opts.Pauses)
	out := make([]model.SegmentEstimate, 0, len(sentences))
	for i, sentence := range sentences {
		b, err := speech.Analyze(sentence, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, model.SegmentEstimate{
			Index:   i,
			Text:    sentence,
			Words:   b.Words,
			PauseMs: b.PauseMs,
			TotalMs: b.TotalMs,
		})
	}
	return out, nil
}

func profileEstimates(text string, cfg model.Config, opts speech.Options) ([]model.ProfileEstimate, error) {
	var out []model.ProfileEstimate
	for _, p := range speech.Profiles() {
		rate := speech.Rate{Profile: p, CustomWPM: cfg.CustomWPM}
		if p == speech.ProfileCustom && cfg.Profile != speech.ProfileCustom {
			continue
		}
		wpm, err := rate.WPM()
		if err != nil {
			return nil, err
		}
		opts.WPM = float64(wpm)
		total, err := speech.Estimate(text, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, model.ProfileEstimate{Profile: p, WPM: wpm, TotalMs: total})
	}
	return out, nil
}
