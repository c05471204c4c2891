package search

import "design-radar/internal/domain/job"

// Preset is a named filter bundle users can apply in one step.
type Preset struct {
	Name        string             `json:"name"`
	Regions     []string           `json:"regions"`
	TimezoneMin float64            `json:"timezone_min"`
	TimezoneMax float64            `json:"timezone_max"`
	RemoteTypes []job.RemoteStatus `json:"remote_types"`
}

var presets = []Preset{
	{
		Name:        "Australia + Asia",
		Regions:     []string{"AU", "SG", "JP", "HK", "REMOTE"},
		TimezoneMin: 7, TimezoneMax: 12,
		RemoteTypes: []job.RemoteStatus{job.RemoteStatusRemote, job.RemoteStatusHybrid, job.RemoteStatusOnSite},
	},
	{
		Name:        "SE Asia Only",
		Regions:     []string{"SG", "HK", "TH", "VN", "MY", "ID", "PH", "REMOTE"},
		TimezoneMin: 7, TimezoneMax: 9,
		RemoteTypes: []job.RemoteStatus{job.RemoteStatusRemote, job.RemoteStatusHybrid},
	},
	{
		Name:        "Australia Only",
		Regions:     []string{"AU", "NZ"},
		TimezoneMin: 8, TimezoneMax: 13,
		RemoteTypes: []job.RemoteStatus{job.RemoteStatusRemote, job.RemoteStatusHybrid, job.RemoteStatusOnSite},
	},
	{
		Name:        "All Remote",
		Regions:     []string{"REMOTE"},
		TimezoneMin: -12, TimezoneMax: 14,
		RemoteTypes: []job.RemoteStatus{job.RemoteStatusRemote},
	},
}

// Presets returns the named filter bundles. Callers receive a copy of
// the slice header; the presets themselves are immutable data.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ApplyPreset overlays a preset onto existing filters, leaving the text
// query and date range untouched.
func ApplyPreset(f Filters, p Preset) Filters {
	f.Regions = p.Regions
	f.TimezoneMin = p.TimezoneMin
	f.TimezoneMax = p.TimezoneMax
	f.RemoteTypes = p.RemoteTypes
	return f
}
