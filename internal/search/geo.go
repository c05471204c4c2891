package search

import "strings"

// Region is a short territory identifier with its UTC-offset span,
// used by the filter UI and the region predicate.
type Region struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	TimezoneMin float64 `json:"timezone_min"`
	TimezoneMax float64 `json:"timezone_max"`
}

var Regions = []Region{
	{Code: "AU", Name: "Australia", TimezoneMin: 8, TimezoneMax: 11},
	{Code: "NZ", Name: "New Zealand", TimezoneMin: 12, TimezoneMax: 13},
	{Code: "SG", Name: "Singapore", TimezoneMin: 8, TimezoneMax: 8},
	{Code: "JP", Name: "Japan", TimezoneMin: 9, TimezoneMax: 9},
	{Code: "HK", Name: "Hong Kong", TimezoneMin: 8, TimezoneMax: 8},
	{Code: "KR", Name: "South Korea", TimezoneMin: 9, TimezoneMax: 9},
	{Code: "TW", Name: "Taiwan", TimezoneMin: 8, TimezoneMax: 8},
	{Code: "PH", Name: "Philippines", TimezoneMin: 8, TimezoneMax: 8},
	{Code: "MY", Name: "Malaysia", TimezoneMin: 8, TimezoneMax: 8},
	{Code: "ID", Name: "Indonesia", TimezoneMin: 7, TimezoneMax: 9},
	{Code: "TH", Name: "Thailand", TimezoneMin: 7, TimezoneMax: 7},
	{Code: "VN", Name: "Vietnam", TimezoneMin: 7, TimezoneMax: 7},
	{Code: "IN", Name: "India", TimezoneMin: 5.5, TimezoneMax: 5.5},
	{Code: "US", Name: "United States", TimezoneMin: -8, TimezoneMax: -5},
	{Code: "GB", Name: "United Kingdom", TimezoneMin: 0, TimezoneMax: 1},
	{Code: "CA", Name: "Canada", TimezoneMin: -8, TimezoneMax: -3.5},
	{Code: "DE", Name: "Germany", TimezoneMin: 1, TimezoneMax: 2},
	{Code: "REMOTE", Name: "Remote/Global", TimezoneMin: -12, TimezoneMax: 14},
}

// AllRegionCodes returns every known region code, the default filter
// selection.
func AllRegionCodes() []string {
	out := make([]string, 0, len(Regions))
	for _, r := range Regions {
		out = append(out, r.Code)
	}
	return out
}

// regionKeywords maps region codes to location-string cues. A heuristic
// over free text, not a geocoder; unlisted locations fall back to REMOTE.
var regionKeywords = []struct {
	code     string
	keywords []string
}{
	{"AU", []string{"australia", "sydney", "melbourne", "brisbane", "perth", "adelaide"}},
	{"NZ", []string{"new zealand", "auckland", "wellington"}},
	{"SG", []string{"singapore"}},
	{"JP", []string{"japan", "tokyo", "osaka"}},
	{"HK", []string{"hong kong"}},
	{"US", []string{"united states", "usa", "america", "san francisco", "new york", "los angeles"}},
	{"GB", []string{"united kingdom", "uk", "london"}},
	{"CA", []string{"canada", "toronto", "vancouver"}},
}

// RegionsFromLocation derives the region code set of a free-text
// location. Unknown locations are treated as remote-friendly.
func RegionsFromLocation(location string) []string {
	loc := strings.ToLower(location)
	codes := make([]string, 0, 2)

	for _, rk := range regionKeywords {
		for _, k := range rk.keywords {
			if strings.Contains(loc, k) {
				codes = append(codes, rk.code)
				break
			}
		}
	}

	if strings.Contains(loc, "remote") {
		codes = append(codes, "REMOTE")
	}
	if len(codes) == 0 {
		return []string{"REMOTE"}
	}
	return codes
}

// timezoneKeywords maps location cues to a single UTC-offset estimate.
// More specific cues come first so cities beat their country's default.
var timezoneKeywords = []struct {
	keywords []string
	offset   float64
}{
	// Australia
	{[]string{"sydney", "melbourne", "brisbane", "canberra"}, 11},
	{[]string{"adelaide"}, 10.5},
	{[]string{"perth"}, 8},
	{[]string{"darwin"}, 9.5},
	{[]string{"australia"}, 10},
	// Asia
	{[]string{"singapore", "hong kong", "taipei", "manila", "kuala lumpur"}, 8},
	{[]string{"tokyo", "osaka", "seoul"}, 9},
	{[]string{"bangkok", "ho chi minh", "hanoi", "jakarta"}, 7},
	{[]string{"bangalore", "mumbai", "delhi", "india"}, 5.5},
	// New Zealand
	{[]string{"auckland", "wellington", "new zealand"}, 13},
	// United States
	{[]string{"san francisco", "los angeles", "seattle", "california"}, -8},
	{[]string{"new york", "boston", "miami", "east"}, -5},
	{[]string{"chicago", "austin", "dallas"}, -6},
	{[]string{"denver", "phoenix", "mountain"}, -7},
	// Europe
	{[]string{"london", "uk", "ireland"}, 0},
	{[]string{"paris", "berlin", "amsterdam"}, 1},
	// Canada
	{[]string{"vancouver"}, -8},
	{[]string{"toronto", "montreal"}, -5},
}

// TimezoneFromLocation estimates the UTC offset of a free-text location,
// defaulting to 0 when nothing matches.
func TimezoneFromLocation(location string) float64 {
	loc := strings.ToLower(location)
	for _, tk := range timezoneKeywords {
		for _, k := range tk.keywords {
			if strings.Contains(loc, k) {
				return tk.offset
			}
		}
	}
	return 0
}

// DefaultRegionsForLocation picks a starting region selection from the
// user's own location.
func DefaultRegionsForLocation(location string) []string {
	loc := strings.ToLower(location)
	switch {
	case strings.Contains(loc, "sydney"), strings.Contains(loc, "melbourne"), strings.Contains(loc, "australia"):
		return []string{"AU", "NZ", "REMOTE"}
	case strings.Contains(loc, "singapore"):
		return []string{"SG", "REMOTE"}
	case strings.Contains(loc, "tokyo"), strings.Contains(loc, "japan"):
		return []string{"JP", "REMOTE"}
	default:
		return []string{"AU", "SG", "JP", "HK", "REMOTE"}
	}
}
