package search

import (
	"reflect"
	"testing"
)

func TestRegionsFromLocation(t *testing.T) {
	cases := []struct {
		location string
		want     []string
	}{
		{"Sydney, Australia", []string{"AU"}},
		{"Remote (Australia)", []string{"AU", "REMOTE"}},
		{"Singapore", []string{"SG"}},
		{"Tokyo, Japan", []string{"JP"}},
		{"Atlantis", []string{"REMOTE"}},
		{"Remote", []string{"REMOTE"}},
	}

	for _, c := range cases {
		if got := RegionsFromLocation(c.location); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("RegionsFromLocation(%q) = %v, want %v", c.location, got, c.want)
		}
	}
}

func TestTimezoneFromLocation(t *testing.T) {
	cases := []struct {
		location string
		want     float64
	}{
		{"Sydney, Australia", 11},
		{"Adelaide", 10.5},
		{"Perth, Australia", 8},
		{"Regional Australia", 10},
		{"Singapore", 8},
		{"Tokyo", 9},
		{"Auckland", 13},
		{"Mumbai, India", 5.5},
		{"San Francisco", -8},
		{"Atlantis", 0},
	}

	for _, c := range cases {
		if got := TimezoneFromLocation(c.location); got != c.want {
			t.Fatalf("TimezoneFromLocation(%q) = %v, want %v", c.location, got, c.want)
		}
	}
}

func TestTimezoneFromLocation_CityBeatsCountry(t *testing.T) {
	// Perth appears before the australia-wide default.
	if got := TimezoneFromLocation("Perth, Western Australia"); got != 8 {
		t.Fatalf("expected 8, got %v", got)
	}
}

func TestDefaultRegionsForLocation(t *testing.T) {
	cases := []struct {
		location string
		want     []string
	}{
		{"Sydney", []string{"AU", "NZ", "REMOTE"}},
		{"Melbourne, Australia", []string{"AU", "NZ", "REMOTE"}},
		{"Singapore", []string{"SG", "REMOTE"}},
		{"Tokyo", []string{"JP", "REMOTE"}},
		{"", []string{"AU", "SG", "JP", "HK", "REMOTE"}},
		{"Berlin", []string{"AU", "SG", "JP", "HK", "REMOTE"}},
	}

	for _, c := range cases {
		if got := DefaultRegionsForLocation(c.location); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("DefaultRegionsForLocation(%q) = %v, want %v", c.location, got, c.want)
		}
	}
}

func TestAllRegionCodes_IncludesRemote(t *testing.T) {
	codes := AllRegionCodes()
	if len(codes) != len(Regions) {
		t.Fatalf("expected %d codes, got %d", len(Regions), len(codes))
	}
	found := false
	for _, c := range codes {
		if c == "REMOTE" {
			found = true
		}
	}
	if !found {
		t.Fatalf("REMOTE missing from %v", codes)
	}
}
