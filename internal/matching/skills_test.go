package matching

import (
	"reflect"
	"testing"
)

func TestExtractSkills_FindsNormalizedSkills(t *testing.T) {
	got := ExtractSkills("Proficient in FIGMA, user research and css.")
	want := []string{"Figma", "User Research", "Css"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractSkills_WholeWordsOnly(t *testing.T) {
	got := ExtractSkills("a sketchy plan with no design tooling")
	if len(got) != 0 {
		t.Fatalf("expected no skills, got %v", got)
	}
}

func TestExtractSkills_SpecialCharacterEntries(t *testing.T) {
	got := ExtractSkills("generated assets with DALL-E and proto.io")
	if len(got) != 2 {
		t.Fatalf("expected 2 skills, got %v", got)
	}
	for _, s := range got {
		if s != "Dall-e" && s != "Proto.io" {
			t.Fatalf("unexpected skill %q", s)
		}
	}
}

func TestExtractSkills_Deduplicates(t *testing.T) {
	got := ExtractSkills("Figma figma FIGMA")
	if !reflect.DeepEqual(got, []string{"Figma"}) {
		t.Fatalf("expected single Figma, got %v", got)
	}
}

func TestExtractSkills_EmptyText(t *testing.T) {
	got := ExtractSkills("")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Figma, prototyping, design systems, React"
	first := ExtractSkills(text)
	second := ExtractSkills(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not deterministic: %v vs %v", first, second)
	}
}

func TestTitleCase_MultiWord(t *testing.T) {
	if got := titleCase("adobe xd"); got != "Adobe Xd" {
		t.Fatalf("expected Adobe Xd, got %q", got)
	}
}
