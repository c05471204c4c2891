package matching

import (
	"regexp"
	"strings"
)

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

// Patterns are compiled once; QuoteMeta keeps lexicon entries with
// regex-special characters ("proto.io", "dall-e") literal.
var skillPatterns = func() []skillPattern {
	out := make([]skillPattern, 0, len(designSkills))
	for _, s := range designSkills {
		out = append(out, skillPattern{
			name: titleCase(s),
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`),
		})
	}
	return out
}()

// ExtractSkills returns the normalized design skills found in text as
// whole words or phrases. Duplicates collapse; no match yields an empty
// slice. Output order follows the lexicon but is not meaningful.
func ExtractSkills(text string) []string {
	if text == "" {
		return []string{}
	}

	found := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	for _, p := range skillPatterns {
		if !p.re.MatchString(text) {
			continue
		}
		if _, ok := seen[p.name]; ok {
			continue
		}
		seen[p.name] = struct{}{}
		found = append(found, p.name)
	}
	return found
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
