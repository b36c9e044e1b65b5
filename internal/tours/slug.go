package tours

import "strings"

// German diacritic substitutions applied before hyphenation. Characters
// outside this map pass through unchanged, so "Kraków" keeps its ó.
var slugReplacements = map[rune]string{
	'ä': "ae",
	'ö': "oe",
	'ü': "ue",
	'ß': "ss",
}

// GenerateSlug turns a destination name into a URL slug: diacritic
// substitution for the German set, lowercase, runs of non-alphanumerics
// collapse to single hyphens, leading and trailing hyphens trimmed.
func GenerateSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if repl, ok := slugReplacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	var out strings.Builder
	lastHyphen := false
	for _, r := range b.String() {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r > 127
		if alnum {
			out.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			out.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.Trim(out.String(), "-")
}
