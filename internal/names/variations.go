package names

import "strings"

// aliasTable maps well-known shorthand spellings and stage names to the
// fuller forms they commonly stand for in Telugu cinema credits. Keys are
// lowercase; lookups happen per token and for the whole name.
var aliasTable = map[string][]string{
	"rajamouli":   {"S S Rajamouli", "S.S. Rajamouli"},
	"ntr":         {"N T Rama Rao Jr", "Jr NTR", "NTR Jr"},
	"tarak":       {"N T Rama Rao Jr", "Jr NTR"},
	"mahesh":      {"Mahesh Babu"},
	"prince":      {"Mahesh Babu"},
	"keeravani":   {"M M Keeravani", "M M Keeravaani", "MM Keeravani"},
	"keeravaani":  {"M M Keeravani", "MM Keeravani"},
	"chiranjeevi": {"Megastar Chiranjeevi", "Chiru"},
	"chiru":       {"Chiranjeevi"},
	"bunny":       {"Allu Arjun"},
	"prabhas":     {"Rebel Star Prabhas"},
	"samantha":    {"Samantha Ruth Prabhu", "Samantha Akkineni"},
	"trivikram":   {"Trivikram Srinivas"},
}

// Variations returns plausible alternate spellings of name, the name itself
// first: a dotted-initial rendering, the first and last tokens of
// multi-token names, and any alias-table matches. Expansion is one level
// deep; callers must not feed the returned values back in. Output order is
// deterministic and duplicate-free.
func Variations(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}

	add(trimmed)
	tokens := strings.Fields(trimmed)
	add(dottedForm(tokens))
	if len(tokens) > 1 {
		add(tokens[0])
		add(tokens[len(tokens)-1])
	}
	for _, alias := range aliasTable[strings.ToLower(trimmed)] {
		add(alias)
	}
	for _, token := range tokens {
		for _, alias := range aliasTable[strings.ToLower(token)] {
			add(alias)
		}
	}
	return out
}

// dottedForm renders every token with a trailing period, the style initials
// are usually written in: "N T R" becomes "N. T. R.".
func dottedForm(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		parts[i] = token + "."
	}
	return strings.Join(parts, " ")
}
