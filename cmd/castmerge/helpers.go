package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"castmerge/internal/detect"
)

var labelCaser = cases.Title(language.Und)

// humanLabel turns identifiers such as "hero_heroine" or "cast_member"
// into display labels such as "Hero Heroine".
func humanLabel(value string) string {
	return labelCaser.String(strings.ReplaceAll(value, "_", " "))
}

func formatConfidence(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func summarizeSpellings(group detect.Group) string {
	return strings.Join(group.DistinctRawValues(), ", ")
}

func occurrenceSummary(group detect.Group) string {
	counts := make(map[detect.Field]int)
	order := []detect.Field{detect.FieldDirector, detect.FieldHero, detect.FieldHeroine, detect.FieldCastMember}
	for _, occ := range group.Occurrences {
		counts[occ.Field]++
	}
	var parts []string
	for _, field := range order {
		if counts[field] == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d", humanLabel(string(field)), counts[field]))
	}
	return strings.Join(parts, ", ")
}
