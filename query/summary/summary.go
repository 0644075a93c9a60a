// Package summary renders categorized query terms as a deterministic,
// human-readable report. It is a pure boundary transformation: any
// renderer can replace it without touching the analysis.
package summary

import (
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/sift/query/analysis"
)

// Summary is the external shape of a categorization result, with every
// section sorted case-insensitively for stable output.
type Summary struct {
	Standalone []string            `json:"standalone"`
	Excluded   []string            `json:"excluded"`
	Requires   map[string][]string `json:"requires"`
}

// FromResult builds a Summary from categorized sets. Surviving pairs are
// grouped by their first member; partners are sorted per group.
func FromResult(res *analysis.Result) *Summary {
	s := &Summary{
		Standalone: sortedValues(res.Standalone),
		Excluded:   sortedValues(res.Excluded),
		Requires:   make(map[string][]string),
	}

	for pair := range res.RequiresPairs {
		s.Requires[pair.A] = append(s.Requires[pair.A], pair.B)
	}
	for _, partners := range s.Requires {
		sortFolded(partners)
	}
	return s
}

// Plain renders the report as plain text:
//
//	Standalone Terms:
//	 - apple
//
//	Excluded Terms:
//	 (none)
//
//	Requires Another:
//	 - cider must appear with (apple, orchard)
func (s *Summary) Plain() string {
	var b strings.Builder

	b.WriteString("Standalone Terms:\n")
	writeTermList(&b, s.Standalone)
	b.WriteString("\n")

	b.WriteString("Excluded Terms:\n")
	writeTermList(&b, s.Excluded)
	b.WriteString("\n")

	b.WriteString("Requires Another:\n")
	if len(s.Requires) == 0 {
		b.WriteString(" (none)\n")
		return b.String()
	}
	for _, first := range s.requiresKeys() {
		partners := s.Requires[first]
		if len(partners) == 1 {
			b.WriteString(" - " + first + " must appear with " + partners[0] + "\n")
		} else {
			b.WriteString(" - " + first + " must appear with (" + strings.Join(partners, ", ") + ")\n")
		}
	}
	return b.String()
}

// Render produces a pterm-styled report for terminal display
func (s *Summary) Render() string {
	var b strings.Builder

	b.WriteString(pterm.LightCyan("Standalone Terms:") + "\n")
	writeStyledTermList(&b, s.Standalone)
	b.WriteString("\n")

	b.WriteString(pterm.LightCyan("Excluded Terms:") + "\n")
	writeStyledTermList(&b, s.Excluded)
	b.WriteString("\n")

	b.WriteString(pterm.LightCyan("Requires Another:") + "\n")
	if len(s.Requires) == 0 {
		b.WriteString(pterm.Gray(" (none)") + "\n")
		return b.String()
	}
	for _, first := range s.requiresKeys() {
		partners := s.Requires[first]
		if len(partners) == 1 {
			b.WriteString(" - " + pterm.Yellow(first) + " must appear with " + pterm.Yellow(partners[0]) + "\n")
		} else {
			b.WriteString(" - " + pterm.Yellow(first) + " must appear with (" + pterm.Yellow(strings.Join(partners, ", ")) + ")\n")
		}
	}
	return b.String()
}

// requiresKeys returns the group keys sorted case-insensitively
func (s *Summary) requiresKeys() []string {
	keys := make([]string, 0, len(s.Requires))
	for k := range s.Requires {
		keys = append(keys, k)
	}
	sortFolded(keys)
	return keys
}

func writeTermList(b *strings.Builder, terms []string) {
	if len(terms) == 0 {
		b.WriteString(" (none)\n")
		return
	}
	for _, t := range terms {
		b.WriteString(" - " + t + "\n")
	}
}

func writeStyledTermList(b *strings.Builder, terms []string) {
	if len(terms) == 0 {
		b.WriteString(pterm.Gray(" (none)") + "\n")
		return
	}
	for _, t := range terms {
		b.WriteString(" - " + pterm.Yellow(t) + "\n")
	}
}

func sortedValues(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sortFolded(values)
	return values
}

// sortFolded sorts case-insensitively, breaking ties on the raw string
// so output stays deterministic when values differ only by case
func sortFolded(values []string) {
	sort.Slice(values, func(i, j int) bool {
		a, b := strings.ToLower(values[i]), strings.ToLower(values[j])
		if a == b {
			return values[i] < values[j]
		}
		return a < b
	})
}
