package register

import (
	"sort"
	"strings"
)

// emptyPreview is the summary shown for registers with nothing to display.
const emptyPreview = "<empty>"

// Preview is a one-line summary of a register for pickers and menus.
type Preview struct {
	// Name is the register character.
	Name rune
	// Summary is the first line of the register's most recent fragment, or
	// a fixed description for special registers.
	Summary string
}

// specialPreviews are the fixed summaries always present in Preview output.
var specialPreviews = []Preview{
	{'_', emptyPreview},
	{'#', "<selection indices>"},
	{'.', "<selection contents>"},
	{'%', "<document path>"},
	{'+', "<system clipboard>"},
	{'*', "<primary clipboard>"},
}

// Preview returns a summary for every currently-defined plain register plus
// the fixed special-register summaries, sorted by register name.
//
// Clipboard caches are skipped in the stored-entry enumeration: their fixed
// summaries stand in, so raw cached clipboard text is never shown without an
// explicit read.
func (s *Store) Preview() []Preview {
	entries := make([]Preview, 0, len(s.values)+len(specialPreviews))

	for name, values := range s.values {
		if ClassOf(name) == ClassClipboard {
			continue
		}
		entries = append(entries, Preview{Name: name, Summary: summarize(values)})
	}

	entries = append(entries, specialPreviews...)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// summarize returns the first line of the logically-last fragment.
func summarize(values []string) string {
	if len(values) == 0 {
		return emptyPreview
	}
	last := values[len(values)-1]
	if last == "" {
		return emptyPreview
	}
	line, _, _ := strings.Cut(last, "\n")
	return strings.TrimSuffix(line, "\r")
}
