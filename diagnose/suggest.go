// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"os"
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a filename may be, in Levenshtein edits,
// from the program name and still be suggested.
const maxSuggestDistance = 3

// Suggestion is a filename observed during the scan that does not exactly
// match the program name but is lexically close. Suggestions are only
// gathered when the scan produced zero exact matches.
type Suggestion struct {
	// Name is the candidate filename.
	Name string `json:"name" yaml:"name"`

	// Distance is the Levenshtein edit distance from the program name.
	Distance int `json:"distance" yaml:"distance"`

	// EntryIndex is the Index of the PathEntry the name was observed in.
	EntryIndex int `json:"entryIndex" yaml:"entryIndex"`
}

// collectSuggestions scans the valid PATH entries for filenames within
// maxSuggestDistance of program, ranked ascending by distance with ties
// broken by PATH scan order then alphabetically, deduplicated by name, and
// capped at limit. Filenames that are not valid UTF-8 cannot be compared and
// are counted in skipped so the report can disclose the omission.
func collectSuggestions(program string, entries []PathEntry, limit int) (suggestions []Suggestion, skipped int) {
	if limit <= 0 {
		return nil, 0
	}

	for _, entry := range entries {
		if entry.Status != EntryValid {
			continue
		}
		names, err := os.ReadDir(entry.Absolute)
		if err != nil {
			// The entry probed valid moments ago; a read failure now is the
			// same degrade-and-continue case as an unreadable directory.
			logger.Debug("skipping unreadable directory", "dir", entry.Absolute, "error", err)
			continue
		}
		for _, dirEntry := range names {
			name := dirEntry.Name()
			if !utf8.ValidString(name) {
				skipped++
				continue
			}
			if name == program {
				continue
			}
			distance := levenshtein.ComputeDistance(program, name)
			if distance > maxSuggestDistance {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Name:       name,
				Distance:   distance,
				EntryIndex: entry.Index,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		if suggestions[i].EntryIndex != suggestions[j].EntryIndex {
			return suggestions[i].EntryIndex < suggestions[j].EntryIndex
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	// The same name can appear in several directories; only the first
	// occurrence in ranked order is worth suggesting.
	seen := make(map[string]bool, len(suggestions))
	unique := suggestions[:0]
	for _, s := range suggestions {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		unique = append(unique, s)
		if len(unique) == limit {
			break
		}
	}
	if len(unique) == 0 {
		return nil, skipped
	}
	return unique, skipped
}
