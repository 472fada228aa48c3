// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package diagnose

import (
	"reflect"
	"testing"

	"github.com/jongio/whichprob/testutil"
)

func validEntries(t *testing.T, dirs ...string) []PathEntry {
	t.Helper()
	entries := parsePathList(testutil.PathValue(dirs...), t.TempDir())
	probeEntries(entries)
	return entries
}

func TestSuggestionsRankedByDistance(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "los")     // distance 1 from "lol"
	testutil.WriteFile(t, dir, "roll")    // distance 2
	testutil.WriteFile(t, dir, "install") // far away, excluded

	suggestions, skipped := collectSuggestions("lol", validEntries(t, dir), 5)
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2: %+v", len(suggestions), suggestions)
	}
	if suggestions[0].Name != "los" || suggestions[0].Distance != 1 {
		t.Errorf("first suggestion = %+v, want los at distance 1", suggestions[0])
	}
	if suggestions[1].Name != "roll" {
		t.Errorf("second suggestion = %+v, want roll", suggestions[1])
	}
}

func TestSuggestionsTieBreakScanOrderThenName(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	testutil.WriteFile(t, dir2, "lom") // same distance, later entry
	testutil.WriteFile(t, dir1, "loz")
	testutil.WriteFile(t, dir1, "lob") // same distance, same entry, earlier name

	suggestions, _ := collectSuggestions("lol", validEntries(t, dir1, dir2), 5)
	var names []string
	for _, s := range suggestions {
		names = append(names, s.Name)
	}
	want := []string{"lob", "loz", "lom"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ordering = %v, want %v", names, want)
	}
}

func TestSuggestionsStableAcrossRuns(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	testutil.WriteFile(t, dir1, "git")
	testutil.WriteFile(t, dir1, "got")
	testutil.WriteFile(t, dir2, "gut")

	entries := validEntries(t, dir1, dir2)
	first, _ := collectSuggestions("gat", entries, 5)
	second, _ := collectSuggestions("gat", entries, 5)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running produced a different ordering:\n%+v\n%+v", first, second)
	}
}

func TestSuggestionsDeduplicatedByName(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	testutil.WriteFile(t, dir1, "lop")
	testutil.WriteFile(t, dir2, "lop")

	suggestions, _ := collectSuggestions("lol", validEntries(t, dir1, dir2), 5)
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1: %+v", len(suggestions), suggestions)
	}
	if suggestions[0].EntryIndex != 0 {
		t.Errorf("kept occurrence from entry %d, want first entry", suggestions[0].EntryIndex)
	}
}

func TestSuggestionsCappedAtLimit(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"lob", "loc", "lod", "loe", "lof"} {
		testutil.WriteFile(t, dir, name)
	}

	suggestions, _ := collectSuggestions("lol", validEntries(t, dir), 2)
	if len(suggestions) != 2 {
		t.Errorf("got %d suggestions, want limit of 2", len(suggestions))
	}
}

func TestSuggestionsDisabled(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "lob")

	suggestions, skipped := collectSuggestions("lol", validEntries(t, dir), 0)
	if suggestions != nil || skipped != 0 {
		t.Errorf("limit 0 produced %+v (skipped %d), want nothing", suggestions, skipped)
	}
}

func TestSuggestionsSkipNonDirectories(t *testing.T) {
	dir := t.TempDir()
	filePart := testutil.WriteFile(t, dir, "notadir")

	entries := parsePathList(testutil.PathValue(filePart, "/does/not/exist"), t.TempDir())
	probeEntries(entries)

	suggestions, skipped := collectSuggestions("lol", entries, 5)
	if len(suggestions) != 0 || skipped != 0 {
		t.Errorf("non-directory entries contributed %+v (skipped %d)", suggestions, skipped)
	}
}

func TestSuggestionsSkipInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "lom")
	testutil.WriteFile(t, dir, "lo\xffl")

	suggestions, skipped := collectSuggestions("lol", validEntries(t, dir), 5)
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	for _, s := range suggestions {
		if s.Name != "lom" {
			t.Errorf("unexpected suggestion %+v", s)
		}
	}
}
