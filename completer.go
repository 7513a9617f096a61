package main

import (
	"sort"
	"strings"
)

// Complete returns up to limit entries whose term starts with prefix. The
// table must be sorted; limit <= 0 means no limit.
func Complete(table *GlossaryTable, prefix string, limit int) []GlossaryEntry {
	entries := table.Entries
	first := sort.Search(len(entries), func(i int) bool {
		return entries[i].Term >= prefix
	})

	var out []GlossaryEntry
	for i := first; i < len(entries); i++ {
		if !strings.HasPrefix(entries[i].Term, prefix) {
			break
		}
		out = append(out, entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
