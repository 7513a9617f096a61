package main

import (
	"strings"
)

// Marks a row the glossary authors left blank on purpose.
const missingTermSentinel = "無此詞彙"

const alternateSeparator = "/"

func rowToEntries(ch, text string) []GlossaryEntry {
	if strings.Contains(text, missingTermSentinel) {
		return nil
	}
	if ch == "" || text == "" {
		return nil
	}
	if !strings.Contains(text, alternateSeparator) {
		return []GlossaryEntry{{Term: strings.TrimSpace(text), Char: ch}}
	}
	components := strings.Split(text, alternateSeparator)
	entries := make([]GlossaryEntry, 0, len(components))
	for _, component := range components {
		term := strings.TrimSpace(component)
		if term == "" {
			continue
		}
		entries = append(entries, GlossaryEntry{Term: term, Char: ch})
	}
	return entries
}
