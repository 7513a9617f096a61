package main

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// cleanRowCells is the opt-in clean_cells mode for sheets pasted in from
// HTML. Both cells lose markup and entities; only the transliteration is
// NFC-normalized, since NFC maps CJK compatibility ideographs in ch to
// different code points.
func cleanRowCells(ch, text string) (string, string) {
	return unmarkup(ch), cleanCell(text)
}

func cleanCell(value string) string {
	if value == "" {
		return value
	}
	return norm.NFC.String(unmarkup(value))
}

func unmarkup(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return value
	}
	return stripMarkup(value)
}

func stripMarkup(value string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(value))
	var out strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if err := tokenizer.Err(); err != nil && err != io.EOF {
				return value
			}
			break
		}

		tok := tokenizer.Token()
		switch tt {
		case html.StartTagToken:
			tag := strings.ToLower(tok.Data)
			if isSkipTag(tag) {
				skipDepth++
			} else if tag == "br" && skipDepth == 0 {
				out.WriteString(" ")
			}
		case html.EndTagToken:
			if isSkipTag(strings.ToLower(tok.Data)) && skipDepth > 0 {
				skipDepth--
			}
		case html.SelfClosingTagToken:
			if strings.EqualFold(tok.Data, "br") && skipDepth == 0 {
				out.WriteString(" ")
			}
		case html.TextToken:
			if skipDepth == 0 {
				// Token.Data is already unescaped.
				out.WriteString(tok.Data)
			}
		}
	}

	return out.String()
}

func isSkipTag(tag string) bool {
	switch tag {
	case "script", "style":
		return true
	default:
		return false
	}
}
