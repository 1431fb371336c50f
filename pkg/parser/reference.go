package parser

import (
	"strings"

	"github.com/parishledger/bank-importer/pkg/database"
)

const referenceMarker = " REF "

// trailingTokens are checked in this exact order, not by earliest position in
// the description. When several tokens are present the first one in the list
// wins, which matches what the bank upload screen has always done. Payers rely
// on the extracted values staying stable, so do not reorder.
var trailingTokens = []string{
	" VIA ",
	" ONLINE BANKING",
	" MOBILE APP",
	" ON ",
	" AT ",
}

// ExtractReference pulls the payment reference out of a free-text bank
// narrative. Total function: any input without a " REF " marker yields "".
func ExtractReference(description string) string {
	if description == "" {
		return ""
	}

	markerAt := indexFold(description, referenceMarker)
	if markerAt < 0 {
		return ""
	}

	reference := strings.TrimSpace(description[markerAt+len(referenceMarker):])

	for _, token := range trailingTokens {
		if at := indexFold(reference, token); at > 0 {
			reference = strings.TrimSpace(reference[:at])
			break
		}
	}

	if runes := []rune(reference); len(runes) > database.MaxReferenceLength {
		reference = string(runes[:database.MaxReferenceLength])
	}

	return reference
}

// indexFold is a case-insensitive strings.Index. It compares against the
// original bytes, so the returned offset is always valid for slicing s.
// Searching strings.ToUpper(s) instead is not safe: runes whose upper case
// changes byte length (ſ to S) shift every offset after them.
func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}

	return -1
}
