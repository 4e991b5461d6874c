// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strings"

// slugStrip is the literal set of punctuation characters removed during slug
// derivation. Hyphens are deliberately absent so existing hyphenation survives.
const slugStrip = "!\"#$%&'()*+,./:;<=>?@[\\]^_·`{|}~"

// Slugify derives a stable, lowercase identifier from a display label.
//
// The transformation is deterministic and purely textual:
//  1. leading/trailing whitespace is trimmed,
//  2. the input is lowercased,
//  3. every character in the fixed punctuation set is removed,
//  4. each remaining run of whitespace collapses to a single hyphen.
//
// Example:
//
//	Slugify("Demo")             // "demo"
//	Slugify("Books & Records")  // "books-records"
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			pendingSpace = b.Len() > 0
		case strings.ContainsRune(slugStrip, r):
			// stripped
		default:
			if pendingSpace {
				b.WriteByte('-')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
