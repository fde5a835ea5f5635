package domain

import (
	"strings"
	"unicode"
)

// NewSlug derives a URL-safe slug from free text. Letters and digits are
// lowered and kept, every other run of characters collapses to a single
// hyphen, and leading/trailing hyphens are trimmed. The result is a pure
// function of the input: the same title always yields the same slug.
//
// Two distinct questions with the same title therefore produce the same
// slug; deduplication is not attempted here and the database's unique index
// is what rejects the second insert. Known gap.
func NewSlug(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
