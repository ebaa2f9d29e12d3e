package match

import "strings"

// punctuation stripped before comparison. Hyphens and interior whitespace
// are kept; no accent folding.
var punct = strings.NewReplacer(
	".", "",
	",", "",
	";", "",
	":", "",
	"!", "",
	"?", "",
)

// Normalize canonicalizes text for answer comparison: lowercase, trim
// surrounding whitespace, strip sentence punctuation. Every learner input
// and every candidate answer passes through this before any equality check.
func Normalize(s string) string {
	return punct.Replace(strings.TrimSpace(strings.ToLower(s)))
}
