package nlp

import (
	"regexp"
	"strings"
)

// letters and digits in any script are kept
var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s\-']`)

// contractions are expanded in this order
var contractions = []struct{ from, to string }{
	{"can't", "cannot"},
	{"won't", "will not"},
	{"i'm", "i am"},
	{"i've", "i have"},
	{"i'll", "i will"},
	{"don't", "do not"},
	{"doesn't", "does not"},
	{"didn't", "did not"},
	{"haven't", "have not"},
	{"hasn't", "has not"},
	{"shouldn't", "should not"},
	{"wouldn't", "would not"},
	{"couldn't", "could not"},
}

// Preprocess normalises a message for classification: lowercase, single
// spaces, punctuation other than hyphens and apostrophes blanked, common
// contractions expanded.
func Preprocess(message string) string {
	s := strings.ToLower(message)
	s = strings.Join(strings.Fields(s), " ")
	s = punctuation.ReplaceAllString(s, " ")
	for _, c := range contractions {
		s = strings.ReplaceAll(s, c.from, c.to)
	}
	return strings.TrimSpace(s)
}

// CleanText collapses runs of whitespace into single spaces
func CleanText(message string) string {
	return strings.Join(strings.Fields(message), " ")
}
