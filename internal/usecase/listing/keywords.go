package listing

import "strings"

// defaultVocabulary is the built-in set of keyword fragments that implicitly
// activate the pet filter. Matching is case-insensitive and substring-based,
// so a keyword like "애견동반 카페" activates via "애견".
var defaultVocabulary = []string{
	"pet",
	"펫",
	"반려동물",
	"반려견",
	"애견",
	"강아지",
}

// positiveLiterals are the fallback attribute values that count as a positive
// annotation signal when the whole trimmed value equals one of them.
var positiveLiterals = []string{
	"가능",
	"y",
	"possible",
}

// positiveFragments are additionally scanned inside longer free-form values.
// Only the multi-character Korean term qualifies; a single-letter literal
// would match almost any English sentence.
var positiveFragments = []string{
	"가능",
}

// Vocabulary decides whether a search keyword implies pet intent.
type Vocabulary struct {
	terms []string
}

// NewVocabulary builds a vocabulary from the built-in terms plus any
// deployment-specific extras. Blank extras are dropped.
func NewVocabulary(extra ...string) Vocabulary {
	terms := make([]string, 0, len(defaultVocabulary)+len(extra))
	for _, t := range defaultVocabulary {
		terms = append(terms, strings.ToLower(t))
	}
	for _, t := range extra {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			terms = append(terms, t)
		}
	}
	return Vocabulary{terms: terms}
}

// Matches reports whether the keyword contains any vocabulary term.
func (v Vocabulary) Matches(keyword string) bool {
	k := strings.ToLower(strings.TrimSpace(keyword))
	if k == "" {
		return false
	}
	for _, t := range v.terms {
		if strings.Contains(k, t) {
			return true
		}
	}
	return false
}

// positiveAttribute reports whether a raw detail attribute indicates that
// pets are admitted. The short literals match only as the whole trimmed,
// lowercased value; longer free-form values match on the Korean fragment,
// unless an explicit negation ("불가", "impossible") is present.
func positiveAttribute(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return false
	}
	if strings.Contains(s, "불가") || strings.Contains(s, "impossible") {
		return false
	}
	for _, lit := range positiveLiterals {
		if s == lit {
			return true
		}
	}
	for _, frag := range positiveFragments {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
