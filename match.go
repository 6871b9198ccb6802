package taskqueue

import (
	"strings"

	"golang.org/x/text/cases"
)

// keywordMatcher does case-insensitive substring matching using Unicode case
// folding. A Caser is stateful, so each matcher owns one.
type keywordMatcher struct {
	fold    cases.Caser
	keyword string
}

func newKeywordMatcher(keyword string) *keywordMatcher {
	m := &keywordMatcher{fold: cases.Fold()}
	m.keyword = m.fold.String(keyword)
	return m
}

func (m *keywordMatcher) match(description string) bool {
	return strings.Contains(m.fold.String(description), m.keyword)
}
