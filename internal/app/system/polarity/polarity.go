// Package polarity turns negative problem-tree phrasing into the positive
// phrasing used to seed objective-tree nodes.
//
// The rewrite is a display heuristic. Triggers are matched as plain
// case-insensitive substrings with no word boundaries, applied one after
// another, so "cannot" loses its "not", "allow" becomes "alimproved", and
// deleting "not"/"no" leaves doubled spaces behind. Callers that need
// grammatical output must edit the result.
package polarity

import (
	"regexp"
	"strings"
)

// Rule is one trigger and its replacement.
type Rule struct {
	Trigger     string `json:"trigger" yaml:"trigger"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// "not" must run before "no"; otherwise "not" would be cut down to "t".
var rules = []Rule{
	{Trigger: "lack of", Replacement: "adequate"},
	{Trigger: "low", Replacement: "improved"},
	{Trigger: "poor", Replacement: "quality"},
	{Trigger: "inadequate", Replacement: "adequate"},
	{Trigger: "insufficient", Replacement: "sufficient"},
	{Trigger: "limited", Replacement: "expanded"},
	{Trigger: "weak", Replacement: "strengthened"},
	{Trigger: "not", Replacement: ""},
	{Trigger: "no", Replacement: ""},
}

var patterns = compile(rules)

func compile(rs []Rule) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(rs))
	for i, r := range rs {
		out[i] = regexp.MustCompile("(?i)" + regexp.QuoteMeta(r.Trigger))
	}
	return out
}

// Rules returns a copy of the ordered trigger table.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Transform applies every rule in order and trims the result.
func Transform(text string) string {
	for i, re := range patterns {
		text = re.ReplaceAllLiteralString(text, rules[i].Replacement)
	}
	return strings.TrimSpace(text)
}

// TransformAll transforms each string, keeping order.
func TransformAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = Transform(t)
	}
	return out
}
