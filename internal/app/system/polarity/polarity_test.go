package polarity_test

import (
	"testing"

	"github.com/dalemusser/programdesign/internal/app/system/polarity"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lack of and low", "Low attendance due to lack of transport", "improved attendance due to adequate transport"},
		{"not leaves double space", "Students are not motivated", "Students are  motivated"},
		{"poor", "poor water quality", "quality water quality"},
		{"inadequate", "Inadequate funding", "adequate funding"},
		{"insufficient", "insufficient staff", "sufficient staff"},
		{"limited", "LIMITED access to clinics", "expanded access to clinics"},
		{"weak", "Weak governance", "strengthened governance"},
		{"no at start is trimmed", "No clean water", "clean water"},
		{"every occurrence", "low income and low literacy", "improved income and improved literacy"},
		{"no trigger", "Rising sea levels", "Rising sea levels"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"trims surrounding whitespace", "  weak roads  ", "strengthened roads"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := polarity.Transform(tt.input); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Substring matching is intentional; these document the known mis-rewrites.
func TestTransform_SubstringMatches(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Farmers cannot access markets", "Farmers can access markets"},
		{"a notable decline", "a able decline"},
		{"families know little", "families kw little"},
		{"rules allow it", "rules alimproved it"},
		{"economic shocks", "ecomic shocks"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := polarity.Transform(tt.input); got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransform_IdempotentForSimpleTriggers(t *testing.T) {
	for _, in := range []string{"low", "Low attendance due to lack of transport", "weak roads"} {
		once := polarity.Transform(in)
		twice := polarity.Transform(once)
		if once != twice {
			t.Errorf("Transform not stable for %q: %q then %q", in, once, twice)
		}
	}
}

// Deleting one trigger can splice a new one together, so a second pass
// keeps rewriting.
func TestTransform_NotIdempotentInGeneral(t *testing.T) {
	once := polarity.Transform("lonow")
	if once != "low" {
		t.Fatalf("first pass = %q, want %q", once, "low")
	}
	if twice := polarity.Transform(once); twice != "improved" {
		t.Errorf("second pass = %q, want %q", twice, "improved")
	}

	if got := polarity.Transform("nnoo"); got != "no" {
		t.Errorf("Transform(nnoo) = %q, want %q", got, "no")
	}
}

func TestRules_OrderAndCopy(t *testing.T) {
	rules := polarity.Rules()
	if len(rules) != 9 {
		t.Fatalf("expected 9 rules, got %d", len(rules))
	}
	if rules[0].Trigger != "lack of" {
		t.Errorf("first trigger = %q, want %q", rules[0].Trigger, "lack of")
	}

	notIdx, noIdx := -1, -1
	for i, r := range rules {
		switch r.Trigger {
		case "not":
			notIdx = i
		case "no":
			noIdx = i
		}
	}
	if notIdx < 0 || noIdx < 0 || notIdx > noIdx {
		t.Errorf("expected \"not\" before \"no\", got not=%d no=%d", notIdx, noIdx)
	}

	rules[0].Replacement = "tampered"
	if polarity.Rules()[0].Replacement != "adequate" {
		t.Error("Rules should return a copy")
	}
}

func TestTransformAll(t *testing.T) {
	got := polarity.TransformAll([]string{"low yields", "weak soil"})
	if len(got) != 2 || got[0] != "improved yields" || got[1] != "strengthened soil" {
		t.Errorf("TransformAll = %q", got)
	}
}
