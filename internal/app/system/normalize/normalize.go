// Package normalize cleans planner-entered text before it is stored.
//
// All wizard fields are plain text. Markup is stripped with bluemonday's
// strict policy and the escaping it applies is undone, so "Parents' union"
// is stored as typed rather than as "Parents&#39; union".
package normalize

import (
	"html"
	"strings"

	"github.com/dalemusser/programdesign/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// maxPasses bounds Text's sanitize/unescape loop. Each changing pass strips
// a layer of tags or decodes a layer of entities, so real input settles in
// two or three.
const maxPasses = 8

// Text strips markup and trims surrounding whitespace. Entity-escaped
// markup such as "&lt;b&gt;" is decoded and stripped as well, so the result
// is plain text and Text(Text(s)) == Text(s).
func Text(s string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < maxPasses && s != ""; i++ {
		next := strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
		if next == s {
			return s
		}
		s = next
	}
	if strings.ContainsAny(s, "<>") {
		// Still changing after maxPasses: drop it rather than store markup.
		return ""
	}
	return s
}

// Name is Text with internal runs of whitespace collapsed, for titles.
func Name(s string) string {
	return strings.Join(strings.Fields(Text(s)), " ")
}

// Choice lower-cases and trims an enumerated value such as a stakeholder
// type or indicator frequency. Unknown values are kept; the wizard does not
// validate them.
func Choice(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ProblemDefinition(p models.ProblemDefinition) models.ProblemDefinition {
	return models.ProblemDefinition{
		CentralProblem:  Text(p.CentralProblem),
		Context:         Text(p.Context),
		Beneficiaries:   Text(p.Beneficiaries),
		GeographicScope: Text(p.GeographicScope),
		Timeframe:       Text(p.Timeframe),
	}
}

func Stakeholders(s models.Stakeholders) models.Stakeholders {
	out := models.Stakeholders{Items: make([]models.Stakeholder, 0, len(s.Items))}
	for _, st := range s.Items {
		out.Items = append(out.Items, models.Stakeholder{
			ID:           strings.TrimSpace(st.ID),
			Name:         Text(st.Name),
			Type:         Choice(st.Type),
			Interest:     Text(st.Interest),
			Influence:    Choice(st.Influence),
			Expectations: Text(st.Expectations),
		})
	}
	return out
}

func ProblemTree(t models.ProblemTree) models.ProblemTree {
	return models.ProblemTree{
		CentralProblem: Text(t.CentralProblem),
		Causes:         nodes(t.Causes),
		Effects:        nodes(t.Effects),
	}
}

func ObjectiveTree(t models.ObjectiveTree) models.ObjectiveTree {
	return models.ObjectiveTree{
		CentralObjective: Text(t.CentralObjective),
		Means:            nodes(t.Means),
		Ends:             nodes(t.Ends),
	}
}

func ResultsChain(c models.ResultsChain) models.ResultsChain {
	return models.ResultsChain{
		Inputs:     chain(c.Inputs),
		Activities: chain(c.Activities),
		Outputs:    chain(c.Outputs),
		Outcomes:   chain(c.Outcomes),
		Impact:     Text(c.Impact),
	}
}

func Logframe(l models.Logframe) models.Logframe {
	return models.Logframe{
		Goal:       row(l.Goal),
		Purpose:    row(l.Purpose),
		Outputs:    rows(l.Outputs),
		Activities: rows(l.Activities),
	}
}

func Monitoring(m models.Monitoring) models.Monitoring {
	out := models.Monitoring{Indicators: make([]models.Indicator, 0, len(m.Indicators))}
	for _, in := range m.Indicators {
		out.Indicators = append(out.Indicators, models.Indicator{
			ID:          strings.TrimSpace(in.ID),
			Name:        Text(in.Name),
			Type:        Choice(in.Type),
			Baseline:    Text(in.Baseline),
			Target:      Text(in.Target),
			Frequency:   Choice(in.Frequency),
			Source:      Text(in.Source),
			Responsible: Text(in.Responsible),
		})
	}
	return out
}

func nodes(in []models.TreeNode) []models.TreeNode {
	out := make([]models.TreeNode, 0, len(in))
	for _, n := range in {
		out = append(out, models.TreeNode{
			ID:       strings.TrimSpace(n.ID),
			Text:     Text(n.Text),
			SourceID: strings.TrimSpace(n.SourceID),
		})
	}
	return out
}

func chain(in []models.ChainItem) []models.ChainItem {
	out := make([]models.ChainItem, 0, len(in))
	for _, c := range in {
		out = append(out, models.ChainItem{ID: strings.TrimSpace(c.ID), Text: Text(c.Text)})
	}
	return out
}

func row(r models.LogframeRow) models.LogframeRow {
	return models.LogframeRow{
		ID:           strings.TrimSpace(r.ID),
		Narrative:    Text(r.Narrative),
		Indicators:   Text(r.Indicators),
		Verification: Text(r.Verification),
		Assumptions:  Text(r.Assumptions),
	}
}

func rows(in []models.LogframeRow) []models.LogframeRow {
	out := make([]models.LogframeRow, 0, len(in))
	for _, r := range in {
		out = append(out, row(r))
	}
	return out
}
