package wizard

import (
	"strings"

	"github.com/dalemusser/programdesign/internal/domain/models"
)

// Minimum list sizes used by the completion rules.
const (
	MinStakeholders = 3
	MinCauses       = 2
	MinEffects      = 2
	MinMeans        = 2
	MinEnds         = 2
)

// completionRules maps a step id to its predicate. Each predicate reads only
// its own step's section.
var completionRules = map[int]func(models.ProjectData) bool{
	StepProblemDefinition: func(d models.ProjectData) bool { return ProblemDefinitionComplete(d.ProblemDefinition) },
	StepStakeholders:      func(d models.ProjectData) bool { return StakeholdersComplete(d.Stakeholders) },
	StepProblemTree:       func(d models.ProjectData) bool { return ProblemTreeComplete(d.ProblemTree) },
	StepObjectiveTree:     func(d models.ProjectData) bool { return ObjectiveTreeComplete(d.ObjectiveTree) },
	StepResultsChain:      func(d models.ProjectData) bool { return ResultsChainComplete(d.ResultsChain) },
	StepLogframe:          func(d models.ProjectData) bool { return LogframeComplete(d.Logframe) },
	StepMonitoring:        func(d models.ProjectData) bool { return MonitoringComplete(d.Monitoring) },
}

// IsComplete evaluates the completion rule for one step. Unknown steps are
// never complete.
func IsComplete(step int, d models.ProjectData) bool {
	rule, ok := completionRules[step]
	if !ok {
		return false
	}
	return rule(d)
}

// ProblemDefinitionComplete requires the central problem, context,
// beneficiaries and geographic scope.
func ProblemDefinitionComplete(p models.ProblemDefinition) bool {
	return filled(p.CentralProblem) && filled(p.Context) &&
		filled(p.Beneficiaries) && filled(p.GeographicScope)
}

// StakeholdersComplete requires MinStakeholders entries, each with a name and interest.
func StakeholdersComplete(s models.Stakeholders) bool {
	if len(s.Items) < MinStakeholders {
		return false
	}
	for _, st := range s.Items {
		if !filled(st.Name) || !filled(st.Interest) {
			return false
		}
	}
	return true
}

// ProblemTreeComplete requires a central problem plus MinCauses causes and
// MinEffects effects with text.
func ProblemTreeComplete(t models.ProblemTree) bool {
	return filled(t.CentralProblem) &&
		nodesFilled(t.Causes, MinCauses) &&
		nodesFilled(t.Effects, MinEffects)
}

// ObjectiveTreeComplete requires a central objective plus MinMeans means and
// MinEnds ends with text.
func ObjectiveTreeComplete(t models.ObjectiveTree) bool {
	return filled(t.CentralObjective) &&
		nodesFilled(t.Means, MinMeans) &&
		nodesFilled(t.Ends, MinEnds)
}

// ResultsChainComplete requires one filled item at every level and an impact.
func ResultsChainComplete(c models.ResultsChain) bool {
	return anyFilled(c.Inputs) && anyFilled(c.Activities) &&
		anyFilled(c.Outputs) && anyFilled(c.Outcomes) &&
		filled(c.Impact)
}

// LogframeComplete requires goal and purpose narratives and at least one
// output and activity row, every row with a narrative and indicator.
func LogframeComplete(l models.Logframe) bool {
	if !filled(l.Goal.Narrative) || !filled(l.Purpose.Narrative) {
		return false
	}
	if len(l.Outputs) == 0 || len(l.Activities) == 0 {
		return false
	}
	for _, rows := range [][]models.LogframeRow{l.Outputs, l.Activities} {
		for _, r := range rows {
			if !filled(r.Narrative) || !filled(r.Indicators) {
				return false
			}
		}
	}
	return true
}

// MonitoringComplete requires at least one indicator, each with a name,
// baseline and target.
func MonitoringComplete(m models.Monitoring) bool {
	if len(m.Indicators) == 0 {
		return false
	}
	for _, in := range m.Indicators {
		if !filled(in.Name) || !filled(in.Baseline) || !filled(in.Target) {
			return false
		}
	}
	return true
}

func filled(s string) bool { return strings.TrimSpace(s) != "" }

func nodesFilled(nodes []models.TreeNode, least int) bool {
	if len(nodes) < least {
		return false
	}
	for _, n := range nodes {
		if !filled(n.Text) {
			return false
		}
	}
	return true
}

func anyFilled(items []models.ChainItem) bool {
	for _, it := range items {
		if filled(it.Text) {
			return true
		}
	}
	return false
}
