// Package wizard models the seven-step program design flow: which steps
// exist, how a planner moves between them, and when each step counts as
// complete.
//
// Completion is advisory. It gates the "Next"/"Complete" controls but is
// never enforced when a section is saved or a step is marked complete.
package wizard

import "github.com/dalemusser/programdesign/internal/domain/models"

// Step bounds.
const (
	FirstStep = 1
	LastStep  = 7
)

// Step ids in wizard order.
const (
	StepProblemDefinition = iota + 1
	StepStakeholders
	StepProblemTree
	StepObjectiveTree
	StepResultsChain
	StepLogframe
	StepMonitoring
)

// Step describes one wizard step and the section it edits.
type Step struct {
	ID          int            `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Section     models.Section `json:"section" yaml:"section"`
	Requirement string         `json:"requirement" yaml:"requirement"`
}

var steps = [LastStep]Step{
	{StepProblemDefinition, "Problem Definition", models.SectionProblemDefinition,
		"central problem, context, beneficiaries and geographic scope are filled in"},
	{StepStakeholders, "Stakeholder Analysis", models.SectionStakeholders,
		"at least 3 stakeholders, each with a name and interest"},
	{StepProblemTree, "Problem Tree", models.SectionProblemTree,
		"central problem plus at least 2 causes and 2 effects"},
	{StepObjectiveTree, "Objective Tree", models.SectionObjectiveTree,
		"central objective plus at least 2 means and 2 ends"},
	{StepResultsChain, "Results Chain", models.SectionResultsChain,
		"at least one input, activity, output and outcome, and an impact statement"},
	{StepLogframe, "Logical Framework", models.SectionLogframe,
		"goal and purpose, at least one output and one activity, each row with a narrative and indicator"},
	{StepMonitoring, "Monitoring Framework", models.SectionMonitoring,
		"at least one indicator, each with a name, baseline and target"},
}

// Steps returns every step in order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps[:])
	return out
}

// Lookup returns the step with the given id.
func Lookup(id int) (Step, bool) {
	if !Valid(id) {
		return Step{}, false
	}
	return steps[id-1], true
}

// StepForSection returns the step that edits a section.
func StepForSection(sec models.Section) (Step, bool) {
	for _, s := range steps {
		if s.Section == sec {
			return s, true
		}
	}
	return Step{}, false
}

// Valid reports whether id names a step.
func Valid(id int) bool {
	return id >= FirstStep && id <= LastStep
}

// Clamp pulls n into [FirstStep, LastStep].
func Clamp(n int) int {
	if n < FirstStep {
		return FirstStep
	}
	if n > LastStep {
		return LastStep
	}
	return n
}
