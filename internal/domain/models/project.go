// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is one program design worked through the seven wizard steps.
//
// CurrentStep is the highest step the planner has reached (1..7). It only
// ever grows; revisiting an earlier step does not lower it.
//
// Data holds one sub-document per step. A missing sub-document decodes to
// its zero value, which every completion rule treats as incomplete.
type Project struct {
	ID          primitive.ObjectID `bson:"_id" json:"id" yaml:"-"`
	OwnerID     string             `bson:"owner_id" json:"-" yaml:"-"`
	Name        string             `bson:"name" json:"name" yaml:"name"`
	NameCI      string             `bson:"name_ci" json:"-" yaml:"-"`
	Description string             `bson:"description" json:"description" yaml:"description"`
	CurrentStep int                `bson:"current_step" json:"currentStep" yaml:"current_step"`
	Data        ProjectData        `bson:"data" json:"data" yaml:"data"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt" yaml:"updated_at"`
}

// ProjectData is the per-step document bag.
type ProjectData struct {
	ProblemDefinition ProblemDefinition `bson:"problem_definition" json:"problemDefinition" yaml:"problem_definition"`
	Stakeholders      Stakeholders      `bson:"stakeholders" json:"stakeholders" yaml:"stakeholders"`
	ProblemTree       ProblemTree       `bson:"problem_tree" json:"problemTree" yaml:"problem_tree"`
	ObjectiveTree     ObjectiveTree     `bson:"objective_tree" json:"objectiveTree" yaml:"objective_tree"`
	ResultsChain      ResultsChain      `bson:"results_chain" json:"resultsChain" yaml:"results_chain"`
	Logframe          Logframe          `bson:"logframe" json:"logframe" yaml:"logframe"`
	Monitoring        Monitoring        `bson:"monitoring" json:"monitoring" yaml:"monitoring"`
}

// Section names one sub-document of ProjectData. The value is the JSON key.
type Section string

const (
	SectionProblemDefinition Section = "problemDefinition"
	SectionStakeholders      Section = "stakeholders"
	SectionProblemTree       Section = "problemTree"
	SectionObjectiveTree     Section = "objectiveTree"
	SectionResultsChain      Section = "resultsChain"
	SectionLogframe          Section = "logframe"
	SectionMonitoring        Section = "monitoring"
)

var sectionFields = map[Section]string{
	SectionProblemDefinition: "problem_definition",
	SectionStakeholders:      "stakeholders",
	SectionProblemTree:       "problem_tree",
	SectionObjectiveTree:     "objective_tree",
	SectionResultsChain:      "results_chain",
	SectionLogframe:          "logframe",
	SectionMonitoring:        "monitoring",
}

// Sections lists every section in wizard order.
func Sections() []Section {
	return []Section{
		SectionProblemDefinition,
		SectionStakeholders,
		SectionProblemTree,
		SectionObjectiveTree,
		SectionResultsChain,
		SectionLogframe,
		SectionMonitoring,
	}
}

// ParseSection accepts either the JSON key ("problemTree") or the stored
// field name ("problem_tree").
func ParseSection(s string) (Section, bool) {
	if _, ok := sectionFields[Section(s)]; ok {
		return Section(s), true
	}
	for sec, field := range sectionFields {
		if field == s {
			return sec, true
		}
	}
	return "", false
}

// Field returns the stored field name under "data", or "" for an unknown section.
func (s Section) Field() string {
	return sectionFields[s]
}
