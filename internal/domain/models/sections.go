// internal/domain/models/sections.go
package models

// Stakeholder types.
const (
	StakeholderPrimary   = "primary"
	StakeholderSecondary = "secondary"
	StakeholderKey       = "key"
)

// Influence levels.
const (
	InfluenceHigh   = "high"
	InfluenceMedium = "medium"
	InfluenceLow    = "low"
)

// Indicator types.
const (
	IndicatorOutput  = "output"
	IndicatorOutcome = "outcome"
	IndicatorImpact  = "impact"
)

// Indicator collection frequencies.
const (
	FrequencyMonthly    = "monthly"
	FrequencyQuarterly  = "quarterly"
	FrequencyBiannually = "biannually"
	FrequencyAnnually   = "annually"
)

// ProblemDefinition is step 1.
type ProblemDefinition struct {
	CentralProblem  string `bson:"central_problem" json:"centralProblem" yaml:"central_problem"`
	Context         string `bson:"context" json:"context" yaml:"context"`
	Beneficiaries   string `bson:"beneficiaries" json:"beneficiaries" yaml:"beneficiaries"`
	GeographicScope string `bson:"geographic_scope" json:"geographicScope" yaml:"geographic_scope"`
	Timeframe       string `bson:"timeframe,omitempty" json:"timeframe,omitempty" yaml:"timeframe,omitempty"`
}

// Stakeholder is one row of the stakeholder analysis.
type Stakeholder struct {
	ID           string `bson:"id" json:"id" yaml:"id"`
	Name         string `bson:"name" json:"name" yaml:"name"`
	Type         string `bson:"type" json:"type" yaml:"type"`
	Interest     string `bson:"interest" json:"interest" yaml:"interest"`
	Influence    string `bson:"influence" json:"influence" yaml:"influence"`
	Expectations string `bson:"expectations" json:"expectations" yaml:"expectations"`
}

// Stakeholders is step 2.
type Stakeholders struct {
	Items []Stakeholder `bson:"items" json:"items" yaml:"items"`
}

// TreeNode is a cause or effect in the problem tree, or a means or end in
// the objective tree. SourceID links a derived objective node back to the
// problem node it came from.
type TreeNode struct {
	ID       string `bson:"id" json:"id" yaml:"id"`
	Text     string `bson:"text" json:"text" yaml:"text"`
	SourceID string `bson:"source_id,omitempty" json:"sourceId,omitempty" yaml:"source_id,omitempty"`
}

// ProblemTree is step 3.
type ProblemTree struct {
	CentralProblem string     `bson:"central_problem" json:"centralProblem" yaml:"central_problem"`
	Causes         []TreeNode `bson:"causes" json:"causes" yaml:"causes"`
	Effects        []TreeNode `bson:"effects" json:"effects" yaml:"effects"`
}

// ObjectiveTree is step 4.
type ObjectiveTree struct {
	CentralObjective string     `bson:"central_objective" json:"centralObjective" yaml:"central_objective"`
	Means            []TreeNode `bson:"means" json:"means" yaml:"means"`
	Ends             []TreeNode `bson:"ends" json:"ends" yaml:"ends"`
}

// ChainItem is one entry at a results chain level.
type ChainItem struct {
	ID   string `bson:"id" json:"id" yaml:"id"`
	Text string `bson:"text" json:"text" yaml:"text"`
}

// ResultsChain is step 5: inputs -> activities -> outputs -> outcomes -> impact.
type ResultsChain struct {
	Inputs     []ChainItem `bson:"inputs" json:"inputs" yaml:"inputs"`
	Activities []ChainItem `bson:"activities" json:"activities" yaml:"activities"`
	Outputs    []ChainItem `bson:"outputs" json:"outputs" yaml:"outputs"`
	Outcomes   []ChainItem `bson:"outcomes" json:"outcomes" yaml:"outcomes"`
	Impact     string      `bson:"impact" json:"impact" yaml:"impact"`
}

// LogframeRow is one row of the logical framework matrix.
type LogframeRow struct {
	ID           string `bson:"id" json:"id" yaml:"id"`
	Narrative    string `bson:"narrative" json:"narrative" yaml:"narrative"`
	Indicators   string `bson:"indicators" json:"indicators" yaml:"indicators"`
	Verification string `bson:"verification" json:"verification" yaml:"verification"`
	Assumptions  string `bson:"assumptions" json:"assumptions" yaml:"assumptions"`
}

// Logframe is step 6.
type Logframe struct {
	Goal       LogframeRow   `bson:"goal" json:"goal" yaml:"goal"`
	Purpose    LogframeRow   `bson:"purpose" json:"purpose" yaml:"purpose"`
	Outputs    []LogframeRow `bson:"outputs" json:"outputs" yaml:"outputs"`
	Activities []LogframeRow `bson:"activities" json:"activities" yaml:"activities"`
}

// Indicator is one monitoring indicator. Baseline and Target are free text.
type Indicator struct {
	ID          string `bson:"id" json:"id" yaml:"id"`
	Name        string `bson:"name" json:"name" yaml:"name"`
	Type        string `bson:"type" json:"type" yaml:"type"`
	Baseline    string `bson:"baseline" json:"baseline" yaml:"baseline"`
	Target      string `bson:"target" json:"target" yaml:"target"`
	Frequency   string `bson:"frequency" json:"frequency" yaml:"frequency"`
	Source      string `bson:"source" json:"source" yaml:"source"`
	Responsible string `bson:"responsible" json:"responsible" yaml:"responsible"`
}

// Monitoring is step 7.
type Monitoring struct {
	Indicators []Indicator `bson:"indicators" json:"indicators" yaml:"indicators"`
}

// Entry accessors let list items share id assignment.

func (s *Stakeholder) EntryID() string      { return s.ID }
func (s *Stakeholder) SetEntryID(id string) { s.ID = id }
func (n *TreeNode) EntryID() string         { return n.ID }
func (n *TreeNode) SetEntryID(id string)    { n.ID = id }
func (c *ChainItem) EntryID() string        { return c.ID }
func (c *ChainItem) SetEntryID(id string)   { c.ID = id }
func (r *LogframeRow) EntryID() string      { return r.ID }
func (r *LogframeRow) SetEntryID(id string) { r.ID = id }
func (i *Indicator) EntryID() string        { return i.ID }
func (i *Indicator) SetEntryID(id string)   { i.ID = id }
