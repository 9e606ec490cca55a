package wizard_test

import (
	"testing"

	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/dalemusser/programdesign/internal/domain/models"
)

func completeData() models.ProjectData {
	return models.ProjectData{
		ProblemDefinition: models.ProblemDefinition{
			CentralProblem:  "Low school attendance",
			Context:         "Rural district with seasonal flooding",
			Beneficiaries:   "Primary school children",
			GeographicScope: "Northern province",
		},
		Stakeholders: models.Stakeholders{Items: []models.Stakeholder{
			{ID: "s1", Name: "Parents", Interest: "Children in school"},
			{ID: "s2", Name: "Teachers", Interest: "Full classrooms"},
			{ID: "s3", Name: "District office", Interest: "Enrollment targets"},
		}},
		ProblemTree: models.ProblemTree{
			CentralProblem: "Low school attendance",
			Causes:         []models.TreeNode{{ID: "c1", Text: "Lack of transport"}, {ID: "c2", Text: "Poor nutrition"}},
			Effects:        []models.TreeNode{{ID: "e1", Text: "Low literacy"}, {ID: "e2", Text: "Early dropout"}},
		},
		ObjectiveTree: models.ObjectiveTree{
			CentralObjective: "improved school attendance",
			Means:            []models.TreeNode{{ID: "m1", Text: "adequate transport"}, {ID: "m2", Text: "quality nutrition"}},
			Ends:             []models.TreeNode{{ID: "n1", Text: "improved literacy"}, {ID: "n2", Text: "Fewer dropouts"}},
		},
		ResultsChain: models.ResultsChain{
			Inputs:     []models.ChainItem{{ID: "i1", Text: "Buses"}},
			Activities: []models.ChainItem{{ID: "a1", Text: "Run school bus routes"}},
			Outputs:    []models.ChainItem{{ID: "o1", Text: "Routes operating"}},
			Outcomes:   []models.ChainItem{{ID: "u1", Text: "Attendance up"}},
			Impact:     "Higher literacy",
		},
		Logframe: models.Logframe{
			Goal:       models.LogframeRow{Narrative: "Higher literacy"},
			Purpose:    models.LogframeRow{Narrative: "Attendance up"},
			Outputs:    []models.LogframeRow{{ID: "lo1", Narrative: "Routes operating", Indicators: "# routes"}},
			Activities: []models.LogframeRow{{ID: "la1", Narrative: "Buy buses", Indicators: "# buses"}},
		},
		Monitoring: models.Monitoring{Indicators: []models.Indicator{
			{ID: "ind1", Name: "Attendance rate", Type: models.IndicatorOutcome, Baseline: "62%", Target: "85%", Frequency: models.FrequencyQuarterly},
		}},
	}
}

func TestIsComplete_AllStepsWithCompleteData(t *testing.T) {
	d := completeData()
	for step := wizard.FirstStep; step <= wizard.LastStep; step++ {
		if !wizard.IsComplete(step, d) {
			t.Errorf("step %d should be complete", step)
		}
	}
}

func TestIsComplete_ZeroDataIsIncomplete(t *testing.T) {
	var d models.ProjectData
	for step := wizard.FirstStep; step <= wizard.LastStep; step++ {
		if wizard.IsComplete(step, d) {
			t.Errorf("step %d should be incomplete for empty data", step)
		}
	}
}

func TestIsComplete_UnknownStep(t *testing.T) {
	if wizard.IsComplete(0, completeData()) || wizard.IsComplete(8, completeData()) {
		t.Error("unknown steps are never complete")
	}
}

func TestProblemDefinitionComplete(t *testing.T) {
	base := completeData().ProblemDefinition
	if !wizard.ProblemDefinitionComplete(base) {
		t.Fatal("base should be complete")
	}
	for name, mutate := range map[string]func(*models.ProblemDefinition){
		"central problem":  func(p *models.ProblemDefinition) { p.CentralProblem = "" },
		"context":          func(p *models.ProblemDefinition) { p.Context = "  " },
		"beneficiaries":    func(p *models.ProblemDefinition) { p.Beneficiaries = "" },
		"geographic scope": func(p *models.ProblemDefinition) { p.GeographicScope = "\t" },
	} {
		p := base
		mutate(&p)
		if wizard.ProblemDefinitionComplete(p) {
			t.Errorf("blank %s should be incomplete", name)
		}
	}
}

func TestStakeholdersComplete(t *testing.T) {
	base := completeData().Stakeholders
	if !wizard.StakeholdersComplete(base) {
		t.Fatal("base should be complete")
	}

	two := models.Stakeholders{Items: base.Items[:2]}
	if wizard.StakeholdersComplete(two) {
		t.Error("two stakeholders should be incomplete")
	}

	noInterest := models.Stakeholders{Items: append([]models.Stakeholder(nil), base.Items...)}
	noInterest.Items[1].Interest = ""
	if wizard.StakeholdersComplete(noInterest) {
		t.Error("stakeholder without interest should be incomplete")
	}

	noName := models.Stakeholders{Items: append([]models.Stakeholder(nil), base.Items...)}
	noName.Items[2].Name = " "
	if wizard.StakeholdersComplete(noName) {
		t.Error("stakeholder without name should be incomplete")
	}
}

func TestProblemTreeComplete(t *testing.T) {
	base := completeData().ProblemTree
	if !wizard.ProblemTreeComplete(base) {
		t.Fatal("base should be complete")
	}

	oneCause := base
	oneCause.Causes = base.Causes[:1]
	if wizard.ProblemTreeComplete(oneCause) {
		t.Error("one cause should be incomplete")
	}

	oneEffect := base
	oneEffect.Effects = base.Effects[:1]
	if wizard.ProblemTreeComplete(oneEffect) {
		t.Error("one effect should be incomplete")
	}

	blankEffect := base
	blankEffect.Effects = []models.TreeNode{{ID: "e1", Text: "x"}, {ID: "e2", Text: ""}}
	if wizard.ProblemTreeComplete(blankEffect) {
		t.Error("blank effect text should be incomplete")
	}

	noCentral := base
	noCentral.CentralProblem = ""
	if wizard.ProblemTreeComplete(noCentral) {
		t.Error("missing central problem should be incomplete")
	}
}

func TestObjectiveTreeComplete(t *testing.T) {
	base := completeData().ObjectiveTree
	if !wizard.ObjectiveTreeComplete(base) {
		t.Fatal("base should be complete")
	}
	oneMeans := base
	oneMeans.Means = base.Means[:1]
	if wizard.ObjectiveTreeComplete(oneMeans) {
		t.Error("one means should be incomplete")
	}
	noCentral := base
	noCentral.CentralObjective = " "
	if wizard.ObjectiveTreeComplete(noCentral) {
		t.Error("missing central objective should be incomplete")
	}
}

func TestResultsChainComplete(t *testing.T) {
	base := completeData().ResultsChain
	if !wizard.ResultsChainComplete(base) {
		t.Fatal("base should be complete")
	}
	noImpact := base
	noImpact.Impact = ""
	if wizard.ResultsChainComplete(noImpact) {
		t.Error("missing impact should be incomplete")
	}
	blankOutputs := base
	blankOutputs.Outputs = []models.ChainItem{{ID: "o1", Text: "  "}}
	if wizard.ResultsChainComplete(blankOutputs) {
		t.Error("only blank outputs should be incomplete")
	}
}

func TestLogframeComplete(t *testing.T) {
	base := completeData().Logframe
	if !wizard.LogframeComplete(base) {
		t.Fatal("base should be complete")
	}
	noActivities := base
	noActivities.Activities = nil
	if wizard.LogframeComplete(noActivities) {
		t.Error("no activities should be incomplete")
	}
	missingIndicator := base
	missingIndicator.Outputs = []models.LogframeRow{{ID: "x", Narrative: "Routes operating"}}
	if wizard.LogframeComplete(missingIndicator) {
		t.Error("row without indicator should be incomplete")
	}
	noGoal := base
	noGoal.Goal.Narrative = ""
	if wizard.LogframeComplete(noGoal) {
		t.Error("missing goal should be incomplete")
	}
}

func TestMonitoringComplete(t *testing.T) {
	base := completeData().Monitoring
	if !wizard.MonitoringComplete(base) {
		t.Fatal("base should be complete")
	}
	if wizard.MonitoringComplete(models.Monitoring{}) {
		t.Error("no indicators should be incomplete")
	}
	noTarget := models.Monitoring{Indicators: []models.Indicator{{Name: "Rate", Baseline: "1"}}}
	if wizard.MonitoringComplete(noTarget) {
		t.Error("indicator without target should be incomplete")
	}
}

// Each rule reads only its own section: emptying every other section must
// not change the result.
func TestIsComplete_IndependentOfOtherSections(t *testing.T) {
	full := completeData()
	for step := wizard.FirstStep; step <= wizard.LastStep; step++ {
		isolated := isolate(full, step)
		if got, want := wizard.IsComplete(step, isolated), wizard.IsComplete(step, full); got != want {
			t.Errorf("step %d: isolated=%v full=%v", step, got, want)
		}

		var empty models.ProjectData
		othersFull := full
		clearSection(&othersFull, step, empty)
		if wizard.IsComplete(step, othersFull) {
			t.Errorf("step %d: should be incomplete when only its own section is empty", step)
		}
	}
}

func isolate(src models.ProjectData, step int) models.ProjectData {
	var out models.ProjectData
	switch step {
	case wizard.StepProblemDefinition:
		out.ProblemDefinition = src.ProblemDefinition
	case wizard.StepStakeholders:
		out.Stakeholders = src.Stakeholders
	case wizard.StepProblemTree:
		out.ProblemTree = src.ProblemTree
	case wizard.StepObjectiveTree:
		out.ObjectiveTree = src.ObjectiveTree
	case wizard.StepResultsChain:
		out.ResultsChain = src.ResultsChain
	case wizard.StepLogframe:
		out.Logframe = src.Logframe
	case wizard.StepMonitoring:
		out.Monitoring = src.Monitoring
	}
	return out
}

func clearSection(d *models.ProjectData, step int, empty models.ProjectData) {
	switch step {
	case wizard.StepProblemDefinition:
		d.ProblemDefinition = empty.ProblemDefinition
	case wizard.StepStakeholders:
		d.Stakeholders = empty.Stakeholders
	case wizard.StepProblemTree:
		d.ProblemTree = empty.ProblemTree
	case wizard.StepObjectiveTree:
		d.ObjectiveTree = empty.ObjectiveTree
	case wizard.StepResultsChain:
		d.ResultsChain = empty.ResultsChain
	case wizard.StepLogframe:
		d.Logframe = empty.Logframe
	case wizard.StepMonitoring:
		d.Monitoring = empty.Monitoring
	}
}
