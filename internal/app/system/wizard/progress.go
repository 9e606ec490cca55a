package wizard

import "github.com/dalemusser/programdesign/internal/domain/models"

// StepStatus is one row of a progress report.
type StepStatus struct {
	Step      `yaml:",inline"`
	Complete  bool `json:"complete" yaml:"complete"`
	Reachable bool `json:"reachable" yaml:"reachable"`
}

// Progress summarizes a project's position in the wizard.
type Progress struct {
	CurrentStep int          `json:"currentStep" yaml:"current_step"`
	Completed   int          `json:"completed" yaml:"completed"`
	Percent     int          `json:"percent" yaml:"percent"`
	Steps       []StepStatus `json:"steps" yaml:"steps"`
}

// Evaluate runs every completion rule against the project data. Reachable
// mirrors Navigator.CanJump for the stored current step.
func Evaluate(currentStep int, d models.ProjectData) Progress {
	nav := NewNavigator(currentStep)
	p := Progress{CurrentStep: nav.Reached, Steps: make([]StepStatus, 0, LastStep)}
	for _, s := range steps {
		done := IsComplete(s.ID, d)
		if done {
			p.Completed++
		}
		p.Steps = append(p.Steps, StepStatus{
			Step:      s,
			Complete:  done,
			Reachable: nav.CanJump(s.ID),
		})
	}
	p.Percent = p.Completed * 100 / LastStep
	return p
}

// EvaluateProject is Evaluate for a stored project.
func EvaluateProject(p models.Project) Progress {
	return Evaluate(p.CurrentStep, p.Data)
}
