package wizard_test

import (
	"testing"

	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/dalemusser/programdesign/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func TestEvaluate_Empty(t *testing.T) {
	p := wizard.Evaluate(0, models.ProjectData{})
	if p.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1", p.CurrentStep)
	}
	if p.Completed != 0 || p.Percent != 0 {
		t.Errorf("Completed=%d Percent=%d, want 0/0", p.Completed, p.Percent)
	}

	var reachable []int
	for _, s := range p.Steps {
		if s.Reachable {
			reachable = append(reachable, s.ID)
		}
	}
	if diff := cmp.Diff([]int{1, 2}, reachable); diff != "" {
		t.Errorf("reachable steps mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_Partial(t *testing.T) {
	d := completeData()
	d.Logframe = models.Logframe{}
	d.Monitoring = models.Monitoring{}

	p := wizard.Evaluate(5, d)
	if p.Completed != 5 {
		t.Errorf("Completed = %d, want 5", p.Completed)
	}
	if p.Percent != 71 {
		t.Errorf("Percent = %d, want 71", p.Percent)
	}

	var complete []int
	for _, s := range p.Steps {
		if s.Complete {
			complete = append(complete, s.ID)
		}
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, complete); diff != "" {
		t.Errorf("complete steps mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluateProject_AllComplete(t *testing.T) {
	p := wizard.EvaluateProject(models.Project{CurrentStep: 7, Data: completeData()})
	if p.Completed != 7 || p.Percent != 100 {
		t.Errorf("Completed=%d Percent=%d, want 7/100", p.Completed, p.Percent)
	}
	for _, s := range p.Steps {
		if !s.Reachable {
			t.Errorf("step %d should be reachable at current step 7", s.ID)
		}
	}
}
