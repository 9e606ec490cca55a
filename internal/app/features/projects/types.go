package projects

import (
	"time"

	"github.com/dalemusser/programdesign/internal/app/system/wizard"
	"github.com/dalemusser/programdesign/internal/domain/models"
)

// projectResponse is the full project plus its evaluated progress.
type projectResponse struct {
	Project  models.Project  `json:"project"`
	Progress wizard.Progress `json:"progress"`
}

func newProjectResponse(p models.Project) projectResponse {
	return projectResponse{Project: p, Progress: wizard.EvaluateProject(p)}
}

// projectSummary is one row of the project list.
type projectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CurrentStep int       `json:"currentStep"`
	Completed   int       `json:"completed"`
	Percent     int       `json:"percent"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProjectSummary(p models.Project) projectSummary {
	prog := wizard.EvaluateProject(p)
	return projectSummary{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		CurrentStep: prog.CurrentStep,
		Completed:   prog.Completed,
		Percent:     prog.Percent,
		UpdatedAt:   p.UpdatedAt,
	}
}

// projectInput is the body of create and edit.
type projectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type navigateInput struct {
	Displayed int    `json:"displayed"`
	Action    string `json:"action"`
	Target    int    `json:"target"`
}

type navigateResponse struct {
	Displayed int         `json:"displayed"`
	Reached   int         `json:"reached"`
	Changed   bool        `json:"changed"`
	Step      wizard.Step `json:"step"`
}

type stepCompleteResponse struct {
	Step        int             `json:"step"`
	CurrentStep int             `json:"currentStep"`
	Satisfied   bool            `json:"satisfied"`
	Progress    wizard.Progress `json:"progress"`
}

type sectionResponse struct {
	Section  models.Section  `json:"section"`
	Step     int             `json:"step"`
	Complete bool            `json:"complete"`
	Project  models.Project  `json:"project"`
	Progress wizard.Progress `json:"progress"`
}
