package polarity

import (
	"github.com/dalemusser/programdesign/internal/app/system/ids"
	"github.com/dalemusser/programdesign/internal/domain/models"
)

// DeriveObjectiveTree seeds an objective tree from a problem tree: the
// central problem becomes the central objective, causes become means and
// effects become ends. Each derived node gets a fresh id and remembers the
// problem node it came from. Order is preserved.
func DeriveObjectiveTree(pt models.ProblemTree, g ids.Generator) models.ObjectiveTree {
	return models.ObjectiveTree{
		CentralObjective: Transform(pt.CentralProblem),
		Means:            deriveNodes(pt.Causes, g),
		Ends:             deriveNodes(pt.Effects, g),
	}
}

func deriveNodes(src []models.TreeNode, g ids.Generator) []models.TreeNode {
	out := make([]models.TreeNode, 0, len(src))
	for _, n := range src {
		out = append(out, models.TreeNode{
			ID:       g.New(),
			Text:     Transform(n.Text),
			SourceID: n.ID,
		})
	}
	return out
}
