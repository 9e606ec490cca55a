package wizard

// Navigator tracks which step is on screen (Displayed) against the highest
// step the project has reached (Reached, the stored current step).
type Navigator struct {
	Displayed int `json:"displayed"`
	Reached   int `json:"reached"`
}

// NewNavigator opens a project at the step it has reached.
func NewNavigator(reached int) Navigator {
	r := Clamp(reached)
	return Navigator{Displayed: r, Reached: r}
}

// Show sets the displayed step reported by a client, limited to the
// furthest step the indicator gate allows (Reached+1, at most LastStep).
// Values below FirstStep are raised to it.
func (n *Navigator) Show(displayed int) {
	n.Displayed = Clamp(min(displayed, n.Reached+1))
}

// Next moves forward one step, stopping at the last. It reports whether
// the displayed step changed.
func (n *Navigator) Next() bool {
	if n.Displayed >= LastStep {
		return false
	}
	n.Displayed++
	return true
}

// Previous moves back one step, stopping at the first.
func (n *Navigator) Previous() bool {
	if n.Displayed <= FirstStep {
		return false
	}
	n.Displayed--
	return true
}

// CanJump reports whether a step indicator may be clicked: any reached step
// can be revisited, and the planner may go exactly one beyond it.
func (n Navigator) CanJump(target int) bool {
	return Valid(target) && target <= n.Reached+1
}

// Jump shows target if CanJump allows it; otherwise nothing changes.
func (n *Navigator) Jump(target int) bool {
	if !n.CanJump(target) {
		return false
	}
	n.Displayed = target
	return true
}

// MarkComplete returns the reached step after completing step, never
// lowering what was already observed.
func MarkComplete(observed, step int) int {
	return Clamp(max(observed, step))
}
