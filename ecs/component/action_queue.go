package component

import "github.com/milk9111/aimstick/control"

// Tween is an action in flight. From holds the starting value captured when
// the tween begins: a position in From, or a scalar in From.X.
type Tween struct {
	Action  control.Action
	Elapsed float64
	Started bool
	From    control.Vec2
	Applied control.Vec2

	// sequence progress
	Step  int
	Child *Tween
}

// ActionQueue holds actions handed to an entity, in issue order.
type ActionQueue struct {
	Pending []control.Action
	Running []*Tween
}

var ActionQueueComponent = NewComponent[ActionQueue]()
