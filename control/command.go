package control

import "fmt"

// Entity is a host-side handle. The zero value means the entity is absent.
type Entity uint64

func (e Entity) Valid() bool {
	return e != 0
}

// ActionKind identifies what an Action does to its target.
type ActionKind uint8

const (
	ActionMoveBy ActionKind = iota + 1
	ActionMoveTo
	ActionRotateTo
	ActionScaleXTo
	ActionScaleYTo
	ActionSetHidden
	ActionSequence
)

func (k ActionKind) String() string {
	switch k {
	case ActionMoveBy:
		return "move_by"
	case ActionMoveTo:
		return "move_to"
	case ActionRotateTo:
		return "rotate_to"
	case ActionScaleXTo:
		return "scale_x_to"
	case ActionScaleYTo:
		return "scale_y_to"
	case ActionSetHidden:
		return "set_hidden"
	case ActionSequence:
		return "sequence"
	default:
		return fmt.Sprintf("action(%d)", uint8(k))
	}
}

// Action is a timed change to an entity. Durations are in seconds; zero
// means the change applies on the next sink step.
type Action struct {
	Kind     ActionKind
	Vector   Vec2
	Value    float64
	Hidden   bool
	Duration float64
	Steps    []Action
}

func MoveBy(delta Vec2, duration float64) Action {
	return Action{Kind: ActionMoveBy, Vector: delta, Duration: duration}
}

func MoveTo(point Vec2, duration float64) Action {
	return Action{Kind: ActionMoveTo, Vector: point, Duration: duration}
}

func RotateTo(angle, duration float64) Action {
	return Action{Kind: ActionRotateTo, Value: angle, Duration: duration}
}

func ScaleXTo(factor, duration float64) Action {
	return Action{Kind: ActionScaleXTo, Value: factor, Duration: duration}
}

func ScaleYTo(factor, duration float64) Action {
	return Action{Kind: ActionScaleYTo, Value: factor, Duration: duration}
}

func SetHidden(hidden bool) Action {
	return Action{Kind: ActionSetHidden, Hidden: hidden}
}

// Sequence runs steps one after another. Its duration is the sum of theirs.
func Sequence(steps ...Action) Action {
	copied := append([]Action(nil), steps...)
	total := 0.0
	for _, s := range copied {
		total += s.Duration
	}
	return Action{Kind: ActionSequence, Steps: copied, Duration: total}
}

// Sink executes actions asynchronously. Implementations must start actions
// for a given target in the order Run was called.
type Sink interface {
	Run(target Entity, a Action)
}

// Command pairs an action with its target.
type Command struct {
	Target Entity
	Action Action
}

// CommandQueue is a FIFO of commands waiting to be handed to a Sink.
type CommandQueue struct {
	items []Command
}

// Push queues a for target. Commands for absent entities are dropped.
func (q *CommandQueue) Push(target Entity, a Action) {
	if q == nil || !target.Valid() {
		return
	}
	q.items = append(q.items, Command{Target: target, Action: a})
}

// Len reports the number of queued commands.
func (q *CommandQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all queued commands and clears the queue.
func (q *CommandQueue) Drain() []Command {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// DrainTo hands every queued command to sink in order.
func (q *CommandQueue) DrainTo(sink Sink) {
	for _, cmd := range q.Drain() {
		if sink != nil {
			sink.Run(cmd.Target, cmd.Action)
		}
	}
}
