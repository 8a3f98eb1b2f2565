package component

// Parent attaches an entity's transform to another entity's. Entity holds the
// parent's ecs.Entity value.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()
