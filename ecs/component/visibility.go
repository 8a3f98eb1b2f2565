package component

// Visibility hides an entity and its children when Hidden is set.
type Visibility struct {
	Hidden bool
}

var VisibilityComponent = NewComponent[Visibility]()
