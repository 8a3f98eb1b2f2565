package component

// RenderLayer orders drawing; lower indices draw first. Children without a
// layer inherit their parent's.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
