package component

// Transform is an entity pose relative to its Parent, or to the scene when it
// has none. Scene space is centred with y up.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
