package component

// Name is the scene name used to resolve entities at startup.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
