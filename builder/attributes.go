package builder

//go:generate mockgen -destination "mock_attributes_test.go" -package builder_test -write_package_comment=false struct-builder/builder AttributeSetter

// AttributeSetter receives fields that match no struct field of a built value.
// It is checked on the value and on its address.
type AttributeSetter interface {
	SetAttribute(name string, value any) error
}

// Attributes, as the type of a struct field, collects the fields that match
// no other struct field. The map is allocated on first use.
type Attributes map[string]any

// Get returns the attribute stored under name.
func (a Attributes) Get(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}
