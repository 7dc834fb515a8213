package builder

// Setter sets one field of a builder. Without an action the value replaces the
// field. With actions, each one in turn merges the value into the field's
// current value, which must exist.
type Setter[T any] func(value any, action ...Action) *Builder[T]

// TypedSetter is a Setter restricted to values of type V.
type TypedSetter[T, V any] func(value V, action ...Action) *Builder[T]

// Typed narrows a setter to values of type V.
//
//	port := builder.Typed[int](b.Field("port"))
//	port(8080)
func Typed[V, T any](s Setter[T]) TypedSetter[T, V] {
	return func(value V, action ...Action) *Builder[T] {
		return s(value, action...)
	}
}
