package builder

// Field is a named initial value for a builder.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered list of initial values.
type Fields []Field

