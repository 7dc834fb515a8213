package builder

import (
	"errors"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"struct-builder/internal/fieldset"
	"struct-builder/internal/match"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Builder collects field values for a T and builds it. The zero value is a
// builder for the definition returned by TypeOf[T]. A Builder must not be used
// from several goroutines at once.
type Builder[T any] struct {
	typ    *Type[T]
	fields *fieldset.Set
	errs   []error
}

// New returns a builder for T pre-populated with initial, in order.
func New[T any](initial ...Field) *Builder[T] {
	return TypeOf[T]().Builder(initial...)
}

func (b *Builder[T]) init() {
	if b.typ == nil {
		b.typ = TypeOf[T]()
	}

	if b.fields == nil {
		b.fields = fieldset.New()
	}
}

// Type returns the definition the builder builds with.
func (b *Builder[T]) Type() *Type[T] {
	b.init()
	return b.typ
}

// Field returns the setter of the named field.
func (b *Builder[T]) Field(name string) Setter[T] {
	return func(value any, action ...Action) *Builder[T] {
		return b.Set(name, value, action...)
	}
}

// Set sets a field, see Setter. Failures are kept until Err or Build.
func (b *Builder[T]) Set(name string, value any, action ...Action) *Builder[T] {
	b.init()

	merged := false
	for _, a := range action {
		if a == nil {
			continue
		}

		current, ok := b.fields.Get(name)
		if !ok {
			b.errs = append(b.errs, &FieldError{
				Field:       name,
				Suggestions: match.Suggest(name, b.fields.Names(), maxSuggestions),
				Err:         ErrNoSuchField,
			})

			return b
		}

		next, err := a.Apply(current, value)
		if err != nil {
			b.errs = append(b.errs, &FieldError{Field: name, Err: err})
			return b
		}

		b.fields.Put(name, next)
		merged = true
	}

	if !merged {
		b.fields.Put(name, value)
	}

	return b
}

// Get returns the pending value of a field.
func (b *Builder[T]) Get(name string) (any, bool) {
	b.init()
	return b.fields.Get(name)
}

// Has reports whether a field has a pending value.
func (b *Builder[T]) Has(name string) bool {
	b.init()
	return b.fields.Has(name)
}

// Names returns the fields in the order they were first set.
func (b *Builder[T]) Names() []string {
	b.init()
	return b.fields.Names()
}

// Len returns the number of pending fields.
func (b *Builder[T]) Len() int {
	b.init()
	return b.fields.Len()
}

// Err returns the failures of the setter calls so far.
func (b *Builder[T]) Err() error {
	return errors.Join(b.errs...)
}

// Clone returns a builder with a copy of the pending fields and errors. The
// values themselves are shared.
func (b *Builder[T]) Clone() *Builder[T] {
	b.init()

	return &Builder[T]{
		typ:    b.typ,
		fields: b.fields.Clone(),
		errs:   append([]error(nil), b.errs...),
	}
}

// Dump returns a human-readable listing of the pending fields.
func (b *Builder[T]) Dump() string {
	b.init()

	var sb strings.Builder
	b.fields.Each(func(name string, value any) {
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(dumpConfig.Sdump(value))
	})

	return sb.String()
}

// Build constructs a T. Fields named after constructor parameters are passed to
// the constructor, the others are then assigned to the new value in the order
// they were set. Build leaves the pending fields untouched, so it can be called
// again, also after further setter calls.
func (b *Builder[T]) Build() (T, error) {
	b.init()

	if err := b.Err(); err != nil {
		var zero T
		return zero, err
	}

	return b.typ.build(b.fields)
}

// MustBuild is like Build but panics on error.
func (b *Builder[T]) MustBuild() T {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}

	return v
}
