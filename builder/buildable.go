package builder

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"struct-builder/internal/ctor"
	"struct-builder/internal/fieldset"
	"struct-builder/primitive"
)

// Buildable is implemented by types that describe their own definition. The
// first TypeOf (or New) for such a type defines it from the returned options.
// BuilderOptions may be called on the zero value, or on a nil pointer for
// pointer receivers.
type Buildable interface {
	BuilderOptions() []Option
}

var registry = struct {
	sync.RWMutex
	types map[reflect.Type]any
}{
	types: map[reflect.Type]any{},
}

// Type describes how values of T are built.
type Type[T any] struct {
	rtype       reflect.Type
	ctor        *ctor.Constructor
	conversions primitive.CategoryEnum
	log         *slog.Logger

	// set when a Buildable definition failed, returned by every Build
	err error
}

func newType[T any](o options) *Type[T] {
	return &Type[T]{
		rtype:       reflect.TypeFor[T](),
		conversions: o.conversions,
		log:         o.logger,
	}
}

// Define registers how values of T are built, replacing any earlier definition.
func Define[T any](opts ...Option) (*Type[T], error) {
	t, err := define[T](opts)
	if err != nil {
		return nil, err
	}

	registry.Lock()
	registry.types[t.rtype] = t
	registry.Unlock()

	return t, nil
}

func define[T any](opts []Option) (*Type[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := newType[T](o)

	if o.ctorFn != nil {
		c, err := ctor.Parse(o.ctorFn, t.rtype, o.ctorNames...)
		if err != nil {
			return nil, fmt.Errorf("%w for %s: %w", ErrBadConstructor, t.rtype, err)
		}
		t.ctor = c
	}

	return t, nil
}

// MustDefine is like Define but panics on error.
func MustDefine[T any](opts ...Option) *Type[T] {
	t, err := Define[T](opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// TypeOf returns the definition of T. Types that were never defined get one
// from their Buildable options, or a default one that builds from the zero
// value.
func TypeOf[T any]() *Type[T] {
	rt := reflect.TypeFor[T]()

	registry.RLock()
	x, ok := registry.types[rt]
	registry.RUnlock()

	if ok {
		return x.(*Type[T])
	}

	if b, ok := asBuildable[T](); ok {
		t, err := define[T](b.BuilderOptions())
		if err != nil {
			t = newType[T](defaultOptions())
			t.err = err

			return t
		}

		registry.Lock()
		defer registry.Unlock()

		if x, ok := registry.types[rt]; ok {
			return x.(*Type[T])
		}
		registry.types[rt] = t

		return t
	}

	return newType[T](defaultOptions())
}

func asBuildable[T any]() (Buildable, bool) {
	var zero T
	if b, ok := any(zero).(Buildable); ok {
		return b, true
	}

	b, ok := any(new(T)).(Buildable)

	return b, ok
}

// Builder returns a builder for T pre-populated with initial, in order.
func (t *Type[T]) Builder(initial ...Field) *Builder[T] {
	b := &Builder[T]{typ: t, fields: fieldset.New()}
	for _, f := range initial {
		b.fields.Put(f.Name, f.Value)
	}

	return b
}

// Params returns the names of the constructor parameters that builder fields
// are passed to.
func (t *Type[T]) Params() []string {
	if t.ctor == nil {
		return nil
	}

	params := t.ctor.Params()
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}

	return names
}

func (t *Type[T]) String() string {
	return t.rtype.String()
}

func (t *Type[T]) isParam(name string) bool {
	if t.ctor == nil {
		return false
	}

	_, ok := t.ctor.Resolve(name)

	return ok
}

func (t *Type[T]) build(fields *fieldset.Set) (T, error) {
	var zero T
	if t.err != nil {
		return zero, t.err
	}

	args, attrs := fields.Partition(t.isParam)

	inst, err := t.construct(args)
	if err != nil {
		return zero, err
	}

	if err := t.assignAll(inst, attrs); err != nil {
		return zero, err
	}

	ctx := context.Background()
	if t.log.Enabled(ctx, slog.LevelDebug) {
		logAttrs := []slog.Attr{
			slog.String("type", t.String()),
			slog.Any("constructor_args", args.Names()),
			slog.Any("attributes", attrs.Names()),
		}

		if t.ctor != nil {
			if p, ok := t.ctor.Variadic(); ok {
				logAttrs = append(logAttrs, slog.String("unfilled_variadic", p.Type.String()))
			}
		}

		t.log.LogAttrs(ctx, slog.LevelDebug, "built value", logAttrs...)
	}

	return *inst.Addr().Interface().(*T), nil
}

// construct returns an addressable T made by the constructor, or the default
// value for T's kind.
func (t *Type[T]) construct(args *fieldset.Set) (reflect.Value, error) {
	inst := reflect.New(t.rtype).Elem()

	if t.ctor != nil {
		in, err := t.arguments(args)
		if err != nil {
			return reflect.Value{}, err
		}

		v, err := t.ctor.Call(in)
		if err != nil {
			return reflect.Value{}, err
		}

		inst.Set(v)

		return inst, nil
	}

	switch {
	case t.rtype.Kind() == reflect.Struct:
	case t.rtype.Kind() == reflect.Pointer && t.rtype.Elem().Kind() == reflect.Struct:
		inst.Set(reflect.New(t.rtype.Elem()))
	case t.rtype.Kind() == reflect.Map && t.rtype.Key().Kind() == reflect.String:
		inst.Set(reflect.MakeMap(t.rtype))
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s has no constructor", ErrNoTarget, t.rtype)
	}

	return inst, nil
}

func (t *Type[T]) arguments(args *fieldset.Set) (map[string]reflect.Value, error) {
	in := make(map[string]reflect.Value, args.Len())
	from := make(map[string]string, args.Len()) // parameter -> pending name

	var err error
	args.Each(func(name string, value any) {
		if err != nil {
			return
		}

		p, _ := t.ctor.Resolve(name)

		if prev, dup := from[p.Name]; dup {
			err = &FieldError{Field: name, Err: fmt.Errorf("%w: %q also sets parameter %q", ErrDuplicateField, prev, p.Name)}
			return
		}
		from[p.Name] = name

		v, convErr := convertValue(value, p.Type, t.conversions)
		if convErr != nil {
			err = &FieldError{Field: name, Err: convErr}
			return
		}

		in[p.Name] = v
	})

	return in, err
}
