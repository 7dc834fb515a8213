package builder

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"struct-builder/internal/fieldset"
	"struct-builder/internal/match"
	"struct-builder/primitive"
)

const maxSuggestions = 3

var (
	attributesType      = reflect.TypeFor[Attributes]()
	attributeSetterType = reflect.TypeFor[AttributeSetter]()

	// indexes caches *match.Index by struct type
	indexes sync.Map
)

func structIndex(t reflect.Type) *match.Index {
	if x, ok := indexes.Load(t); ok {
		return x.(*match.Index)
	}

	x, _ := indexes.LoadOrStore(t, match.IndexStruct(t, attributesType))

	return x.(*match.Index)
}

// convertValue turns a field value into a value of type to.
func convertValue(value any, to reflect.Type, categories primitive.CategoryEnum) (reflect.Value, error) {
	if value == nil {
		switch to.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
			return reflect.Zero(to), nil
		}

		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrIncompatibleValue, to)
	}

	v, err := primitive.Convert(reflect.ValueOf(value), to, categories)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrIncompatibleValue, err)
	}

	return v, nil
}

// assignAll sets every field of attrs on inst, in order. All failures are
// reported together.
func (t *Type[T]) assignAll(inst reflect.Value, attrs *fieldset.Set) error {
	var errs []error

	seen := make(map[string]string, attrs.Len()) // struct field path -> pending name

	attrs.Each(func(name string, value any) {
		if err := t.assign(inst, name, value, seen); err != nil {
			errs = append(errs, err)
		}
	})

	return errors.Join(errs...)
}

func (t *Type[T]) assign(inst reflect.Value, name string, value any, seen map[string]string) error {
	holder, ok := attributeHolder(inst)
	if !ok {
		return &FieldError{Field: name, Err: fmt.Errorf("%w: cannot set attributes on %s", ErrNoTarget, inst.Type())}
	}

	if holder.Kind() == reflect.Map {
		return t.assignMapEntry(holder, name, value)
	}

	x := structIndex(holder.Type())

	if f, ok := x.Lookup(name); ok {
		path := fmt.Sprint(f.Index)
		if prev, dup := seen[path]; dup {
			return &FieldError{Field: name, Err: fmt.Errorf("%w: %q also sets %s", ErrDuplicateField, prev, f.Go)}
		}
		seen[path] = name

		dst, err := fieldByIndexAlloc(holder, f.Index)
		if err != nil {
			return &FieldError{Field: name, Err: err}
		}

		v, err := convertValue(value, f.Type, t.conversions)
		if err != nil {
			return &FieldError{Field: name, Err: err}
		}

		dst.Set(v)

		return nil
	}

	if setter, ok := asAttributeSetter(holder); ok {
		if err := setter.SetAttribute(name, value); err != nil {
			return &FieldError{Field: name, Err: err}
		}

		return nil
	}

	if index, ok := x.Sink(); ok {
		sink, err := fieldByIndexAlloc(holder, index)
		if err != nil {
			return &FieldError{Field: name, Err: err}
		}

		if sink.IsNil() {
			sink.Set(reflect.MakeMap(attributesType))
		}

		if value == nil {
			sink.SetMapIndex(reflect.ValueOf(name), reflect.Zero(attributesType.Elem()))
		} else {
			sink.SetMapIndex(reflect.ValueOf(name), reflect.ValueOf(value))
		}

		return nil
	}

	return &FieldError{
		Field:       name,
		Suggestions: match.Suggest(name, x.Keys(), maxSuggestions),
		Err:         fmt.Errorf("%w on %s", ErrUnknownField, holder.Type()),
	}
}

func (t *Type[T]) assignMapEntry(m reflect.Value, name string, value any) error {
	key := reflect.ValueOf(name).Convert(m.Type().Key())

	v, err := convertValue(value, m.Type().Elem(), t.conversions)
	if err != nil {
		return &FieldError{Field: name, Err: err}
	}

	if m.IsNil() {
		return &FieldError{Field: name, Err: fmt.Errorf("%w: nil map", ErrNoTarget)}
	}

	m.SetMapIndex(key, v)

	return nil
}

// attributeHolder finds the settable struct, or the map, behind inst by
// following pointers and interfaces.
func attributeHolder(v reflect.Value) (reflect.Value, bool) {
	for {
		switch v.Kind() {
		case reflect.Struct:
			return v, v.CanAddr()
		case reflect.Map:
			return v, v.Type().Key().Kind() == reflect.String
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return v, false
			}
			v = v.Elem()
		default:
			return v, false
		}
	}
}

func asAttributeSetter(holder reflect.Value) (AttributeSetter, bool) {
	if holder.Type().Implements(attributeSetterType) {
		return holder.Interface().(AttributeSetter), true
	}

	if ptr := holder.Addr(); ptr.Type().Implements(attributeSetterType) {
		return ptr.Interface().(AttributeSetter), true
	}

	return nil, false
}

// fieldByIndexAlloc is reflect.Value.FieldByIndex that allocates nil embedded
// struct pointers on the way.
func fieldByIndexAlloc(v reflect.Value, index []int) (reflect.Value, error) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, fmt.Errorf("%w: nil embedded pointer to unexported %s", ErrNoTarget, v.Type().Elem())
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}

		v = v.Field(x)
	}

	if !v.CanSet() {
		return reflect.Value{}, fmt.Errorf("%w: field is not settable", ErrNoTarget)
	}

	return v, nil
}
