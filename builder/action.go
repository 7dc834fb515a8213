package builder

import (
	"fmt"
	"reflect"
	"sync"
	"unicode"
	"unicode/utf8"

	"struct-builder/primitive"
)

// Action merges a new value into the current value of a field and returns the
// result, which becomes the field's pending value.
type Action interface {
	Apply(current, value any) (any, error)
}

// ActionFunc adapts a function to Action.
type ActionFunc func(current, value any) (any, error)

func (f ActionFunc) Apply(current, value any) (any, error) {
	return f(current, value)
}

// Op wraps a typed merge operation. The current and new values are converted to
// C and V when they do not already have those types.
func Op[C, V any](fn func(current C, value V) C) Action {
	return ActionFunc(func(current, value any) (any, error) {
		c, err := coerce[C](current)
		if err != nil {
			return nil, err
		}

		v, err := coerce[V](value)
		if err != nil {
			return nil, err
		}

		return fn(c, v), nil
	})
}

// Mutate wraps an in-place operation on a reference value such as a pointer or
// a map. The field keeps its current value.
func Mutate[C, V any](fn func(current C, value V)) Action {
	return ActionFunc(func(current, value any) (any, error) {
		c, err := coerce[C](current)
		if err != nil {
			return nil, err
		}

		v, err := coerce[V](value)
		if err != nil {
			return nil, err
		}

		fn(c, v)

		return current, nil
	})
}

// Append appends the value to a []E field.
func Append[E any]() Action {
	return Op(func(s []E, v E) []E { return append(s, v) })
}

func coerce[T any](x any) (T, error) {
	if t, ok := x.(T); ok {
		return t, nil
	}

	var zero T
	if x == nil {
		return zero, nil
	}

	t, err := primitive.ConvertTo[T](x, primitive.CategoryDefault)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrIncompatibleValue, err)
	}

	return t, nil
}

type methodAction string

// Method returns the action named name. It calls the method of that name (with
// its first letter upper-cased if needed) on the current value, or on a copy's
// address for pointer receivers, passing the new value as the only argument.
// A result of the current value's type becomes the new value; otherwise the
// call counts as an in-place change and other results are ignored, except for
// a trailing non-nil error.
//
// When the current value has no such method, the action registered under name
// is used; see RegisterAction for the built-in ones.
func Method(name string) Action {
	return methodAction(name)
}

func (m methodAction) Apply(current, value any) (any, error) {
	name := string(m)

	if current != nil {
		if out, ok, err := callMethod(reflect.ValueOf(current), name, value); ok {
			return out, err
		}
	}

	if a, ok := LookupAction(name); ok {
		return a.Apply(current, value)
	}

	return nil, fmt.Errorf("%w: %q on %T", ErrUnknownAction, name, current)
}

func callMethod(cur reflect.Value, name string, value any) (any, bool, error) {
	recv := cur
	method := findMethod(recv, name)

	if !method.IsValid() && cur.Kind() != reflect.Pointer {
		// pointer receivers mutate a copy which then becomes the new value
		recv = reflect.New(cur.Type())
		recv.Elem().Set(cur)
		method = findMethod(recv, name)
	}

	if !method.IsValid() {
		return nil, false, nil
	}

	mt := method.Type()
	if mt.NumIn() != 1 {
		return nil, true, fmt.Errorf("%w: %s.%s takes %d arguments", ErrUnknownAction, cur.Type(), name, mt.NumIn())
	}

	argType := mt.In(0)
	if mt.IsVariadic() {
		argType = argType.Elem()
	}

	arg, err := primitive.Convert(reflect.ValueOf(value), argType, primitive.CategoryDefault)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %w", ErrIncompatibleValue, err)
	}

	out := method.Call([]reflect.Value{arg})

	if n := len(out); n > 0 && mt.Out(n-1) == errorType && !out[n-1].IsNil() {
		return nil, true, out[n-1].Interface().(error)
	}

	if len(out) > 0 && out[0].Type() == cur.Type() {
		return out[0].Interface(), true, nil
	}

	if recv != cur {
		return recv.Elem().Interface(), true, nil
	}

	return cur.Interface(), true, nil
}

func findMethod(v reflect.Value, name string) reflect.Value {
	if m := v.MethodByName(name); m.IsValid() {
		return m
	}

	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return reflect.Value{}
	}

	return v.MethodByName(string(unicode.ToUpper(r)) + name[size:])
}

var actions = struct {
	sync.RWMutex
	named map[string]Action
}{
	named: map[string]Action{
		"append":  ActionFunc(appendAction),
		"extend":  ActionFunc(extendAction),
		"prepend": ActionFunc(prependAction),
		"add":     ActionFunc(addAction),
		"merge":   ActionFunc(mergeAction),
		"remove":  ActionFunc(removeAction),
	},
}

// RegisterAction adds or replaces the action reachable through Method(name)
// for values that have no method called name. Built-in actions:
//
//   - append: append to a slice, concatenate to a string
//   - extend: append all elements of a slice or array, concatenate strings
//   - prepend: insert at the front of a slice or string
//   - add: numeric sum, or insert into a map[K]struct{} or map[K]bool set
//   - merge: copy map entries into a copy of the current map
//   - remove: drop the first equal element of a slice, or a key of a map
func RegisterAction(name string, a Action) {
	actions.Lock()
	defer actions.Unlock()

	actions.named[name] = a
}

// LookupAction returns the action registered under name.
func LookupAction(name string) (Action, bool) {
	actions.RLock()
	defer actions.RUnlock()

	a, ok := actions.named[name]
	return a, ok
}
