package builder

import (
	"fmt"
	"reflect"

	"struct-builder/primitive"
)

var (
	errorType  = reflect.TypeFor[error]()
	stringType = reflect.TypeFor[string]()
)

func appendAction(current, value any) (any, error) {
	cur := reflect.ValueOf(current)

	switch cur.Kind() {
	case reflect.String:
		s, err := convertValue(value, stringType, primitive.CategoryDefault)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(cur.String() + s.String()).Convert(cur.Type()).Interface(), nil
	case reflect.Slice:
		elem, err := convertValue(value, cur.Type().Elem(), primitive.CategoryDefault)
		if err != nil {
			return nil, err
		}
		return reflect.Append(cur, elem).Interface(), nil
	}

	return nil, unsupported("append", current)
}

func extendAction(current, value any) (any, error) {
	cur := reflect.ValueOf(current)

	switch cur.Kind() {
	case reflect.String:
		return appendAction(current, value)
	case reflect.Slice:
		more, err := convertValue(value, cur.Type(), primitive.CategoryDefault)
		if err != nil {
			return nil, err
		}
		return reflect.AppendSlice(cur, more).Interface(), nil
	}

	return nil, unsupported("extend", current)
}

func prependAction(current, value any) (any, error) {
	cur := reflect.ValueOf(current)

	switch cur.Kind() {
	case reflect.String:
		s, err := convertValue(value, stringType, primitive.CategoryDefault)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(s.String() + cur.String()).Convert(cur.Type()).Interface(), nil
	case reflect.Slice:
		elem, err := convertValue(value, cur.Type().Elem(), primitive.CategoryDefault)
		if err != nil {
			return nil, err
		}
		out := reflect.MakeSlice(cur.Type(), 0, cur.Len()+1)
		out = reflect.Append(out, elem)
		return reflect.AppendSlice(out, cur).Interface(), nil
	}

	return nil, unsupported("prepend", current)
}

func addAction(current, value any) (any, error) {
	cur := reflect.ValueOf(current)

	if cur.Kind() == reflect.Map {
		return addToSet(cur, value)
	}

	if !cur.IsValid() || !(cur.CanInt() || cur.CanUint() || cur.CanFloat()) {
		return nil, unsupported("add", current)
	}

	v, err := convertValue(value, cur.Type(), primitive.CategoryDefault)
	if err != nil {
		return nil, err
	}

	out := reflect.New(cur.Type()).Elem()
	switch {
	case cur.CanInt():
		out.SetInt(cur.Int() + v.Int())
	case cur.CanUint():
		out.SetUint(cur.Uint() + v.Uint())
	default:
		out.SetFloat(cur.Float() + v.Float())
	}

	return out.Interface(), nil
}

// addToSet inserts into a map used as a set. The map is changed in place.
func addToSet(cur reflect.Value, value any) (any, error) {
	elemType := cur.Type().Elem()

	var member reflect.Value
	switch {
	case elemType.Kind() == reflect.Bool:
		member = reflect.ValueOf(true).Convert(elemType)
	case elemType.Kind() == reflect.Struct && elemType.NumField() == 0:
		member = reflect.Zero(elemType)
	default:
		return nil, unsupported("add", cur.Interface())
	}

	key, err := convertValue(value, cur.Type().Key(), primitive.CategoryDefault)
	if err != nil {
		return nil, err
	}

	if cur.IsNil() {
		cur = reflect.MakeMap(cur.Type())
	}

	cur.SetMapIndex(key, member)

	return cur.Interface(), nil
}

func mergeAction(current, value any) (any, error) {
	cur := reflect.ValueOf(current)
	if cur.Kind() != reflect.Map {
		return nil, unsupported("merge", current)
	}

	more, err := convertValue(value, cur.Type(), primitive.CategoryDefault)
	if err != nil {
		return nil, err
	}

	out := reflect.MakeMapWithSize(cur.Type(), cur.Len()+more.Len())
	for _, m := range []reflect.Value{cur, more} {
		iter := m.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
	}

	return out.Interface(), nil
}

func removeAction(current, value any) (any, error) {
	cur := reflect.ValueOf(current)

	switch cur.Kind() {
	case reflect.Slice:
		elem, err := convertValue(value, cur.Type().Elem(), primitive.CategoryDefault)
		if err != nil {
			return nil, err
		}

		for i := range cur.Len() {
			if reflect.DeepEqual(cur.Index(i).Interface(), elem.Interface()) {
				out := reflect.MakeSlice(cur.Type(), 0, cur.Len()-1)
				out = reflect.AppendSlice(out, cur.Slice(0, i))
				return reflect.AppendSlice(out, cur.Slice(i+1, cur.Len())).Interface(), nil
			}
		}

		return nil, fmt.Errorf("remove: %v is not in the slice", value)
	case reflect.Map:
		key, err := convertValue(value, cur.Type().Key(), primitive.CategoryDefault)
		if err != nil {
			return nil, err
		}

		if !cur.MapIndex(key).IsValid() {
			return nil, fmt.Errorf("remove: %v is not in the map", value)
		}

		out := reflect.MakeMapWithSize(cur.Type(), cur.Len())
		iter := cur.MapRange()
		for iter.Next() {
			if !iter.Key().Equal(key) {
				out.SetMapIndex(iter.Key(), iter.Value())
			}
		}

		return out.Interface(), nil
	}

	return nil, unsupported("remove", current)
}

func unsupported(action string, current any) error {
	return fmt.Errorf("%w: %s on %T", ErrIncompatibleValue, action, current)
}
