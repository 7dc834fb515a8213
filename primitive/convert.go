package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"struct-builder/utils"
)

var (
	ErrNotConvertible = errors.New("value is not convertible")
	ErrLossy          = errors.New("value does not fit into the target type")
	ErrInvalidEnum    = errors.New("value is not a valid enum member")
)

// Convert converts v into a value of type to, using only the conversions enabled
// in allowed. Assignable values are returned as is. Pointers are dereferenced or
// taken as needed, and slices, arrays and maps are converted element by element.
func Convert(v reflect.Value, to reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil interface to %s", ErrNotConvertible, to)
		}
		v = v.Elem()
	}

	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: invalid value to %s", ErrNotConvertible, to)
	}

	if v.Type().AssignableTo(to) {
		return v, nil
	}

	switch {
	case v.Kind() == reflect.Pointer && !v.IsNil():
		return Convert(v.Elem(), to, allowed)
	case to.Kind() == reflect.Pointer:
		elem, err := Convert(v, to.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(to.Elem())
		ptr.Elem().Set(elem)

		return ptr, nil
	}

	switch to.Kind() {
	case reflect.Slice:
		if isSequence(v) {
			return convertSlice(v, to, allowed)
		}
	case reflect.Array:
		if isSequence(v) {
			return convertArray(v, to, allowed)
		}
	case reflect.Map:
		if v.Kind() == reflect.Map {
			return convertMap(v, to, allowed)
		}
	}

	category := Categorize(v.Type(), to)
	if category == CategoryNone || !allowed.Has(category) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotConvertible, v.Type(), to)
	}

	out, err := convertScalar(v, to, category)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%s to %s: %w", v.Type(), to, err)
	}

	return out, nil
}

// ConvertTo is Convert for plain values.
func ConvertTo[T any](v any, allowed CategoryEnum) (T, error) {
	var zero T

	out, err := Convert(reflect.ValueOf(v), reflect.TypeFor[T](), allowed)
	if err != nil {
		return zero, err
	}

	return out.Interface().(T), nil
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func convertSlice(v reflect.Value, to reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.Zero(to), nil
	}

	out := reflect.MakeSlice(to, v.Len(), v.Len())
	for i := range v.Len() {
		elem, err := Convert(v.Index(i), to.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(elem)
	}

	return out, nil
}

func convertArray(v reflect.Value, to reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	n := v.Len()
	switch {
	case n <= to.Len() && allowed.Has(CategorySafeArray):
	case n > to.Len() && allowed.Has(CategoryUnsafeArray):
		n = to.Len()
	default:
		return reflect.Value{}, fmt.Errorf("%w: %d elements to %s", ErrNotConvertible, v.Len(), to)
	}

	out := reflect.New(to).Elem()
	for i := range n {
		elem, err := Convert(v.Index(i), to.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		out.Index(i).Set(elem)
	}

	return out, nil
}

func convertMap(v reflect.Value, to reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	if v.IsNil() {
		return reflect.Zero(to), nil
	}

	out := reflect.MakeMapWithSize(to, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := Convert(iter.Key(), to.Key(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("key %v: %w", iter.Key(), err)
		}

		elem, err := Convert(iter.Value(), to.Elem(), allowed)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("entry %v: %w", iter.Key(), err)
		}

		out.SetMapIndex(key, elem)
	}

	return out, nil
}

func convertScalar(v reflect.Value, to reflect.Type, category CategoryEnum) (reflect.Value, error) {
	switch category {
	case CategorySafeNumber, CategoryUnsafeNumber:
		if v.Kind() == reflect.Bool {
			return v.Convert(to), nil
		}
		return convertNumber(v, to)
	case CategoryTextNumber:
		if v.Kind() == reflect.String {
			return parseNumber(v.String(), to)
		}
		return reflect.ValueOf(formatNumber(v)).Convert(to), nil
	case CategoryNumericBool:
		if v.Kind() == reflect.Bool {
			n := int64(0)
			if v.Bool() {
				n = 1
			}
			return convertNumber(reflect.ValueOf(n), to)
		}
		return numericBool(v, to)
	case CategoryTextualBool:
		if v.Kind() == reflect.String {
			return textualBool(v.String(), to)
		}
		return reflect.ValueOf(strconv.FormatBool(v.Bool())).Convert(to), nil
	case CategoryDatetime:
		if v.Kind() == reflect.String {
			t, err := time.Parse(time.RFC3339Nano, v.String())
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(t), nil
		}
		return reflect.ValueOf(v.Interface().(time.Time).Format(time.RFC3339Nano)).Convert(to), nil
	case CategoryTimestamp:
		if to == timeType {
			n, err := convertNumber(v, reflect.TypeFor[int64]())
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(time.Unix(n.Int(), 0)), nil
		}
		return convertNumber(reflect.ValueOf(v.Interface().(time.Time).Unix()), to)
	case CategoryDuration:
		if v.Kind() == reflect.String {
			d, err := time.ParseDuration(v.String())
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(d), nil
		}
		return reflect.ValueOf(time.Duration(v.Int()).String()).Convert(to), nil
	case CategoryNanoseconds:
		if to == durationType {
			n, err := convertNumber(v, reflect.TypeFor[int64]())
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(time.Duration(n.Int())), nil
		}
		return convertNumber(reflect.ValueOf(v.Int()), to)
	case CategorySeconds:
		if to == durationType {
			return reflect.ValueOf(time.Duration(v.Float() * float64(time.Second))), nil
		}
		return reflect.ValueOf(time.Duration(v.Int()).Seconds()).Convert(to), nil
	case CategoryEnumString:
		return convertEnum(v, to)
	}

	return reflect.Value{}, ErrNotConvertible
}

// convertNumber converts between number kinds, failing when the value changes.
func convertNumber(v reflect.Value, to reflect.Type) (reflect.Value, error) {
	out := reflect.New(to).Elem()

	switch {
	case v.CanInt():
		n := v.Int()
		switch {
		case out.CanInt() && fitsInt(n, to):
			out.SetInt(n)
		case out.CanUint() && n >= 0 && fitsUint(uint64(n), to):
			out.SetUint(uint64(n))
		case out.CanFloat() && exactFloat(float64(n), to) && int64(float64(n)) == n:
			out.SetFloat(float64(n))
		default:
			return reflect.Value{}, fmt.Errorf("%w: %d", ErrLossy, n)
		}
	case v.CanUint():
		n := v.Uint()
		switch {
		case out.CanInt() && n <= math.MaxInt64 && fitsInt(int64(n), to):
			out.SetInt(int64(n))
		case out.CanUint() && fitsUint(n, to):
			out.SetUint(n)
		case out.CanFloat() && exactFloat(float64(n), to) && uint64(float64(n)) == n:
			out.SetFloat(float64(n))
		default:
			return reflect.Value{}, fmt.Errorf("%w: %d", ErrLossy, n)
		}
	case v.CanFloat():
		f := v.Float()
		whole := f == math.Trunc(f) && !math.IsInf(f, 0)
		switch {
		case out.CanFloat() && (!out.OverflowFloat(f) || math.IsInf(f, 0) || math.IsNaN(f)):
			// precision loss is accepted between float sizes, overflow is not
			out.SetFloat(f)
		case out.CanInt() && whole && f >= math.MinInt64 && f < math.MaxInt64 && fitsInt(int64(f), to):
			out.SetInt(int64(f))
		case out.CanUint() && whole && f >= 0 && f < math.MaxUint64 && fitsUint(uint64(f), to):
			out.SetUint(uint64(f))
		default:
			return reflect.Value{}, fmt.Errorf("%w: %v", ErrLossy, f)
		}
	default:
		return reflect.Value{}, ErrNotConvertible
	}

	return out, nil
}

func fitsInt(n int64, to reflect.Type) bool {
	lo, hi := utils.SignedBounds(to.Bits())
	return utils.IsInRange(lo, n, hi)
}

func fitsUint(n uint64, to reflect.Type) bool {
	return n <= utils.UnsignedBound(to.Bits())
}

// exactFloat reports whether f survives a conversion into the float type to.
func exactFloat(f float64, to reflect.Type) bool {
	if to.Bits() == 32 {
		return float64(float32(f)) == f
	}

	return true
}

func parseNumber(s string, to reflect.Type) (reflect.Value, error) {
	out := reflect.New(to).Elem()

	switch {
	case out.CanInt():
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, to.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(n)
	case out.CanUint():
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, to.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetUint(n)
	case out.CanFloat():
		f, err := strconv.ParseFloat(strings.TrimSpace(s), to.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetFloat(f)
	default:
		return reflect.Value{}, ErrNotConvertible
	}

	return out, nil
}

func formatNumber(v reflect.Value) string {
	switch {
	case v.CanInt():
		return strconv.FormatInt(v.Int(), 10)
	case v.CanUint():
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())
	}
}

func numericBool(v reflect.Value, to reflect.Type) (reflect.Value, error) {
	var n uint64
	if v.CanInt() {
		if v.Int() < 0 {
			return reflect.Value{}, fmt.Errorf("only numbers 0 and 1 are allowed for bool, got: %d", v.Int())
		}
		n = uint64(v.Int())
	} else {
		n = v.Uint()
	}

	if n > 1 {
		return reflect.Value{}, fmt.Errorf("only numbers 0 and 1 are allowed for bool, got: %d", n)
	}

	return reflect.ValueOf(n == 1).Convert(to), nil
}

func textualBool(s string, to reflect.Type) (reflect.Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	default:
		return reflect.Value{}, fmt.Errorf("only strings true/false, yes/no, on/off are allowed for bool, got: %s", s)
	case "true", "yes", "on":
		return reflect.ValueOf(true).Convert(to), nil
	case "false", "no", "off":
		return reflect.ValueOf(false).Convert(to), nil
	}
}

func convertEnum(v reflect.Value, to reflect.Type) (reflect.Value, error) {
	var text string

	switch {
	case v.Kind() == reflect.String:
		text = v.String()
	case v.Type().Implements(stringerType):
		text = v.Interface().(fmt.Stringer).String()
	default:
		return reflect.Value{}, ErrNotConvertible
	}

	if to.Kind() != reflect.String {
		out := reflect.New(to)

		err := out.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %q: %w", ErrInvalidEnum, text, err)
		}

		return out.Elem(), nil
	}

	out := reflect.ValueOf(text).Convert(to)
	if valid, ok := out.Interface().(interface{ IsValid() bool }); ok && !valid.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %q is not a valid %s", ErrInvalidEnum, text, to)
	}

	return out, nil
}
