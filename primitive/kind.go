package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named type over any integer number or string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// Bits returns the storage size of a number kind. For floats it is the mantissa
// width, i.e. the largest integer size representable without precision loss.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		return strconvIntSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 24
	case KindFloat64:
		return 53
	}
}

const strconvIntSize = 32 << (^uint(0) >> 63)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

var basicKinds = map[reflect.Kind]KindEnum{
	reflect.Int:     KindInt,
	reflect.Int8:    KindInt8,
	reflect.Int16:   KindInt16,
	reflect.Int32:   KindInt32,
	reflect.Int64:   KindInt64,
	reflect.Uint:    KindUint,
	reflect.Uint8:   KindUint8,
	reflect.Uint16:  KindUint16,
	reflect.Uint32:  KindUint32,
	reflect.Uint64:  KindUint64,
	reflect.Float32: KindFloat32,
	reflect.Float64: KindFloat64,
	reflect.Bool:    KindBool,
	reflect.String:  KindString,
}

// FromReflectType classifies a type. Unnamed basic types map to their own kind,
// time.Time and time.Duration to KindTime and KindDuration, and named types over
// integers or strings to KindPrimitiveEnum. Everything else is the zero kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	}

	kind, ok := basicKinds[rtype.Kind()]
	if !ok {
		return 0
	}

	if rtype.PkgPath() == "" {
		return kind
	}

	if kind.IsInteger() || kind == KindString {
		return KindPrimitiveEnum
	}

	// named floats and bools behave like their underlying kind
	return kind
}

// Underlying returns the kind of the type's underlying basic type, looking
// through named types. Time and duration keep their own kinds.
func Underlying(rtype reflect.Type) KindEnum {
	if k := FromReflectType(rtype); k != KindPrimitiveEnum {
		return k
	}

	return basicKinds[rtype.Kind()]
}
