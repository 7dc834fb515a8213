package primitive

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
)

type CategoryEnum int

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float widening without precision loss
	CategoryUnsafeNumber                          // int, uint, float narrowing: rejected when the value does not fit
	CategoryTextNumber                            // int, uint, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: yes, no, on, off, true, false representation of boolean values
	CategoryDatetime                              // string(RFC3339Nano) <-> time.Time: textual date and time representation
	CategoryTimestamp                             // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryDuration                              // string(2h45m) <-> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation
	CategorySeconds                               // float(seconds) <-> time.Duration: numerical (floating-point) duration representation
	CategoryEnumString                            // string <-> enum: named string types, Stringer and TextUnmarshaler types
	CategorySafeArray                             // slice -> array: slice fits into the array, the rest stays zero
	CategoryUnsafeArray                           // slice -> array: slice does not fit into the array and is cut

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected

	// CategoryDefault is what a builder allows unless configured otherwise.
	CategoryDefault = CategorySafeNumber | CategoryUnsafeNumber | CategoryDatetime |
		CategoryDuration | CategoryEnumString | CategorySafeArray
)

var categoryNames = []string{
	"SafeNumber", "UnsafeNumber", "TextNumber", "NumericBool", "TextualBool",
	"Datetime", "Timestamp", "Duration", "Nanoseconds", "Seconds",
	"EnumString", "SafeArray", "UnsafeArray",
}

// Has reports whether every category of other is enabled in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return other != CategoryNone && c&other == other
}

func (c CategoryEnum) String() string {
	if c == CategoryNone {
		return "None"
	}

	var parts []string
	for i, name := range categoryNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}

	if rest := c &^ CategoryAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("CategoryEnum(%#x)", int(rest)))
	}

	return strings.Join(parts, "|")
}

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()
)

// Categorize returns the category a scalar conversion from src to dst belongs to,
// or CategoryNone when no category covers the pair.
func Categorize(src, dst reflect.Type) CategoryEnum {
	from, to := FromReflectType(src), FromReflectType(dst)

	if to == 0 && src.Kind() == reflect.String && reflect.PointerTo(dst).Implements(textUnmarshalerType) {
		return CategoryEnumString
	}

	if from == 0 || to == 0 {
		return CategoryNone
	}

	// integer enums take part in number conversions through their underlying kind
	if from == KindPrimitiveEnum || to == KindPrimitiveEnum {
		if u, w := Underlying(src), Underlying(dst); u.IsNumber() && w.IsNumber() {
			return numberCategory(u, w)
		}
	}

	switch {
	case from == KindPrimitiveEnum || to == KindPrimitiveEnum:
		return enumCategory(src, dst, from, to)
	case from.IsNumber() && to.IsNumber():
		return numberCategory(from, to)
	case from == KindString && to.IsNumber(), from.IsNumber() && to == KindString:
		return CategoryTextNumber
	case from.IsInteger() && to == KindBool, from == KindBool && to.IsInteger():
		return CategoryNumericBool
	case from == KindString && to == KindBool, from == KindBool && to == KindString:
		return CategoryTextualBool
	case from == KindString && to == KindTime, from == KindTime && to == KindString:
		return CategoryDatetime
	case from.IsInteger() && to == KindTime, from == KindTime && to.IsSigned():
		return CategoryTimestamp
	case from == KindString && to == KindDuration, from == KindDuration && to == KindString:
		return CategoryDuration
	case from.IsInteger() && to == KindDuration, from == KindDuration && to.IsInteger():
		return CategoryNanoseconds
	case from.IsFloat() && to == KindDuration, from == KindDuration && to.IsFloat():
		return CategorySeconds
	case from == to:
		// named floats and bools
		return CategorySafeNumber
	}

	return CategoryNone
}

func enumCategory(src, dst reflect.Type, from, to KindEnum) CategoryEnum {
	fromText := src.Kind() == reflect.String || src.Implements(stringerType)
	toText := dst.Kind() == reflect.String || reflect.PointerTo(dst).Implements(textUnmarshalerType)

	switch {
	case from == KindPrimitiveEnum && to == KindPrimitiveEnum:
		if src.Kind() == reflect.String && dst.Kind() == reflect.String {
			return CategoryEnumString
		}
	case (from == KindString || from == KindPrimitiveEnum) && toText:
		return CategoryEnumString
	case fromText && to == KindString:
		return CategoryEnumString
	}

	return CategoryNone
}

// numberCategory tells widening conversions apart from narrowing ones. Plain int
// and uint count as 64 bits when read and 32 bits when written.
func numberCategory(from, to KindEnum) CategoryEnum {
	if from == to {
		return CategorySafeNumber
	}

	srcBits, dstBits := sourceBits(from), targetBits(to)

	switch {
	case from.IsFloat():
		if to.IsFloat() && dstBits >= srcBits {
			return CategorySafeNumber
		}
	case to.IsFloat():
		if dstBits >= srcBits {
			return CategorySafeNumber
		}
	case from.IsSigned():
		if to.IsSigned() && dstBits >= srcBits {
			return CategorySafeNumber
		}
	case from.IsUnsigned():
		if to.IsUnsigned() && dstBits >= srcBits || to.IsSigned() && dstBits > srcBits {
			return CategorySafeNumber
		}
	}

	return CategoryUnsafeNumber
}

func sourceBits(k KindEnum) int {
	if k == KindInt || k == KindUint {
		return 64
	}

	return k.Bits()
}

func targetBits(k KindEnum) int {
	if k == KindInt || k == KindUint {
		return 32
	}

	return k.Bits()
}
