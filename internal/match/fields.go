package match

import (
	"reflect"
	"slices"
	"strings"
)

// TagName is the struct tag consulted first when resolving field names.
const TagName = "build"

// Field is a settable struct field as seen by a builder.
type Field struct {
	Key   string // name the builder knows the field by: build tag, json tag or Go name
	Go    string // Go field name
	Index []int  // index path, see reflect.Value.FieldByIndex
	Type  reflect.Type
	Opts  []string // build tag options after the name
}

// Index resolves builder field names to struct fields. Resolution order:
// build tag, json tag, exact Go name, case-insensitive Go name, normalized name.
type Index struct {
	fields []Field
	sink   []int

	byTag  map[string]int
	byJSON map[string]int
	byName map[string]int
	byFold map[string]int
	byNorm map[string]int
}

// IndexStruct indexes the exported fields of struct type t, including promoted
// ones. A field of type sink (when not nil) is not indexed; it is remembered as
// the destination for names that resolve to no field.
func IndexStruct(t reflect.Type, sink reflect.Type) *Index {
	x := &Index{
		byTag:  map[string]int{},
		byJSON: map[string]int{},
		byName: map[string]int{},
		byFold: map[string]int{},
		byNorm: map[string]int{},
	}

	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() {
			continue
		}

		if sink != nil && sf.Type == sink {
			if x.sink == nil {
				x.sink = sf.Index
			}
			continue
		}

		name, opts, skip := ParseTag(sf, TagName)
		if skip {
			continue
		}

		jsonName, _, jsonSkip := ParseTag(sf, "json")

		f := Field{Key: sf.Name, Go: sf.Name, Index: sf.Index, Type: sf.Type, Opts: opts}
		switch {
		case name != "":
			f.Key = name
		case jsonName != "" && !jsonSkip:
			f.Key = jsonName
		}

		i := len(x.fields)
		x.fields = append(x.fields, f)

		putFirst(x.byTag, name, i)
		if !jsonSkip {
			putFirst(x.byJSON, jsonName, i)
		}
		putFirst(x.byName, sf.Name, i)
		putFirst(x.byFold, strings.ToLower(sf.Name), i)
		putFirst(x.byNorm, NormalizeIdent(sf.Name), i)
	}

	return x
}

func putFirst(m map[string]int, key string, i int) {
	if key == "" {
		return
	}

	if _, ok := m[key]; !ok {
		m[key] = i
	}
}

// Lookup resolves a builder field name.
func (x *Index) Lookup(name string) (Field, bool) {
	for _, probe := range []struct {
		m   map[string]int
		key string
	}{
		{x.byTag, name},
		{x.byJSON, name},
		{x.byName, name},
		{x.byFold, strings.ToLower(name)},
		{x.byNorm, NormalizeIdent(name)},
	} {
		if i, ok := probe.m[probe.key]; ok {
			return x.fields[i], true
		}
	}

	return Field{}, false
}

// Sink returns the index path of the catch-all field, if the struct has one.
func (x *Index) Sink() ([]int, bool) {
	return x.sink, x.sink != nil
}

// Keys returns the builder names of all indexed fields in declaration order.
func (x *Index) Keys() []string {
	keys := make([]string, len(x.fields))
	for i, f := range x.fields {
		keys[i] = f.Key
	}

	return keys
}

// Fields returns the indexed fields in declaration order.
func (x *Index) Fields() []Field {
	return slices.Clone(x.fields)
}

// ParseTag reads the struct tag key of sf. It returns the name part, the
// remaining comma separated options and whether the tag is "-".
func ParseTag(sf reflect.StructField, key string) (name string, opts []string, skip bool) {
	tag, ok := sf.Tag.Lookup(key)
	if !ok {
		return "", nil, false
	}

	if tag == "-" {
		return "", nil, true
	}

	name, rest, found := strings.Cut(tag, ",")
	if found {
		opts = strings.Split(rest, ",")
	}

	return name, opts, false
}
