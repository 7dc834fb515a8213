package ctor

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"struct-builder/internal/match"
	"struct-builder/utils"
)

var (
	ErrNotAFunction    = errors.New("constructor is not a function")
	ErrBadSignature    = errors.New("constructor signature is not supported")
	ErrParamNames      = errors.New("parameter names do not match the constructor")
	ErrMissingArgument = errors.New("missing required argument")
	ErrNilResult       = errors.New("constructor returned nil")
)

var errorType = reflect.TypeFor[error]()

// Param is one constructor parameter fillable from builder fields.
type Param struct {
	Name     string
	Kind     ParamKind
	Type     reflect.Type
	Required bool

	index []int // argument position for positional params, field path for keyword ones
}

// Constructor is a parsed constructor function.
type Constructor struct {
	Name         string // function name, for messages
	PackageAlias string

	params   []Param
	byName   map[string]int
	keywords *match.Index // set for the keyword shape

	fn       reflect.Value
	argType  reflect.Type // parameter struct of the keyword shape
	argPtr   bool
	variadic *Param
	target   reflect.Type
	deref    bool
	hasErr   bool
}

// Parse inspects fn as a constructor of target. See the package documentation
// for the supported shapes.
func Parse(fn any, target reflect.Type, names ...string) (*Constructor, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, ErrNotAFunction
	}

	fnType := fnVal.Type()
	c := &Constructor{fn: fnVal, target: target, byName: map[string]int{}}

	_, base := path.Split(runtime.FuncForPC(fnVal.Pointer()).Name())
	c.PackageAlias, c.Name = utils.Unpack2(strings.SplitN(base, ".", 2))

	if err := c.parseResults(fnType); err != nil {
		return nil, err
	}

	fixed := fnType.NumIn()
	if fnType.IsVariadic() {
		fixed--
		c.variadic = &Param{
			Name: fmt.Sprintf("arg%d", fixed),
			Kind: ParamVariadic,
			Type: fnType.In(fixed),
		}
	}

	switch {
	case len(names) > 0:
		return c, c.parsePositional(fnType, fixed, names)
	case fixed == 0:
		return c, nil
	case fixed == 1 && isParamStruct(fnType.In(0)):
		return c, c.parseKeyword(fnType.In(0))
	}

	return nil, fmt.Errorf("%w: %s takes %d parameters but no names were given", ErrParamNames, fnType, fixed)
}

func (c *Constructor) parseResults(fnType reflect.Type) error {
	switch fnType.NumOut() {
	case 1:
	case 2:
		if fnType.Out(1) != errorType {
			return fmt.Errorf("%w: second result of %s must be error", ErrBadSignature, fnType)
		}
		c.hasErr = true
	default:
		return fmt.Errorf("%w: %s must return the value and optionally an error", ErrBadSignature, fnType)
	}

	out := fnType.Out(0)
	switch {
	case out.AssignableTo(c.target):
	case out.Kind() == reflect.Pointer && out.Elem().AssignableTo(c.target):
		c.deref = true
	default:
		return fmt.Errorf("%w: %s does not produce %s", ErrBadSignature, fnType, c.target)
	}

	return nil
}

func (c *Constructor) parsePositional(fnType reflect.Type, fixed int, names []string) error {
	if len(names) != fixed {
		return fmt.Errorf("%w: %s takes %d parameters, got %d names", ErrParamNames, fnType, fixed, len(names))
	}

	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: parameter %d has an empty name", ErrParamNames, i)
		}

		if _, dup := c.byName[name]; dup {
			return fmt.Errorf("%w: duplicate parameter name %q", ErrParamNames, name)
		}

		c.byName[name] = len(c.params)
		c.params = append(c.params, Param{
			Name:     name,
			Kind:     ParamPositional,
			Type:     fnType.In(i),
			Required: true,
			index:    []int{i},
		})
	}

	return nil
}

func (c *Constructor) parseKeyword(in reflect.Type) error {
	c.argType = in
	if in.Kind() == reflect.Pointer {
		c.argPtr = true
		c.argType = in.Elem()
	}

	c.keywords = match.IndexStruct(c.argType, nil)
	for _, f := range c.keywords.Fields() {
		c.byName[f.Key] = len(c.params)
		c.params = append(c.params, Param{
			Name:     f.Key,
			Kind:     ParamKeyword,
			Type:     f.Type,
			Required: slices.Contains(f.Opts, "required"),
			index:    f.Index,
		})
	}

	return nil
}

func isParamStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

// Params returns the parameters fillable by name, in declaration order.
func (c *Constructor) Params() []Param {
	return slices.Clone(c.params)
}

// Variadic returns the trailing variadic parameter, if any.
func (c *Constructor) Variadic() (Param, bool) {
	if c.variadic == nil {
		return Param{}, false
	}

	return *c.variadic, true
}

// Resolve maps a builder field name to a parameter. Positional parameters
// match exactly; keyword parameters resolve like struct fields (tag, name,
// case-insensitive, normalized).
func (c *Constructor) Resolve(name string) (Param, bool) {
	if i, ok := c.byName[name]; ok {
		return c.params[i], true
	}

	if c.keywords != nil {
		if f, ok := c.keywords.Lookup(name); ok {
			return c.params[c.byName[f.Key]], true
		}
	}

	return Param{}, false
}

// Call invokes the constructor. Arguments are keyed by Param.Name and must
// already have the parameter's type. Absent optional parameters get their zero
// value; absent required ones fail with ErrMissingArgument. An error returned
// by the constructor itself is passed through untouched.
func (c *Constructor) Call(args map[string]reflect.Value) (reflect.Value, error) {
	var missing []string
	for _, p := range c.params {
		if _, ok := args[p.Name]; !ok && p.Required {
			missing = append(missing, p.Name)
		}
	}

	if len(missing) > 0 {
		return reflect.Value{}, fmt.Errorf("%w: %s() needs %s", ErrMissingArgument, c.Name, strings.Join(missing, ", "))
	}

	var in []reflect.Value

	if c.argType != nil {
		arg := reflect.New(c.argType)
		for _, p := range c.params {
			if v, ok := args[p.Name]; ok {
				arg.Elem().FieldByIndex(p.index).Set(v)
			}
		}

		if c.argPtr {
			in = []reflect.Value{arg}
		} else {
			in = []reflect.Value{arg.Elem()}
		}
	} else {
		in = make([]reflect.Value, len(c.params))
		for _, p := range c.params {
			in[p.index[0]] = args[p.Name]
		}
	}

	out := c.fn.Call(in)

	if c.hasErr && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}

	result := out[0]
	if c.deref {
		if result.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s()", ErrNilResult, c.Name)
		}
		result = result.Elem()
	}

	return result, nil
}
