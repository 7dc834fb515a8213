// Package ctor describes constructor functions handed to a builder: which
// parameter names they accept, which are required, and how to call them with
// named arguments.
//
// Two shapes are recognized:
//   - positional: func(a A, b B, ...) with one caller-supplied name per
//     non-variadic parameter; every named parameter is required
//   - keyword: func(p Params) where Params is a struct (or pointer to one);
//     its exported fields are the parameters, optional unless tagged
//     `build:"name,required"`
//
// Either shape returns the target, a pointer to it or a value assignable to it,
// optionally followed by an error.
package ctor
