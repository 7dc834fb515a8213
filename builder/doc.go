// Package builder assembles values of any struct-like type through chained,
// name-addressed setter calls followed by a single construction step.
//
// A Builder records pending fields under string names. Build splits them in
// two: names accepted by the type's constructor become constructor arguments,
// every other name is assigned to the constructed value afterwards, overwriting
// whatever the constructor set.
//
//	p, err := builder.New[Point]().
//		Set("x", 1).
//		Set("tags", []string{}).
//		Set("tags", "hot", builder.Method("append")).
//		Build()
//
// # Types and constructors
//
// Without a constructor a struct (or pointer to struct, or map[string]V) starts
// from its zero value and every field is an attribute. Define registers a
// constructor and other options for a type; types may also describe themselves
// by implementing Buildable, in which case they are defined on first use.
//
// # Field names
//
// Attribute names resolve against struct fields by `build` tag, `json` tag, Go
// name, case-insensitive Go name and finally a normalized form, so "created_at"
// reaches CreatedAt. Names matching no field go to an AttributeSetter
// implementation or an Attributes field; otherwise Build fails with
// ErrUnknownField and suggestions.
//
// # Actions
//
// A setter without an action replaces the pending value. With an action the
// field must already hold a value, and the action merges the new value into it:
// see Method, Op, Mutate and Append.
//
// # Concurrency
//
// A Builder is not safe for concurrent use. Definitions (Define, TypeOf,
// RegisterAction) are.
package builder
