package builder

import (
	"log/slog"

	"struct-builder/primitive"
)

type options struct {
	ctorFn      any
	ctorNames   []string
	conversions primitive.CategoryEnum
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		conversions: primitive.CategoryDefault,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// Option configures a type definition, see Define.
type Option func(*options)

// WithConstructor sets the function Build calls to create the value.
//
// With params, fn takes one positional parameter per name (a trailing variadic
// parameter excluded) and every one of them is required. Without params, fn
// takes nothing or a single struct (or pointer to struct) whose exported
// fields are the parameters; those are optional unless tagged
// `build:"name,required"`.
//
// fn returns T, *T or a value assignable to T, optionally followed by an error
// that Build returns as is.
func WithConstructor(fn any, params ...string) Option {
	return func(o *options) {
		o.ctorFn = fn
		o.ctorNames = params
	}
}

// WithConversions selects the value conversions applied when a field value does
// not have the type of its destination. Defaults to primitive.CategoryDefault.
func WithConversions(categories primitive.CategoryEnum) Option {
	return func(o *options) {
		o.conversions = categories
	}
}

// WithLogger sets the logger builds report to at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
