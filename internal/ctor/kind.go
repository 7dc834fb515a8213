package ctor

//go:generate go tool stringer -type=ParamKind -trimprefix=Param -output=kind_string.go

type ParamKind int

const (
	_ ParamKind = iota

	ParamPositional // named by the caller, always required
	ParamKeyword    // field of a parameter struct
	ParamVariadic   // trailing ...T, never filled from builder fields
)
