// Package sem defines resolved type descriptors: the fully resolved
// form a front end attaches to a type reference once resolution has
// run. The descriptors know how to print themselves compactly, and
// that rendering is pure — it is reused both by the tree renderer and
// by diagnostic messages, so it must never depend on emitter state.
package sem

import (
	"fmt"
	"strings"
)

// Type is a resolved type descriptor.
type Type interface {
	// Name returns the head identifier of the type.
	Name() string
	fmt.Stringer

	semType()
}

// TypeString returns the compact rendering of t. It is the single
// entry point callers outside this package should use; a nil type
// renders as a visible sentinel rather than failing.
func TypeString(t Type) string {
	if t == nil {
		return "<null type>"
	}
	return t.String()
}

// ErrorType stands in for a type that failed to resolve.
type ErrorType struct {
	Reason string
}

var _ Type = (*ErrorType)(nil)

func (t *ErrorType) Name() string {
	return "<error>"
}

func (t *ErrorType) String() string {
	return "error: " + t.Reason
}

func (t *ErrorType) semType() {}

// ProjectionKind classifies a generic type argument.
type ProjectionKind int

const (
	Invariant ProjectionKind = iota
	In
	Out
	Star
)

// Projection is one generic type argument. Type is nil for Star.
type Projection struct {
	Kind ProjectionKind
	Type Type
}

func Invar(t Type) Projection {
	return Projection{Kind: Invariant, Type: t}
}

func InProj(t Type) Projection {
	return Projection{Kind: In, Type: t}
}

func OutProj(t Type) Projection {
	return Projection{Kind: Out, Type: t}
}

func StarProj() Projection {
	return Projection{Kind: Star}
}

func (p Projection) String() string {
	switch p.Kind {
	case Star:
		return "*"
	case In:
		return "in " + TypeString(p.Type)
	case Out:
		return "out " + TypeString(p.Type)
	default:
		return TypeString(p.Type)
	}
}

// ClassType is a resolved class-like type: a stable qualified
// identifier plus an ordered, possibly empty argument list. When the
// type was written through an alias, Abbreviation holds the expansion.
type ClassType struct {
	ID           string // dot-qualified, e.g. "kotlin.Int"
	Args         []Projection
	Abbreviation Type
}

var _ Type = (*ClassType)(nil)

func (t *ClassType) Name() string {
	return t.ID
}

func (t *ClassType) String() string {
	var sb strings.Builder
	sb.WriteString(t.ID)
	if len(t.Args) > 0 {
		sb.WriteString("<")
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteString(">")
	}
	if t.Abbreviation != nil {
		sb.WriteString(" = ")
		sb.WriteString(t.Abbreviation.String())
	}
	return sb.String()
}

func (t *ClassType) semType() {}

// TypeParameterSymbol is the symbol a type-parameter reference
// resolves to.
type TypeParameterSymbol struct {
	Name string
}

// ParameterType is a reference to a type parameter in scope.
type ParameterType struct {
	Symbol *TypeParameterSymbol
}

var _ Type = (*ParameterType)(nil)

func (t *ParameterType) Name() string {
	if t.Symbol == nil {
		return "<unbound>"
	}
	return t.Symbol.Name
}

func (t *ParameterType) String() string {
	return t.Name()
}

func (t *ParameterType) semType() {}

// FunctionType is a resolved function type.
type FunctionType struct {
	Receiver Type // optional
	Params   []Type
	Return   Type
}

var _ Type = (*FunctionType)(nil)

func (t *FunctionType) Name() string {
	return "Function"
}

func (t *FunctionType) String() string {
	var sb strings.Builder
	if t.Receiver != nil {
		sb.WriteString(t.Receiver.String())
		sb.WriteString(".")
	}
	sb.WriteString("(")
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(TypeString(p))
	}
	sb.WriteString(") -> ")
	sb.WriteString(TypeString(t.Return))
	return sb.String()
}

func (t *FunctionType) semType() {}
