// Package fir defines the front-end intermediate representation tree
// that the renderer reads. The tree is produced elsewhere (parsing,
// desugaring, resolution are all external collaborators); nodes here
// are plain data, immutable for the duration of a render, and may be
// only partially resolved — unknown visibility or modality is a
// legitimate state, not an error.
package fir

// Node is implemented by every element of the tree.
type Node interface {
	// Children returns the node's structural children in source order.
	Children() []Node
}

// Declaration is a named program element. Declarations are also
// statements so that local declarations can appear inside blocks.
type Declaration interface {
	Statement
	isDeclaration()
}

// Statement is anything that can appear in a block's statement list.
type Statement interface {
	Node
	isStatement()
}

// Expression is a statement that produces a value.
type Expression interface {
	Statement
	isExpression()
}

// TypeRef is a type as written (or resolved) at a use site.
type TypeRef interface {
	Node
	isTypeRef()
}

// Visibility of a declaration. Unknown means resolution has not run
// (or did not reach this declaration) yet.
type Visibility int

const (
	VisibilityUnknown Visibility = iota
	VisibilityPublic
	VisibilityInternal
	VisibilityProtected
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityInternal:
		return "internal"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// Modality of a declaration. Unknown means not yet resolved.
type Modality int

const (
	ModalityUnknown Modality = iota
	ModalityFinal
	ModalityOpen
	ModalityAbstract
	ModalitySealed
)

func (m Modality) String() string {
	switch m {
	case ModalityFinal:
		return "final"
	case ModalityOpen:
		return "open"
	case ModalityAbstract:
		return "abstract"
	case ModalitySealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// Variance of a type parameter.
type Variance int

const (
	InvariantVariance Variance = iota
	InVariance
	OutVariance
)

func (v Variance) String() string {
	switch v {
	case InVariance:
		return "in"
	case OutVariance:
		return "out"
	default:
		return ""
	}
}

// ClassKind tags a class-like declaration.
type ClassKind string

const (
	KindClass           ClassKind = "Class"
	KindInterface       ClassKind = "Interface"
	KindObject          ClassKind = "Object"
	KindEnumClass       ClassKind = "EnumClass"
	KindEnumEntry       ClassKind = "EnumEntry"
	KindAnnotationClass ClassKind = "AnnotationClass"
)

// AnnotationTarget is an annotation use-site target. The set is
// closed; an empty target means none was written.
type AnnotationTarget string

const (
	TargetField    AnnotationTarget = "field"
	TargetProperty AnnotationTarget = "property"
	TargetGet      AnnotationTarget = "get"
	TargetSet      AnnotationTarget = "set"
	TargetParam    AnnotationTarget = "param"
	TargetSetParam AnnotationTarget = "setparam"
	TargetReceiver AnnotationTarget = "receiver"
	TargetDelegate AnnotationTarget = "delegate"
	TargetFile     AnnotationTarget = "file"
)

// Annotation is one annotation use, possibly with a use-site target
// and arguments.
type Annotation struct {
	Type   TypeRef
	Target AnnotationTarget
	Args   []Expression
}

var _ Node = (*Annotation)(nil)

func (a *Annotation) Children() []Node {
	var children []Node
	if a.Type != nil {
		children = append(children, a.Type)
	}
	for _, arg := range a.Args {
		children = append(children, arg)
	}
	return children
}
