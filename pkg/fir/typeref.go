package fir

import "github.com/vito/firdump/pkg/sem"

// ResolvedTypeRef wraps a fully resolved type descriptor.
type ResolvedTypeRef struct {
	IsNullable  bool
	Annotations []*Annotation
	Type        sem.Type
}

var _ TypeRef = (*ResolvedTypeRef)(nil)

func (t *ResolvedTypeRef) Children() []Node {
	return annotationChildren(t.Annotations)
}

// UserTypeRef is a syntactic (unresolved) qualified-name type.
type UserTypeRef struct {
	IsNullable  bool
	Annotations []*Annotation
	Qualifiers  []Qualifier
}

// Qualifier is one dotted segment of a UserTypeRef, with optional
// generic arguments.
type Qualifier struct {
	Name     string
	TypeArgs []TypeRef
}

var _ TypeRef = (*UserTypeRef)(nil)

func (t *UserTypeRef) Children() []Node {
	children := annotationChildren(t.Annotations)
	for _, q := range t.Qualifiers {
		for _, arg := range q.TypeArgs {
			children = append(children, arg)
		}
	}
	return children
}

// FunctionTypeRef is a syntactic function-type shape.
type FunctionTypeRef struct {
	IsNullable  bool
	Annotations []*Annotation
	Receiver    TypeRef // optional
	Params      []TypeRef
	Return      TypeRef
}

var _ TypeRef = (*FunctionTypeRef)(nil)

func (t *FunctionTypeRef) Children() []Node {
	children := annotationChildren(t.Annotations)
	if t.Receiver != nil {
		children = append(children, t.Receiver)
	}
	for _, p := range t.Params {
		children = append(children, p)
	}
	if t.Return != nil {
		children = append(children, t.Return)
	}
	return children
}

// DynamicTypeRef is the dynamic type.
type DynamicTypeRef struct {
	IsNullable  bool
	Annotations []*Annotation
}

var _ TypeRef = (*DynamicTypeRef)(nil)

func (t *DynamicTypeRef) Children() []Node {
	return annotationChildren(t.Annotations)
}

// ErrorTypeRef is a type reference that failed to build or resolve.
type ErrorTypeRef struct {
	IsNullable  bool
	Annotations []*Annotation
	Reason      string
}

var _ TypeRef = (*ErrorTypeRef)(nil)

func (t *ErrorTypeRef) Children() []Node {
	return annotationChildren(t.Annotations)
}

// ImplicitTypeRef is the placeholder for a type the front end will
// infer. Builtin names the built-in type when known, and is empty
// otherwise.
type ImplicitTypeRef struct {
	Builtin string
}

var _ TypeRef = (*ImplicitTypeRef)(nil)

func (t *ImplicitTypeRef) Children() []Node { return nil }

func annotationChildren(anns []*Annotation) []Node {
	var children []Node
	for _, a := range anns {
		children = append(children, a)
	}
	return children
}

func (*ResolvedTypeRef) isTypeRef() {}
func (*UserTypeRef) isTypeRef() {}
func (*FunctionTypeRef) isTypeRef() {}
func (*DynamicTypeRef) isTypeRef() {}
func (*ErrorTypeRef) isTypeRef() {}
func (*ImplicitTypeRef) isTypeRef() {}
