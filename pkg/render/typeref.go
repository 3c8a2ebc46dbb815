package render

import (
	"github.com/vito/firdump/pkg/fir"
	"github.com/vito/firdump/pkg/sem"
)

// builtinImplicitTypes are the built-ins an implicit type ref may name
// before inference runs.
var builtinImplicitTypes = map[string]bool{
	"Any":     true,
	"Boolean": true,
	"Byte":    true,
	"Char":    true,
	"Double":  true,
	"Float":   true,
	"Int":     true,
	"Long":    true,
	"Nothing": true,
	"Short":   true,
	"String":  true,
	"Unit":    true,
}

// A resolved type renders inside R|...| sentinels so resolved and
// syntactic type text stay distinguishable in the same dump. The
// nullability marker trails the body.
func (r *renderer) renderResolvedTypeRef(t *fir.ResolvedTypeRef) {
	r.renderInlineAnnotations(t.Annotations)
	r.e.Write("R|" + sem.TypeString(t.Type) + "|")
	if t.IsNullable {
		r.e.Write("?")
	}
}

func (r *renderer) renderUserTypeRef(t *fir.UserTypeRef) {
	r.renderInlineAnnotations(t.Annotations)
	for i, q := range t.Qualifiers {
		if i > 0 {
			r.e.Write(".")
		}
		r.e.Write(q.Name)
		if len(q.TypeArgs) > 0 {
			r.e.Write("<")
			for j, arg := range q.TypeArgs {
				if j > 0 {
					r.e.Write(", ")
				}
				r.render(arg)
			}
			r.e.Write(">")
		}
	}
	if t.IsNullable {
		r.e.Write("?")
	}
}

func (r *renderer) renderFunctionTypeRef(t *fir.FunctionTypeRef) {
	r.renderInlineAnnotations(t.Annotations)
	r.e.Write("( ")
	if t.Receiver != nil {
		r.render(t.Receiver)
		r.e.Write(". ")
	}
	r.e.Write("(")
	for i, p := range t.Params {
		if i > 0 {
			r.e.Write(", ")
		}
		r.render(p)
	}
	r.e.Write(") -> ")
	r.render(t.Return)
	r.e.Write(" )")
	if t.IsNullable {
		r.e.Write("?")
	}
}

func (r *renderer) renderDynamicTypeRef(t *fir.DynamicTypeRef) {
	r.renderInlineAnnotations(t.Annotations)
	r.e.Write("<dynamic>")
	if t.IsNullable {
		r.e.Write("?")
	}
}

func (r *renderer) renderImplicitTypeRef(t *fir.ImplicitTypeRef) {
	if t.Builtin != "" && builtinImplicitTypes[t.Builtin] {
		r.e.Write("<implicit(" + t.Builtin + ")>")
		return
	}
	r.e.Write("<implicit>")
}
