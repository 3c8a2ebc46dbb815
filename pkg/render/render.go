// Package render turns a fir tree into a deterministic, indented text
// dump. The output is a debugging and golden-file format, not
// recompilable source: unresolved parts of the tree render as visible
// sentinel markers instead of failing, so a dump is always produced.
package render

import (
	"fmt"

	"github.com/vito/firdump/pkg/fir"
)

// Render returns the text dump of node. It may be called with any node
// of the tree, most commonly a *fir.File. Rendering never fails and
// never mutates the tree; each call owns a fresh emitter, so
// concurrent renders of the same tree are safe.
func Render(node fir.Node) string {
	r := &renderer{e: newEmitter()}
	r.render(node)
	return r.e.String()
}

type renderer struct {
	e *emitter
}

// render dispatches on the node's variant. Every variant the tree
// model defines has an arm here; anything else hits the fallback,
// which renders minimally but never fails.
func (r *renderer) render(node fir.Node) {
	switch n := node.(type) {
	case nil:

	// Declarations.
	case *fir.File:
		r.renderFile(n)
	case *fir.Class:
		r.renderClass(n)
	case *fir.Function:
		r.renderFunction(n)
	case *fir.Property:
		r.renderProperty(n)
	case *fir.Accessor:
		r.renderAccessor(n)
	case *fir.Constructor:
		r.renderConstructor(n)
	case *fir.TypeAlias:
		r.renderTypeAlias(n)
	case *fir.Parameter:
		r.renderParameter(n)
	case *fir.TypeParameter:
		r.renderTypeParameter(n)
	case *fir.AnonymousObject:
		r.renderAnonymousObject(n)
	case *fir.AnonymousFunction:
		r.renderAnonymousFunction(n)
	case *fir.AnonymousInitializer:
		r.renderAnonymousInitializer(n)
	case *fir.Annotation:
		r.renderAnnotation(n)

	// Statements and expressions.
	case *fir.Block:
		r.renderBlock(n)
	case *fir.Constant:
		r.e.Write(n.Kind + "(" + n.Value + ")")
	case *fir.Access:
		r.renderAccess(n)
	case *fir.Call:
		r.renderCall(n)
	case *fir.Assignment:
		r.renderAssignment(n)
	case *fir.OperatorCall:
		r.renderOperatorCall(n)
	case *fir.TypeOperatorCall:
		r.renderTypeOperatorCall(n)
	case *fir.DelegatedConstructorCall:
		r.renderDelegatedConstructorCall(n)
	case *fir.Throw:
		r.e.Write("throw ")
		r.render(n.Exception)
	case *fir.Return:
		r.renderReturn(n)
	case *fir.When:
		r.renderWhen(n)
	case *fir.WhenBranch:
		r.renderWhenBranch(n)
	case *fir.Else:
		r.e.Write("else")
	case *fir.WhileLoop:
		r.renderWhileLoop(n)
	case *fir.DoWhileLoop:
		r.renderDoWhileLoop(n)
	case *fir.Break:
		r.renderJump("break", n.Target)
	case *fir.Continue:
		r.renderJump("continue", n.Target)
	case *fir.Try:
		r.renderTry(n)
	case *fir.Catch:
		r.renderCatch(n)
	case *fir.StubStatement:
		r.e.Write("STUB")
	case *fir.UnitExpression:
		r.e.Write("Unit")
	case *fir.ErrorExpression:
		r.e.Write("<ERROR EXPRESSION: " + n.Reason + ">")

	// Type references.
	case *fir.ResolvedTypeRef:
		r.renderResolvedTypeRef(n)
	case *fir.UserTypeRef:
		r.renderUserTypeRef(n)
	case *fir.FunctionTypeRef:
		r.renderFunctionTypeRef(n)
	case *fir.DynamicTypeRef:
		r.renderDynamicTypeRef(n)
	case *fir.ErrorTypeRef:
		r.e.Write("<ERROR TYPE: " + n.Reason + ">")
	case *fir.ImplicitTypeRef:
		r.renderImplicitTypeRef(n)

	default:
		r.renderFallback(node)
	}
}

// renderFallback keeps the renderer total over variants added after
// this switch was written: a visible marker, then each structural
// child in the tree's natural order.
func (r *renderer) renderFallback(node fir.Node) {
	r.e.Write(fmt.Sprintf("??? %T", node))
	for _, child := range node.Children() {
		if child == nil {
			continue
		}
		r.e.Write(" ")
		r.render(child)
	}
}

// renderToString renders node through a scratch renderer, leaving the
// main emitter untouched.
func (r *renderer) renderToString(node fir.Node) string {
	sub := &renderer{e: newEmitter()}
	sub.render(node)
	return sub.e.String()
}

func (r *renderer) renderFile(f *fir.File) {
	r.e.WriteLine("FILE: " + f.Name)
	r.e.Indented(func() {
		for _, d := range f.Decls {
			r.render(d)
			r.e.TerminateLine()
		}
	})
}

// renderBlock writes a brace-delimited statement block. The opening
// brace continues the current line; the closing brace is left on an
// open line so callers can continue it (do-while does).
func (r *renderer) renderBlock(b *fir.Block) {
	r.e.WriteLine("{")
	r.e.Indented(func() {
		for _, s := range b.Statements {
			r.render(s)
			r.e.TerminateLine()
		}
	})
	r.e.Write("}")
}

// renderMembers writes a declaration container's body: one member per
// line inside braces. Shared by class-likes and anonymous objects.
func (r *renderer) renderMembers(members []fir.Declaration) {
	r.e.WriteLine("{")
	r.e.Indented(func() {
		for _, m := range members {
			r.render(m)
			r.e.TerminateLine()
		}
	})
	r.e.Write("}")
}
