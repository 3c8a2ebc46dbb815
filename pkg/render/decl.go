package render

import (
	"github.com/iancoleman/strcase"

	"github.com/vito/firdump/pkg/fir"
	"github.com/vito/firdump/pkg/sem"
)

// visibilityToken renders a visibility. Unknown visibility must stay
// visually distinguishable from resolved public, hence the marker.
func visibilityToken(v fir.Visibility) string {
	if v == fir.VisibilityUnknown {
		return "public?"
	}
	return v.String()
}

// modalityToken renders a modality. When modality is unresolved the
// token is a display heuristic, not a fact: an override-capable
// callable that is itself marked override guesses open?, everything
// else guesses final?.
func modalityToken(m fir.Modality, overrideCapable, isOverride bool) string {
	if m == fir.ModalityUnknown {
		if overrideCapable && isOverride {
			return "open?"
		}
		return "final?"
	}
	return m.String()
}

// classKindKeyword derives the declaration keyword from the kind tag:
// EnumClass becomes "enum class".
func classKindKeyword(k fir.ClassKind) string {
	return strcase.ToDelimited(string(k), ' ')
}

// renderAnnotations writes declaration annotations, one per line.
func (r *renderer) renderAnnotations(anns []*fir.Annotation) {
	for _, a := range anns {
		r.renderAnnotation(a)
		r.e.TerminateLine()
	}
}

// renderInlineAnnotations writes annotations on the current line, each
// followed by a space. Used for parameters and type references.
func (r *renderer) renderInlineAnnotations(anns []*fir.Annotation) {
	for _, a := range anns {
		r.renderAnnotation(a)
		r.e.Write(" ")
	}
}

func (r *renderer) renderAnnotation(a *fir.Annotation) {
	r.e.Write("@")
	if a.Target != "" {
		r.e.Write(string(a.Target) + ":")
	}
	r.render(a.Type)
	if len(a.Args) > 0 {
		r.e.Write("(")
		for i, arg := range a.Args {
			if i > 0 {
				r.e.Write(", ")
			}
			r.render(arg)
		}
		r.e.Write(")")
	}
}

// renderTypeParams writes the angle-bracketed type parameter list,
// followed by one space, when non-empty.
func (r *renderer) renderTypeParams(tps []*fir.TypeParameter) {
	if len(tps) == 0 {
		return
	}
	r.e.Write("<")
	for i, tp := range tps {
		if i > 0 {
			r.e.Write(", ")
		}
		r.renderTypeParameter(tp)
	}
	r.e.Write("> ")
}

func (r *renderer) renderTypeParameter(tp *fir.TypeParameter) {
	if v := tp.Variance.String(); v != "" {
		r.e.Write(v + " ")
	}
	if tp.IsReified {
		r.e.Write("reified ")
	}
	r.e.Write(tp.Name)
	if len(tp.Bounds) > 0 {
		r.e.Write(" : ")
		for i, b := range tp.Bounds {
			if i > 0 {
				r.e.Write(", ")
			}
			r.render(b)
		}
	}
}

func (r *renderer) renderPlatformTokens(expect, actual bool) {
	if expect {
		r.e.Write("expect ")
	}
	if actual {
		r.e.Write("actual ")
	}
}

func (r *renderer) renderClass(c *fir.Class) {
	r.renderAnnotations(c.Annotations)
	r.renderTypeParams(c.TypeParams)
	r.e.Write(visibilityToken(c.Visibility) + " ")
	r.e.Write(modalityToken(c.Modality, false, false) + " ")
	r.renderPlatformTokens(c.IsExpect, c.IsActual)
	if c.IsInner {
		r.e.Write("inner ")
	}
	if c.IsCompanion {
		r.e.Write("companion ")
	}
	if c.IsData {
		r.e.Write("data ")
	}
	if c.IsInline {
		r.e.Write("inline ")
	}
	r.e.Write(classKindKeyword(c.Kind) + " " + c.Name)
	if len(c.Supertypes) > 0 {
		r.e.Write(" : ")
		for i, s := range c.Supertypes {
			if i > 0 {
				r.e.Write(", ")
			}
			r.render(s)
		}
	}
	r.e.Write(" ")
	r.renderMembers(c.Members)
	r.e.TerminateLine()
}

func (r *renderer) renderFunction(f *fir.Function) {
	r.renderAnnotations(f.Annotations)
	r.renderTypeParams(f.TypeParams)
	r.e.Write(visibilityToken(f.Visibility) + " ")
	r.e.Write(modalityToken(f.Modality, true, f.IsOverride) + " ")
	r.renderPlatformTokens(f.IsExpect, f.IsActual)
	if f.IsOverride {
		r.e.Write("override ")
	}
	if f.IsOperator {
		r.e.Write("operator ")
	}
	if f.IsInfix {
		r.e.Write("infix ")
	}
	if f.IsInline {
		r.e.Write("inline ")
	}
	if f.IsTailrec {
		r.e.Write("tailrec ")
	}
	if f.IsExternal {
		r.e.Write("external ")
	}
	if f.IsSuspend {
		r.e.Write("suspend ")
	}
	r.e.Write("fun ")
	if f.Receiver != nil {
		r.render(f.Receiver)
		r.e.Write(".")
	}
	r.e.Write(f.Name)
	r.renderParameterList(f.Params)
	r.e.Write(": ")
	r.render(f.ReturnType)
	if f.Body != nil {
		r.e.Write(" ")
		r.renderBlock(f.Body)
	}
	r.e.TerminateLine()
}

func (r *renderer) renderParameterList(params []*fir.Parameter) {
	r.e.Write("(")
	for i, p := range params {
		if i > 0 {
			r.e.Write(", ")
		}
		r.renderParameter(p)
	}
	r.e.Write(")")
}

func (r *renderer) renderParameter(p *fir.Parameter) {
	r.renderInlineAnnotations(p.Annotations)
	if p.IsVararg {
		r.e.Write("vararg ")
	}
	r.e.Write(p.Name + ": ")
	r.render(p.Type)
	if p.Default != nil {
		r.e.Write(" = ")
		r.render(p.Default)
	}
}

func (r *renderer) renderProperty(p *fir.Property) {
	r.renderAnnotations(p.Annotations)
	r.e.Write("property ")
	r.renderTypeParams(p.TypeParams)
	r.e.Write(visibilityToken(p.Visibility) + " ")
	r.e.Write(modalityToken(p.Modality, true, p.IsOverride) + " ")
	r.renderPlatformTokens(p.IsExpect, p.IsActual)
	if p.IsOverride {
		r.e.Write("override ")
	}
	if p.IsConst {
		r.e.Write("const ")
	}
	if p.IsLateinit {
		r.e.Write("lateinit ")
	}
	if p.IsVar {
		r.e.Write("var ")
	} else {
		r.e.Write("val ")
	}
	if p.Receiver != nil {
		r.render(p.Receiver)
		r.e.Write(".")
	}
	r.e.Write(p.Name + ": ")
	r.render(p.ReturnType)
	if p.Initializer != nil {
		r.e.Write(" = ")
		r.render(p.Initializer)
	}
	if p.Delegate != nil {
		r.e.Write(" by ")
		r.render(p.Delegate)
	}
	r.e.TerminateLine()
	r.e.Indented(func() {
		r.renderAccessor(getterOrDefault(p))
		if p.IsVar {
			r.renderAccessor(setterOrDefault(p))
		}
	})
}

// getterOrDefault returns the property's getter, synthesizing the
// default accessor line when none was written.
func getterOrDefault(p *fir.Property) *fir.Accessor {
	if p.Getter != nil {
		return p.Getter
	}
	return &fir.Accessor{
		IsGetter:   true,
		Visibility: p.Visibility,
		ReturnType: p.ReturnType,
	}
}

// setterOrDefault returns the property's setter, synthesizing the
// default `set(value: T): Unit` when none was written.
func setterOrDefault(p *fir.Property) *fir.Accessor {
	if p.Setter != nil {
		return p.Setter
	}
	return &fir.Accessor{
		Visibility: p.Visibility,
		Params: []*fir.Parameter{
			{Name: "value", Type: p.ReturnType},
		},
		ReturnType: &fir.ResolvedTypeRef{
			Type: &sem.ClassType{ID: "kotlin.Unit"},
		},
	}
}

// renderAccessor writes a getter/setter line one level below its
// property. A bodyless accessor leaves a blank continuation line.
func (r *renderer) renderAccessor(a *fir.Accessor) {
	r.renderAnnotations(a.Annotations)
	r.e.Write(visibilityToken(a.Visibility) + " ")
	if a.IsGetter {
		r.e.Write("get")
	} else {
		r.e.Write("set")
	}
	r.renderParameterList(a.Params)
	r.e.Write(": ")
	r.render(a.ReturnType)
	if a.Body != nil {
		r.e.Write(" ")
		r.renderBlock(a.Body)
		r.e.TerminateLine()
	} else {
		r.e.TerminateLine()
		r.e.WriteLine("")
	}
}

func (r *renderer) renderConstructor(c *fir.Constructor) {
	r.renderAnnotations(c.Annotations)
	r.e.Write(visibilityToken(c.Visibility) + " ")
	r.renderPlatformTokens(c.IsExpect, c.IsActual)
	r.e.Write("constructor")
	r.renderParameterList(c.Params)
	r.e.Write(": ")
	r.render(c.ReturnType)
	if c.DelegatedCall != nil || c.Body != nil {
		r.e.Write(" ")
		r.e.WriteLine("{")
		r.e.Indented(func() {
			if c.DelegatedCall != nil {
				r.renderDelegatedConstructorCall(c.DelegatedCall)
				r.e.TerminateLine()
			}
			if c.Body != nil {
				for _, s := range c.Body.Statements {
					r.render(s)
					r.e.TerminateLine()
				}
			}
		})
		r.e.Write("}")
	}
	r.e.TerminateLine()
}

func (r *renderer) renderTypeAlias(t *fir.TypeAlias) {
	r.renderAnnotations(t.Annotations)
	r.renderTypeParams(t.TypeParams)
	r.e.Write(visibilityToken(t.Visibility) + " ")
	r.e.Write("typealias " + t.Name + " = ")
	r.render(t.Expanded)
	r.e.TerminateLine()
}

func (r *renderer) renderAnonymousObject(o *fir.AnonymousObject) {
	r.e.Write("object")
	if len(o.Supertypes) > 0 {
		r.e.Write(" : ")
		for i, s := range o.Supertypes {
			if i > 0 {
				r.e.Write(", ")
			}
			r.render(s)
		}
	}
	r.e.Write(" ")
	r.renderMembers(o.Members)
}

func (r *renderer) renderAnonymousFunction(f *fir.AnonymousFunction) {
	r.e.Write("fun ")
	if f.Receiver != nil {
		r.render(f.Receiver)
		r.e.Write(".")
	}
	r.renderParameterList(f.Params)
	r.e.Write(": ")
	r.render(f.ReturnType)
	if f.Body != nil {
		r.e.Write(" ")
		r.renderBlock(f.Body)
	}
}

func (r *renderer) renderAnonymousInitializer(i *fir.AnonymousInitializer) {
	r.e.Write("init ")
	body := i.Body
	if body == nil {
		body = &fir.Block{}
	}
	r.renderBlock(body)
	r.e.TerminateLine()
}
