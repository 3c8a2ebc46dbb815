package render

import "github.com/vito/firdump/pkg/fir"

// renderReceiver writes the optional receiver and its navigation dot.
func (r *renderer) renderReceiver(recv fir.Expression, safe bool) {
	if recv == nil {
		return
	}
	r.render(recv)
	if safe {
		r.e.Write("?.")
	} else {
		r.e.Write(".")
	}
}

// Resolved references carry a trailing # so they read differently from
// plain identifier text in the same dump.
func (r *renderer) renderAccess(a *fir.Access) {
	r.renderReceiver(a.Receiver, a.Safe)
	r.e.Write(a.Name + "#")
}

func (r *renderer) renderCall(c *fir.Call) {
	r.renderReceiver(c.Receiver, c.Safe)
	r.e.Write(c.Name + "#")
	if len(c.TypeArgs) > 0 {
		r.e.Write("<")
		for i, t := range c.TypeArgs {
			if i > 0 {
				r.e.Write(", ")
			}
			r.render(t)
		}
		r.e.Write(">")
	}
	r.renderArguments(c.Args)
}

func (r *renderer) renderArguments(args []fir.Expression) {
	r.e.Write("(")
	for i, a := range args {
		if i > 0 {
			r.e.Write(", ")
		}
		r.render(a)
	}
	r.e.Write(")")
}

func (r *renderer) renderAssignment(a *fir.Assignment) {
	if a.Target != nil {
		r.render(a.Target)
		r.e.Write(" ")
	}
	op := a.Operator
	if op == "" {
		op = "="
	}
	r.e.Write(op + " ")
	r.render(a.Value)
}

func (r *renderer) renderOperatorCall(o *fir.OperatorCall) {
	r.e.Write(o.Operator)
	r.renderArguments(o.Args)
}

func (r *renderer) renderTypeOperatorCall(o *fir.TypeOperatorCall) {
	r.e.Write(o.Operator)
	r.renderArguments(o.Args)
	r.e.Write(" / ")
	r.render(o.Type)
}

func (r *renderer) renderDelegatedConstructorCall(d *fir.DelegatedConstructorCall) {
	kind := d.Kind
	if kind == "" {
		kind = "super"
	}
	r.e.Write(kind)
	if d.ConstructedType != nil {
		r.e.Write("<")
		r.render(d.ConstructedType)
		r.e.Write(">")
	}
	r.renderArguments(d.Args)
}

func (r *renderer) renderReturn(ret *fir.Return) {
	r.e.Write("^" + ret.Target)
	if ret.Result != nil {
		r.e.Write(" ")
		r.render(ret.Result)
	}
}

func (r *renderer) renderWhen(w *fir.When) {
	if w.Subject != nil {
		r.e.Write("when (")
		r.render(w.Subject)
		r.e.Write(") ")
	} else {
		r.e.Write("when ")
	}
	r.e.WriteLine("{")
	r.e.Indented(func() {
		for _, b := range w.Branches {
			r.renderWhenBranch(b)
			r.e.TerminateLine()
		}
	})
	r.e.Write("}")
}

func (r *renderer) renderWhenBranch(b *fir.WhenBranch) {
	r.render(b.Condition)
	r.e.Write(" -> ")
	r.render(b.Result)
}

func (r *renderer) renderWhileLoop(l *fir.WhileLoop) {
	if l.Label != "" {
		r.e.Write(l.Label + "@")
	}
	r.e.Write("while (")
	r.render(l.Condition)
	r.e.Write(") ")
	r.renderLoopBody(l.Body)
}

func (r *renderer) renderDoWhileLoop(l *fir.DoWhileLoop) {
	if l.Label != "" {
		r.e.Write(l.Label + "@")
	}
	r.e.Write("do ")
	r.renderLoopBody(l.Body)
	r.e.Write(" while (")
	r.render(l.Condition)
	r.e.Write(")")
}

func (r *renderer) renderLoopBody(b *fir.Block) {
	if b == nil {
		b = &fir.Block{}
	}
	r.renderBlock(b)
}

// renderJump writes break/continue with a back-reference naming the
// target loop's condition text. Structural identity cannot be shown in
// text, so the condition serves as a human-distinguishable label.
func (r *renderer) renderJump(keyword string, target fir.Loop) {
	r.e.Write(keyword)
	if target == nil {
		return
	}
	r.e.Write("@[" + r.renderToString(target.LoopCondition()) + "]")
}

func (r *renderer) renderTry(t *fir.Try) {
	r.e.Write("try ")
	body := t.Body
	if body == nil {
		body = &fir.Block{}
	}
	r.renderBlock(body)
	for _, c := range t.Catches {
		r.e.TerminateLine()
		r.renderCatch(c)
	}
	if t.Finally != nil {
		r.e.TerminateLine()
		r.e.Write("finally ")
		r.renderBlock(t.Finally)
	}
}

func (r *renderer) renderCatch(c *fir.Catch) {
	r.e.Write("catch (")
	if c.Param != nil {
		r.renderParameter(c.Param)
	}
	r.e.Write(") ")
	body := c.Body
	if body == nil {
		body = &fir.Block{}
	}
	r.renderBlock(body)
}
