package fir

// Block is an ordered, possibly empty statement sequence.
type Block struct {
	Statements []Statement
}

var _ Expression = (*Block)(nil)

func (b *Block) Children() []Node {
	children := make([]Node, 0, len(b.Statements))
	for _, s := range b.Statements {
		children = append(children, s)
	}
	return children
}

// Constant is a literal with its kind tag, e.g. Int(1).
type Constant struct {
	Kind  string
	Value string
}

var _ Expression = (*Constant)(nil)

func (c *Constant) Children() []Node { return nil }

// Access is a resolved property read: an optional receiver and a
// referenced name.
type Access struct {
	Receiver Expression // optional
	Safe     bool       // ?. navigation
	Name     string
}

var _ Expression = (*Access)(nil)

func (a *Access) Children() []Node {
	if a.Receiver == nil {
		return nil
	}
	return []Node{a.Receiver}
}

// Call is a function call with an ordered argument list.
type Call struct {
	Receiver Expression // optional
	Safe     bool
	Name     string
	TypeArgs []TypeRef
	Args     []Expression
}

var _ Expression = (*Call)(nil)

func (c *Call) Children() []Node {
	var children []Node
	if c.Receiver != nil {
		children = append(children, c.Receiver)
	}
	for _, t := range c.TypeArgs {
		children = append(children, t)
	}
	for _, a := range c.Args {
		children = append(children, a)
	}
	return children
}

// Assignment is a property write.
type Assignment struct {
	Target   *Access
	Operator string // "=" unless a compound assignment
	Value    Expression
}

var _ Expression = (*Assignment)(nil)

func (a *Assignment) Children() []Node {
	var children []Node
	if a.Target != nil {
		children = append(children, a.Target)
	}
	if a.Value != nil {
		children = append(children, a.Value)
	}
	return children
}

// OperatorCall is an operator application, e.g. ==(a, b).
type OperatorCall struct {
	Operator string
	Args     []Expression
}

var _ Expression = (*OperatorCall)(nil)

func (o *OperatorCall) Children() []Node {
	children := make([]Node, 0, len(o.Args))
	for _, a := range o.Args {
		children = append(children, a)
	}
	return children
}

// TypeOperatorCall is a type check or cast, e.g. is(x) / R|Int|.
type TypeOperatorCall struct {
	Operator string
	Args     []Expression
	Type     TypeRef
}

var _ Expression = (*TypeOperatorCall)(nil)

func (o *TypeOperatorCall) Children() []Node {
	var children []Node
	for _, a := range o.Args {
		children = append(children, a)
	}
	if o.Type != nil {
		children = append(children, o.Type)
	}
	return children
}

// DelegatedConstructorCall is a super(...) or this(...) call inside a
// constructor.
type DelegatedConstructorCall struct {
	Kind            string // "super" or "this"
	ConstructedType TypeRef
	Args            []Expression
}

var _ Expression = (*DelegatedConstructorCall)(nil)

func (d *DelegatedConstructorCall) Children() []Node {
	var children []Node
	if d.ConstructedType != nil {
		children = append(children, d.ConstructedType)
	}
	for _, a := range d.Args {
		children = append(children, a)
	}
	return children
}

// Throw raises an exception.
type Throw struct {
	Exception Expression
}

var _ Expression = (*Throw)(nil)

func (t *Throw) Children() []Node {
	if t.Exception == nil {
		return nil
	}
	return []Node{t.Exception}
}

// Return is a return expression with an optional label.
type Return struct {
	Target string // label or function name; may be empty
	Result Expression
}

var _ Expression = (*Return)(nil)

func (r *Return) Children() []Node {
	if r.Result == nil {
		return nil
	}
	return []Node{r.Result}
}

// When is a multi-branch conditional. Subject may be nil.
type When struct {
	Subject  Expression
	Branches []*WhenBranch
}

var _ Expression = (*When)(nil)

func (w *When) Children() []Node {
	var children []Node
	if w.Subject != nil {
		children = append(children, w.Subject)
	}
	for _, b := range w.Branches {
		children = append(children, b)
	}
	return children
}

// WhenBranch is one condition/result pair of a When.
type WhenBranch struct {
	Condition Expression
	Result    Expression
}

var _ Node = (*WhenBranch)(nil)

func (b *WhenBranch) Children() []Node {
	var children []Node
	if b.Condition != nil {
		children = append(children, b.Condition)
	}
	if b.Result != nil {
		children = append(children, b.Result)
	}
	return children
}

// Else is the sentinel condition of a When's else branch.
type Else struct{}

var _ Expression = (*Else)(nil)

func (*Else) Children() []Node { return nil }

// Loop is implemented by loop statements so jumps can refer back to
// their target.
type Loop interface {
	Statement
	LoopCondition() Expression
}

// WhileLoop is a while loop with an optional label.
type WhileLoop struct {
	Label     string
	Condition Expression
	Body      *Block
}

var _ Loop = (*WhileLoop)(nil)

func (l *WhileLoop) LoopCondition() Expression { return l.Condition }

func (l *WhileLoop) Children() []Node {
	var children []Node
	if l.Condition != nil {
		children = append(children, l.Condition)
	}
	if l.Body != nil {
		children = append(children, l.Body)
	}
	return children
}

// DoWhileLoop is a do-while loop with an optional label.
type DoWhileLoop struct {
	Label     string
	Condition Expression
	Body      *Block
}

var _ Loop = (*DoWhileLoop)(nil)

func (l *DoWhileLoop) LoopCondition() Expression { return l.Condition }

func (l *DoWhileLoop) Children() []Node {
	var children []Node
	if l.Body != nil {
		children = append(children, l.Body)
	}
	if l.Condition != nil {
		children = append(children, l.Condition)
	}
	return children
}

// Break jumps out of its target loop.
type Break struct {
	Target Loop
}

var _ Expression = (*Break)(nil)

func (*Break) Children() []Node { return nil }

// Continue jumps to the next iteration of its target loop.
type Continue struct {
	Target Loop
}

var _ Expression = (*Continue)(nil)

func (*Continue) Children() []Node { return nil }

// Try is a try/catch/finally expression.
type Try struct {
	Body    *Block
	Catches []*Catch
	Finally *Block
}

var _ Expression = (*Try)(nil)

func (t *Try) Children() []Node {
	var children []Node
	if t.Body != nil {
		children = append(children, t.Body)
	}
	for _, c := range t.Catches {
		children = append(children, c)
	}
	if t.Finally != nil {
		children = append(children, t.Finally)
	}
	return children
}

// Catch is one catch clause of a Try.
type Catch struct {
	Param *Parameter
	Body  *Block
}

var _ Node = (*Catch)(nil)

func (c *Catch) Children() []Node {
	var children []Node
	if c.Param != nil {
		children = append(children, c.Param)
	}
	if c.Body != nil {
		children = append(children, c.Body)
	}
	return children
}

// StubStatement marks a statement slot the front end has not filled.
type StubStatement struct{}

var _ Statement = (*StubStatement)(nil)

func (*StubStatement) Children() []Node { return nil }

// UnitExpression is the synthetic unit value.
type UnitExpression struct{}

var _ Expression = (*UnitExpression)(nil)

func (*UnitExpression) Children() []Node { return nil }

// ErrorExpression is an expression that failed to build or resolve;
// it carries its diagnostic reason.
type ErrorExpression struct {
	Reason string
}

var _ Expression = (*ErrorExpression)(nil)

func (*ErrorExpression) Children() []Node { return nil }

func (*Block) isStatement() {}
func (*Block) isExpression() {}

func (*Constant) isStatement() {}
func (*Constant) isExpression() {}

func (*Access) isStatement() {}
func (*Access) isExpression() {}

func (*Call) isStatement() {}
func (*Call) isExpression() {}

func (*Assignment) isStatement() {}
func (*Assignment) isExpression() {}

func (*OperatorCall) isStatement() {}
func (*OperatorCall) isExpression() {}

func (*TypeOperatorCall) isStatement() {}
func (*TypeOperatorCall) isExpression() {}

func (*DelegatedConstructorCall) isStatement() {}
func (*DelegatedConstructorCall) isExpression() {}

func (*Throw) isStatement() {}
func (*Throw) isExpression() {}

func (*Return) isStatement() {}
func (*Return) isExpression() {}

func (*When) isStatement() {}
func (*When) isExpression() {}

func (*Else) isStatement() {}
func (*Else) isExpression() {}

func (*WhileLoop) isStatement() {}
func (*DoWhileLoop) isStatement() {}

func (*Break) isStatement() {}
func (*Break) isExpression() {}

func (*Continue) isStatement() {}
func (*Continue) isExpression() {}

func (*Try) isStatement() {}
func (*Try) isExpression() {}

func (*StubStatement) isStatement() {}

func (*UnitExpression) isStatement() {}
func (*UnitExpression) isExpression() {}

func (*ErrorExpression) isStatement() {}
func (*ErrorExpression) isExpression() {}
