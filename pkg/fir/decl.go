package fir

// File is a top-level program unit.
type File struct {
	Name  string
	Decls []Declaration
}

var _ Node = (*File)(nil)

func (f *File) Children() []Node {
	children := make([]Node, 0, len(f.Decls))
	for _, d := range f.Decls {
		children = append(children, d)
	}
	return children
}

// Class is a class-like declaration: class, interface, object, enum
// class, enum entry, or annotation class, per Kind. It is a
// declaration container: Members holds its nested declarations in
// source order.
type Class struct {
	Kind        ClassKind
	Name        string
	Visibility  Visibility
	Modality    Modality
	Annotations []*Annotation
	TypeParams  []*TypeParameter

	IsExpect    bool
	IsActual    bool
	IsInner     bool
	IsCompanion bool
	IsData      bool
	IsInline    bool

	Supertypes []TypeRef
	Members    []Declaration
}

var _ Declaration = (*Class)(nil)

func (c *Class) Children() []Node {
	var children []Node
	for _, a := range c.Annotations {
		children = append(children, a)
	}
	for _, tp := range c.TypeParams {
		children = append(children, tp)
	}
	for _, s := range c.Supertypes {
		children = append(children, s)
	}
	for _, m := range c.Members {
		children = append(children, m)
	}
	return children
}

// Function is a named function or method.
type Function struct {
	Name        string
	Visibility  Visibility
	Modality    Modality
	Annotations []*Annotation
	TypeParams  []*TypeParameter

	IsExpect   bool
	IsActual   bool
	IsOverride bool
	IsOperator bool
	IsInfix    bool
	IsInline   bool
	IsTailrec  bool
	IsExternal bool
	IsSuspend  bool

	Receiver   TypeRef // optional extension receiver
	Params     []*Parameter
	ReturnType TypeRef
	Body       *Block // nil when the function has no body
}

var _ Declaration = (*Function)(nil)

func (f *Function) Children() []Node {
	var children []Node
	for _, a := range f.Annotations {
		children = append(children, a)
	}
	for _, tp := range f.TypeParams {
		children = append(children, tp)
	}
	if f.Receiver != nil {
		children = append(children, f.Receiver)
	}
	for _, p := range f.Params {
		children = append(children, p)
	}
	if f.ReturnType != nil {
		children = append(children, f.ReturnType)
	}
	if f.Body != nil {
		children = append(children, f.Body)
	}
	return children
}

// Property is a val/var declaration, top-level, member, or local.
type Property struct {
	Name        string
	IsVar       bool
	Visibility  Visibility
	Modality    Modality
	Annotations []*Annotation
	TypeParams  []*TypeParameter

	IsExpect   bool
	IsActual   bool
	IsOverride bool
	IsConst    bool
	IsLateinit bool

	Receiver    TypeRef // optional extension receiver
	ReturnType  TypeRef
	Initializer Expression
	Delegate    Expression
	Getter      *Accessor
	Setter      *Accessor
}

var _ Declaration = (*Property)(nil)

func (p *Property) Children() []Node {
	var children []Node
	for _, a := range p.Annotations {
		children = append(children, a)
	}
	for _, tp := range p.TypeParams {
		children = append(children, tp)
	}
	if p.Receiver != nil {
		children = append(children, p.Receiver)
	}
	if p.ReturnType != nil {
		children = append(children, p.ReturnType)
	}
	if p.Initializer != nil {
		children = append(children, p.Initializer)
	}
	if p.Delegate != nil {
		children = append(children, p.Delegate)
	}
	if p.Getter != nil {
		children = append(children, p.Getter)
	}
	if p.Setter != nil {
		children = append(children, p.Setter)
	}
	return children
}

// Accessor is a property getter or setter.
type Accessor struct {
	IsGetter    bool
	Visibility  Visibility
	Annotations []*Annotation
	Params      []*Parameter // setter value parameter
	ReturnType  TypeRef
	Body        *Block
}

var _ Declaration = (*Accessor)(nil)

func (a *Accessor) Children() []Node {
	var children []Node
	for _, an := range a.Annotations {
		children = append(children, an)
	}
	for _, p := range a.Params {
		children = append(children, p)
	}
	if a.ReturnType != nil {
		children = append(children, a.ReturnType)
	}
	if a.Body != nil {
		children = append(children, a.Body)
	}
	return children
}

// Constructor is a class constructor.
type Constructor struct {
	Visibility  Visibility
	Annotations []*Annotation

	IsExpect bool
	IsActual bool

	Params        []*Parameter
	ReturnType    TypeRef
	DelegatedCall *DelegatedConstructorCall
	Body          *Block
}

var _ Declaration = (*Constructor)(nil)

func (c *Constructor) Children() []Node {
	var children []Node
	for _, a := range c.Annotations {
		children = append(children, a)
	}
	for _, p := range c.Params {
		children = append(children, p)
	}
	if c.ReturnType != nil {
		children = append(children, c.ReturnType)
	}
	if c.DelegatedCall != nil {
		children = append(children, c.DelegatedCall)
	}
	if c.Body != nil {
		children = append(children, c.Body)
	}
	return children
}

// TypeAlias introduces a name for another type.
type TypeAlias struct {
	Name        string
	Visibility  Visibility
	Annotations []*Annotation
	TypeParams  []*TypeParameter
	Expanded    TypeRef
}

var _ Declaration = (*TypeAlias)(nil)

func (t *TypeAlias) Children() []Node {
	var children []Node
	for _, a := range t.Annotations {
		children = append(children, a)
	}
	for _, tp := range t.TypeParams {
		children = append(children, tp)
	}
	if t.Expanded != nil {
		children = append(children, t.Expanded)
	}
	return children
}

// Parameter is a value parameter of a callable.
type Parameter struct {
	Name        string
	Annotations []*Annotation
	Type        TypeRef
	Default     Expression
	IsVararg    bool
}

var _ Declaration = (*Parameter)(nil)

func (p *Parameter) Children() []Node {
	var children []Node
	for _, a := range p.Annotations {
		children = append(children, a)
	}
	if p.Type != nil {
		children = append(children, p.Type)
	}
	if p.Default != nil {
		children = append(children, p.Default)
	}
	return children
}

// TypeParameter is a generic parameter of a declaration.
type TypeParameter struct {
	Name      string
	Variance  Variance
	IsReified bool
	Bounds    []TypeRef
}

var _ Declaration = (*TypeParameter)(nil)

func (t *TypeParameter) Children() []Node {
	children := make([]Node, 0, len(t.Bounds))
	for _, b := range t.Bounds {
		children = append(children, b)
	}
	return children
}

// AnonymousObject is an object expression. Like Class it is a
// declaration container.
type AnonymousObject struct {
	Supertypes []TypeRef
	Members    []Declaration
}

var _ Declaration = (*AnonymousObject)(nil)
var _ Expression = (*AnonymousObject)(nil)

func (o *AnonymousObject) Children() []Node {
	var children []Node
	for _, s := range o.Supertypes {
		children = append(children, s)
	}
	for _, m := range o.Members {
		children = append(children, m)
	}
	return children
}

// AnonymousFunction is a function literal.
type AnonymousFunction struct {
	Receiver   TypeRef
	Params     []*Parameter
	ReturnType TypeRef
	Body       *Block
}

var _ Declaration = (*AnonymousFunction)(nil)
var _ Expression = (*AnonymousFunction)(nil)

func (f *AnonymousFunction) Children() []Node {
	var children []Node
	if f.Receiver != nil {
		children = append(children, f.Receiver)
	}
	for _, p := range f.Params {
		children = append(children, p)
	}
	if f.ReturnType != nil {
		children = append(children, f.ReturnType)
	}
	if f.Body != nil {
		children = append(children, f.Body)
	}
	return children
}

// AnonymousInitializer is an init block of a class.
type AnonymousInitializer struct {
	Body *Block
}

var _ Declaration = (*AnonymousInitializer)(nil)

func (i *AnonymousInitializer) Children() []Node {
	if i.Body == nil {
		return nil
	}
	return []Node{i.Body}
}

func (*Class) isStatement() {}
func (*Class) isDeclaration() {}

func (*Function) isStatement() {}
func (*Function) isDeclaration() {}

func (*Property) isStatement() {}
func (*Property) isDeclaration() {}

func (*Accessor) isStatement() {}
func (*Accessor) isDeclaration() {}

func (*Constructor) isStatement() {}
func (*Constructor) isDeclaration() {}

func (*TypeAlias) isStatement() {}
func (*TypeAlias) isDeclaration() {}

func (*Parameter) isStatement() {}
func (*Parameter) isDeclaration() {}

func (*TypeParameter) isStatement() {}
func (*TypeParameter) isDeclaration() {}

func (*AnonymousObject) isStatement() {}
func (*AnonymousObject) isDeclaration() {}
func (*AnonymousObject) isExpression() {}

func (*AnonymousFunction) isStatement() {}
func (*AnonymousFunction) isDeclaration() {}
func (*AnonymousFunction) isExpression() {}

func (*AnonymousInitializer) isStatement() {}
func (*AnonymousInitializer) isDeclaration() {}
