package render

import (
	"context"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/dagger/testctx"
	"github.com/dagger/testctx/oteltest"
	"github.com/stretchr/testify/require"

	"github.com/vito/firdump/pkg/fir"
	"github.com/vito/firdump/pkg/fir/sample"
	"github.com/vito/firdump/pkg/sem"
)

func TestMain(m *testing.M) {
	os.Exit(oteltest.Main(m))
}

type RenderSuite struct{}

func TestRender(tT *testing.T) {
	testctx.New(tT,
		oteltest.WithTracing[*testing.T](),
		oteltest.WithLogging[*testing.T](),
	).RunTests(RenderSuite{})
}

func resolvedInt() *fir.ResolvedTypeRef {
	return &fir.ResolvedTypeRef{Type: &sem.ClassType{ID: "kotlin.Int"}}
}

func resolvedUnit() *fir.ResolvedTypeRef {
	return &fir.ResolvedTypeRef{Type: &sem.ClassType{ID: "kotlin.Unit"}}
}

func (RenderSuite) TestPropertyScenario(ctx context.Context, t *testctx.T) {
	class := &fir.Class{
		Kind:       fir.KindClass,
		Name:       "Box",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		Supertypes: []fir.TypeRef{
			&fir.ResolvedTypeRef{Type: &sem.ClassType{ID: "kotlin.Any"}},
		},
		Members: []fir.Declaration{
			&fir.Property{
				Name:        "x",
				Visibility:  fir.VisibilityPublic,
				Modality:    fir.ModalityFinal,
				ReturnType:  resolvedInt(),
				Initializer: &fir.Constant{Kind: "Int", Value: "1"},
			},
		},
	}

	expected := strings.Join([]string{
		"public final class Box : R|kotlin.Any| {",
		"    property public final val x: R|kotlin.Int| = Int(1)",
		"        public get(): R|kotlin.Int|",
		"",
		"}",
		"",
	}, "\n")
	require.Equal(t, expected, Render(class))
}

func (RenderSuite) TestFunctionBodyLayout(ctx context.Context, t *testctx.T) {
	fn := &fir.Function{
		Name:       "ping",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		ReturnType: resolvedUnit(),
	}

	// No body: the declaration line is followed immediately by a line
	// terminator, no floating brace.
	require.Equal(t, "public final fun ping(): R|kotlin.Unit|\n", Render(fn))

	fn.Body = &fir.Block{Statements: []fir.Statement{&fir.UnitExpression{}}}
	require.Equal(t,
		"public final fun ping(): R|kotlin.Unit| {\n    Unit\n}\n",
		Render(fn))
}

func (RenderSuite) TestWhenRendering(ctx context.Context, t *testctx.T) {
	when := &fir.When{
		Subject: &fir.Access{Name: "subj"},
		Branches: []*fir.WhenBranch{
			{Condition: &fir.Access{Name: "a"}, Result: &fir.Access{Name: "b"}},
			{Condition: &fir.Else{}, Result: &fir.Access{Name: "c"}},
		},
	}
	require.Equal(t,
		"when (subj#) {\n    a# -> b#\n    else -> c#\n}",
		Render(when))
}

func (RenderSuite) TestJumpBackReference(ctx context.Context, t *testctx.T) {
	loop := &fir.WhileLoop{
		Condition: &fir.OperatorCall{
			Operator: "<",
			Args:     []fir.Expression{&fir.Access{Name: "i"}, &fir.Constant{Kind: "Int", Value: "10"}},
		},
	}
	loop.Body = &fir.Block{Statements: []fir.Statement{&fir.Break{Target: loop}}}

	out := Render(loop)
	require.Contains(t, out, "while (<(i#, Int(10))) {")
	require.Contains(t, out, "break@[<(i#, Int(10))]")

	require.Equal(t, "continue", Render(&fir.Continue{}))
}

func (RenderSuite) TestMemberAccessAndCalls(ctx context.Context, t *testctx.T) {
	call := &fir.Call{
		Receiver: &fir.Access{Name: "user"},
		Safe:     true,
		Name:     "rename",
		TypeArgs: []fir.TypeRef{resolvedInt()},
		Args: []fir.Expression{
			&fir.Constant{Kind: "String", Value: "ada"},
		},
	}
	require.Equal(t, "user#?.rename#<R|kotlin.Int|>(String(ada))", Render(call))

	write := &fir.Assignment{
		Target: &fir.Access{Receiver: &fir.Access{Name: "user"}, Name: "age"},
		Value:  &fir.Constant{Kind: "Int", Value: "36"},
	}
	require.Equal(t, "user#.age# = Int(36)", Render(write))

	check := &fir.TypeOperatorCall{
		Operator: "is",
		Args:     []fir.Expression{&fir.Access{Name: "x"}},
		Type:     resolvedInt(),
	}
	require.Equal(t, "is(x#) / R|kotlin.Int|", Render(check))
}

func (RenderSuite) TestAssignmentWithoutTarget(ctx context.Context, t *testctx.T) {
	// A write whose target never resolved still renders cleanly, with
	// no stray leading space.
	write := &fir.Assignment{Value: &fir.Constant{Kind: "Int", Value: "1"}}
	require.Equal(t, "= Int(1)", Render(write))
}

func (RenderSuite) TestAnnotatedDelegatedProperty(ctx context.Context, t *testctx.T) {
	prop := &fir.Property{
		Name:       "d",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		Annotations: []*fir.Annotation{
			{
				Type:   &fir.UserTypeRef{Qualifiers: []fir.Qualifier{{Name: "JvmField"}}},
				Target: fir.TargetField,
				Args:   []fir.Expression{&fir.Constant{Kind: "Int", Value: "1"}},
			},
		},
		ReturnType: resolvedInt(),
		Delegate:   &fir.Call{Name: "lazy"},
	}

	expected := strings.Join([]string{
		"@field:JvmField(Int(1))",
		"property public final val d: R|kotlin.Int| by lazy#()",
		"    public get(): R|kotlin.Int|",
		"",
		"",
	}, "\n")
	require.Equal(t, expected, Render(prop))
}

func (RenderSuite) TestExpectFunctionWithGenerics(ctx context.Context, t *testctx.T) {
	fn := &fir.Function{
		Name:       "f",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		IsExpect:   true,
		TypeParams: []*fir.TypeParameter{
			{Name: "T", Variance: fir.OutVariance, IsReified: true, Bounds: []fir.TypeRef{resolvedInt()}},
		},
		Params: []*fir.Parameter{
			{
				Name: "xs",
				Annotations: []*fir.Annotation{
					{Type: &fir.UserTypeRef{Qualifiers: []fir.Qualifier{{Name: "Tag"}}}, Target: fir.TargetParam},
				},
				Type:     resolvedInt(),
				IsVararg: true,
			},
		},
		ReturnType: resolvedInt(),
	}

	require.Equal(t,
		"<out reified T : R|kotlin.Int|> public final expect fun f(@param:Tag vararg xs: R|kotlin.Int|): R|kotlin.Int|\n",
		Render(fn))
}

func (RenderSuite) TestActualDeclaration(ctx context.Context, t *testctx.T) {
	obj := &fir.Class{
		Kind:       fir.KindObject,
		Name:       "Platform",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		IsActual:   true,
	}
	require.Equal(t, "public final actual object Platform {\n}\n", Render(obj))
}

func (RenderSuite) TestIdempotence(ctx context.Context, t *testctx.T) {
	for _, name := range sample.Names() {
		tree, ok := sample.Named(name)
		require.True(t, ok)
		first := Render(tree)
		second := Render(tree)
		require.Equal(t, first, second, "sample %s must render identically", name)

		rebuilt, _ := sample.Named(name)
		require.Equal(t, first, Render(rebuilt))
	}
}

// allVariants returns one minimal instance of every node variant the
// tree model defines.
func allVariants() []fir.Node {
	loop := &fir.WhileLoop{Condition: &fir.Access{Name: "cond"}, Body: &fir.Block{}}
	return []fir.Node{
		&fir.File{Name: "unit.kt"},
		&fir.Class{Kind: fir.KindClass, Name: "C"},
		&fir.Class{Kind: fir.KindEnumClass, Name: "E"},
		&fir.Function{Name: "f", ReturnType: resolvedUnit()},
		&fir.Property{Name: "p", ReturnType: resolvedInt()},
		&fir.Accessor{IsGetter: true, ReturnType: resolvedInt()},
		&fir.Constructor{ReturnType: resolvedUnit()},
		&fir.TypeAlias{Name: "A", Expanded: resolvedInt()},
		&fir.Parameter{Name: "arg", Type: resolvedInt()},
		&fir.TypeParameter{Name: "T"},
		&fir.AnonymousObject{},
		&fir.AnonymousFunction{ReturnType: resolvedUnit()},
		&fir.AnonymousInitializer{},
		&fir.Annotation{Type: &fir.UserTypeRef{Qualifiers: []fir.Qualifier{{Name: "Deprecated"}}}},
		&fir.Block{},
		&fir.Constant{Kind: "Int", Value: "1"},
		&fir.Access{Name: "x"},
		&fir.Call{Name: "f"},
		&fir.Assignment{Target: &fir.Access{Name: "x"}, Value: &fir.Constant{Kind: "Int", Value: "1"}},
		&fir.OperatorCall{Operator: "==", Args: []fir.Expression{&fir.Access{Name: "x"}}},
		&fir.TypeOperatorCall{Operator: "as", Args: []fir.Expression{&fir.Access{Name: "x"}}, Type: resolvedInt()},
		&fir.DelegatedConstructorCall{Kind: "this"},
		&fir.Throw{Exception: &fir.Access{Name: "e"}},
		&fir.Return{Target: "f"},
		&fir.When{Branches: []*fir.WhenBranch{{Condition: &fir.Else{}, Result: &fir.UnitExpression{}}}},
		&fir.WhenBranch{Condition: &fir.Else{}, Result: &fir.UnitExpression{}},
		&fir.Else{},
		loop,
		&fir.DoWhileLoop{Condition: &fir.Access{Name: "cond"}, Body: &fir.Block{}},
		&fir.Break{Target: loop},
		&fir.Continue{Target: loop},
		&fir.Try{Body: &fir.Block{}, Catches: []*fir.Catch{{Param: &fir.Parameter{Name: "e", Type: resolvedInt()}, Body: &fir.Block{}}}},
		&fir.Catch{Param: &fir.Parameter{Name: "e", Type: resolvedInt()}, Body: &fir.Block{}},
		&fir.StubStatement{},
		&fir.UnitExpression{},
		&fir.ErrorExpression{Reason: "boom"},
		&fir.ResolvedTypeRef{Type: &sem.ClassType{ID: "kotlin.Int"}},
		&fir.UserTypeRef{Qualifiers: []fir.Qualifier{{Name: "Foo"}}},
		&fir.FunctionTypeRef{Params: []fir.TypeRef{resolvedInt()}, Return: resolvedUnit()},
		&fir.DynamicTypeRef{},
		&fir.ErrorTypeRef{Reason: "bad"},
		&fir.ImplicitTypeRef{},
		&fir.ImplicitTypeRef{Builtin: "Int"},
	}
}

func (RenderSuite) TestTotality(ctx context.Context, t *testctx.T) {
	for _, node := range allVariants() {
		node := node
		require.NotPanics(t, func() {
			out := Render(node)
			require.NotEmpty(t, out, "variant %T must render non-empty text", node)
		}, "variant %T", node)
	}
}

type mysteryNode struct {
	child fir.Node
}

func (m mysteryNode) Children() []fir.Node {
	if m.child == nil {
		return nil
	}
	return []fir.Node{m.child}
}

func (RenderSuite) TestFallbackRule(ctx context.Context, t *testctx.T) {
	// A variant without a bespoke rule renders a marker, then its
	// children in natural order.
	require.Equal(t, "??? render.mysteryNode", Render(mysteryNode{}))
	require.Equal(t,
		"??? render.mysteryNode Int(1)",
		Render(mysteryNode{child: &fir.Constant{Kind: "Int", Value: "1"}}))
}

func (RenderSuite) TestIndentationBalance(ctx context.Context, t *testctx.T) {
	for _, name := range sample.Names() {
		tree, _ := sample.Named(name)
		out := Render(tree)

		var openers []int
		for _, line := range strings.Split(out, "\n") {
			trimmed := strings.TrimLeft(line, " ")
			if trimmed == "" {
				continue
			}
			indent := len(line) - len(trimmed)
			if strings.HasPrefix(trimmed, "}") {
				require.NotEmpty(t, openers, "unmatched closing brace in %s: %q", name, line)
				opened := openers[len(openers)-1]
				openers = openers[:len(openers)-1]
				require.Equal(t, opened, indent, "brace indent mismatch in %s: %q", name, line)
			}
			if strings.HasSuffix(trimmed, "{") {
				openers = append(openers, indent)
			}
		}
		require.Empty(t, openers, "unclosed braces in %s", name)
	}
}

func (RenderSuite) TestNullabilityMarker(ctx context.Context, t *testctx.T) {
	refs := []fir.TypeRef{
		&fir.ResolvedTypeRef{IsNullable: true, Type: &sem.ClassType{ID: "kotlin.Int"}},
		&fir.UserTypeRef{IsNullable: true, Qualifiers: []fir.Qualifier{{Name: "foo"}, {Name: "Bar"}}},
		&fir.FunctionTypeRef{IsNullable: true, Params: []fir.TypeRef{resolvedInt()}, Return: resolvedUnit()},
		&fir.DynamicTypeRef{IsNullable: true},
	}
	for _, ref := range refs {
		out := Render(ref)
		require.True(t, strings.HasSuffix(out, "?"), "%T rendered %q", ref, out)
	}
}

var resolvedPattern = regexp.MustCompile(`^R\|.+\|\??$`)

func (RenderSuite) TestResolvedVsSyntactic(ctx context.Context, t *testctx.T) {
	resolved := Render(&fir.ResolvedTypeRef{
		IsNullable: true,
		Type: &sem.ClassType{
			ID:   "kotlin.collections.List",
			Args: []sem.Projection{sem.StarProj()},
		},
	})
	require.Regexp(t, resolvedPattern, resolved)
	require.Equal(t, "R|kotlin.collections.List<*>|?", resolved)

	syntactic := Render(&fir.UserTypeRef{
		Qualifiers: []fir.Qualifier{
			{Name: "kotlin"},
			{Name: "collections"},
			{Name: "List", TypeArgs: []fir.TypeRef{resolvedInt()}},
		},
	})
	require.NotRegexp(t, resolvedPattern, syntactic)
	require.Equal(t, "kotlin.collections.List<R|kotlin.Int|>", syntactic)
}

func (RenderSuite) TestSentinels(ctx context.Context, t *testctx.T) {
	require.Equal(t, "STUB", Render(&fir.StubStatement{}))
	require.Equal(t, "Unit", Render(&fir.UnitExpression{}))
	require.Equal(t, "<ERROR EXPRESSION: oops>", Render(&fir.ErrorExpression{Reason: "oops"}))
	require.Equal(t, "<ERROR TYPE: oops>", Render(&fir.ErrorTypeRef{Reason: "oops"}))
	require.Equal(t, "<dynamic>", Render(&fir.DynamicTypeRef{}))
	require.Equal(t, "<implicit(Int)>", Render(&fir.ImplicitTypeRef{Builtin: "Int"}))
	require.Equal(t, "<implicit>", Render(&fir.ImplicitTypeRef{Builtin: "Mystery"}))
	require.Equal(t, "<implicit>", Render(&fir.ImplicitTypeRef{}))
}

func (RenderSuite) TestUnknownVisibilityAndModality(ctx context.Context, t *testctx.T) {
	plain := &fir.Function{Name: "f", ReturnType: resolvedUnit()}
	require.True(t, strings.HasPrefix(Render(plain), "public? final? fun f"))

	overriding := &fir.Function{Name: "f", IsOverride: true, ReturnType: resolvedUnit()}
	require.True(t, strings.HasPrefix(Render(overriding), "public? open? override fun f"))

	sealed := &fir.Class{Kind: fir.KindClass, Name: "C", Visibility: fir.VisibilityPrivate, Modality: fir.ModalitySealed}
	require.True(t, strings.HasPrefix(Render(sealed), "private sealed class C"))
}
