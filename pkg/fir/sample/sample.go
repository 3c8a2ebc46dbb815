// Package sample provides canonical trees for the firdump CLI and the
// renderer's golden tests. The trees are hand-built the way a front
// end would leave them: greeter is fully resolved, partial is caught
// mid-resolution with unknown visibilities, syntactic supertypes, and
// error placeholders.
package sample

import (
	"github.com/vito/firdump/pkg/fir"
	"github.com/vito/firdump/pkg/sem"
)

// Names returns the available sample names in stable order.
func Names() []string {
	return []string{"greeter", "partial"}
}

// Named returns the sample tree with the given name.
func Named(name string) (*fir.File, bool) {
	switch name {
	case "greeter":
		return Greeter(), true
	case "partial":
		return Partial(), true
	default:
		return nil, false
	}
}

func resolved(id string, args ...sem.Projection) *fir.ResolvedTypeRef {
	return &fir.ResolvedTypeRef{Type: &sem.ClassType{ID: id, Args: args}}
}

func typeParam(name string) sem.Projection {
	return sem.OutProj(&sem.ParameterType{Symbol: &sem.TypeParameterSymbol{Name: name}})
}

func access(name string) *fir.Access {
	return &fir.Access{Name: name}
}

func intLit(v string) *fir.Constant {
	return &fir.Constant{Kind: "Int", Value: v}
}

func strLit(v string) *fir.Constant {
	return &fir.Constant{Kind: "String", Value: v}
}

// Greeter is a fully resolved file: a class with a constructor,
// properties, a when-dispatching method, a generic container, a loop
// with a labeled jump, and a type alias.
func Greeter() *fir.File {
	greeter := &fir.Class{
		Kind:       fir.KindClass,
		Name:       "Greeter",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		Supertypes: []fir.TypeRef{resolved("kotlin.Any")},
		Members: []fir.Declaration{
			&fir.Constructor{
				Visibility: fir.VisibilityPublic,
				Params: []*fir.Parameter{
					{Name: "greeting", Type: resolved("kotlin.String")},
				},
				ReturnType: resolved("Greeter"),
				DelegatedCall: &fir.DelegatedConstructorCall{
					Kind:            "super",
					ConstructedType: resolved("kotlin.Any"),
				},
			},
			&fir.Property{
				Name:       "greeting",
				Visibility: fir.VisibilityPublic,
				Modality:   fir.ModalityFinal,
				ReturnType: resolved("kotlin.String"),
			},
			&fir.Property{
				Name:        "count",
				IsVar:       true,
				Visibility:  fir.VisibilityPublic,
				Modality:    fir.ModalityFinal,
				ReturnType:  resolved("kotlin.Int"),
				Initializer: intLit("0"),
			},
			&fir.Function{
				Name:       "greet",
				Visibility: fir.VisibilityPublic,
				Modality:   fir.ModalityFinal,
				Params: []*fir.Parameter{
					{Name: "name", Type: resolved("kotlin.String"), Default: strLit("world")},
				},
				ReturnType: resolved("kotlin.String"),
				Body: &fir.Block{Statements: []fir.Statement{
					&fir.When{
						Subject: access("name"),
						Branches: []*fir.WhenBranch{
							{
								Condition: &fir.OperatorCall{
									Operator: "==",
									Args:     []fir.Expression{access("name"), strLit("world")},
								},
								Result: &fir.Return{Target: "greet", Result: access("greeting")},
							},
							{
								Condition: &fir.Else{},
								Result: &fir.Return{
									Target: "greet",
									Result: &fir.OperatorCall{
										Operator: "+",
										Args:     []fir.Expression{access("greeting"), access("name")},
									},
								},
							},
						},
					},
				}},
			},
		},
	}

	box := &fir.Class{
		Kind:       fir.KindClass,
		Name:       "Box",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		TypeParams: []*fir.TypeParameter{{Name: "T"}},
		Members: []fir.Declaration{
			&fir.Property{
				Name:       "value",
				Visibility: fir.VisibilityPublic,
				Modality:   fir.ModalityFinal,
				ReturnType: &fir.ResolvedTypeRef{
					Type: &sem.ParameterType{Symbol: &sem.TypeParameterSymbol{Name: "T"}},
				},
			},
			&fir.Function{
				Name:       "fill",
				Visibility: fir.VisibilityPublic,
				Modality:   fir.ModalityFinal,
				Params: []*fir.Parameter{
					{Name: "source", Type: resolved("kotlin.collections.List", typeParam("T"))},
				},
				ReturnType: resolved("kotlin.Unit"),
			},
		},
	}

	loopCond := &fir.OperatorCall{
		Operator: ">",
		Args:     []fir.Expression{access("from"), intLit("0")},
	}
	loop := &fir.WhileLoop{Condition: loopCond}
	loop.Body = &fir.Block{Statements: []fir.Statement{
		&fir.When{Branches: []*fir.WhenBranch{
			{
				Condition: &fir.OperatorCall{
					Operator: "==",
					Args:     []fir.Expression{access("from"), intLit("3")},
				},
				Result: &fir.Break{Target: loop},
			},
			{Condition: &fir.Else{}, Result: &fir.UnitExpression{}},
		}},
		&fir.Assignment{
			Target: access("from"),
			Value: &fir.OperatorCall{
				Operator: "-",
				Args:     []fir.Expression{access("from"), intLit("1")},
			},
		},
	}}

	countdown := &fir.Function{
		Name:       "countdown",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		Params: []*fir.Parameter{
			{Name: "from", Type: resolved("kotlin.Int")},
		},
		ReturnType: resolved("kotlin.Unit"),
		Body: &fir.Block{Statements: []fir.Statement{
			loop,
			&fir.Return{Target: "countdown", Result: &fir.UnitExpression{}},
		}},
	}

	alias := &fir.TypeAlias{
		Name:       "Name",
		Visibility: fir.VisibilityPublic,
		Expanded:   resolved("kotlin.String"),
	}

	return &fir.File{
		Name:  "greeter.kt",
		Decls: []fir.Declaration{greeter, box, countdown, alias},
	}
}

// Partial is a file caught mid-resolution: unknown visibility and
// modality, a syntactic supertype, an implicit return type, error
// placeholders, and a dynamic type.
func Partial() *fir.File {
	shape := &fir.Class{
		Kind: fir.KindInterface,
		Name: "Shape",
		Members: []fir.Declaration{
			&fir.Function{
				Name:       "area",
				ReturnType: &fir.ImplicitTypeRef{Builtin: "Double"},
			},
		},
	}

	circle := &fir.Class{
		Kind:       fir.KindClass,
		Name:       "Circle",
		Visibility: fir.VisibilityPublic,
		Supertypes: []fir.TypeRef{
			&fir.UserTypeRef{Qualifiers: []fir.Qualifier{{Name: "Shape"}}},
		},
		Members: []fir.Declaration{
			&fir.Property{
				Name:       "radius",
				Visibility: fir.VisibilityPublic,
				Modality:   fir.ModalityFinal,
				ReturnType: &fir.ResolvedTypeRef{
					IsNullable: true,
					Type:       &sem.ClassType{ID: "kotlin.Double"},
				},
			},
			&fir.Property{
				Name:       "cache",
				Visibility: fir.VisibilityPublic,
				ReturnType: &fir.ErrorTypeRef{Reason: "cannot infer type"},
			},
			&fir.Function{
				Name:       "area",
				IsOverride: true,
				ReturnType: resolved("kotlin.Double"),
				Body: &fir.Block{Statements: []fir.Statement{
					&fir.Return{
						Target: "area",
						Result: &fir.ErrorExpression{Reason: "unresolved reference: PI"},
					},
				}},
			},
		},
	}

	transform := &fir.Function{
		Name:       "transform",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		Params: []*fir.Parameter{
			{
				Name: "f",
				Type: &fir.FunctionTypeRef{
					Params: []fir.TypeRef{resolved("kotlin.Double")},
					Return: resolved("kotlin.Double"),
				},
			},
		},
		ReturnType: resolved("kotlin.Double"),
	}

	config := &fir.Property{
		Name:       "config",
		Visibility: fir.VisibilityPublic,
		Modality:   fir.ModalityFinal,
		ReturnType: &fir.DynamicTypeRef{},
	}

	return &fir.File{
		Name:  "shapes.kt",
		Decls: []fir.Declaration{shape, circle, transform, config},
	}
}
