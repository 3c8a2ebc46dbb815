package sem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	intT := &ClassType{ID: "kotlin.Int"}
	stringT := &ClassType{ID: "kotlin.String"}

	cases := []struct {
		name string
		typ  Type
		want string
	}{
		{"class", intT, "kotlin.Int"},
		{
			"generic",
			&ClassType{
				ID:   "kotlin.collections.Map",
				Args: []Projection{Invar(stringT), Invar(intT)},
			},
			"kotlin.collections.Map<kotlin.String, kotlin.Int>",
		},
		{
			"projections",
			&ClassType{
				ID:   "Box",
				Args: []Projection{StarProj(), InProj(intT), OutProj(stringT)},
			},
			"Box<*, in kotlin.Int, out kotlin.String>",
		},
		{
			"abbreviation",
			&ClassType{ID: "Name", Abbreviation: stringT},
			"Name = kotlin.String",
		},
		{
			"type parameter",
			&ParameterType{Symbol: &TypeParameterSymbol{Name: "T"}},
			"T",
		},
		{
			"unbound type parameter",
			&ParameterType{},
			"<unbound>",
		},
		{
			"function",
			&FunctionType{Params: []Type{intT}, Return: stringT},
			"(kotlin.Int) -> kotlin.String",
		},
		{
			"function with receiver",
			&FunctionType{Receiver: stringT, Params: []Type{intT, intT}, Return: stringT},
			"kotlin.String.(kotlin.Int, kotlin.Int) -> kotlin.String",
		},
		{
			"nested function",
			&FunctionType{
				Params: []Type{&FunctionType{Params: []Type{intT}, Return: intT}},
				Return: intT,
			},
			"((kotlin.Int) -> kotlin.Int) -> kotlin.Int",
		},
		{"error", &ErrorType{Reason: "unresolved symbol Foo"}, "error: unresolved symbol Foo"},
		{"nil", nil, "<null type>"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, TypeString(tc.typ))
		})
	}
}

func TestNames(t *testing.T) {
	require.Equal(t, "kotlin.Int", (&ClassType{ID: "kotlin.Int"}).Name())
	require.Equal(t, "Function", (&FunctionType{}).Name())
	require.Equal(t, "<error>", (&ErrorType{Reason: "x"}).Name())
}
