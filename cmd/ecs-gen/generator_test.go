package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParses(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, Params{Package: "main", Components: 8, Systems: 5, Seed: 7})
	require.NoError(t, err)

	src := buf.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by ecs-gen. DO NOT EDIT."))
	assert.Contains(t, src, "componentCount = 8")
	assert.Contains(t, src, "systemCount    = 5")
	assert.Contains(t, src, `"stress.Component7"`)
	assert.NotContains(t, src, `"stress.Component8"`)

	file, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "main", file.Name.Name)

	var funcs []string
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs = append(funcs, fn.Name.Name)
		}
	}
	assert.Equal(t, []string{"system0", "system1", "system2", "system3", "system4", "RegisterAllGeneratedSystems"}, funcs)
}

func TestGenerateIsDeterministic(t *testing.T) {
	params := Params{Package: "stress", Components: 16, Systems: 10, Seed: 42}

	var a, b bytes.Buffer
	require.NoError(t, Generate(&a, params))
	require.NoError(t, Generate(&b, params))
	assert.Equal(t, a.String(), b.String())

	params.Seed = 43
	var c bytes.Buffer
	require.NoError(t, Generate(&c, params))
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerateWithoutSystemsDropsFmt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, Params{Package: "main", Components: 1}))
	assert.NotContains(t, buf.String(), `"fmt"`)
	assert.Contains(t, buf.String(), "func RegisterAllGeneratedSystems(")
}

func TestGenerateRejectsBadParams(t *testing.T) {
	cases := map[string]Params{
		"too many components": {Package: "main", Components: 33},
		"no components":       {Package: "main", Components: 0},
		"negative systems":    {Package: "main", Components: 4, Systems: -1},
		"no package":          {Components: 4},
	}
	for name, params := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Generate(&bytes.Buffer{}, params))
		})
	}
}

func TestRandomSystemFiltersAreDisjoint(t *testing.T) {
	for seed := range uint64(50) {
		spec := randomSystem(newRand(seed), 0, 6)
		require.NotEmpty(t, spec.All)
		seen := map[int]bool{}
		for _, set := range [][]int{spec.All, spec.Any, spec.None} {
			for _, c := range set {
				assert.False(t, seen[c], "component %d used twice", c)
				seen[c] = true
				assert.Less(t, c, 6)
			}
		}
	}
}
