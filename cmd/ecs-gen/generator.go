package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/plus3/maskecs/ecs"
)

// Params controls the shape of the generated table.
type Params struct {
	Package    string
	Components int
	Systems    int
	Seed       uint64
}

func (p Params) validate() error {
	if p.Components < 1 || p.Components > ecs.MaskWidth {
		return fmt.Errorf("components must be in [1, %d], got %d", ecs.MaskWidth, p.Components)
	}
	if p.Systems < 0 {
		return fmt.Errorf("systems must not be negative, got %d", p.Systems)
	}
	if p.Package == "" {
		return fmt.Errorf("package name is empty")
	}
	return nil
}

type systemSpec struct {
	Index int
	Stage string
	All   []int
	Any   []int
	None  []int
}

type templateData struct {
	Params
	Kinds   []int
	Systems []systemSpec
}

var stages = []string{"StagePreUpdate", "StageUpdate", "StagePostUpdate"}

// Generate renders the component and system table for p into w.
func Generate(w io.Writer, p Params) error {
	if err := p.validate(); err != nil {
		return err
	}

	rng := newRand(p.Seed)
	data := templateData{Params: p}
	for i := range p.Components {
		data.Kinds = append(data.Kinds, i)
	}
	for i := range p.Systems {
		data.Systems = append(data.Systems, randomSystem(rng, i, p.Components))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	src, err := imports.Process("generated.go", buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}

	_, err = w.Write(src)
	return err
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// randomSystem picks disjoint all/any/none sets. Every system has at least
// one required component so its update function has something to touch.
func randomSystem(rng *rand.Rand, index, components int) systemSpec {
	perm := rng.Perm(components)
	take := func(max int) []int {
		n := rng.IntN(max + 1)
		if n > len(perm) {
			n = len(perm)
		}
		out := perm[:n:n]
		perm = perm[n:]
		return out
	}

	spec := systemSpec{Index: index, Stage: stages[index%len(stages)]}
	spec.All = append(spec.All, perm[0])
	perm = perm[1:]
	spec.All = append(spec.All, take(1)...)
	spec.Any = take(2)
	spec.None = take(1)
	return spec
}

var fileTemplate = template.Must(template.New("generated").Parse(`// Code generated by ecs-gen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"

	"github.com/plus3/maskecs/ecs"
)

const (
	componentCount = {{.Components}}
	systemCount    = {{len .Systems}}
)

// Payload is the data carried by every generated component.
type Payload struct {
	Value int64
}

var componentKinds = [componentCount]ecs.ComponentKind[Payload]{
{{- range .Kinds}}
	ecs.DefineComponent[Payload]("stress.Component{{.}}"),
{{- end}}
}

{{range .Systems}}
func system{{.Index}}(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
	for _, e := range entities {
		if p, ok := componentKinds[{{index .All 0}}].Get(e); ok {
			p.Value++
		}
	}
}
{{end}}

// RegisterAllGeneratedSystems adds every generated system to world.
func RegisterAllGeneratedSystems(world *ecs.World) error {
{{- range .Systems}}
	if err := world.RegisterSystem("system{{.Index}}", ecs.{{.Stage}}, world.QueryFilter(ecs.Filter{
		All: []ecs.ComponentType{ {{- range .All}}componentKinds[{{.}}].Type(), {{end -}} },
		{{- if .Any}}
		Any: []ecs.ComponentType{ {{- range .Any}}componentKinds[{{.}}].Type(), {{end -}} },
		{{- end}}
		{{- if .None}}
		None: []ecs.ComponentType{ {{- range .None}}componentKinds[{{.}}].Type(), {{end -}} },
		{{- end}}
	}), system{{.Index}}); err != nil {
		return fmt.Errorf("register system{{.Index}}: %w", err)
	}
{{- end}}
	return nil
}
`))
