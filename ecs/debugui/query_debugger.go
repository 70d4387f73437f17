package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/maskecs/ecs"
)

// Clause is the role a component type plays in the query being debugged.
type Clause int

const (
	ClauseIgnore Clause = iota
	ClauseAll
	ClauseAny
	ClauseNone
)

func (c Clause) String() string {
	switch c {
	case ClauseAll:
		return "all"
	case ClauseAny:
		return "any"
	case ClauseNone:
		return "none"
	default:
		return "-"
	}
}

// next cycles ignore -> all -> any -> none -> ignore.
func (c Clause) next() Clause {
	return (c + 1) % 4
}

// QueryDebuggerCache holds the last compiled filter and its matches.
type QueryDebuggerCache struct {
	componentTypes []ecs.ComponentType
	filter         ecs.Filter
	query          *ecs.Query
	matches        []*ecs.Entity
}

// NewQueryDebuggerComponent returns a debugger with every type ignored.
func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		clauses: make(map[ecs.ComponentType]Clause),
		cache:   &QueryDebuggerCache{},
	}
}

// Render draws the clause table and the entities matching the current filter.
func (qd *QueryDebuggerComponent) Render(world *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	qd.cache.componentTypes = world.Resolver().Types()

	imgui.Text("Click a component type to cycle all / any / none:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		clear(qd.clauses)
	}

	for _, t := range qd.cache.componentTypes {
		clause := qd.clauses[t]
		if imgui.Button(fmt.Sprintf("%4s##%d", clause, t)) {
			qd.SetClause(t, clause.next())
		}
		imgui.SameLine()
		imgui.Text(t.String())
	}

	imgui.Separator()

	filter := qd.Filter()
	if len(filter.All) == 0 && len(filter.Any) == 0 && len(filter.None) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matches := qd.evaluate(world)
	imgui.Text(fmt.Sprintf("Query: %s", qd.cache.query))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(matches)))

	if imgui.TreeNodeStr("Matches") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryMatchTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Entity ID")
			imgui.TableSetupColumn("Archetype")
			imgui.TableSetupColumn("Components")
			imgui.TableHeadersRow()

			for _, e := range matches {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(e.ID().String())

				imgui.TableSetColumnIndex(1)
				imgui.Text(e.Archetype().String())

				imgui.TableSetColumnIndex(2)
				imgui.Text(fmt.Sprintf("%v", e.Types()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// SetClause assigns t to a clause of the debugged query.
func (qd *QueryDebuggerComponent) SetClause(t ecs.ComponentType, clause Clause) {
	if clause == ClauseIgnore {
		delete(qd.clauses, t)
		return
	}
	qd.clauses[t] = clause
}

// Filter returns the filter built from the current selection, with each
// clause ordered by component type.
func (qd *QueryDebuggerComponent) Filter() ecs.Filter {
	var filter ecs.Filter
	for t, clause := range qd.clauses {
		switch clause {
		case ClauseAll:
			filter.All = append(filter.All, t)
		case ClauseAny:
			filter.Any = append(filter.Any, t)
		case ClauseNone:
			filter.None = append(filter.None, t)
		}
	}
	slices.Sort(filter.All)
	slices.Sort(filter.Any)
	slices.Sort(filter.None)
	return filter
}

// evaluate runs the selected filter through the world's index. The query is
// recompiled only when the selection changes.
func (qd *QueryDebuggerComponent) evaluate(world *ecs.World) []*ecs.Entity {
	filter := qd.Filter()
	if qd.cache.query == nil || !sameFilter(filter, qd.cache.filter) {
		qd.cache.filter = filter
		qd.cache.query = world.QueryFilter(filter)
	}
	qd.cache.matches = world.Find(qd.cache.query)
	return qd.cache.matches
}

func sameFilter(a, b ecs.Filter) bool {
	return slices.Equal(a.All, b.All) && slices.Equal(a.Any, b.Any) && slices.Equal(a.None, b.None)
}
