package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/maskecs/ecs"
)

// ArchetypeInfo is one row of the archetype viewer.
type ArchetypeInfo struct {
	Archetype      ecs.Mask
	ComponentTypes []string
	EntityCount    int
}

// ArchetypeViewerCache holds the sorted rows of the last render.
type ArchetypeViewerCache struct {
	archetypes    []ArchetypeInfo
	sortColumn    int
	sortAscending bool
}

// NewArchetypeViewerComponent returns a viewer sorted by entity count.
func NewArchetypeViewerComponent() ArchetypeViewerComponent {
	return ArchetypeViewerComponent{
		cache: &ArchetypeViewerCache{
			sortColumn:    3,
			sortAscending: false,
		},
	}
}

// Render draws the live archetypes and returns the archetype clicked this
// frame, if any.
func (av *ArchetypeViewerComponent) Render(world *ecs.World) *ecs.Mask {
	if !imgui.BeginV("Archetype Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	av.rebuildCache(world)

	maxEntityCount := 0
	for _, arch := range av.cache.archetypes {
		maxEntityCount = max(maxEntityCount, arch.EntityCount)
	}

	var clicked *ecs.Mask

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ArchetypeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Comp Count")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			av.cache.sortColumn = int(spec.ColumnIndex())
			av.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			av.sortArchetypes()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, arch := range av.cache.archetypes {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := av.selectedArchetype != nil && *av.selectedArchetype == arch.Archetype
			if imgui.SelectableBoolV(arch.Archetype.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				selected := arch.Archetype
				clicked = &selected
				av.selectedArchetype = &selected
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(arch.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(arch.ComponentTypes)))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", arch.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(arch.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

func (av *ArchetypeViewerComponent) rebuildCache(world *ecs.World) {
	breakdown := world.CollectStats().ArchetypeBreakdown
	av.cache.archetypes = av.cache.archetypes[:0]

	for _, arch := range breakdown {
		names := make([]string, len(arch.ComponentTypes))
		for i, t := range arch.ComponentTypes {
			names[i] = t.String()
		}

		av.cache.archetypes = append(av.cache.archetypes, ArchetypeInfo{
			Archetype:      arch.Archetype,
			ComponentTypes: names,
			EntityCount:    arch.EntityCount,
		})
	}

	av.sortArchetypes()
}

func (av *ArchetypeViewerComponent) sortArchetypes() {
	sort.SliceStable(av.cache.archetypes, func(i, j int) bool {
		a, b := av.cache.archetypes[i], av.cache.archetypes[j]
		if !av.cache.sortAscending {
			a, b = b, a
		}

		switch av.cache.sortColumn {
		case 0:
			return a.Archetype < b.Archetype
		case 1:
			return strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 2:
			return len(a.ComponentTypes) < len(b.ComponentTypes)
		default:
			return a.EntityCount < b.EntityCount
		}
	})
}
