package debugui

import "github.com/plus3/maskecs/ecs"

// SpawnDebugUI creates the debug UI entity carrying every inspection panel
// and registers the systems drawing them.
func SpawnDebugUI(world *ecs.World) (*ecs.Entity, error) {
	if err := RegisterDebugUISystem(world); err != nil {
		return nil, err
	}

	return world.NewEntity(
		EntityBrowserKind.New(NewEntityBrowserComponent(100)),
		ComponentInspectorKind.New(NewComponentInspectorComponent()),
		ArchetypeViewerKind.New(NewArchetypeViewerComponent()),
		PerformanceStatsKind.New(NewPerformanceStatsComponent(120)),
		QueryDebuggerKind.New(NewQueryDebuggerComponent()),
	), nil
}

// RegisterDebugUISystem registers the RENDER stage system that draws the
// panels attached to any entity. Panels on the same entity share state: the
// entity browser selection drives the component inspector, and a click in
// the archetype viewer filters the entity browser.
func RegisterDebugUISystem(world *ecs.World) error {
	panels := world.QueryFilter(ecs.Filter{Any: []ecs.ComponentType{
		EntityBrowserKind.Type(),
		ComponentInspectorKind.Type(),
		ArchetypeViewerKind.Type(),
		PerformanceStatsKind.Type(),
		QueryDebuggerKind.Type(),
	}})

	return world.RegisterSystem("debugui.panels", ecs.StageRender, panels,
		func(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
			dt := float32(frame.DeltaTime)
			for _, e := range entities {
				frame.Commands.Defer(func() { renderPanels(frame.World, e, dt) })
			}
		})
}

func renderPanels(world *ecs.World, e *ecs.Entity, dt float32) {
	browser, hasBrowser := EntityBrowserKind.Get(e)

	if viewer, ok := ArchetypeViewerKind.Get(e); ok {
		if clicked := viewer.Render(world); clicked != nil && hasBrowser {
			browser.FilterArchetype(*clicked)
		}
	}

	if hasBrowser {
		browser.Render(world)
	}

	if inspector, ok := ComponentInspectorKind.Get(e); ok {
		selected := inspector.selectedEntityID
		if hasBrowser {
			selected = browser.SelectedEntity()
		}
		inspector.Render(world, selected)
	}

	if debugger, ok := QueryDebuggerKind.Get(e); ok {
		debugger.Render(world)
	}

	if stats, ok := PerformanceStatsKind.Get(e); ok {
		stats.Render(world, dt)
	}
}
