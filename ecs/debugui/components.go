package debugui

import (
	"github.com/plus3/maskecs/ecs"
)

// EntityBrowserComponent lists live entities with search and paging.
type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntityID   ecs.EntityID
	filterText         string
	filterArchetype    *ecs.Mask
	maxEntitiesPerPage int
	currentPage        int
}

// ComponentInspectorComponent shows and edits the payloads of one entity.
type ComponentInspectorComponent struct {
	selectedEntityID ecs.EntityID
	fields           fieldCache
}

// ArchetypeViewerComponent lists live archetypes with their entity counts.
type ArchetypeViewerComponent struct {
	cache             *ArchetypeViewerCache
	selectedArchetype *ecs.Mask
}

// PerformanceStatsComponent plots frame times and shows index and system stats.
type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// QueryDebuggerComponent builds an all/any/none filter and lists its matches.
type QueryDebuggerComponent struct {
	clauses map[ecs.ComponentType]Clause
	cache   *QueryDebuggerCache
}

var (
	EntityBrowserKind      = ecs.DefineComponent[EntityBrowserComponent]("debugui.EntityBrowser")
	ComponentInspectorKind = ecs.DefineComponent[ComponentInspectorComponent]("debugui.ComponentInspector")
	ArchetypeViewerKind    = ecs.DefineComponent[ArchetypeViewerComponent]("debugui.ArchetypeViewer")
	PerformanceStatsKind   = ecs.DefineComponent[PerformanceStatsComponent]("debugui.PerformanceStats")
	QueryDebuggerKind      = ecs.DefineComponent[QueryDebuggerComponent]("debugui.QueryDebugger")
)
