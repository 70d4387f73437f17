// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS components and systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/maskecs/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton component.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

var (
	ImguiItemKind       = ecs.DefineComponent[ImguiItem]("debugui.ImguiItem")
	ImguiInputStateKind = ecs.DefineComponent[ImguiInputState]("debugui.ImguiInputState")
)

// RegisterImguiSystem registers a RENDER stage system that refreshes the
// ImguiInputState singleton and defers the render function of every
// ImguiItem, so that widgets are drawn after all structural changes of the
// frame have been applied.
func RegisterImguiSystem(world *ecs.World) error {
	input := ecs.NewSingleton(world, ImguiInputStateKind)

	return world.RegisterSystem("debugui.imgui", ecs.StageRender, world.QueryAll(ImguiItemKind.Type()),
		func(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
			state := input.Get()
			state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
			state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

			for _, e := range entities {
				if item := ImguiItemKind.MustGet(e); item.Render != nil {
					frame.Commands.Defer(item.Render)
				}
			}
		})
}

// InputCaptured reports whether ImGui consumed the mouse during the last frame.
// It is false when no ImguiSystem was registered.
func InputCaptured(world *ecs.World) bool {
	c, ok := world.Singleton(ImguiInputStateKind.Type())
	if !ok {
		return false
	}
	state, _ := c.Data.(*ImguiInputState)
	return state != nil && state.WantCaptureMouse
}
