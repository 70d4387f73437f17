package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/maskecs/ecs"
	"github.com/plus3/maskecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/maskecs/ecs/debugui/ebiten"
)

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	world := ecs.NewWorld()

	// Spawn entities with ImGui render functions
	world.NewEntity(debugui.ImguiItemKind.New(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	}))

	if err := debugui.RegisterImguiSystem(world); err != nil {
		panic(err)
	}
	if _, err := debugui.SpawnDebugUI(world); err != nil {
		panic(err)
	}

	game := debugui_ebiten.NewGame(world, imguiBackend, func(screen *ebiten.Image) {
		// Draw game content below the overlay
	})

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
