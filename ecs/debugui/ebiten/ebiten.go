// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine
// and an ebiten.Game that drives a world once per frame.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/maskecs/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// ImguiBackendKind stores the backend as a world singleton.
var ImguiBackendKind = ecs.DefineComponent[ImguiBackend]("debugui.ImguiBackend")

// DrawFunc paints the game content below the ImGui overlay.
type DrawFunc func(screen *ebiten.Image)

// Game implements ebiten.Game. Each Update wraps one world tick in an ImGui
// frame so that deferred panel renders land inside it.
type Game struct {
	World *ecs.World
	Paint DrawFunc

	backend *ecs.Singleton[ImguiBackend]
	tps     float64
}

// NewGame creates a Game ticking world at ebiten's TPS. The backend is stored
// as a singleton so systems can reach it.
func NewGame(world *ecs.World, backend *ebitenbackend.EbitenBackend, draw DrawFunc) *Game {
	return &Game{
		World:   world,
		Paint:   draw,
		backend: ecs.NewSingleton(world, ImguiBackendKind, ImguiBackend{EbitenBackend: backend}),
		tps:     float64(ebiten.TPS()),
	}
}

func (g *Game) Update() error {
	g.backend.Get().BeginFrame()
	g.World.Tick(1.0 / g.tps)
	g.backend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.Paint != nil {
		g.Paint(screen)
	}
	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
