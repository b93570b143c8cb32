// internal/state/game_state.go
package state

import (
	"tower-fusion/internal/app"
	"tower-fusion/internal/component"
	"tower-fusion/internal/config"
	"tower-fusion/internal/defs"
	"tower-fusion/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState — экран игры
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	hud       *ui.HUD
	waves     map[int]defs.WaveDefinition
	showDebug bool
}

func NewGameState(sm *StateMachine, settings config.Settings, waves map[int]defs.WaveDefinition) *GameState {
	gameLogic := app.NewGame(settings, waves)
	return &GameState{
		sm:    sm,
		game:  gameLogic,
		hud:   ui.NewHUD(gameLogic.EventDispatcher, gameLogic.StateSystem.Snapshot(), gameLogic.CornSystem.InitialCornCount()),
		waves: waves,
	}
}

// Enter вызывается и при возврате из паузы, поэтому ничего не создаёт.
func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9):
		if g.game.StateSystem.Lifecycle().IsTerminal() {
			break
		}
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.close()
		g.sm.SetState(NewMenuState(g.sm, g.game.Settings, g.waves))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.hud.Indicator.HandleClick()
		g.game.StartWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.game.DeclareVictory()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.showDebug = !g.showDebug
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.hud.Indicator.IsClicked(x, y) {
			g.hud.Indicator.HandleClick()
			g.game.StartWave()
		}
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	storage := g.game.Storage.Position()
	vector.DrawFilledCircle(screen, float32(storage.X), float32(storage.Y), float32(g.game.Settings.CornGrabRange), config.StorageColor, true)
	vector.StrokeCircle(screen, config.SpawnX, config.SpawnY, 14, 2, config.SpawnColor, true)

	for _, id := range g.game.ECS.ThiefIDs() {
		pos := g.game.ECS.Positions[id]
		clr := config.ThiefColor
		if g.game.ECS.Thieves[id].Phase == component.ThiefCarrying {
			clr = config.CarrierColor
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 7, clr, true)
	}

	g.hud.Draw(screen)
	if g.showDebug {
		ebitenutil.DebugPrintAt(screen, g.game.DebugInfo(), config.HUDMarginX, config.ScreenHeight-48)
	}
}

func (g *GameState) Exit() {}

func (g *GameState) close() {
	g.hud.Close()
	g.game.Close()
}
