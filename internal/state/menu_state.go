// internal/state/menu_state.go
package state

import (
	"tower-fusion/internal/config"
	"tower-fusion/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран
type MenuState struct {
	sm       *StateMachine
	settings config.Settings
	waves    map[int]defs.WaveDefinition
}

func NewMenuState(sm *StateMachine, settings config.Settings, waves map[int]defs.WaveDefinition) *MenuState {
	return &MenuState{sm: sm, settings: settings, waves: waves}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.settings, m.waves))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	text.Draw(screen, "TOWER FUSION", face, config.ScreenWidth/2-42, config.ScreenHeight/2-20, config.StorageColor)
	text.Draw(screen, "Press SPACE to start", face, config.ScreenWidth/2-70, config.ScreenHeight/2+4, config.TextLightColor)
}

func (m *MenuState) Exit() {}
