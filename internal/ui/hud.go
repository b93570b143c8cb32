package ui

import (
	"fmt"

	"tower-fusion/internal/component"
	"tower-fusion/internal/config"
	"tower-fusion/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD показывает ресурсы игрока. Значения приходят только через события,
// напрямую в контроллеры HUD не заглядывает.
type HUD struct {
	face            font.Face
	eventDispatcher *event.Dispatcher
	subscriptions   []event.Subscription

	state       component.SessionState
	maxHealth   int
	cornStolen  int
	cornInitial int
	warning     string

	health    *PlayerHealthIndicator
	wave      *WaveIndicator
	Indicator *StateIndicator
}

func NewHUD(eventDispatcher *event.Dispatcher, initial component.SessionState, cornInitial int) *HUD {
	face := basicfont.Face7x13
	h := &HUD{
		face:            face,
		eventDispatcher: eventDispatcher,
		state:           initial,
		maxHealth:       initial.Health,
		cornInitial:     cornInitial,
		health:          NewPlayerHealthIndicator(config.HUDMarginX, config.HUDMarginY+config.HUDLineSpacing*5, face),
		wave:            NewWaveIndicator(config.ScreenWidth/2, config.HUDMarginY+config.HUDLineSpacing, face),
		Indicator:       NewStateIndicator(config.ScreenWidth-30, 30, 10),
	}
	for _, t := range []event.EventType{
		event.HealthChanged, event.GoldChanged, event.WaveChanged, event.LifecycleChanged,
		event.CornStolen, event.LowCornWarning, event.GameLostToCorn,
	} {
		h.subscriptions = append(h.subscriptions, eventDispatcher.Subscribe(t, h))
	}
	return h
}

func (h *HUD) Close() {
	for _, sub := range h.subscriptions {
		h.eventDispatcher.Unsubscribe(sub)
	}
	h.subscriptions = nil
}

func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.HealthChanged:
		h.state.Health, _ = e.Data.(int)
	case event.GoldChanged:
		h.state.Gold, _ = e.Data.(int)
	case event.WaveChanged:
		h.state.Wave, _ = e.Data.(int)
		if h.state.Wave == 0 {
			h.cornStolen = 0
			h.warning = ""
		}
	case event.LifecycleChanged:
		h.state.Lifecycle, _ = e.Data.(component.Lifecycle)
	case event.CornStolen:
		h.cornStolen++
	case event.LowCornWarning:
		remaining, _ := e.Data.(int)
		h.warning = fmt.Sprintf("Only %d corn left in storage!", remaining)
	case event.GameLostToCorn:
		h.warning = "All corn has been stolen!"
	}
}

// Lines возвращает текстовые строки HUD сверху вниз.
func (h *HUD) Lines() []string {
	lines := []string{
		fmt.Sprintf("Health: %d", h.state.Health),
		fmt.Sprintf("Gold: %d", h.state.Gold),
		fmt.Sprintf("Wave: %d (%s)", h.state.Wave, h.state.Lifecycle),
		fmt.Sprintf("Corn stolen: %d/%d", h.cornStolen, h.cornInitial),
	}
	if h.warning != "" {
		lines = append(lines, h.warning)
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image) {
	for i, line := range h.Lines() {
		clr := config.TextLightColor
		if i == 4 {
			clr = config.WarningColor
		}
		text.Draw(screen, line, h.face, config.HUDMarginX, config.HUDMarginY+config.HUDLineSpacing*(i+1), clr)
	}
	h.health.Y = float32(config.HUDMarginY + config.HUDLineSpacing*(len(h.Lines())+1))
	h.health.Draw(screen, h.state.Health, h.maxHealth)
	h.wave.Draw(screen, h.state.Wave)
	h.Indicator.Draw(screen, h.state.Lifecycle)
}
