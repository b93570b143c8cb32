// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"tower-fusion/internal/component"
	"tower-fusion/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок в углу экрана, цвет зависит от фазы сессии.
// Клик по нему запускает волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// LifecycleColor возвращает цвет индикатора для фазы.
func LifecycleColor(l component.Lifecycle) color.RGBA {
	switch l {
	case component.WaveInProgress:
		return config.WaveStateColor
	case component.GameOver:
		return config.ThiefColor
	case component.Victory:
		return config.SpawnColor
	case component.Paused:
		return config.WarningColor
	}
	return config.BuildStateColor
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, l component.Lifecycle) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, LifecycleColor(l), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 2, config.TextLightColor, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx := float64(float32(x) - i.X)
	dy := float64(float32(y) - i.Y)
	return math.Hypot(dx, dy) <= float64(i.Radius)
}

// HandleClick обрабатывает клик
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
