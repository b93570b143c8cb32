// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 5.0
	HealthCircleSpacing = 3.0
)

var (
	healthFullColor  = color.RGBA{50, 100, 255, 255}
	healthLowColor   = color.RGBA{220, 60, 60, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
	Face font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Face: face}
}

// cellColor: пустые ячейки чёрные, при здоровье не больше половины все красные.
func cellColor(cell, health, maxHealth int) color.RGBA {
	if cell >= health {
		return healthEmptyColor
	}
	if health <= maxHealth/2 {
		return healthLowColor
	}
	return healthFullColor
}

// Draw рисует индикатор здоровья игрока.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		cx := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		cy := i.Y + float32(j/HealthCols)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, cellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, healthText, i.Face, int(i.X), int(i.Y)-4, color.White)
}
