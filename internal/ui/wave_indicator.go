package ui

import (
	"image/color"
	"strings"

	"tower-fusion/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y      int
	Face      font.Face
	Color     color.Color
	BossColor color.Color
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:         x,
		Y:         y,
		Face:      face,
		Color:     config.TextLightColor,
		BossColor: config.WaveStateColor,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	// Каждая десятая волна — «босс»
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = i.BossColor
	}

	// Центрируем текст
	width := font.MeasureString(i.Face, label).Round()
	text.Draw(screen, label, i.Face, i.X-width/2, i.Y, textColor)
}
