// internal/utils/math.go
package utils

import "tower-fusion/internal/component"

// MoveTowards сдвигает from к to не больше чем на step.
// Второе значение — дошли ли до цели.
func MoveTowards(from, to component.Position, step float64) (component.Position, bool) {
	dist := from.DistanceTo(to)
	if dist <= step || dist == 0 {
		return to, true
	}
	k := step / dist
	return component.Position{
		X: from.X + (to.X-from.X)*k,
		Y: from.Y + (to.Y-from.Y)*k,
	}, false
}
