// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	MaxDeltaTime = 0.06

	StartingHealth     = 20
	StartingGold       = 1000
	WaveBonusBase      = 50 // Бонус за завершение волны: база + номер волны * прирост
	WaveBonusIncrement = 10
	VictoryWave        = 10 // После этой волны объявляется победа, 0 — без автопобеды

	InitialCorn      = 10
	LowCornThreshold = 5 // Предупреждение, когда в хранилище осталось столько или меньше
	CornGrabRange    = 24.0
	StorageX         = 720.0
	StorageY         = 320.0
	SpawnX           = 60.0
	SpawnY           = 320.0

	ThiefSpeed      = 90.0 // pixels per second
	ThiefHealth     = 3
	DamagePerLeak   = 1   // Урон базе от вора, ушедшего без кукурузы
	DefenseHitRate  = 0.9 // Попыток урона по вору в секунду
	DefenseHitRange = 260.0

	HUDMarginX     = 16
	HUDMarginY     = 16
	HUDLineSpacing = 18
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	WarningColor    = color.RGBA{255, 215, 0, 255}
	BuildStateColor = color.RGBA{70, 130, 180, 220}
	WaveStateColor  = color.RGBA{220, 60, 60, 220}
	StorageColor    = color.RGBA{255, 215, 0, 255}
	SpawnColor      = color.RGBA{0, 255, 0, 255}
	ThiefColor      = color.RGBA{150, 70, 70, 255}
	CarrierColor    = color.RGBA{255, 140, 0, 255}
)
