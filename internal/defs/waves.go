package defs

import "time"

// WaveDefinition описывает параметры для одной волны воров.
type WaveDefinition struct {
	EnemyID       string        // Идентификатор вора из EnemyLibrary
	Count         int           // Количество воров в волне
	SpawnInterval time.Duration // Интервал между появлением воров
}

// WavePatterns определяет последовательность волн в игре.
// Ключ карты - это номер волны.
var WavePatterns = map[int]WaveDefinition{
	1:  {EnemyID: "THIEF_CROW", Count: 3, SpawnInterval: time.Millisecond * 900},
	2:  {EnemyID: "THIEF_CROW", Count: 4, SpawnInterval: time.Millisecond * 800},
	3:  {EnemyID: "THIEF_RACCOON", Count: 4, SpawnInterval: time.Millisecond * 800},
	4:  {EnemyID: "THIEF_RACCOON", Count: 5, SpawnInterval: time.Millisecond * 750},
	5:  {EnemyID: "THIEF_FOX", Count: 5, SpawnInterval: time.Millisecond * 700},
	6:  {EnemyID: "THIEF_BOAR", Count: 3, SpawnInterval: time.Second * 1},
	7:  {EnemyID: "THIEF_FOX", Count: 7, SpawnInterval: time.Millisecond * 600},
	8:  {EnemyID: "THIEF_RACCOON", Count: 8, SpawnInterval: time.Millisecond * 600},
	9:  {EnemyID: "THIEF_CROW", Count: 12, SpawnInterval: time.Millisecond * 400},
	10: {EnemyID: "THIEF_BOAR", Count: 6, SpawnInterval: time.Millisecond * 800},
}

// WaveFor возвращает определение волны. Волны после 10-й повторяют 6-ю..10-ю.
func WaveFor(patterns map[int]WaveDefinition, waveNumber int) (WaveDefinition, bool) {
	if def, ok := patterns[waveNumber]; ok {
		return def, true
	}
	if waveNumber > 10 {
		if def, ok := patterns[((waveNumber-6)%5)+6]; ok {
			return def, true
		}
	}
	def, ok := patterns[1]
	return def, ok
}
