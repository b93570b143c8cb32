package component

// Wave — текущая волна воров
type Wave struct {
	Number         int
	EnemyID        string
	EnemiesToSpawn int
	SpawnTimer     float64
	SpawnInterval  float64 // секунды
}
