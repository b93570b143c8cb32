// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static data for a type of corn thief.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Speed  float64 `json:"speed"`
	// Золото за убийство и урон базе, если вор ушёл без добычи.
	GoldReward     int `json:"gold_reward"`
	DamageToPlayer int `json:"damage_to_player"`
}

// EnemyLibrary is the built-in set of thieves, keyed by ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"THIEF_CROW":    {ID: "THIEF_CROW", Name: "Crow", Health: 2, Speed: 110, GoldReward: 5, DamageToPlayer: 1},
	"THIEF_RACCOON": {ID: "THIEF_RACCOON", Name: "Raccoon", Health: 4, Speed: 80, GoldReward: 10, DamageToPlayer: 1},
	"THIEF_BOAR":    {ID: "THIEF_BOAR", Name: "Boar", Health: 8, Speed: 55, GoldReward: 25, DamageToPlayer: 3},
	"THIEF_FOX":     {ID: "THIEF_FOX", Name: "Fox", Health: 3, Speed: 140, GoldReward: 10, DamageToPlayer: 2},
}
