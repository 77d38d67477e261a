package system

import (
	"slices"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/types"
	"cyber-tower-defense/internal/utils"
)

// GeneratePath builds a downward path of 5 to 7 waypoints. Y grows by about
// 100/n per step with a little jitter, starting at 0 and ending at 100; X
// stays inside [10, 90) to keep enemies off the edges.
func GeneratePath(rng *utils.PRNGService) []component.Position {
	n := config.PathMinWaypoints + rng.Intn(config.PathExtraWaypoints)
	step := 100 / float64(n)

	path := make([]component.Position, n)
	path[0] = component.Position{X: rng.Uniform(config.PathMinX, config.PathSpanX), Y: 0}
	for i := 1; i < n; i++ {
		path[i] = component.Position{
			X: rng.Uniform(config.PathMinX, config.PathSpanX),
			Y: path[i-1].Y + step + rng.Uniform(0, config.PathJitterY),
		}
	}
	path[n-1] = component.Position{X: rng.Uniform(config.PathMinX, config.PathSpanX), Y: 100}
	return path
}

// CreateSpawnedEnemy instantiates an enemy at the start of a fresh path.
func CreateSpawnedEnemy(def defs.EnemyDefinition, id types.InstanceID, rng *utils.PRNGService) *component.SpawnedEnemy {
	path := GeneratePath(rng)
	return &component.SpawnedEnemy{
		EnemyDefinition: def,
		InstanceID:      id,
		Position:        path[0],
		Health:          config.EnemyHealth,
		Path:            path,
	}
}

// CreatePlacedTower instantiates a tower and derives its range and cooldown.
// Towers with counters, and the high-tier encryption family, get cumulative
// bonuses.
func CreatePlacedTower(def defs.TowerDefinition, id types.InstanceID, pos component.Position) *component.PlacedTower {
	rng := config.TowerRangeSingle
	if def.AttackType == defs.AttackArea {
		rng = config.TowerRangeArea
	}
	cooldown := config.TowerBaseCooldown

	if len(def.Counters) > 0 {
		rng += config.CounterRangeBonus
		cooldown -= config.CounterCooldownBonus
	}
	if slices.Contains(config.HighTierTowers, def.ID) {
		rng += config.HighTierRangeBonus
		cooldown -= config.HighTierCooldown
	}

	return &component.PlacedTower{
		TowerDefinition: def,
		InstanceID:      id,
		Position:        pos,
		Range:           rng,
		Cooldown:        cooldown,
	}
}
