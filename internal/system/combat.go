package system

import (
	"math"
	"time"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/entity"
	"cyber-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

type matchup struct {
	enemy, tower string
}

// specialDamage replaces the multiplier result for well-known pairings.
var specialDamage = map[matchup]float64{
	{"mitm", "encryption"}:   35,
	{"mitm", "vpn"}:          30,
	{"mitm", "ssl"}:          45,
	{"ddos", "firewall"}:     25,
	{"ransomware", "backup"}: 40,
	{"zeroday", "updates"}:   35,
}

// IsEffective reports whether the tower can damage the enemy at all: the
// tower counters it, or the enemy is weak to the tower.
func IsEffective(t defs.TowerDefinition, e defs.EnemyDefinition) bool {
	return t.CountersEnemy(e.ID) || e.WeakTo(t.ID)
}

func damageMultiplier(counter, weakness bool) float64 {
	switch {
	case counter && weakness:
		return config.CounterAndWeaknessMul
	case counter:
		return config.CounterOnlyMul
	case weakness:
		return config.WeaknessOnlyMul
	default:
		// Unreachable behind IsEffective.
		return config.NeutralMul
	}
}

// Damage is the rounded damage one attack of t deals to e. Ineffective
// pairings deal 0.
func Damage(t defs.TowerDefinition, e defs.EnemyDefinition) float64 {
	counter := t.CountersEnemy(e.ID)
	weakness := e.WeakTo(t.ID)
	if !counter && !weakness {
		return 0
	}

	dmg := config.BaseDamage * damageMultiplier(counter, weakness)
	if v, ok := specialDamage[matchup{enemy: e.ID, tower: t.ID}]; ok {
		dmg = v
	}
	return math.Round(dmg)
}

// CombatSystem resolves tower attacks once per tick.
type CombatSystem struct {
	ecs     *entity.ECS
	effects *StatusEffectSystem
}

func NewCombatSystem(ecs *entity.ECS, effects *StatusEffectSystem) *CombatSystem {
	return &CombatSystem{ecs: ecs, effects: effects}
}

// Update lets every ready tower attack all live enemies it is effective
// against and that are in range. A tower's cooldown restarts only when it hit
// something. Without a valid arena size no distances can be measured and no
// attacks happen.
func (s *CombatSystem) Update(now time.Time) {
	s.ecs.Attacks = nil
	arena := s.ecs.Arena
	if !arena.Valid() {
		return
	}

	towers := s.ecs.CloneTowers()
	enemies := s.ecs.CloneEnemies()

	for _, tower := range towers {
		if !tower.Ready(now) {
			continue
		}
		hit := false
		for _, enemy := range enemies {
			if !enemy.Alive() || !IsEffective(tower.TowerDefinition, enemy.EnemyDefinition) {
				continue
			}
			if arena.Distance(tower.Position, enemy.Position) > tower.Range {
				continue
			}

			dmg := Damage(tower.TowerDefinition, enemy.EnemyDefinition)
			enemy.TakeDamage(dmg)
			for _, tag := range tower.Effects {
				enemy.AddEffect(s.effects.NewTowerEffect(tag, now))
			}

			s.ecs.Attacks = append(s.ecs.Attacks, component.Attack{
				TowerID: tower.InstanceID,
				EnemyID: enemy.InstanceID,
				From:    tower.Position,
				To:      enemy.Position,
				Damage:  dmg,
				At:      now,
			})
			hit = true

			logger.Log.WithFields(logrus.Fields{
				"tower":  tower.ID,
				"enemy":  enemy.ID,
				"damage": dmg,
				"health": enemy.Health,
			}).Debug("tower attack")
		}
		if hit {
			tower.LastAttack = now
		}
	}

	s.ecs.Towers = towers
	s.ecs.ReplaceEnemies(enemies)
}
