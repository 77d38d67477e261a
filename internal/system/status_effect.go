package system

import (
	"time"

	"cyber-tower-defense/internal/component"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/entity"
	"cyber-tower-defense/pkg/logger"
)

// StatusEffectSystem управляет жизненным циклом эффектов: burn damage,
// expiry, and the slow multiplier used by movement.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// NewTowerEffect builds the effect a tower tag applies on hit. Unknown tags
// yield nil, which AddEffect ignores.
func (s *StatusEffectSystem) NewTowerEffect(tag string, now time.Time) component.Effect {
	var (
		effect component.Effect
		err    error
	)
	switch tag {
	case defs.EffectBurn:
		effect, err = component.NewBurn(now, config.BurnDuration, config.BurnDamage)
	case defs.EffectSlow:
		effect, err = component.NewSlow(now, config.SlowDuration, config.SlowFactor)
	case defs.EffectBlock:
		effect, err = component.NewBlock(now, config.BlockDuration, config.BlockFactor)
	case defs.EffectScan:
		effect, err = component.NewScan(now, config.ScanDuration, config.ScanFactor)
	default:
		return nil
	}
	if err != nil {
		logger.Log.WithError(err).WithField("tag", tag).Warn("dropping malformed tower effect")
		return nil
	}
	return effect
}

// Apply runs one tick of effects on a live enemy: every active burn deals
// Damage/10, then expired effects are dropped. Burns stack.
func (s *StatusEffectSystem) Apply(enemy *component.SpawnedEnemy, now time.Time) {
	if len(enemy.Effects) == 0 {
		return
	}
	kept := make([]component.Effect, 0, len(enemy.Effects))
	for _, effect := range enemy.Effects {
		if burn, ok := effect.(component.Burn); ok {
			enemy.TakeDamage(burn.Damage / config.BurnTickShare)
		}
		if !component.Expired(effect, now) {
			kept = append(kept, effect)
		}
	}
	enemy.Effects = kept
}

// SpeedMultiplier returns the movement multiplier from active slows. Slows do
// not stack: the strongest one applies. Block and scan never change speed.
func SpeedMultiplier(effects []component.Effect) float64 {
	mul := 1.0
	for _, effect := range effects {
		if slow, ok := effect.(component.Slow); ok && slow.Factor < mul {
			mul = slow.Factor
		}
	}
	return mul
}
