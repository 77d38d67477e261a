// internal/defs/types.go
package defs

// AttackType defines how a tower engages. Area towers reach further.
type AttackType string

const (
	AttackSingle AttackType = "single"
	AttackArea   AttackType = "area"
)

// Severity is the threat tier of an enemy. It drives both the network damage
// on breach and the budget reward on kill.
type Severity string

const (
	SeverityExtreme Severity = "Extreme"
	SeverityHigh    Severity = "High"
	SeverityMedium  Severity = "Medium"
	SeverityLow     Severity = "Low"
)

// BreachDamage returns the network health lost when an enemy of this
// severity reaches the danger zone.
func (s Severity) BreachDamage() float64 {
	switch s {
	case SeverityExtreme:
		return 25
	case SeverityHigh:
		return 15
	case SeverityMedium:
		return 10
	default:
		return 5
	}
}

// KillReward returns the budget granted when an enemy of this severity dies.
func (s Severity) KillReward() int64 {
	switch s {
	case SeverityExtreme:
		return 75_000
	case SeverityHigh:
		return 45_000
	case SeverityMedium:
		return 25_000
	default:
		return 15_000
	}
}

// Effect tags a tower may carry.
const (
	EffectBurn  = "burn"
	EffectSlow  = "slow"
	EffectBlock = "block"
	EffectScan  = "scan"
)
