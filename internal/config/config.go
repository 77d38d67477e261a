// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

// Simulation timing.
const (
	TickInterval  = 150 * time.Millisecond
	SpawnInterval = 6000 * time.Millisecond
	MaxCatchUp    = 5 // просроченных срабатываний каждого цикла за один проход
)

// Session economy and health.
const (
	InitialBudget        int64 = 5_300_000
	InitialNetworkHealth       = 100.0
	EnemyHealth                = 100.0
)

// Enemy movement, in percent of the arena per tick.
const (
	EnemyBaseSpeed = 0.5
	DangerZoneY    = 75.0
)

// Path generation.
const (
	PathMinWaypoints   = 5
	PathExtraWaypoints = 3 // 5 + [0,3) waypoints
	PathMinX           = 10.0
	PathSpanX          = 80.0
	PathJitterY        = 5.0
)

// Tower stats derived at placement.
const (
	TowerRangeSingle     = 120.0
	TowerRangeArea       = 150.0
	TowerBaseCooldown    = 800 * time.Millisecond
	CounterRangeBonus    = 20.0
	CounterCooldownBonus = 100 * time.Millisecond
	HighTierRangeBonus   = 30.0
	HighTierCooldown     = 200 * time.Millisecond
)

// HighTierTowers are the encryption-family towers with the extra range and
// cooldown bonus.
var HighTierTowers = []string{"ssl", "encryption", "vpn"}

// Combat.
const (
	BaseDamage            = 10.0
	CounterAndWeaknessMul = 3.0
	CounterOnlyMul        = 2.5
	WeaknessOnlyMul       = 2.0
	NeutralMul            = 1.0
)

// Effect parameters applied by towers carrying the matching tag.
const (
	BurnDuration  = 3000 * time.Millisecond
	BurnDamage    = 5.0
	BurnTickShare = 10.0 // a burn deals Damage/BurnTickShare per tick
	SlowDuration  = 2000 * time.Millisecond
	SlowFactor    = 0.5
	BlockDuration = 1500 * time.Millisecond
	BlockFactor   = 0.3
	ScanDuration  = 4000 * time.Millisecond
	ScanFactor    = 1.5
)

// Tower drift, in arena pixels.
const (
	DriftStep          = 1.0
	MinTowerSeparation = 50.0
)

// Presentation.
const (
	ScreenWidth       = 1200
	ScreenHeight      = 900
	HUDHeight         = 110
	ArenaWidth        = ScreenWidth
	ArenaHeight       = ScreenHeight - HUDHeight
	TowerHitbox       = 25.0
	TowerRadius       = 14.0
	EnemyRadius       = 10.0
	HealthBarWidth    = 24.0
	HealthBarHeight   = 4.0
	BeamLifetime      = 250 * time.Millisecond
	IndicatorOffsetX  = 30
	IndicatorRadius   = 10.0
	MaxDeltaTime      = 0.06
	ClickDebounceTime = 100 * time.Millisecond
	TextCharWidth     = 7
	TextOffsetY       = 4
	StrokeWidth       = 2.0
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	GridColor         = color.RGBA{40, 50, 70, 255}
	DangerZoneColor   = color.RGBA{150, 40, 40, 90}
	RangeColor        = color.RGBA{120, 200, 255, 50}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	IdleStateColor    = color.RGBA{70, 130, 180, 220}
	RunningStateColor = color.RGBA{50, 205, 50, 220}
	GameOverColor     = color.RGBA{220, 60, 60, 220}
	IndicatorStroke   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	BeamColor         = color.RGBA{255, 255, 0, 160}
	HealthGoodColor   = color.RGBA{50, 205, 50, 255}
	HealthLowColor    = color.RGBA{220, 60, 60, 255}
	BudgetColor       = color.RGBA{255, 215, 0, 255}
	PanelColor        = color.RGBA{30, 35, 50, 235}
	SelectedColor     = color.RGBA{255, 255, 0, 255}
)
