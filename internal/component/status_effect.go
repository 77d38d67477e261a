// internal/component/status_effect.go
package component

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidEffect is returned by the effect constructors for malformed input.
var ErrInvalidEffect = errors.New("invalid effect")

// EffectKind tags the effect variants.
type EffectKind string

const (
	KindBurn  EffectKind = "burn"
	KindSlow  EffectKind = "slow"
	KindBlock EffectKind = "block"
	KindScan  EffectKind = "scan"
)

// Effect is a timed status modifier attached to an enemy. The set of
// implementations is closed: Burn, Slow, Block and Scan.
type Effect interface {
	Kind() EffectKind
	StartedAt() time.Time
	Duration() time.Duration
	effect()
}

// Expired reports whether the effect has run its course at now.
func Expired(e Effect, now time.Time) bool {
	return now.Sub(e.StartedAt()) >= e.Duration()
}

// Burn deals Damage/10 per tick while active.
type Burn struct {
	Start  time.Time
	Length time.Duration
	Damage float64
}

// Slow multiplies movement speed by Factor.
type Slow struct {
	Start  time.Time
	Length time.Duration
	Factor float64
}

// Block carries a factor but has no gameplay effect.
type Block struct {
	Start  time.Time
	Length time.Duration
	Factor float64
}

// Scan carries a factor but has no gameplay effect.
type Scan struct {
	Start  time.Time
	Length time.Duration
	Factor float64
}

func (b Burn) Kind() EffectKind         { return KindBurn }
func (b Burn) StartedAt() time.Time     { return b.Start }
func (b Burn) Duration() time.Duration  { return b.Length }
func (Burn) effect()                    {}
func (s Slow) Kind() EffectKind         { return KindSlow }
func (s Slow) StartedAt() time.Time     { return s.Start }
func (s Slow) Duration() time.Duration  { return s.Length }
func (Slow) effect()                    {}
func (b Block) Kind() EffectKind        { return KindBlock }
func (b Block) StartedAt() time.Time    { return b.Start }
func (b Block) Duration() time.Duration { return b.Length }
func (Block) effect()                   {}
func (s Scan) Kind() EffectKind         { return KindScan }
func (s Scan) StartedAt() time.Time     { return s.Start }
func (s Scan) Duration() time.Duration  { return s.Length }
func (Scan) effect()                    {}

func checkLength(kind EffectKind, length time.Duration) error {
	if length <= 0 {
		return fmt.Errorf("%w: %s duration %s must be positive", ErrInvalidEffect, kind, length)
	}
	return nil
}

// NewBurn builds a burn effect. Damage must be positive.
func NewBurn(start time.Time, length time.Duration, damage float64) (Burn, error) {
	if err := checkLength(KindBurn, length); err != nil {
		return Burn{}, err
	}
	if !(damage > 0) {
		return Burn{}, fmt.Errorf("%w: burn damage %v must be positive", ErrInvalidEffect, damage)
	}
	return Burn{Start: start, Length: length, Damage: damage}, nil
}

// NewSlow builds a slow effect. Factor must be in (0, 1].
func NewSlow(start time.Time, length time.Duration, factor float64) (Slow, error) {
	if err := checkLength(KindSlow, length); err != nil {
		return Slow{}, err
	}
	if !(factor > 0 && factor <= 1) {
		return Slow{}, fmt.Errorf("%w: slow factor %v outside (0,1]", ErrInvalidEffect, factor)
	}
	return Slow{Start: start, Length: length, Factor: factor}, nil
}

// NewBlock builds a block effect. Factor must be positive.
func NewBlock(start time.Time, length time.Duration, factor float64) (Block, error) {
	if err := checkLength(KindBlock, length); err != nil {
		return Block{}, err
	}
	if !(factor > 0) {
		return Block{}, fmt.Errorf("%w: block factor %v must be positive", ErrInvalidEffect, factor)
	}
	return Block{Start: start, Length: length, Factor: factor}, nil
}

// NewScan builds a scan effect. Factor must be positive.
func NewScan(start time.Time, length time.Duration, factor float64) (Scan, error) {
	if err := checkLength(KindScan, length); err != nil {
		return Scan{}, err
	}
	if !(factor > 0) {
		return Scan{}, fmt.Errorf("%w: scan factor %v must be positive", ErrInvalidEffect, factor)
	}
	return Scan{Start: start, Length: length, Factor: factor}, nil
}
