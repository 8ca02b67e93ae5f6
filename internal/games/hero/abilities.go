package hero

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-hero/internal/config"
)

// ErrUnknownAbility is returned when parsing an ability name fails.
var ErrUnknownAbility = errors.New("unknown ability")

// AbilityKind identifies an ability. The declaration order is the fixed
// cycling order.
type AbilityKind int

const (
	AbilityBlast  AbilityKind = iota // Remove the next obstacle
	AbilityShield                    // Grant an immunity charge
	AbilitySlow                      // Slow time down
	abilityCount
)

// AllAbilities lists every ability in cycling order.
func AllAbilities() []AbilityKind {
	return []AbilityKind{AbilityBlast, AbilityShield, AbilitySlow}
}

// String returns the ability's identifier.
func (k AbilityKind) String() string {
	switch k {
	case AbilityBlast:
		return "blast"
	case AbilityShield:
		return "shield"
	case AbilitySlow:
		return "slow"
	default:
		return "unknown"
	}
}

// Title returns the display name of the ability.
func (k AbilityKind) Title() string {
	switch k {
	case AbilityBlast:
		return "Blast"
	case AbilityShield:
		return "Shield"
	case AbilitySlow:
		return "Slow-Mo"
	default:
		return "?"
	}
}

// Glyph returns the HUD character for the ability.
func (k AbilityKind) Glyph() rune {
	switch k {
	case AbilityBlast:
		return '✸'
	case AbilityShield:
		return '◈'
	case AbilitySlow:
		return '⧗'
	default:
		return '?'
	}
}

// ParseAbility converts an identifier back to a kind.
func ParseAbility(s string) (AbilityKind, error) {
	for _, k := range AllAbilities() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAbility, s)
}

// AbilityDef is the static definition of an ability.
type AbilityDef struct {
	Kind        AbilityKind
	UnlockScore int
	Cooldown    float64
}

// Definitions builds the fixed ability registry from config.
func Definitions(cfg config.AbilitiesConfig) [abilityCount]AbilityDef {
	return [abilityCount]AbilityDef{
		AbilityBlast:  {Kind: AbilityBlast, UnlockScore: cfg.Blast.UnlockScore, Cooldown: cfg.Blast.Cooldown},
		AbilityShield: {Kind: AbilityShield, UnlockScore: cfg.Shield.UnlockScore, Cooldown: cfg.Shield.Cooldown},
		AbilitySlow:   {Kind: AbilitySlow, UnlockScore: cfg.Slow.UnlockScore, Cooldown: cfg.Slow.Cooldown},
	}
}

// Abilities is the runtime state of the ability system.
// Cooldowns are tracked per ability, so switching the equipped ability
// neither resets nor transfers a running cooldown.
type Abilities struct {
	enabled  bool
	defs     [abilityCount]AbilityDef
	unlocked [abilityCount]bool
	cooldown [abilityCount]float64
	equipped AbilityKind
}

// NewAbilities creates the ability system with nothing unlocked.
func NewAbilities(cfg config.AbilitiesConfig) *Abilities {
	return &Abilities{
		enabled: cfg.Enabled,
		defs:    Definitions(cfg),
	}
}

// Enabled reports whether abilities are part of this game mode.
func (a *Abilities) Enabled() bool {
	return a.enabled
}

// Reset clears cooldowns for a new run. Unlocks are cleared unless keepUnlocks is set.
// The equipped ability is kept so the player's choice survives retries.
func (a *Abilities) Reset(keepUnlocks bool) {
	a.cooldown = [abilityCount]float64{}
	if !keepUnlocks {
		a.unlocked = [abilityCount]bool{}
	}
}

// Unlock marks every ability whose threshold is at or below score as unlocked
// and returns the ones that were newly unlocked. Unlocking is idempotent.
func (a *Abilities) Unlock(score int) []AbilityKind {
	if !a.enabled {
		return nil
	}

	var fresh []AbilityKind
	for _, def := range a.defs {
		if a.unlocked[def.Kind] || score < def.UnlockScore {
			continue
		}
		a.unlocked[def.Kind] = true
		fresh = append(fresh, def.Kind)
	}

	// Nothing useful equipped yet: take the first new unlock.
	if len(fresh) > 0 && !a.unlocked[a.equipped] {
		a.equipped = fresh[0]
	}
	return fresh
}

// IsUnlocked reports whether k is unlocked in the current run.
func (a *Abilities) IsUnlocked(k AbilityKind) bool {
	if k < 0 || k >= abilityCount {
		return false
	}
	return a.unlocked[k]
}

// UnlockedCount returns how many abilities are unlocked.
func (a *Abilities) UnlockedCount() int {
	n := 0
	for _, u := range a.unlocked {
		if u {
			n++
		}
	}
	return n
}

// Equipped returns the equipped ability.
func (a *Abilities) Equipped() AbilityKind {
	return a.equipped
}

// Equip selects k if it is unlocked.
func (a *Abilities) Equip(k AbilityKind) bool {
	if !a.IsUnlocked(k) {
		return false
	}
	a.equipped = k
	return true
}

// Cycle equips the next unlocked ability in definition order, wrapping.
// It is a no-op when fewer than two abilities are unlocked.
func (a *Abilities) Cycle() bool {
	if a.UnlockedCount() < 2 {
		return false
	}
	for i := 1; i <= int(abilityCount); i++ {
		next := AbilityKind((int(a.equipped) + i) % int(abilityCount))
		if a.unlocked[next] {
			a.equipped = next
			return true
		}
	}
	return false
}

// Cooldown returns the remaining cooldown of k in seconds.
func (a *Abilities) Cooldown(k AbilityKind) float64 {
	if k < 0 || k >= abilityCount {
		return 0
	}
	return a.cooldown[k]
}

// CooldownFraction returns the equipped ability's remaining cooldown as a
// fraction of its full duration.
func (a *Abilities) CooldownFraction() float64 {
	def := a.defs[a.equipped]
	if def.Cooldown <= 0 {
		return 0
	}
	return a.cooldown[a.equipped] / def.Cooldown
}

// Ready reports whether the equipped ability can be invoked right now.
func (a *Abilities) Ready() bool {
	return a.enabled && a.unlocked[a.equipped] && a.cooldown[a.equipped] <= 0
}

// startCooldown puts the equipped ability on its configured cooldown.
func (a *Abilities) startCooldown() {
	a.cooldown[a.equipped] = a.defs[a.equipped].Cooldown
}

// Decay lowers every running cooldown by dt, floored at zero.
func (a *Abilities) Decay(dt float64) {
	for i := range a.cooldown {
		a.cooldown[i] = max(a.cooldown[i]-dt, 0)
	}
}

// Def returns the definition of k.
func (a *Abilities) Def(k AbilityKind) AbilityDef {
	return a.defs[k]
}
