package armory

import (
	"log"

	"gunsmith-backend/internal/stats"
)

// WeldComplete is the progress value at which a barrel counts as welded.
const WeldComplete = 100.0

// Assembly is one customizable weapon: up to four part slots plus the
// barrel weld gate. The resolved stat vector is recomputed from scratch
// on every slot change, never patched incrementally.
type Assembly struct {
	ID   string
	Name string

	parts        map[stats.PartType]*stats.Part
	weldProgress float64

	baseDamage float64
	vector     stats.Vector
}

// New returns an empty assembly resolved against the given base damage.
func New(id, name string, baseDamage float64) *Assembly {
	a := &Assembly{
		ID:         id,
		Name:       name,
		parts:      make(map[stats.PartType]*stats.Part),
		baseDamage: baseDamage,
	}
	a.recompute()
	return a
}

func (a *Assembly) recompute() {
	a.vector = stats.Resolve(a.parts, a.baseDamage)
}

// Vector returns the current resolved stat vector.
func (a *Assembly) Vector() stats.Vector {
	return a.vector
}

// Settings derives the effective firing parameters for this assembly.
func (a *Assembly) Settings(tun *stats.Tuning) stats.Settings {
	return stats.Derive(a.vector, tun)
}

// Part returns the installed part for a slot, or nil.
func (a *Assembly) Part(t stats.PartType) *stats.Part {
	return a.parts[t]
}

// PartCount reports how many slots are occupied.
func (a *Assembly) PartCount() int {
	return len(a.parts)
}

// Install puts a part into its slot, replacing whatever was there, and
// returns the replaced part if any. Installing or replacing a barrel
// resets welding: a fresh barrel always starts unwelded.
func (a *Assembly) Install(p *stats.Part) *stats.Part {
	if p == nil || !stats.ValidPartType(p.Type) {
		log.Printf("[armory] ignoring install of invalid part")
		return nil
	}

	replaced := a.parts[p.Type]
	a.parts[p.Type] = p
	if p.Type == stats.PartBarrel {
		a.ResetWelding()
	}
	a.recompute()
	return replaced
}

// Remove empties a slot and returns the removed part, or nil if the slot
// was already empty. Removing the barrel resets welding.
func (a *Assembly) Remove(t stats.PartType) *stats.Part {
	p, ok := a.parts[t]
	if !ok {
		return nil
	}
	delete(a.parts, t)
	if t == stats.PartBarrel {
		a.ResetWelding()
	}
	a.recompute()
	return p
}

// WeldProgress reports the barrel weld progress in [0,100].
func (a *Assembly) WeldProgress() float64 {
	return a.weldProgress
}

// IsWelded reports whether the barrel weld has latched at 100.
func (a *Assembly) IsWelded() bool {
	return a.weldProgress >= WeldComplete
}

// AddWeldProgress advances the barrel weld. Progress never decreases and
// clamps at 100; negative deltas count as zero. Welding with no barrel
// installed is a warned no-op, since only barrels require welding.
func (a *Assembly) AddWeldProgress(delta float64) float64 {
	if a.parts[stats.PartBarrel] == nil {
		log.Printf("[armory] weld requested on %q with no barrel installed", a.Name)
		return a.weldProgress
	}
	if delta < 0 {
		delta = 0
	}
	a.weldProgress += delta
	if a.weldProgress > WeldComplete {
		a.weldProgress = WeldComplete
	}
	return a.weldProgress
}

// ResetWelding drops weld progress to zero. Called when the barrel is
// removed or replaced; nothing else unwinds a latched weld.
func (a *Assembly) ResetWelding() {
	a.weldProgress = 0
}
