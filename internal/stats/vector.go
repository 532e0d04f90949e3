package stats

// PartType identifies one of the four attachment slots on a weapon.
type PartType string

const (
	PartBarrel   PartType = "barrel"
	PartMagazine PartType = "magazine"
	PartStock    PartType = "stock"
	PartScope    PartType = "scope"
)

// SlotOrder is the fixed order parts are applied in when a weapon's stat
// vector is resolved. Clamping makes application order-sensitive, so saved
// weapons only reproduce their stats if this order never changes.
var SlotOrder = [4]PartType{PartBarrel, PartMagazine, PartStock, PartScope}

func ValidPartType(t PartType) bool {
	switch t {
	case PartBarrel, PartMagazine, PartStock, PartScope:
		return true
	}
	return false
}

// Every stat axis except ammo lives on this closed interval.
const (
	AxisMin = 1
	AxisMax = 100
)

// Deltas holds the signed per-axis modifiers a single part contributes.
type Deltas struct {
	Power       int `json:"power" yaml:"power"`
	Accuracy    int `json:"accuracy" yaml:"accuracy"`
	Rapidity    int `json:"rapidity" yaml:"rapidity"`
	Recoil      int `json:"recoil" yaml:"recoil"`
	ReloadSpeed int `json:"reload_speed" yaml:"reload_speed"`
	Scope       int `json:"scope" yaml:"scope"`
}

// Part is an owned weapon part. Shop offerings become Parts when bought;
// only bought parts are ever persisted.
type Part struct {
	ID               string   `json:"id"`
	Type             PartType `json:"type"`
	Name             string   `json:"name"`
	Rarity           int      `json:"rarity"`
	Cost             int64    `json:"cost"`
	Deltas           Deltas   `json:"deltas"`
	MagazineCapacity int      `json:"magazine_capacity,omitempty"`
	MeshID           string   `json:"mesh_id,omitempty"`
	MaterialID       string   `json:"material_id,omitempty"`
	IconID           string   `json:"icon_id,omitempty"`
}

// Vector is the aggregate stat record of an assembled weapon.
type Vector struct {
	Power         int     `json:"power"`
	Accuracy      int     `json:"accuracy"`
	Rapidity      int     `json:"rapidity"`
	Recoil        int     `json:"recoil"`
	ReloadSpeed   int     `json:"reload_speed"`
	Scope         int     `json:"scope"`
	Ammo          int     `json:"ammo"`
	Damage        float64 `json:"damage"`
	TotalPartCost int64   `json:"total_part_cost"`
}

// Base returns the stat vector of a bare weapon frame: every axis at its
// floor except recoil, which starts maxed (a bare frame kicks hardest).
func Base(damage float64) Vector {
	return Vector{
		Power:       AxisMin,
		Accuracy:    AxisMin,
		Rapidity:    AxisMin,
		Recoil:      AxisMax,
		ReloadSpeed: AxisMin,
		Scope:       AxisMin,
		Ammo:        0,
		Damage:      damage,
	}
}

func clampAxis(v int) int {
	if v < AxisMin {
		return AxisMin
	}
	if v > AxisMax {
		return AxisMax
	}
	return v
}

// Apply folds one part into the vector. Axis deltas are additive and
// clamped to [AxisMin, AxisMax]; a magazine's capacity replaces ammo
// outright. Part cost accumulates unclamped.
func (v Vector) Apply(p *Part) Vector {
	v.Power = clampAxis(v.Power + p.Deltas.Power)
	v.Accuracy = clampAxis(v.Accuracy + p.Deltas.Accuracy)
	v.Rapidity = clampAxis(v.Rapidity + p.Deltas.Rapidity)
	v.Recoil = clampAxis(v.Recoil + p.Deltas.Recoil)
	v.ReloadSpeed = clampAxis(v.ReloadSpeed + p.Deltas.ReloadSpeed)
	v.Scope = clampAxis(v.Scope + p.Deltas.Scope)
	if p.Type == PartMagazine {
		v.Ammo = p.MagazineCapacity
	}
	v.TotalPartCost += p.Cost
	return v
}

// Resolve recomputes a stat vector from scratch: base frame plus every
// installed part in slot order. Recomputing instead of mutating
// incrementally keeps part removal trivial and drift-free.
func Resolve(parts map[PartType]*Part, baseDamage float64) Vector {
	v := Base(baseDamage)
	for _, slot := range SlotOrder {
		if p := parts[slot]; p != nil {
			v = v.Apply(p)
		}
	}
	return v
}
