package armory

import "gunsmith-backend/internal/stats"

// PartSnapshot carries everything needed to rebuild one installed part
// without re-invoking generation randomness: identity, raw deltas, and
// asset references.
type PartSnapshot struct {
	PartID           string         `json:"part_id"`
	Type             stats.PartType `json:"type"`
	Name             string         `json:"name"`
	Rarity           int            `json:"rarity"`
	Cost             int64          `json:"cost"`
	Deltas           stats.Deltas   `json:"deltas"`
	MagazineCapacity int            `json:"magazine_capacity,omitempty"`
	MeshID           string         `json:"mesh_id,omitempty"`
	MaterialID       string         `json:"material_id,omitempty"`
	IconID           string         `json:"icon_id,omitempty"`
}

// Snapshot is the flat, serializable projection of an assembly. Parts are
// written in slot order so a load replays them exactly as the original
// resolution did.
type Snapshot struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Parts        []PartSnapshot `json:"parts"`
	WeldProgress float64        `json:"weld_progress"`
	Welded       bool           `json:"welded"`
}

// Snapshot projects the assembly for persistence.
func (a *Assembly) Snapshot() Snapshot {
	s := Snapshot{
		ID:           a.ID,
		Name:         a.Name,
		WeldProgress: a.weldProgress,
		Welded:       a.IsWelded(),
	}
	for _, slot := range stats.SlotOrder {
		p := a.parts[slot]
		if p == nil {
			continue
		}
		s.Parts = append(s.Parts, PartSnapshot{
			PartID:           p.ID,
			Type:             p.Type,
			Name:             p.Name,
			Rarity:           p.Rarity,
			Cost:             p.Cost,
			Deltas:           p.Deltas,
			MagazineCapacity: p.MagazineCapacity,
			MeshID:           p.MeshID,
			MaterialID:       p.MaterialID,
			IconID:           p.IconID,
		})
	}
	return s
}

// FromSnapshot rebuilds an assembly whose resolved vector matches the
// snapshotted one exactly. Weld progress is restored as-is, except that
// a snapshot with no barrel cannot carry progress.
func FromSnapshot(s Snapshot, baseDamage float64) *Assembly {
	a := New(s.ID, s.Name, baseDamage)
	for i := range s.Parts {
		ps := s.Parts[i]
		a.parts[ps.Type] = &stats.Part{
			ID:               ps.PartID,
			Type:             ps.Type,
			Name:             ps.Name,
			Rarity:           ps.Rarity,
			Cost:             ps.Cost,
			Deltas:           ps.Deltas,
			MagazineCapacity: ps.MagazineCapacity,
			MeshID:           ps.MeshID,
			MaterialID:       ps.MaterialID,
			IconID:           ps.IconID,
		}
	}
	if a.parts[stats.PartBarrel] != nil {
		a.weldProgress = s.WeldProgress
		if a.weldProgress < 0 {
			a.weldProgress = 0
		}
		if a.weldProgress > WeldComplete {
			a.weldProgress = WeldComplete
		}
	}
	a.recompute()
	return a
}
