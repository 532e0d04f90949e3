package catalog

import (
	"log"
	"math/rand"
	"strings"
	"sync"

	"gunsmith-backend/internal/stats"
)

// Offering is an ephemeral shop entry: a randomized part plus its display
// metadata. Offerings are regenerated on every refresh and never stored;
// only bought ones survive, as Parts inside a weapon snapshot.
type Offering struct {
	Type             stats.PartType `json:"type"`
	Rarity           int            `json:"rarity"`
	Name             string         `json:"name"`
	NameFragment     string         `json:"name_fragment,omitempty"`
	Price            int64          `json:"price"`
	Deltas           stats.Deltas   `json:"deltas"`
	MagazineCapacity int            `json:"magazine_capacity,omitempty"`
	MeshID           string         `json:"mesh_id,omitempty"`
	MaterialID       string         `json:"material_id,omitempty"`
	IconID           string         `json:"icon_id,omitempty"`
}

// Rarity roll weights, index 0 = one star. Commons dominate, five-star
// parts are the long tail.
var rarityWeights = [5]int{40, 26, 18, 11, 5}

// Generator draws randomized offerings from a catalog. All draws go
// through one guarded rand source so concurrent shop requests are safe.
type Generator struct {
	cat *Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(cat *Catalog, seed int64) *Generator {
	return &Generator{
		cat: cat,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// RollRarity draws a weighted rarity in [1,5].
func (g *Generator) RollRarity() int {
	total := 0
	for _, w := range rarityWeights {
		total += w
	}

	g.mu.Lock()
	roll := g.rng.Intn(total)
	g.mu.Unlock()

	for i, w := range rarityWeights {
		if roll < w {
			return i + 1
		}
		roll -= w
	}
	return RarityMax
}

// Generate draws one offering for a part type and rarity. A missing tier
// falls back to the class's first defined tier with a logged warning;
// the shop stays usable on a sparse catalog.
func (g *Generator) Generate(partType stats.PartType, rarity int) Offering {
	class, ok := g.cat.Class(partType)
	if !ok {
		// Validate() guarantees every served part type exists; reaching
		// this means a caller asked for a type outside the catalog.
		log.Printf("[catalog] no class for part type %q, generating bare offering", partType)
		return Offering{Type: partType, Rarity: rarity, Name: displayLabel(partType)}
	}

	tier, found := tierFor(class, rarity)
	if !found {
		tier = class.Tiers[0]
		log.Printf("[catalog] %s has no rarity %d tier, falling back to rarity %d", partType, rarity, tier.Rarity)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	o := Offering{
		Type:   partType,
		Rarity: tier.Rarity,
		Price:  tier.MinPrice + g.rng.Int63n(tier.MaxPrice-tier.MinPrice+1),
	}

	for _, axis := range class.Influences {
		delta := tier.MinStat + g.rng.Intn(tier.MaxStat-tier.MinStat+1)
		setAxisDelta(&o.Deltas, axis, delta)
	}

	if partType == stats.PartMagazine {
		o.MagazineCapacity = tier.MinAmmo + g.rng.Intn(tier.MaxAmmo-tier.MinAmmo+1)
	}

	if len(tier.NameFragments) > 0 {
		o.NameFragment = tier.NameFragments[g.rng.Intn(len(tier.NameFragments))]
	}
	o.Name = strings.TrimSpace(o.NameFragment + " " + displayLabel(partType))

	if len(tier.Meshes) > 0 {
		ref := tier.Meshes[g.rng.Intn(len(tier.Meshes))]
		o.MeshID = ref.Mesh
		o.MaterialID = ref.Material
		o.IconID = ref.Icon
	}

	return o
}

func tierFor(class PartClass, rarity int) (Tier, bool) {
	for _, tier := range class.Tiers {
		if tier.Rarity == rarity {
			return tier, true
		}
	}
	return Tier{}, false
}

func setAxisDelta(d *stats.Deltas, axis string, delta int) {
	switch axis {
	case "power":
		d.Power = delta
	case "accuracy":
		d.Accuracy = delta
	case "rapidity":
		d.Rapidity = delta
	case "recoil":
		d.Recoil = delta
	case "reload_speed":
		d.ReloadSpeed = delta
	case "scope":
		d.Scope = delta
	}
}

func displayLabel(t stats.PartType) string {
	switch t {
	case stats.PartBarrel:
		return "Barrel"
	case stats.PartMagazine:
		return "Magazine"
	case stats.PartStock:
		return "Stock"
	case stats.PartScope:
		return "Scope"
	}
	return string(t)
}
