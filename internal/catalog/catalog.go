package catalog

import (
	"fmt"
	"os"

	"gunsmith-backend/internal/stats"

	"gopkg.in/yaml.v3"
)

const (
	RarityMin = 1
	RarityMax = 5
)

// MeshRef names one mesh/material/icon combination a generated part can
// render with. The backend treats these as opaque asset identifiers.
type MeshRef struct {
	Mesh     string `yaml:"mesh" json:"mesh"`
	Material string `yaml:"material" json:"material"`
	Icon     string `yaml:"icon" json:"icon"`
}

// Tier bounds the randomized values for one rarity of one part class.
type Tier struct {
	Rarity        int       `yaml:"rarity"`
	MinPrice      int64     `yaml:"min_price"`
	MaxPrice      int64     `yaml:"max_price"`
	MinStat       int       `yaml:"min_stat"`
	MaxStat       int       `yaml:"max_stat"`
	MinAmmo       int       `yaml:"min_ammo"`
	MaxAmmo       int       `yaml:"max_ammo"`
	NameFragments []string  `yaml:"name_fragments"`
	Meshes        []MeshRef `yaml:"meshes"`
}

// PartClass describes one attachment slot's generation rules: which stat
// axes its parts influence and the rarity tiers to draw from.
type PartClass struct {
	Influences []string `yaml:"influences"`
	Tiers      []Tier   `yaml:"tiers"`
}

// Catalog is the read-only part generation config, keyed by part type.
type Catalog struct {
	Parts map[stats.PartType]PartClass `yaml:"parts"`
}

// Load reads and validates a catalog file. Unknown keys and inverted
// ranges are startup errors: a silently swapped price range is worse
// than a crash at boot.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return &c, nil
}

var axisNames = map[string]bool{
	"power": true, "accuracy": true, "rapidity": true,
	"recoil": true, "reload_speed": true, "scope": true,
}

func (c *Catalog) Validate() error {
	if len(c.Parts) == 0 {
		return fmt.Errorf("no part classes defined")
	}

	for partType, class := range c.Parts {
		if !stats.ValidPartType(partType) {
			return fmt.Errorf("unknown part type %q", partType)
		}
		if len(class.Tiers) == 0 {
			return fmt.Errorf("%s: no tiers defined", partType)
		}
		for _, axis := range class.Influences {
			if !axisNames[axis] {
				return fmt.Errorf("%s: unknown influence axis %q", partType, axis)
			}
		}
		for i, tier := range class.Tiers {
			if tier.Rarity < RarityMin || tier.Rarity > RarityMax {
				return fmt.Errorf("%s tier %d: rarity %d outside [%d,%d]", partType, i, tier.Rarity, RarityMin, RarityMax)
			}
			if tier.MinPrice > tier.MaxPrice {
				return fmt.Errorf("%s rarity %d: min_price %d greater than max_price %d", partType, tier.Rarity, tier.MinPrice, tier.MaxPrice)
			}
			if tier.MinStat > tier.MaxStat {
				return fmt.Errorf("%s rarity %d: min_stat %d greater than max_stat %d", partType, tier.Rarity, tier.MinStat, tier.MaxStat)
			}
			if tier.MinAmmo > tier.MaxAmmo {
				return fmt.Errorf("%s rarity %d: min_ammo %d greater than max_ammo %d", partType, tier.Rarity, tier.MinAmmo, tier.MaxAmmo)
			}
		}
	}

	// Magazines need an ammo range; the capacity they set is absolute.
	if mag, ok := c.Parts[stats.PartMagazine]; ok {
		for _, tier := range mag.Tiers {
			if tier.MaxAmmo <= 0 {
				return fmt.Errorf("magazine rarity %d: ammo range required", tier.Rarity)
			}
		}
	}

	return nil
}

// Class returns the generation rules for one part type.
func (c *Catalog) Class(t stats.PartType) (PartClass, bool) {
	class, ok := c.Parts[t]
	return class, ok
}

// PriceRange reports the configured price bounds for a part type and
// rarity, for display surfaces (bot commands, balance reports).
func (c *Catalog) PriceRange(t stats.PartType, rarity int) (min, max int64, ok bool) {
	class, found := c.Parts[t]
	if !found {
		return 0, 0, false
	}
	for _, tier := range class.Tiers {
		if tier.Rarity == rarity {
			return tier.MinPrice, tier.MaxPrice, true
		}
	}
	return 0, 0, false
}
