package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"gunsmith-backend/internal/stats"

	"gopkg.in/yaml.v3"
)

const sampleCatalog = `
parts:
  barrel:
    influences: [power, accuracy]
    tiers:
      - rarity: 1
        min_price: 10
        max_price: 50
        min_stat: 1
        max_stat: 8
        name_fragments: [Rusty, Scuffed]
        meshes:
          - {mesh: barrel_a, material: steel, icon: barrel_a_icon}
      - rarity: 3
        min_price: 20
        max_price: 100
        min_stat: 10
        max_stat: 25
        name_fragments: [Tempered]
        meshes:
          - {mesh: barrel_b, material: chrome, icon: barrel_b_icon}
  magazine:
    influences: [reload_speed]
    tiers:
      - rarity: 1
        min_price: 5
        max_price: 30
        min_stat: 1
        max_stat: 6
        min_ammo: 8
        max_ammo: 14
  stock:
    influences: [recoil, rapidity]
    tiers:
      - rarity: 1
        min_price: 8
        max_price: 40
        min_stat: -10
        max_stat: -1
  scope:
    influences: [scope, accuracy]
    tiers:
      - rarity: 1
        min_price: 15
        max_price: 60
        min_stat: 2
        max_stat: 12
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func loadSample(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Load(writeCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	return cat
}

func TestLoadValidCatalog(t *testing.T) {
	cat := loadSample(t)

	class, ok := cat.Class(stats.PartBarrel)
	if !ok {
		t.Fatal("barrel class missing")
	}
	if len(class.Tiers) != 2 {
		t.Fatalf("barrel tiers = %d, want 2", len(class.Tiers))
	}

	min, max, ok := cat.PriceRange(stats.PartBarrel, 3)
	if !ok || min != 20 || max != 100 {
		t.Errorf("barrel rarity 3 price range = %d..%d (%v), want 20..100", min, max, ok)
	}
}

func TestValidateRejectsInvertedPriceRange(t *testing.T) {
	var c Catalog
	in := `
parts:
  barrel:
    influences: [power]
    tiers:
      - rarity: 1
        min_price: 100
        max_price: 10
        min_stat: 1
        max_stat: 5
`
	if err := yaml.Unmarshal([]byte(in), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for inverted price range")
	}
}

func TestValidateRejectsBadRarity(t *testing.T) {
	var c Catalog
	in := `
parts:
  scope:
    influences: [scope]
    tiers:
      - rarity: 7
        min_price: 1
        max_price: 2
        min_stat: 1
        max_stat: 2
`
	if err := yaml.Unmarshal([]byte(in), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for rarity outside 1-5")
	}
}

func TestValidateRejectsUnknownAxis(t *testing.T) {
	var c Catalog
	in := `
parts:
  barrel:
    influences: [damage]
    tiers:
      - rarity: 1
        min_price: 1
        max_price: 2
        min_stat: 1
        max_stat: 2
`
	if err := yaml.Unmarshal([]byte(in), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unknown influence axis")
	}
}

func TestValidateRequiresMagazineAmmoRange(t *testing.T) {
	var c Catalog
	in := `
parts:
  magazine:
    influences: [reload_speed]
    tiers:
      - rarity: 1
        min_price: 1
        max_price: 2
        min_stat: 1
        max_stat: 2
`
	if err := yaml.Unmarshal([]byte(in), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for magazine tier without ammo range")
	}
}
