package catalog

import (
	"testing"

	"gunsmith-backend/internal/stats"
)

func TestGeneratePriceStaysInRange(t *testing.T) {
	cat := loadSample(t)
	gen := NewGenerator(cat, 1)

	for i := 0; i < 10000; i++ {
		o := gen.Generate(stats.PartBarrel, 3)
		if o.Price < 20 || o.Price > 100 {
			t.Fatalf("draw %d: price %d outside [20,100]", i, o.Price)
		}
	}
}

func TestGenerateInfluencedAxesOnly(t *testing.T) {
	cat := loadSample(t)
	gen := NewGenerator(cat, 7)

	for i := 0; i < 200; i++ {
		o := gen.Generate(stats.PartBarrel, 3)
		if o.Deltas.Power < 10 || o.Deltas.Power > 25 {
			t.Fatalf("power delta %d outside tier range", o.Deltas.Power)
		}
		if o.Deltas.Accuracy < 10 || o.Deltas.Accuracy > 25 {
			t.Fatalf("accuracy delta %d outside tier range", o.Deltas.Accuracy)
		}
		// Barrel influences only power and accuracy.
		if o.Deltas.Rapidity != 0 || o.Deltas.Recoil != 0 || o.Deltas.ReloadSpeed != 0 || o.Deltas.Scope != 0 {
			t.Fatalf("uninfluenced axis got a delta: %+v", o.Deltas)
		}
	}
}

func TestGenerateMagazineAmmo(t *testing.T) {
	cat := loadSample(t)
	gen := NewGenerator(cat, 3)

	for i := 0; i < 200; i++ {
		o := gen.Generate(stats.PartMagazine, 1)
		if o.MagazineCapacity < 8 || o.MagazineCapacity > 14 {
			t.Fatalf("magazine capacity %d outside [8,14]", o.MagazineCapacity)
		}
	}

	// Non-magazine offerings never carry capacity.
	o := gen.Generate(stats.PartStock, 1)
	if o.MagazineCapacity != 0 {
		t.Errorf("stock offering has magazine capacity %d", o.MagazineCapacity)
	}
}

func TestGenerateNegativeStatRange(t *testing.T) {
	cat := loadSample(t)
	gen := NewGenerator(cat, 11)

	for i := 0; i < 200; i++ {
		o := gen.Generate(stats.PartStock, 1)
		if o.Deltas.Recoil < -10 || o.Deltas.Recoil > -1 {
			t.Fatalf("recoil delta %d outside [-10,-1]", o.Deltas.Recoil)
		}
	}
}

func TestGenerateMissingTierFallsBack(t *testing.T) {
	cat := loadSample(t)
	gen := NewGenerator(cat, 5)

	// The sample barrel class has no rarity 5 tier; generation must fall
	// back to the first defined tier instead of failing.
	o := gen.Generate(stats.PartBarrel, 5)
	if o.Rarity != 1 {
		t.Errorf("fallback rarity = %d, want 1", o.Rarity)
	}
	if o.Price < 10 || o.Price > 50 {
		t.Errorf("fallback price %d outside rarity 1 range [10,50]", o.Price)
	}
}

func TestGenerateEmptyNamePool(t *testing.T) {
	cat := loadSample(t)
	gen := NewGenerator(cat, 9)

	// Scope tier defines no name fragments.
	o := gen.Generate(stats.PartScope, 1)
	if o.NameFragment != "" {
		t.Errorf("name fragment = %q, want empty", o.NameFragment)
	}
	if o.Name != "Scope" {
		t.Errorf("name = %q, want bare label", o.Name)
	}
}

func TestGenerateComposedName(t *testing.T) {
	cat := loadSample(t)
	gen := NewGenerator(cat, 13)

	o := gen.Generate(stats.PartBarrel, 3)
	if o.NameFragment != "Tempered" {
		t.Fatalf("fragment = %q, want Tempered (pool has one entry)", o.NameFragment)
	}
	if o.Name != "Tempered Barrel" {
		t.Errorf("name = %q, want %q", o.Name, "Tempered Barrel")
	}
}

func TestRollRarityBounds(t *testing.T) {
	cat := loadSample(t)
	gen := NewGenerator(cat, 17)

	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		r := gen.RollRarity()
		if r < RarityMin || r > RarityMax {
			t.Fatalf("rarity %d outside [1,5]", r)
		}
		seen[r] = true
	}
	for r := RarityMin; r <= RarityMax; r++ {
		if !seen[r] {
			t.Errorf("rarity %d never rolled in 5000 draws", r)
		}
	}
}
