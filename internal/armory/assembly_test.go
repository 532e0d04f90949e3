package armory

import (
	"testing"

	"gunsmith-backend/internal/stats"
)

func barrel(power int) *stats.Part {
	return &stats.Part{ID: "b1", Type: stats.PartBarrel, Name: "Barrel", Cost: 40, Deltas: stats.Deltas{Power: power}}
}

func magazine(capacity int) *stats.Part {
	return &stats.Part{ID: "m1", Type: stats.PartMagazine, Name: "Magazine", Cost: 25, MagazineCapacity: capacity}
}

func TestInstallRemoveRecomputes(t *testing.T) {
	a := New("w1", "Test Rifle", 10)

	a.Install(barrel(20))
	if got := a.Vector().Power; got != 21 {
		t.Fatalf("power after barrel = %d, want 21", got)
	}

	a.Install(magazine(30))
	v := a.Vector()
	if v.Ammo != 30 {
		t.Fatalf("ammo after magazine = %d, want 30", v.Ammo)
	}
	if v.Power != 21 {
		t.Fatalf("power changed by magazine install: %d", v.Power)
	}
	if v.TotalPartCost != 65 {
		t.Fatalf("total cost = %d, want 65", v.TotalPartCost)
	}

	removed := a.Remove(stats.PartBarrel)
	if removed == nil || removed.ID != "b1" {
		t.Fatalf("remove returned %+v", removed)
	}
	v = a.Vector()
	if v.Power != 1 {
		t.Errorf("power after barrel removal = %d, want 1", v.Power)
	}
	if v.Ammo != 30 {
		t.Errorf("ammo after barrel removal = %d, want 30", v.Ammo)
	}
	if v.TotalPartCost != 25 {
		t.Errorf("total cost after removal = %d, want 25", v.TotalPartCost)
	}
}

func TestRemoveEmptySlot(t *testing.T) {
	a := New("w1", "Test Rifle", 10)
	if p := a.Remove(stats.PartScope); p != nil {
		t.Errorf("removing empty slot returned %+v", p)
	}
}

func TestInstallReplacesSlot(t *testing.T) {
	a := New("w1", "Test Rifle", 10)
	a.Install(barrel(20))

	better := barrel(60)
	better.ID = "b2"
	replaced := a.Install(better)
	if replaced == nil || replaced.ID != "b1" {
		t.Fatalf("replace returned %+v", replaced)
	}
	if got := a.Vector().Power; got != 61 {
		t.Errorf("power after replacement = %d, want 61 (not stacked)", got)
	}
}

func TestWeldProgressLatch(t *testing.T) {
	a := New("w1", "Test Rifle", 10)
	a.Install(barrel(10))

	if a.IsWelded() {
		t.Fatal("fresh barrel should start unwelded")
	}

	a.AddWeldProgress(40)
	a.AddWeldProgress(-15) // negative deltas never decrease progress
	if got := a.WeldProgress(); got != 40 {
		t.Fatalf("progress = %v, want 40", got)
	}

	a.AddWeldProgress(200)
	if got := a.WeldProgress(); got != 100 {
		t.Fatalf("progress = %v, want clamp at 100", got)
	}
	if !a.IsWelded() {
		t.Fatal("expected welded at 100")
	}

	// Latched: more progress keeps it at 100.
	a.AddWeldProgress(50)
	if got := a.WeldProgress(); got != 100 {
		t.Fatalf("progress after latch = %v, want 100", got)
	}

	a.ResetWelding()
	if a.WeldProgress() != 0 || a.IsWelded() {
		t.Error("reset should drop progress to 0 and unlatch")
	}
}

func TestWeldWithoutBarrelIsNoop(t *testing.T) {
	a := New("w1", "Test Rifle", 10)
	a.AddWeldProgress(60)
	if got := a.WeldProgress(); got != 0 {
		t.Errorf("weld without barrel advanced to %v", got)
	}
}

func TestBarrelRemovalResetsWelding(t *testing.T) {
	a := New("w1", "Test Rifle", 10)
	a.Install(barrel(10))
	a.AddWeldProgress(100)
	if !a.IsWelded() {
		t.Fatal("expected welded")
	}

	a.Remove(stats.PartBarrel)
	if a.WeldProgress() != 0 {
		t.Error("barrel removal should reset welding")
	}
}

func TestBarrelReplacementResetsWelding(t *testing.T) {
	a := New("w1", "Test Rifle", 10)
	a.Install(barrel(10))
	a.AddWeldProgress(100)

	a.Install(barrel(30))
	if a.WeldProgress() != 0 || a.IsWelded() {
		t.Error("barrel replacement should reset welding")
	}
}

func TestNonBarrelSlotsDoNotTouchWelding(t *testing.T) {
	a := New("w1", "Test Rifle", 10)
	a.Install(barrel(10))
	a.AddWeldProgress(70)

	a.Install(magazine(20))
	a.Remove(stats.PartMagazine)
	if got := a.WeldProgress(); got != 70 {
		t.Errorf("magazine churn changed weld progress to %v", got)
	}
}
