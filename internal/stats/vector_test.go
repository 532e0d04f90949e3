package stats

import "testing"

func TestApplyClampsAxes(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"no overflow", 50, 20, 70},
		{"overflow top", 90, 20, 100},
		{"extreme positive", 1, 1000, 100},
		{"underflow bottom", 10, -20, 1},
		{"extreme negative", 100, -1000, 1},
		{"zero delta", 42, 0, 42},
	}
	for _, tt := range tests {
		v := Base(10)
		v.Power = tt.start
		got := v.Apply(&Part{Type: PartBarrel, Deltas: Deltas{Power: tt.delta}})
		if got.Power != tt.want {
			t.Errorf("%s: Apply power %d+%d = %d, want %d", tt.name, tt.start, tt.delta, got.Power, tt.want)
		}
	}
}

func TestMagazineReplacesAmmo(t *testing.T) {
	v := Base(10)
	v.Ammo = 12
	got := v.Apply(&Part{Type: PartMagazine, MagazineCapacity: 30})
	if got.Ammo != 30 {
		t.Errorf("magazine capacity should replace ammo, got %d", got.Ammo)
	}

	// Non-magazine parts never touch ammo.
	got = got.Apply(&Part{Type: PartStock, Deltas: Deltas{Recoil: -10}})
	if got.Ammo != 30 {
		t.Errorf("stock changed ammo to %d", got.Ammo)
	}
}

func TestTotalPartCostNeverClamped(t *testing.T) {
	v := Base(10)
	v = v.Apply(&Part{Type: PartBarrel, Cost: 90})
	v = v.Apply(&Part{Type: PartScope, Cost: 60})
	if v.TotalPartCost != 150 {
		t.Errorf("total part cost = %d, want 150", v.TotalPartCost)
	}
}

func TestResolveDeterministic(t *testing.T) {
	parts := map[PartType]*Part{
		PartBarrel:   {Type: PartBarrel, Cost: 50, Deltas: Deltas{Power: 40, Accuracy: 10}},
		PartMagazine: {Type: PartMagazine, Cost: 30, MagazineCapacity: 24, Deltas: Deltas{ReloadSpeed: 15}},
		PartStock:    {Type: PartStock, Cost: 20, Deltas: Deltas{Recoil: -35, Rapidity: 5}},
		PartScope:    {Type: PartScope, Cost: 80, Deltas: Deltas{Scope: 60, Accuracy: 5}},
	}

	a := Resolve(parts, 10)
	b := Resolve(parts, 10)
	if a != b {
		t.Fatalf("resolve not deterministic: %+v vs %+v", a, b)
	}

	if a.Power != 41 || a.Accuracy != 16 || a.Rapidity != 6 {
		t.Errorf("unexpected vector %+v", a)
	}
	if a.Recoil != 65 {
		t.Errorf("recoil = %d, want 65 (100-35)", a.Recoil)
	}
	if a.Ammo != 24 {
		t.Errorf("ammo = %d, want 24", a.Ammo)
	}
	if a.TotalPartCost != 180 {
		t.Errorf("total cost = %d, want 180", a.TotalPartCost)
	}
}

// Mirrors the install/remove walkthrough: removing a part reverts its
// contribution because the vector is recomputed from the base frame.
func TestResolveRemovalReverts(t *testing.T) {
	parts := map[PartType]*Part{
		PartBarrel: {Type: PartBarrel, Deltas: Deltas{Power: 20}},
	}
	v := Resolve(parts, 10)
	if v.Power != 21 {
		t.Fatalf("power = %d, want 21", v.Power)
	}

	parts[PartMagazine] = &Part{Type: PartMagazine, MagazineCapacity: 30}
	v = Resolve(parts, 10)
	if v.Power != 21 || v.Ammo != 30 {
		t.Fatalf("after magazine: power=%d ammo=%d, want 21/30", v.Power, v.Ammo)
	}

	delete(parts, PartBarrel)
	v = Resolve(parts, 10)
	if v.Power != 1 {
		t.Errorf("power after barrel removal = %d, want 1", v.Power)
	}
	if v.Ammo != 30 {
		t.Errorf("ammo after barrel removal = %d, want 30", v.Ammo)
	}
}

func TestBaseVector(t *testing.T) {
	v := Base(12.5)
	if v.Power != 1 || v.Accuracy != 1 || v.Rapidity != 1 || v.ReloadSpeed != 1 || v.Scope != 1 {
		t.Errorf("base axes should start at 1: %+v", v)
	}
	if v.Recoil != 100 {
		t.Errorf("base recoil = %d, want 100", v.Recoil)
	}
	if v.Ammo != 0 {
		t.Errorf("base ammo = %d, want 0", v.Ammo)
	}
	if v.Damage != 12.5 {
		t.Errorf("base damage = %v, want 12.5", v.Damage)
	}
}
