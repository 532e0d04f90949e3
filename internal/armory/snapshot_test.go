package armory

import (
	"encoding/json"
	"testing"

	"gunsmith-backend/internal/stats"
)

func fullAssembly(t *testing.T) *Assembly {
	t.Helper()
	a := New("w1", "Bench Rifle", 10)
	a.Install(&stats.Part{ID: "p1", Type: stats.PartBarrel, Name: "Tempered Barrel", Rarity: 3, Cost: 80,
		Deltas: stats.Deltas{Power: 35, Accuracy: 12}, MeshID: "barrel_b", MaterialID: "chrome", IconID: "barrel_b_icon"})
	a.Install(&stats.Part{ID: "p2", Type: stats.PartMagazine, Name: "Drum Magazine", Rarity: 4, Cost: 120,
		Deltas: stats.Deltas{ReloadSpeed: 20}, MagazineCapacity: 48})
	a.Install(&stats.Part{ID: "p3", Type: stats.PartStock, Name: "Padded Stock", Rarity: 2, Cost: 45,
		Deltas: stats.Deltas{Recoil: -30, Rapidity: 8}})
	a.Install(&stats.Part{ID: "p4", Type: stats.PartScope, Name: "Scope", Rarity: 5, Cost: 200,
		Deltas: stats.Deltas{Scope: 70, Accuracy: 15}})
	a.AddWeldProgress(55)
	return a
}

func TestSnapshotRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		build func(t *testing.T) *Assembly
	}{
		{"empty", func(t *testing.T) *Assembly { return New("w1", "Bare Frame", 10) }},
		{"one part", func(t *testing.T) *Assembly {
			a := New("w1", "Starter", 10)
			a.Install(&stats.Part{ID: "p1", Type: stats.PartBarrel, Name: "Rusty Barrel", Rarity: 1, Cost: 15,
				Deltas: stats.Deltas{Power: 5}})
			return a
		}},
		{"four parts", fullAssembly},
	}

	for _, tc := range cases {
		orig := tc.build(t)
		restored := FromSnapshot(orig.Snapshot(), 10)

		if restored.Vector() != orig.Vector() {
			t.Errorf("%s: vector mismatch after round trip:\n got %+v\nwant %+v", tc.name, restored.Vector(), orig.Vector())
		}
		if restored.WeldProgress() != orig.WeldProgress() {
			t.Errorf("%s: weld progress %v, want %v", tc.name, restored.WeldProgress(), orig.WeldProgress())
		}
		if restored.IsWelded() != orig.IsWelded() {
			t.Errorf("%s: welded flag mismatch", tc.name)
		}

		// Settings are a pure function of the vector, so they must match too.
		tun := stats.Default()
		if restored.Settings(tun) != orig.Settings(tun) {
			t.Errorf("%s: settings mismatch after round trip", tc.name)
		}
	}
}

func TestSnapshotSurvivesJSON(t *testing.T) {
	orig := fullAssembly(t)

	data, err := json.Marshal(orig.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored := FromSnapshot(s, 10)
	if restored.Vector() != orig.Vector() {
		t.Errorf("vector mismatch through JSON:\n got %+v\nwant %+v", restored.Vector(), orig.Vector())
	}
}

func TestSnapshotPartsInSlotOrder(t *testing.T) {
	s := fullAssembly(t).Snapshot()
	if len(s.Parts) != 4 {
		t.Fatalf("parts = %d, want 4", len(s.Parts))
	}
	for i, slot := range stats.SlotOrder {
		if s.Parts[i].Type != slot {
			t.Errorf("part %d is %s, want %s", i, s.Parts[i].Type, slot)
		}
	}
}

func TestSnapshotWithoutBarrelDropsWeld(t *testing.T) {
	s := Snapshot{ID: "w1", Name: "No Barrel", WeldProgress: 80}
	a := FromSnapshot(s, 10)
	if a.WeldProgress() != 0 {
		t.Errorf("weld progress without barrel = %v, want 0", a.WeldProgress())
	}
}

func TestSnapshotPreservesPartIdentity(t *testing.T) {
	orig := fullAssembly(t)
	restored := FromSnapshot(orig.Snapshot(), 10)

	for _, slot := range stats.SlotOrder {
		op, rp := orig.Part(slot), restored.Part(slot)
		if op.ID != rp.ID || op.Name != rp.Name || op.MeshID != rp.MeshID || op.MaterialID != rp.MaterialID {
			t.Errorf("%s identity mismatch: %+v vs %+v", slot, op, rp)
		}
	}
}
