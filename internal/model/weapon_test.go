package model

import (
	"encoding/json"
	"testing"

	"gunsmith-backend/internal/armory"
)

func TestWeaponDetailShape(t *testing.T) {
	a := armory.New("w-1", "Test Rifle", 10)
	detail := WeaponDetail{
		Weapon: &Weapon{ID: "w-1", PlayerID: "p-1", Name: "Test Rifle", Snapshot: a.Snapshot()},
	}

	// The weapon's identity lives on the nested Weapon, not on the
	// detail itself; handlers address it as detail.Weapon.ID.
	if detail.Weapon.ID != "w-1" {
		t.Fatalf("weapon id = %q, want w-1", detail.Weapon.ID)
	}

	data, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["weapon"]; !ok {
		t.Error("detail JSON missing nested weapon object")
	}
	if _, ok := decoded["id"]; ok {
		t.Error("detail JSON has a top-level id; identity belongs to the weapon object")
	}
}
