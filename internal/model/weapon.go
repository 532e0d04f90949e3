package model

import (
	"time"

	"gunsmith-backend/internal/armory"
	"gunsmith-backend/internal/stats"
)

// Weapon is a player-owned assembly as stored: the snapshot is the
// persisted projection, everything derived is recomputed on read.
type Weapon struct {
	ID        string          `json:"id"`
	PlayerID  string          `json:"player_id"`
	Name      string          `json:"name"`
	Snapshot  armory.Snapshot `json:"snapshot"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WeaponDetail bundles a weapon with its resolved stats and derived
// firing parameters for the client and the range server.
type WeaponDetail struct {
	Weapon   *Weapon        `json:"weapon"`
	Vector   stats.Vector   `json:"vector"`
	Settings stats.Settings `json:"settings"`
}

type CreateWeaponRequest struct {
	Name string `json:"name"`
}

type WeldRequest struct {
	Progress float64 `json:"progress"`
}
