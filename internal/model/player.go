package model

import "time"

type Player struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	PasswordHash string     `json:"-"`
	Credits      int64      `json:"credits"`
	IsBanned     bool       `json:"is_banned"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type PlayerProfile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	WeaponCount int       `json:"weapon_count"`
	CreatedAt   time.Time `json:"created_at"`
}
