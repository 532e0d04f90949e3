package repository

import (
	"context"
	"fmt"

	"gunsmith-backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlayerRepository struct {
	pool *pgxpool.Pool
}

func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

const playerColumns = `id, username, email, password_hash, credits, is_banned, last_login_at, created_at, updated_at`

func scanPlayer(row pgx.Row) (*model.Player, error) {
	p := &model.Player{}
	err := row.Scan(
		&p.ID, &p.Username, &p.Email, &p.PasswordHash, &p.Credits,
		&p.IsBanned, &p.LastLoginAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) Create(ctx context.Context, username, email, passwordHash string, credits int64) (*model.Player, error) {
	p, err := scanPlayer(r.pool.QueryRow(ctx, `
		INSERT INTO players (username, email, password_hash, credits)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
		RETURNING `+playerColumns,
		username, email, passwordHash, credits))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("duplicate key")
		}
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*model.Player, error) {
	return scanPlayer(r.pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id))
}

func (r *PlayerRepository) GetByUsername(ctx context.Context, username string) (*model.Player, error) {
	return scanPlayer(r.pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE username = $1`, username))
}

func (r *PlayerRepository) GetProfile(ctx context.Context, id string) (*model.PlayerProfile, error) {
	p := &model.PlayerProfile{}
	err := r.pool.QueryRow(ctx, `
		SELECT p.id, p.username, COUNT(w.id), p.created_at
		FROM players p
		LEFT JOIN weapons w ON w.player_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`, id).Scan(&p.ID, &p.Username, &p.WeaponCount, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) UpdateLoginTime(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE players SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *PlayerRepository) CountTotal(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM players`).Scan(&count)
	return count, err
}

// AddCredits adjusts a balance unconditionally (admin grants, refunds).
func (r *PlayerRepository) AddCredits(ctx context.Context, id string, amount int64) (int64, error) {
	var credits int64
	err := r.pool.QueryRow(ctx, `
		UPDATE players SET credits = credits + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING credits
	`, id, amount).Scan(&credits)
	return credits, err
}
