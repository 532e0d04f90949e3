package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gunsmith-backend/internal/armory"
	"gunsmith-backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WeaponRepository struct {
	pool *pgxpool.Pool
}

func NewWeaponRepository(pool *pgxpool.Pool) *WeaponRepository {
	return &WeaponRepository{pool: pool}
}

func scanWeapon(row pgx.Row) (*model.Weapon, error) {
	w := &model.Weapon{}
	var snapshotRaw []byte
	err := row.Scan(&w.ID, &w.PlayerID, &w.Name, &snapshotRaw, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshotRaw, &w.Snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot for weapon %s: %w", w.ID, err)
	}
	return w, nil
}

const weaponColumns = `id, player_id, name, snapshot, is_active, created_at, updated_at`

func (r *WeaponRepository) Create(ctx context.Context, id, playerID, name string, snapshot armory.Snapshot, active bool) (*model.Weapon, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	return scanWeapon(r.pool.QueryRow(ctx, `
		INSERT INTO weapons (id, player_id, name, snapshot, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+weaponColumns,
		id, playerID, name, data, active))
}

func (r *WeaponRepository) GetByID(ctx context.Context, id string) (*model.Weapon, error) {
	return scanWeapon(r.pool.QueryRow(ctx, `
		SELECT `+weaponColumns+` FROM weapons WHERE id = $1
	`, id))
}

func (r *WeaponRepository) GetActive(ctx context.Context, playerID string) (*model.Weapon, error) {
	return scanWeapon(r.pool.QueryRow(ctx, `
		SELECT `+weaponColumns+` FROM weapons WHERE player_id = $1 AND is_active
	`, playerID))
}

func (r *WeaponRepository) ListByPlayer(ctx context.Context, playerID string) ([]model.Weapon, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+weaponColumns+` FROM weapons
		WHERE player_id = $1
		ORDER BY created_at ASC
	`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weapons := []model.Weapon{}
	for rows.Next() {
		w, err := scanWeapon(rows)
		if err != nil {
			return nil, err
		}
		weapons = append(weapons, *w)
	}
	return weapons, rows.Err()
}

func (r *WeaponRepository) UpdateSnapshot(ctx context.Context, id string, snapshot armory.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE weapons SET snapshot = $2, updated_at = NOW() WHERE id = $1
	`, id, data)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetActive marks one weapon active and clears the flag on the player's
// others, in one transaction so the partial unique index never trips.
func (r *WeaponRepository) SetActive(ctx context.Context, playerID, weaponID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE weapons SET is_active = FALSE, updated_at = NOW()
		WHERE player_id = $1 AND is_active
	`, playerID)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE weapons SET is_active = TRUE, updated_at = NOW()
		WHERE id = $1 AND player_id = $2
	`, weaponID, playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *WeaponRepository) Delete(ctx context.Context, playerID, weaponID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM weapons WHERE id = $1 AND player_id = $2
	`, weaponID, playerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *WeaponRepository) CountTotal(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM weapons`).Scan(&count)
	return count, err
}

// SavePurchase atomically debits the buyer and stores the weapon's new
// snapshot. The conditional debit guarantees an underfunded purchase
// leaves both the balance and the weapon untouched.
func (r *WeaponRepository) SavePurchase(ctx context.Context, playerID, weaponID string, price int64, snapshot armory.Snapshot) (int64, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return 0, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var credits int64
	err = tx.QueryRow(ctx, `
		UPDATE players SET credits = credits - $2, updated_at = NOW()
		WHERE id = $1 AND credits >= $2
		RETURNING credits
	`, playerID, price).Scan(&credits)
	if err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE weapons SET snapshot = $3, updated_at = NOW()
		WHERE id = $1 AND player_id = $2
	`, weaponID, playerID, data)
	if err != nil {
		return 0, err
	}
	if tag.RowsAffected() == 0 {
		return 0, pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return credits, nil
}
