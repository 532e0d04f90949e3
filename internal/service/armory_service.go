package service

import (
	"context"
	"errors"
	"strings"

	"gunsmith-backend/internal/armory"
	"gunsmith-backend/internal/model"
	"gunsmith-backend/internal/repository"
	"gunsmith-backend/internal/stats"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrWeaponNotFound    = errors.New("weapon not found")
	ErrNoActiveWeapon    = errors.New("no active weapon")
	ErrInvalidPartType   = errors.New("invalid part type")
	ErrEmptySlot         = errors.New("slot is empty")
	ErrInvalidWeaponName = errors.New("weapon name must be 1-64 characters")
	ErrNegativeProgress  = errors.New("weld progress must not be negative")
)

// ArmoryService owns the player's weapon bench: creating frames,
// installing and removing parts, welding, and the derived settings.
type ArmoryService struct {
	weaponRepo *repository.WeaponRepository
	tuning     *stats.Tuning
}

func NewArmoryService(weaponRepo *repository.WeaponRepository, tuning *stats.Tuning) *ArmoryService {
	return &ArmoryService{weaponRepo: weaponRepo, tuning: tuning}
}

// Tuning exposes the loaded lerp bounds to collaborating services.
func (s *ArmoryService) Tuning() *stats.Tuning {
	return s.tuning
}

func (s *ArmoryService) detail(w *model.Weapon) *model.WeaponDetail {
	a := armory.FromSnapshot(w.Snapshot, s.tuning.BaseDamage)
	return &model.WeaponDetail{
		Weapon:   w,
		Vector:   a.Vector(),
		Settings: a.Settings(s.tuning),
	}
}

func (s *ArmoryService) Create(ctx context.Context, playerID, name string) (*model.WeaponDetail, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 64 {
		return nil, ErrInvalidWeaponName
	}

	existing, err := s.weaponRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	a := armory.New(id, name, s.tuning.BaseDamage)

	// A player's first weapon becomes their active one automatically.
	w, err := s.weaponRepo.Create(ctx, id, playerID, name, a.Snapshot(), len(existing) == 0)
	if err != nil {
		return nil, err
	}
	return s.detail(w), nil
}

func (s *ArmoryService) List(ctx context.Context, playerID string) ([]model.WeaponDetail, error) {
	weapons, err := s.weaponRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	details := make([]model.WeaponDetail, 0, len(weapons))
	for i := range weapons {
		details = append(details, *s.detail(&weapons[i]))
	}
	return details, nil
}

// weaponLookupError keeps a missing row as the domain sentinel while a
// storage failure surfaces as itself, so handlers can still answer 500.
func weaponLookupError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrWeaponNotFound
	}
	return err
}

// activeWeaponError is the same split for active-weapon lookups and the
// purchase path's snapshot update.
func activeWeaponError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoActiveWeapon
	}
	return err
}

func (s *ArmoryService) get(ctx context.Context, playerID, weaponID string) (*model.Weapon, error) {
	w, err := s.weaponRepo.GetByID(ctx, weaponID)
	if err != nil {
		return nil, weaponLookupError(err)
	}
	if w.PlayerID != playerID {
		return nil, ErrWeaponNotFound
	}
	return w, nil
}

func (s *ArmoryService) Get(ctx context.Context, playerID, weaponID string) (*model.WeaponDetail, error) {
	w, err := s.get(ctx, playerID, weaponID)
	if err != nil {
		return nil, err
	}
	return s.detail(w), nil
}

func (s *ArmoryService) Activate(ctx context.Context, playerID, weaponID string) error {
	if err := s.weaponRepo.SetActive(ctx, playerID, weaponID); err != nil {
		return weaponLookupError(err)
	}
	return nil
}

func (s *ArmoryService) Delete(ctx context.Context, playerID, weaponID string) error {
	if err := s.weaponRepo.Delete(ctx, playerID, weaponID); err != nil {
		return weaponLookupError(err)
	}
	return nil
}

// RemovePart empties a slot and persists the recomputed snapshot. The
// removed part is discarded, not refunded.
func (s *ArmoryService) RemovePart(ctx context.Context, playerID, weaponID string, partType stats.PartType) (*model.WeaponDetail, error) {
	if !stats.ValidPartType(partType) {
		return nil, ErrInvalidPartType
	}

	w, err := s.get(ctx, playerID, weaponID)
	if err != nil {
		return nil, err
	}

	a := armory.FromSnapshot(w.Snapshot, s.tuning.BaseDamage)
	if a.Remove(partType) == nil {
		return nil, ErrEmptySlot
	}

	w.Snapshot = a.Snapshot()
	if err := s.weaponRepo.UpdateSnapshot(ctx, weaponID, w.Snapshot); err != nil {
		return nil, err
	}
	return s.detail(w), nil
}

// AddWeld advances the barrel weld and persists the result. Welding a
// weapon with no barrel changes nothing; the armory logs the warning.
func (s *ArmoryService) AddWeld(ctx context.Context, playerID, weaponID string, progress float64) (*model.WeaponDetail, error) {
	if progress < 0 {
		return nil, ErrNegativeProgress
	}

	w, err := s.get(ctx, playerID, weaponID)
	if err != nil {
		return nil, err
	}

	a := armory.FromSnapshot(w.Snapshot, s.tuning.BaseDamage)
	before := a.WeldProgress()
	a.AddWeldProgress(progress)

	if a.WeldProgress() != before {
		w.Snapshot = a.Snapshot()
		if err := s.weaponRepo.UpdateSnapshot(ctx, weaponID, w.Snapshot); err != nil {
			return nil, err
		}
	}
	return s.detail(w), nil
}

// ActiveDetail returns the active weapon's resolved stats and settings.
// This is what the range server pulls to drive firing simulation.
func (s *ArmoryService) ActiveDetail(ctx context.Context, playerID string) (*model.WeaponDetail, error) {
	w, err := s.weaponRepo.GetActive(ctx, playerID)
	if err != nil {
		return nil, activeWeaponError(err)
	}
	return s.detail(w), nil
}
