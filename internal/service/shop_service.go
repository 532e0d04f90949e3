package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"gunsmith-backend/internal/armory"
	"gunsmith-backend/internal/catalog"
	"gunsmith-backend/internal/model"
	"gunsmith-backend/internal/repository"
	"gunsmith-backend/internal/stats"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrOfferingNotFound    = errors.New("offering not found")
)

// purchaseError maps the conditional debit's empty result onto the
// funds sentinel; anything else is a storage failure, not a rejection.
func purchaseError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrInsufficientCredits
	}
	return err
}

// partStock is one player's current shelf for a slot category plus a
// generation counter; the counter detects refreshes that land while a
// purchase is in flight with the lock released.
type partStock struct {
	gen  int
	list []catalog.Offering
}

// ShopService serves randomized part offerings and turns purchases into
// installed parts. Offerings live only in memory, per player and slot
// category; a restart or refresh discards them, which is exactly their
// intended lifetime.
type ShopService struct {
	gen        *catalog.Generator
	cat        *catalog.Catalog
	slots      int
	playerRepo *repository.PlayerRepository
	weaponRepo *repository.WeaponRepository
	armorySvc  *ArmoryService
	hub        *WSHub
	webhooks   *DiscordWebhookService

	mu        sync.Mutex
	offerings map[string]map[stats.PartType]*partStock
}

func NewShopService(
	gen *catalog.Generator,
	cat *catalog.Catalog,
	slots int,
	playerRepo *repository.PlayerRepository,
	weaponRepo *repository.WeaponRepository,
	armorySvc *ArmoryService,
	hub *WSHub,
	webhooks *DiscordWebhookService,
) *ShopService {
	if slots <= 0 {
		slots = 4
	}
	return &ShopService{
		gen:        gen,
		cat:        cat,
		slots:      slots,
		playerRepo: playerRepo,
		weaponRepo: weaponRepo,
		armorySvc:  armorySvc,
		hub:        hub,
		webhooks:   webhooks,
		offerings:  make(map[string]map[stats.PartType]*partStock),
	}
}

func (s *ShopService) generateCategory(partType stats.PartType) []catalog.Offering {
	out := make([]catalog.Offering, 0, s.slots)
	for i := 0; i < s.slots; i++ {
		out = append(out, s.gen.Generate(partType, s.gen.RollRarity()))
	}
	return out
}

func wrapOfferings(list []catalog.Offering) []model.ShopOffering {
	out := make([]model.ShopOffering, 0, len(list))
	for i, o := range list {
		out = append(out, model.ShopOffering{Index: i, Offering: o})
	}
	return out
}

// stockFor returns the player's shelf for a category, generating the
// initial stock on first access. Caller must hold s.mu.
func (s *ShopService) stockFor(playerID string, partType stats.PartType) *partStock {
	byType, ok := s.offerings[playerID]
	if !ok {
		byType = make(map[stats.PartType]*partStock)
		s.offerings[playerID] = byType
	}
	st, ok := byType[partType]
	if !ok {
		st = &partStock{gen: 1, list: s.generateCategory(partType)}
		byType[partType] = st
	}
	return st
}

// Offerings returns the player's current stock for a slot category,
// generating a fresh set on first access.
func (s *ShopService) Offerings(playerID string, partType stats.PartType) ([]model.ShopOffering, error) {
	if !stats.ValidPartType(partType) {
		return nil, ErrInvalidPartType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return wrapOfferings(s.stockFor(playerID, partType).list), nil
}

// Refresh discards a category's offerings and draws replacements. Prior
// offerings are gone for good; identical re-draws are accepted chance.
func (s *ShopService) Refresh(playerID string, partType stats.PartType) ([]model.ShopOffering, error) {
	if !stats.ValidPartType(partType) {
		return nil, ErrInvalidPartType
	}

	s.mu.Lock()
	st := s.stockFor(playerID, partType)
	st.list = s.generateCategory(partType)
	st.gen++
	list := st.list
	s.mu.Unlock()

	s.notifyShop(playerID, "shop:refresh", partType)
	return wrapOfferings(list), nil
}

// Buy purchases one offering and installs it into the matching slot of
// the player's active weapon. The debit is conditional: without enough
// credits nothing changes, not the balance, not the weapon, not the
// shop stock.
func (s *ShopService) Buy(ctx context.Context, playerID string, partType stats.PartType, index int) (*model.PurchaseResult, error) {
	if !stats.ValidPartType(partType) {
		return nil, ErrInvalidPartType
	}

	s.mu.Lock()
	st := s.stockFor(playerID, partType)
	if index < 0 || index >= len(st.list) {
		s.mu.Unlock()
		return nil, ErrOfferingNotFound
	}
	offering := st.list[index]
	gen := st.gen
	s.mu.Unlock()

	weapon, err := s.weaponRepo.GetActive(ctx, playerID)
	if err != nil {
		return nil, activeWeaponError(err)
	}

	part := &stats.Part{
		ID:               uuid.New().String(),
		Type:             offering.Type,
		Name:             offering.Name,
		Rarity:           offering.Rarity,
		Cost:             offering.Price,
		Deltas:           offering.Deltas,
		MagazineCapacity: offering.MagazineCapacity,
		MeshID:           offering.MeshID,
		MaterialID:       offering.MaterialID,
		IconID:           offering.IconID,
	}

	a := armory.FromSnapshot(weapon.Snapshot, s.armorySvc.Tuning().BaseDamage)
	replaced := a.Install(part)
	weapon.Snapshot = a.Snapshot()

	credits, err := s.weaponRepo.SavePurchase(ctx, playerID, weapon.ID, offering.Price, weapon.Snapshot)
	if err != nil {
		return nil, purchaseError(err)
	}

	s.consumeOffering(playerID, partType, index, gen)

	result := &model.PurchaseResult{
		Part:     part,
		Replaced: replaced,
		Weapon:   s.armorySvc.detail(weapon),
		Credits:  credits,
	}

	s.notifyPurchase(playerID, result)
	if offering.Rarity == catalog.RarityMax && s.webhooks != nil {
		player, perr := s.playerRepo.GetByID(ctx, playerID)
		if perr == nil {
			s.webhooks.SendRareDrop(player.Username, offering.Name, offering.Price, offering.Rarity)
		}
	}

	return result, nil
}

// consumeOffering splices a bought slot off the shelf, but only when
// the shelf has not been regenerated since the purchase was priced; a
// refresh that raced the purchase already discarded the bought offering.
func (s *ShopService) consumeOffering(playerID string, partType stats.PartType, index, gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.offerings[playerID][partType]
	if !ok || st.gen != gen || index >= len(st.list) {
		return
	}
	st.list = append(st.list[:index:index], st.list[index+1:]...)
}

func (s *ShopService) notifyShop(playerID, eventType string, partType stats.PartType) {
	if s.hub == nil {
		return
	}
	data, err := json.Marshal(map[string]string{"part_type": string(partType)})
	if err != nil {
		return
	}
	s.hub.SendToPlayer(playerID, &model.WSEvent{Type: eventType, Data: data})
}

func (s *ShopService) notifyPurchase(playerID string, result *model.PurchaseResult) {
	if s.hub == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	s.hub.SendToPlayer(playerID, &model.WSEvent{Type: "shop:purchase", Data: data})
}
