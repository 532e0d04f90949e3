package service

import (
	"errors"
	"testing"

	"gunsmith-backend/internal/catalog"
	"gunsmith-backend/internal/stats"

	"github.com/jackc/pgx/v5"
)

func testShopService() *ShopService {
	cat := &catalog.Catalog{Parts: map[stats.PartType]catalog.PartClass{
		stats.PartBarrel: {
			Influences: []string{"power"},
			Tiers: []catalog.Tier{{
				Rarity: 1, MinPrice: 10, MaxPrice: 20, MinStat: 1, MaxStat: 5,
				NameFragments: []string{"Plain"},
			}},
		},
	}}
	gen := catalog.NewGenerator(cat, 1)
	return NewShopService(gen, cat, 3, nil, nil, nil, nil, nil)
}

func TestStorageErrorClassification(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name     string
		classify func(error) error
		sentinel error
	}{
		{"purchase", purchaseError, ErrInsufficientCredits},
		{"active weapon", activeWeaponError, ErrNoActiveWeapon},
		{"weapon lookup", weaponLookupError, ErrWeaponNotFound},
	}
	for _, tt := range tests {
		if got := tt.classify(pgx.ErrNoRows); !errors.Is(got, tt.sentinel) {
			t.Errorf("%s: no rows classified as %v, want %v", tt.name, got, tt.sentinel)
		}
		if got := tt.classify(boom); !errors.Is(got, boom) {
			t.Errorf("%s: transport error rewritten to %v, must pass through", tt.name, got)
		}
		if got := tt.classify(boom); errors.Is(got, tt.sentinel) {
			t.Errorf("%s: transport error must not satisfy the domain sentinel", tt.name)
		}
	}
}

func TestConsumeOffering(t *testing.T) {
	s := testShopService()

	if _, err := s.Offerings("p-1", stats.PartBarrel); err != nil {
		t.Fatalf("offerings: %v", err)
	}

	s.mu.Lock()
	gen := s.offerings["p-1"][stats.PartBarrel].gen
	s.mu.Unlock()

	s.consumeOffering("p-1", stats.PartBarrel, 0, gen)

	list, err := s.Offerings("p-1", stats.PartBarrel)
	if err != nil {
		t.Fatalf("offerings: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("after consume: %d offerings, want 2", len(list))
	}
}

func TestConsumeOfferingStaleAfterRefresh(t *testing.T) {
	s := testShopService()

	if _, err := s.Offerings("p-1", stats.PartBarrel); err != nil {
		t.Fatalf("offerings: %v", err)
	}

	s.mu.Lock()
	staleGen := s.offerings["p-1"][stats.PartBarrel].gen
	s.mu.Unlock()

	// A refresh between pricing and consumption replaces the shelf; the
	// stale splice must not delete a freshly generated offering.
	if _, err := s.Refresh("p-1", stats.PartBarrel); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	s.consumeOffering("p-1", stats.PartBarrel, 0, staleGen)

	list, err := s.Offerings("p-1", stats.PartBarrel)
	if err != nil {
		t.Fatalf("offerings: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("stale consume removed an offering: %d left, want 3", len(list))
	}
}
