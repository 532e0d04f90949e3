package model

import (
	"gunsmith-backend/internal/catalog"
	"gunsmith-backend/internal/stats"
)

// ShopOffering is one purchasable slot in a shop category, addressed by
// index. Offerings are ephemeral; a refresh discards and replaces them.
type ShopOffering struct {
	Index    int              `json:"index"`
	Offering catalog.Offering `json:"offering"`
}

type BuyRequest struct {
	OfferingIndex int `json:"offering_index"`
}

// PurchaseResult reports a completed purchase: the part as installed,
// the updated weapon, and the buyer's remaining balance.
type PurchaseResult struct {
	Part     *stats.Part   `json:"part"`
	Replaced *stats.Part   `json:"replaced,omitempty"`
	Weapon   *WeaponDetail `json:"weapon"`
	Credits  int64         `json:"credits"`
}

type GrantCreditsRequest struct {
	Amount int64 `json:"amount"`
}
