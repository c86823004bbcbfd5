// Package economy implements the coin and cosmetics rules on top of
// the store: catalog lookups, transfer validation, and the round-score
// coin reward.
package economy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/flitgame/flit-server/internal/store"
)

var (
	// ErrInvalidAmount rejects zero or negative transfer amounts.
	ErrInvalidAmount = errors.New("economy: amount must be positive")
	// ErrSelfTransfer rejects sending coins to yourself.
	ErrSelfTransfer = errors.New("economy: sender and recipient are the same player")
	// ErrUnknownItem rejects purchases of items not in the catalog.
	ErrUnknownItem = errors.New("economy: unknown catalog item")
)

// Item is one purchasable cosmetic.
type Item struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Kind  string          `json:"kind"` // plane_skin | trail | badge
	Price decimal.Decimal `json:"price"`
}

// catalog is the fixed cosmetic shop. Prices are whole coins today but
// the ledger keeps decimals so promotional fractional rewards don't
// need a schema change.
var catalog = map[string]Item{
	"plane_classic_red":  {ID: "plane_classic_red", Name: "Classic Red", Kind: "plane_skin", Price: decimal.NewFromInt(200)},
	"plane_night_ops":    {ID: "plane_night_ops", Name: "Night Ops", Kind: "plane_skin", Price: decimal.NewFromInt(450)},
	"plane_gold_leaf":    {ID: "plane_gold_leaf", Name: "Gold Leaf", Kind: "plane_skin", Price: decimal.NewFromInt(1200)},
	"trail_contrail":     {ID: "trail_contrail", Name: "Contrail", Kind: "trail", Price: decimal.NewFromInt(150)},
	"trail_rainbow":      {ID: "trail_rainbow", Name: "Rainbow", Kind: "trail", Price: decimal.NewFromInt(600)},
	"badge_globetrotter": {ID: "badge_globetrotter", Name: "Globetrotter", Kind: "badge", Price: decimal.NewFromInt(350)},
}

// rewardDivisor converts round score into a coin reward: 100 points
// per coin, so a perfect 10000 round pays 100 coins.
var rewardDivisor = decimal.NewFromInt(100)

// Service applies economy rules over the persistence layer.
type Service struct {
	db store.DB
}

// NewService creates the economy service.
func NewService(db store.DB) *Service {
	return &Service{db: db}
}

// Catalog returns the shop items in stable ID order.
func (s *Service) Catalog() []Item {
	items := make([]Item, 0, len(catalog))
	for _, item := range catalog {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Balance returns the player's current coin balance.
func (s *Service) Balance(playerID string) (decimal.Decimal, error) {
	return s.db.CoinBalance(playerID)
}

// RewardForScore converts a round score into its coin reward.
func RewardForScore(score int) decimal.Decimal {
	if score <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(score)).Div(rewardDivisor).Floor()
}

// PayRoundReward credits the player for a scored round and returns the
// amount granted.
func (s *Service) PayRoundReward(playerID string, score int) (decimal.Decimal, error) {
	reward := RewardForScore(score)
	if reward.IsZero() {
		return decimal.Zero, nil
	}
	if err := s.db.GrantCoins(playerID, reward, "round_reward"); err != nil {
		return decimal.Zero, err
	}
	return reward, nil
}

// SendCoins transfers coins between players after validation.
func (s *Service) SendCoins(senderID, recipientID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	if senderID == recipientID {
		return ErrSelfTransfer
	}
	return s.db.Transfer(senderID, recipientID, amount)
}

// PurchaseCosmetic buys a catalog item for the player.
func (s *Service) PurchaseCosmetic(playerID, itemID string) (Item, error) {
	item, ok := catalog[itemID]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}
	if err := s.db.Purchase(playerID, item.ID, item.Price); err != nil {
		return Item{}, err
	}
	return item, nil
}

// OwnedCosmetics lists the player's purchased items.
func (s *Service) OwnedCosmetics(playerID string) ([]string, error) {
	return s.db.OwnedCosmetics(playerID)
}
