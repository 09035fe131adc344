// Package catalog holds the static configuration data of the Crack client:
// the gift catalog, the top-up coin packages, and the recipient directory.
// All of it is compiled in and read-only; nothing here is persisted.
package catalog

import (
	"github.com/crack-social/crack-cli/internal/client/models"
	"github.com/crack-social/crack-cli/internal/common"
)

var gifts = []models.Gift{
	{ID: "basic-star", Glyph: "🌟", Name: "Star", Price: 5, Tier: models.TierBasic},
	{ID: "standard-diamond", Glyph: "💎", Name: "Diamond", Price: 50, Tier: models.TierStandard},
	{ID: "premium-crown", Glyph: "👑", Name: "Crown", Price: 100, Tier: models.TierPremium},
	{ID: "basic-gift", Glyph: "🎁", Name: "Gift Box", Price: 10, Tier: models.TierBasic},
	{ID: "basic-fire", Glyph: "🔥", Name: "Fire", Price: 15, Tier: models.TierBasic},
	{ID: "basic-heart", Glyph: "💖", Name: "Heart", Price: 20, Tier: models.TierBasic},
	{ID: "standard-rocket", Glyph: "🚀", Name: "Rocket", Price: 75, Tier: models.TierStandard},
	{ID: "premium-trophy", Glyph: "🏆", Name: "Trophy", Price: 150, Tier: models.TierPremium},
	{ID: "standard-palette", Glyph: "🎨", Name: "Palette", Price: 30, Tier: models.TierStandard},
	{ID: "standard-lightning", Glyph: "⚡", Name: "Lightning", Price: 25, Tier: models.TierStandard},
	{ID: "standard-masks", Glyph: "🎭", Name: "Masks", Price: 40, Tier: models.TierStandard},
	{ID: "standard-rainbow", Glyph: "🌈", Name: "Rainbow", Price: 35, Tier: models.TierStandard},
	{ID: "premium-comet", Glyph: "💫", Name: "Comet", Price: 200, Tier: models.TierPremium},
	{ID: "premium-unicorn", Glyph: "🦄", Name: "Unicorn", Price: 250, Tier: models.TierPremium},
	{ID: "standard-circus", Glyph: "🎪", Name: "Circus", Price: 45, Tier: models.TierStandard},
}

// Gifts returns the full gift catalog.
func Gifts() []models.Gift {
	out := make([]models.Gift, len(gifts))
	copy(out, gifts)
	return out
}

// Find looks a gift up by its ID.
func Find(id string) (models.Gift, error) {
	for _, g := range gifts {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Gift{}, common.ErrUnknownGift
}

// ByTier returns the gifts of one display tier, in catalog order.
func ByTier(tier models.Tier) []models.Gift {
	var out []models.Gift
	for _, g := range gifts {
		if g.Tier == tier {
			out = append(out, g)
		}
	}
	return out
}

// CoinPackages are the top-up bundles offered by the shop.
var CoinPackages = []models.CoinPackage{
	{Coins: 50, Price: 59},
	{Coins: 100, Price: 99},
	{Coins: 250, Price: 219},
	{Coins: 500, Price: 399},
}
