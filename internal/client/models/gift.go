package models

// Tier classifies gifts for display grouping only; it carries no pricing
// or access-control semantics.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Gift is an immutable catalog entry purchasable with credits.
type Gift struct {
	// ID is unique within the catalog, e.g. "premium-crown".
	ID string

	// Glyph is the emoji shown in listings.
	Glyph string

	// Name is the human-readable gift name.
	Name string

	// Price is the cost in credits; always positive.
	Price int64

	Tier Tier
}

// Recipient identifies a peer who receives a gift. Drawn from the static
// directory; it has no relation to the local identity or the ledger.
type Recipient struct {
	Handle      string
	DisplayName string
	Avatar      string
}
