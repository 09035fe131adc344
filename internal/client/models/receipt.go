package models

import "time"

// Receipt records a successful gift transfer. The debit that produced it is
// the sole source of truth for "gift sent"; there is no downstream
// confirmation step.
type Receipt struct {
	ID         string
	Gift       Gift
	Recipient  Recipient
	NewBalance int64
	SentAt     time.Time
}

// CoinPackage is a purchasable top-up bundle: the credited amount and its
// price in real currency (rubles in the reference shop).
type CoinPackage struct {
	Coins int64
	Price int64
}
