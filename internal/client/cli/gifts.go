package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/crack-social/crack-cli/internal/client/catalog"
	"github.com/crack-social/crack-cli/internal/client/models"
	"github.com/crack-social/crack-cli/internal/common"
)

var tierHeaders = []struct {
	tier  models.Tier
	title string
}{
	{models.TierPremium, "💎 Premium gifts"},
	{models.TierStandard, "🎁 Standard gifts"},
	{models.TierBasic, "✨ Basic gifts"},
}

// Gifts prints the catalog grouped by display tier.
func (a *App) Gifts(ctx context.Context) error {
	for _, h := range tierHeaders {
		fmt.Fprintln(a.out, h.title)
		for _, g := range catalog.ByTier(h.tier) {
			fmt.Fprintf(a.out, "  %s %-10s ⚡ %-4d (%s)\n", g.Glyph, g.Name, g.Price, g.ID)
		}
	}
	return nil
}

// Send drives the gift-send dialog: pick a gift by catalog ID, pick a
// recipient by handle, then transfer. On insufficient funds the user is
// pointed at the top-up command; the balance is untouched.
func (a *App) Send(ctx context.Context) error {
	giftID, err := GetSimpleText(a.reader, "Enter gift id (see 'gifts')", a.out)
	if err != nil {
		return err
	}

	handle, err := GetSimpleText(a.reader, "Enter recipient handle (see 'contacts')", a.out)
	if err != nil {
		return err
	}
	recipient, err := catalog.FindRecipient(handle)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	receipt, err := a.transfer.Transfer(ctx, giftID, recipient)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInsufficientFunds):
			fmt.Fprintln(a.out, "Not enough Crack! Use 'topup' to buy more")
		default:
			fmt.Fprintln(a.out, "Error:", err)
		}
		a.log.Error(ctx, "gift transfer failed", "gift", giftID, "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Gift %s %s sent to %s\n", receipt.Gift.Glyph, receipt.Gift.Name, receipt.Recipient.DisplayName)
	fmt.Fprintf(a.out, "Balance: ⚡ %d Crack\n", receipt.NewBalance)
	return nil
}

// TopUp lists the coin packages and purchases the selected one.
func (a *App) TopUp(ctx context.Context) error {
	for i, pkg := range catalog.CoinPackages {
		fmt.Fprintf(a.out, "%d) ⚡ %-4d Crack - %d₽\n", i+1, pkg.Coins, pkg.Price)
	}

	idx, err := GetChoice(a.reader, "Pick a package", len(catalog.CoinPackages), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	pkg := catalog.CoinPackages[idx]
	balance, err := a.transfer.Purchase(ctx, pkg)
	if err != nil {
		a.log.Error(ctx, "top-up failed", "coins", pkg.Coins, "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "Bought %d Crack for %d₽\n", pkg.Coins, pkg.Price)
	fmt.Fprintf(a.out, "Balance: ⚡ %d Crack\n", balance)
	return nil
}
