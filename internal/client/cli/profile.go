package cli

import (
	"context"
	"fmt"

	"github.com/crack-social/crack-cli/internal/client/catalog"
)

// Profile shows the logged-in user's card and the current balance.
func (a *App) Profile(ctx context.Context) error {
	identity, err := a.session.Restore(ctx)
	if err != nil {
		a.log.Error(ctx, "profile read failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if identity == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	balance, err := a.ledger.Read(ctx)
	if err != nil {
		a.log.Error(ctx, "balance read failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	fmt.Fprintf(a.out, "%s  %s\n", identity.Avatar, identity.FullName)
	fmt.Fprintf(a.out, "Username: %s\n", identity.Username)
	if identity.Bio != "" {
		fmt.Fprintf(a.out, "Bio: %s\n", identity.Bio)
	}
	if identity.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", identity.Phone)
	}
	fmt.Fprintf(a.out, "Balance: ⚡ %d Crack\n", balance)
	return nil
}

// Contacts lists the peer directory.
func (a *App) Contacts(ctx context.Context) error {
	for _, r := range catalog.Recipients() {
		fmt.Fprintf(a.out, "%s  %-20s %s\n", r.Avatar, r.DisplayName, r.Handle)
	}
	return nil
}

// Balance prints the current credit balance.
func (a *App) Balance(ctx context.Context) error {
	balance, err := a.ledger.Read(ctx)
	if err != nil {
		a.log.Error(ctx, "balance read failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Balance: ⚡ %d Crack\n", balance)
	return nil
}
