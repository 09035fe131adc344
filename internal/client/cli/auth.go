package cli

import (
	"context"
	"fmt"

	"github.com/crack-social/crack-cli/internal/client/models"
)

// Register collects the registration form fields and creates a new local
// identity, replacing any prior one. The password is read without echo and
// discarded: the demo network performs no authentication.
func (a *App) Register(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "Enter your full name", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if _, err := GetPassword(a.out); err != nil {
		return err
	}

	identity, err := a.session.Create(ctx, models.IdentityParams{
		Username: username,
		FullName: fullName,
	})
	if err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	a.identity = identity
	fmt.Fprintf(a.out, "Welcome to Crack, %s %s!\n", identity.Avatar, identity.FullName)
	return nil
}

// Login creates a minimal identity from the login form (single-session
// model: logging in replaces whatever record was on the device).
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if _, err := GetPassword(a.out); err != nil {
		return err
	}

	identity, err := a.session.Create(ctx, models.IdentityParams{Username: username})
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	a.identity = identity
	fmt.Fprintf(a.out, "Logged in as %s %s\n", identity.Avatar, identity.Username)
	return nil
}

// Logout removes the identity record. The credit balance is device-global
// and survives the logout.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Destroy(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	a.identity = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
