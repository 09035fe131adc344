package cli

import (
	"context"
	"fmt"

	"github.com/crack-social/crack-cli/internal/client/catalog"
	"github.com/crack-social/crack-cli/internal/client/models"
)

// promptPatchField asks for a new value for one profile field, showing the
// current one. An empty answer keeps the field unchanged (nil patch entry).
func (a *App) promptPatchField(label, current string) (*string, error) {
	text, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s] (Enter to keep)", label, current), a.out)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

// Settings walks the editable profile fields and applies the collected
// patch. Fields left empty keep their current values.
func (a *App) Settings(ctx context.Context) error {
	identity, err := a.session.Restore(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if identity == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	var patch models.IdentityPatch
	if patch.FullName, err = a.promptPatchField("Full name", identity.FullName); err != nil {
		return err
	}
	if patch.Username, err = a.promptPatchField("Username", identity.Username); err != nil {
		return err
	}
	if patch.Bio, err = a.promptPatchField("Bio", identity.Bio); err != nil {
		return err
	}
	if patch.Phone, err = a.promptPatchField("Phone", identity.Phone); err != nil {
		return err
	}

	updated, err := a.session.Update(ctx, patch)
	if err != nil {
		a.log.Error(ctx, "settings update failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	a.identity = updated
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}

// Avatar shows the glyph picker and stores the selected avatar.
func (a *App) Avatar(ctx context.Context) error {
	for i, glyph := range catalog.Avatars {
		fmt.Fprintf(a.out, "%3d %s", i+1, glyph)
		if (i+1)%8 == 0 {
			fmt.Fprintln(a.out)
		}
	}
	fmt.Fprintln(a.out)

	idx, err := GetChoice(a.reader, "Pick an avatar", len(catalog.Avatars), a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	avatar := catalog.Avatars[idx]
	updated, err := a.session.Update(ctx, models.IdentityPatch{Avatar: &avatar})
	if err != nil {
		a.log.Error(ctx, "avatar update failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	a.identity = updated
	fmt.Fprintf(a.out, "Avatar updated to %s\n", avatar)
	return nil
}
