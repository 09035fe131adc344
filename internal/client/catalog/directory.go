package catalog

import (
	"github.com/crack-social/crack-cli/internal/client/models"
	"github.com/crack-social/crack-cli/internal/common"
)

// Peer directory of the demo network. Fixed set; recipients of gifts are
// resolved against it by handle.
var recipients = []models.Recipient{
	{Handle: "@anna_smirnova", DisplayName: "Anna Smirnova", Avatar: "👩"},
	{Handle: "@max_petrov", DisplayName: "Maxim Petrov", Avatar: "👨"},
	{Handle: "@elena_k", DisplayName: "Elena Kuznetsova", Avatar: "👩‍🦰"},
	{Handle: "@dmitriy_work", DisplayName: "Dmitriy", Avatar: "👨‍💼"},
	{Handle: "@maria_art", DisplayName: "Maria", Avatar: "👩‍🎨"},
	{Handle: "@oleg_dev", DisplayName: "Oleg", Avatar: "🧑‍💻"},
}

// Recipients returns the peer directory.
func Recipients() []models.Recipient {
	out := make([]models.Recipient, len(recipients))
	copy(out, recipients)
	return out
}

// FindRecipient resolves a directory entry by handle. A missing leading "@"
// is tolerated.
func FindRecipient(handle string) (models.Recipient, error) {
	if handle != "" && handle[0] != '@' {
		handle = "@" + handle
	}
	for _, r := range recipients {
		if r.Handle == handle {
			return r, nil
		}
	}
	return models.Recipient{}, common.ErrUnknownRecipient
}

// Avatars is the glyph set offered by the settings avatar picker.
var Avatars = []string{
	"👨", "👩", "🧑", "👨‍💼", "👩‍💼", "👨‍💻", "👩‍💻", "🧑‍💻",
	"👨‍🎨", "👩‍🎨", "🧑‍🎨", "👨‍🔬", "👩‍🔬", "🧑‍🔬", "👨‍🎓", "👩‍🎓",
	"🧑‍🎓", "👨‍🍳", "👩‍🍳", "🧑‍🍳", "🧙‍♂️", "🧙‍♀️", "🦸‍♂️", "🦸‍♀️",
	"🧝‍♂️", "🧝‍♀️", "🧛‍♂️", "🧛‍♀️", "🧚‍♂️", "🧚‍♀️", "👼", "🎅", "🤶", "🦹‍♂️", "🦹‍♀️",
}
