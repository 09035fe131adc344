// Package models defines client-side data models used by the Crack CLI.
package models

// Identity is the locally persisted representation of the logged-in user.
// Exactly one identity exists per device at a time.
type Identity struct {
	// Username is the unique display handle, e.g. "@alex".
	Username string `json:"username"`

	// FullName is the display name; defaults to Username when not provided.
	FullName string `json:"fullName"`

	// Avatar is an emoji glyph shown next to the name.
	Avatar string `json:"avatar"`

	// Bio and Phone are optional, settings-editable fields.
	Bio   string `json:"bio,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IdentityParams carries the registration form fields. Username is required;
// the rest are optional.
type IdentityParams struct {
	Username string
	FullName string
	Avatar   string
	Bio      string
	Phone    string
}

// IdentityPatch is a partial update of an Identity. Nil fields are left
// unchanged by Update.
type IdentityPatch struct {
	Username *string
	FullName *string
	Avatar   *string
	Bio      *string
	Phone    *string
}
