// Package models defines the client-side domain records: the authenticated
// user and credential, and the server-owned category/persona collections
// the radar views are derived from.
package models

// PlaceholderUserLabel is shown when a token was restored but the cached
// user record is missing (partial persistence). Flagged for product review:
// it is unclear whether the original behavior was intentional degradation.
const PlaceholderUserLabel = "사용자"

// User is the account record returned by the auth endpoints and cached
// locally next to the token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// PlaceholderUser substitutes for a missing cached user record so that a
// restored session still has something to display.
func PlaceholderUser() User {
	return User{Email: PlaceholderUserLabel}
}

// Credential is the persisted authentication state: an opaque bearer token
// plus the user it belongs to. Owned by the credential store.
type Credential struct {
	Token string
	User  User
}
