package models

import (
	"fmt"
	"strings"
)

// User represents an account in the system. Passwords are stored in
// plaintext: this is a demo store with no real authentication, and
// login is an exact string comparison against Email and Password.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
	Wallet   int64  `json:"wallet"`
}

// ReferralCode derives the user's share code from the tail of their id.
func (u User) ReferralCode() string {
	id := u.ID
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return strings.ToUpper(id)
}

// ReferralLink returns the invite URL for the user.
func (u User) ReferralLink() string {
	return fmt.Sprintf("https://tunga.co/ref=%s", u.ReferralCode())
}
