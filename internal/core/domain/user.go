package domain

import "time"

// Role is the closed set of authorization roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a raw claim or column value onto the Role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated subject of a request. It is a transient
// value computed per request and never stored.
type Identity struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// Identity derives the request-scoped identity for a stored account.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role}
}

// CanAct reports whether the identity may mutate a resource owned by
// ownerID. Admins may act on any resource; everyone else only on their own.
func (i Identity) CanAct(ownerID string) bool {
	if i.Role == RoleAdmin {
		return true
	}
	return i.ID == ownerID
}
