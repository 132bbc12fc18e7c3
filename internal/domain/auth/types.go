package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below; historical records also used
// "desenvolvedor" as a synonym for admin, which ParseRole normalizes away.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRH        Role = "rh"
	RoleCandidato Role = "candidato"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRH, RoleCandidato:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
// Legacy "desenvolvedor" records map to admin.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin, Role("desenvolvedor"):
		return RoleAdmin, true
	case RoleRH:
		return RoleRH, true
	case RoleCandidato:
		return RoleCandidato, true
	default:
		return "", false
	}
}

// Identity represents the authenticated principal returned by an
// authenticator. Adapters map strategy-specific responses into this shape.
// An Identity is immutable for the duration of its session; changing role
// requires a new login.
type Identity struct {
	Name  string // display name
	Email string // unique identifier, lookup key in the credential stores
	Role  Role
	Token string // opaque credential, never interpreted by this service
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Identity projects the session back into the identity it was created from.
func (s Session) Identity() Identity {
	return Identity{Name: s.Name, Email: s.Email, Role: s.Role, Token: s.Token}
}
