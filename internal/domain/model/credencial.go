package model

import "time"

// Credencial is a candidate login credential. SenhaHash is nil until the
// candidate completes the set-password flow.
type Credencial struct {
	ID          string    `json:"id"         db:"id"`
	Email       string    `json:"email"      db:"email"`
	SenhaHash   *string   `json:"-"          db:"senha_hash"`
	InviteToken *string   `json:"-"          db:"invite_token"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
