package domain

import "time"

// AuthType discriminates how a credential authenticates its user.
type AuthType string

const (
	// AuthTypeEmail is an email address plus a bcrypt password hash.
	AuthTypeEmail AuthType = "email"
	// AuthTypeWxApp is a WeChat mini-program openid plus a bcrypt hash of the
	// most recent session key.
	AuthTypeWxApp AuthType = "wxapp"
)

// UserAuth is one login method for one user: (identity_type, identifier) is
// unique, and every row references an existing user.
type UserAuth struct {
	ID           int64    `json:"id"`
	UserID       int64    `json:"userId"`
	IdentityType AuthType `json:"identityType"`
	Identifier   string   `json:"identifier"` // email address or third-party openid
	Credential   string   `json:"-"`          // bcrypt hash, never serialized

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`
}
