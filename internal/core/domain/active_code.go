package domain

import "time"

// CodeType discriminates what a verification code proves.
type CodeType string

const (
	// CodeTypeActiveAccount verifies that a freshly registered email is reachable.
	CodeTypeActiveAccount CodeType = "activeAccount"
	// CodeTypeChangePassword authorizes a password change.
	CodeTypeChangePassword CodeType = "changePassword"
)

// ActiveCode is a one-time verification code sent over email. Rows transition
// State false→true exactly once and are kept afterwards as an audit trail.
type ActiveCode struct {
	ID       int64    `json:"id"`
	UserID   int64    `json:"userId"`
	Code     string   `json:"code"`
	CodeType CodeType `json:"codeType"`
	State    bool     `json:"state"` // consumed

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
