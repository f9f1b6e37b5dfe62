package domain

import "time"

// DefaultOrganizationID is the organization assigned to users that register
// without one. Seeded by the initial migration.
const DefaultOrganizationID int64 = 1

// User represents a registered identity in the domain.
type User struct {
	UserID    int64  `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Info      string `json:"info,omitempty"` // free-text bio
	OrganizID int64  `json:"organizId"`      // weak reference, no ownership

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"` // soft delete
}

// Organization is referenced by users; it is not managed by this service
// beyond the seeded default row.
type Organization struct {
	OrganizID int64     `json:"organizId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
