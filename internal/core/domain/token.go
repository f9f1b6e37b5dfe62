package domain

import "time"

// AccessToken is a short-lived opaque bearer credential. Tokens are minted on
// login/registration/oauth and purged in bulk on re-issue or revoke, so a user
// has at most one live access token at a time.
type AccessToken struct {
	ID         int64     `json:"id"`
	Token      string    `json:"token"` // 32 random bytes, base64
	UserID     int64     `json:"userId"`
	ExpiryTime time.Time `json:"expiryTime"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsExpired reports whether the token is past its expiry.
func (t *AccessToken) IsExpired() bool {
	return time.Now().After(t.ExpiryTime)
}

// RefreshToken is a long-lived opaque credential used solely to mint new
// access/refresh pairs without re-presenting the password.
type RefreshToken struct {
	ID         int64     `json:"id"`
	Token      string    `json:"token"`
	UserID     int64     `json:"userId"`
	ExpiryTime time.Time `json:"expiryTime"` // zero means no expiry configured

	CreatedAt time.Time `json:"createdAt"`
}

// IsExpired reports whether the token is past its expiry. Tokens minted with
// no configured TTL never expire.
func (t *RefreshToken) IsExpired() bool {
	if t.ExpiryTime.IsZero() {
		return false
	}
	return time.Now().After(t.ExpiryTime)
}

// TokenPair is the result of every successful authentication.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	ExpiresIn    time.Time `json:"expiresIn"`
	RefreshToken string    `json:"refreshToken"`
}
