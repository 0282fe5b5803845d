package models

import "time"

// RefreshToken is a stored long-lived credential. Presenting a valid one
// yields a fresh access/refresh pair; the old token is deleted on rotation.
type RefreshToken struct {
	Token   string    `bson:"token" json:"token"`
	UserID  string    `bson:"userId" json:"userId"`
	Expires time.Time `bson:"expires" json:"expires"`
}

// Expired reports whether the token's lifetime has passed.
func (t RefreshToken) Expired() bool {
	return t.Expires.Before(time.Now())
}
