// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is an account on the platform. It doubles as a channel other users can subscribe to.
type User struct {
	ID           string    `json:"_id"`          // Hex encoded identifier assigned by the store.
	Username     string    `json:"username"`     // Unique handle, always lowercase and trimmed.
	Email        string    `json:"email"`        // Unique contact email, always lowercase and trimmed.
	FullName     string    `json:"fullName"`     // Display name.
	Avatar       string    `json:"avatar"`       // URL of the uploaded avatar image. Required.
	CoverImage   string    `json:"coverImage"`   // URL of the uploaded cover image. Optional.
	WatchHistory []string  `json:"watchHistory"` // Watched video ids, most recent first.
	Password     string    `json:"-"`            // bcrypt hash. Never serialized.
	RefreshToken string    `json:"-"`            // The single active refresh token. Never serialized.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sanitized returns a copy of the user without credential material.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.Password = ""
	clone.RefreshToken = ""
	if u.WatchHistory != nil {
		clone.WatchHistory = append([]string(nil), u.WatchHistory...)
	}

	return &clone
}

// Identity is the authenticated caller resolved from an access token.
type Identity struct {
	UserID   string `json:"_id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// OwnerSummary is the public projection of a user embedded in other read models.
type OwnerSummary struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}
