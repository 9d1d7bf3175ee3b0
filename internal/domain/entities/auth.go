package entities

import (
	domainerrors "justice-airdrop.backend/internal/domain/errors"
)

// Credentials are the raw identity claims carried by a request
type Credentials struct {
	AdminKey    string
	OwnerID     string
	AdminID     string
	UserID      string
	BearerToken string
}

// AuthContext is resolved once per request and passed to handlers.
// UserError records why a claimed user identity could not be resolved.
type AuthContext struct {
	IsOwner   bool
	IsAdmin   bool
	ViaAPIKey bool
	Admin     *Admin
	User      *User
	UserError error
}

// CanModerate reports whether the caller may approve or reject
func (a *AuthContext) CanModerate() bool {
	return a != nil && (a.IsOwner || a.IsAdmin)
}

// RequireOwner fails unless the caller is an owner
func (a *AuthContext) RequireOwner() error {
	if a == nil || !a.IsOwner {
		return domainerrors.Forbidden("Owner only")
	}
	return nil
}

// RequireModerator fails unless the caller is an admin or owner
func (a *AuthContext) RequireModerator() error {
	if !a.CanModerate() {
		return domainerrors.Forbidden("Unauthorized")
	}
	return nil
}

// VerifiedUser returns the acting user if they are verified and not banned
func (a *AuthContext) VerifiedUser() (*User, error) {
	if a == nil {
		return nil, domainerrors.Unauthorized("Missing user id header")
	}
	if a.UserError != nil {
		return nil, a.UserError
	}
	if a.User == nil {
		return nil, domainerrors.Unauthorized("Missing user id header")
	}
	if !a.User.CanAct() {
		return nil, domainerrors.Forbidden("Access denied: not verified or banned")
	}
	return a.User, nil
}
