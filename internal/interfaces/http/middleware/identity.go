package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/interfaces/http/response"
)

// Identity headers
const (
	AdminKeyHeader      = "x-admin-key"
	OwnerIDHeader       = "x-owner-id"
	AdminIDHeader       = "x-admin-id"
	UserIDHeader        = "x-user-id"
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
)

// Gin context keys
const (
	AuthContextKey = "auth_context"
	UserKey        = "user"
)

// AuthResolver turns request credentials into an AuthContext
type AuthResolver interface {
	Resolve(ctx context.Context, creds entities.Credentials) (*entities.AuthContext, error)
}

// IdentityMiddleware resolves the caller once per request. It never rejects a
// request by itself; the Require* gates decide what the route needs.
func IdentityMiddleware(resolver AuthResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := entities.Credentials{
			AdminKey: strings.TrimSpace(c.GetHeader(AdminKeyHeader)),
			OwnerID:  c.GetHeader(OwnerIDHeader),
			AdminID:  c.GetHeader(AdminIDHeader),
			UserID:   c.GetHeader(UserIDHeader),
		}
		if h := c.GetHeader(AuthorizationHeader); strings.HasPrefix(h, BearerPrefix) {
			creds.BearerToken = strings.TrimSpace(strings.TrimPrefix(h, BearerPrefix))
		}

		auth, err := resolver.Resolve(c.Request.Context(), creds)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Set(AuthContextKey, auth)
		c.Next()
	}
}

// GetAuthContext returns the resolved caller, or an empty context when the
// identity middleware did not run.
func GetAuthContext(c *gin.Context) *entities.AuthContext {
	if v, ok := c.Get(AuthContextKey); ok {
		if auth, ok := v.(*entities.AuthContext); ok && auth != nil {
			return auth
		}
	}
	return &entities.AuthContext{}
}

// CurrentUser returns the verified user set by RequireVerifiedUser
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok && user != nil
}

// RequireOwner allows owners only
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := GetAuthContext(c).RequireOwner(); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}

// RequireModerator allows admins and owners
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := GetAuthContext(c).RequireModerator(); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}

// RequireVerifiedUser allows verified, non-banned users and stores the user
func RequireVerifiedUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetAuthContext(c).VerifiedUser()
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireVerifiedUserOrModerator allows moderators, or else a verified user
func RequireVerifiedUserOrModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := GetAuthContext(c)
		if auth.CanModerate() {
			c.Next()
			return
		}
		user, err := auth.VerifiedUser()
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}
