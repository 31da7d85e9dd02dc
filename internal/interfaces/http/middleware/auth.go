package middleware

import (
	"context"
	"crypto/subtle"
	"strings"

	"community-hub.backend/internal/domain/entities"
	domainerrors "community-hub.backend/internal/domain/errors"
	"community-hub.backend/internal/interfaces/http/response"
	"community-hub.backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionIDHeader carries the browser session id from the front-end proxy
	SessionIDHeader = "X-Session-Id"
	// ProxySecretHeader authenticates the front-end proxy
	ProxySecretHeader = "X-Internal-Proxy-Secret"
	// ActorKey is the context key for the resolved actor
	ActorKey = "actor"
)

// IdentityResolver turns credentials into the current user
type IdentityResolver interface {
	ResolveAccessToken(ctx context.Context, token string) (*entities.User, error)
	ResolveSession(ctx context.Context, sessionID string) (*entities.User, error)
}

// AuthMiddleware resolves the caller to an Actor. A session id is honoured
// only from the trusted proxy; otherwise a bearer access token is required.
func AuthMiddleware(resolver IdentityResolver, proxySecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var (
			user *entities.User
			err  error
		)

		sessionID := c.GetHeader(SessionIDHeader)
		authHeader := c.GetHeader(AuthorizationHeader)
		switch {
		case sessionID != "" && IsTrustedProxyRequest(c, proxySecret):
			user, err = resolver.ResolveSession(ctx, sessionID)
		case strings.HasPrefix(authHeader, BearerPrefix):
			user, err = resolver.ResolveAccessToken(ctx, strings.TrimPrefix(authHeader, BearerPrefix))
		default:
			err = domainerrors.Unauthorized("authentication required")
		}
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ActorKey, entities.Actor{UserID: user.ID, Verified: user.Verified})
		c.Request = c.Request.WithContext(context.WithValue(ctx, logger.ActorIDKey, user.ID.String()))
		c.Next()
	}
}

// RequireTrustedProxy rejects requests that do not carry the proxy secret
func RequireTrustedProxy(proxySecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsTrustedProxyRequest(c, proxySecret) {
			response.Error(c, domainerrors.Unauthorized("untrusted caller"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// IsTrustedProxyRequest reports whether the request carries the proxy
// secret. An empty secret trusts every caller and is refused in production
// by config validation.
func IsTrustedProxyRequest(c *gin.Context, proxySecret string) bool {
	if proxySecret == "" {
		return true
	}
	got := c.GetHeader(ProxySecretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(proxySecret)) == 1
}

// GetActor gets the resolved actor from context
func GetActor(c *gin.Context) (entities.Actor, bool) {
	v, exists := c.Get(ActorKey)
	if !exists {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
