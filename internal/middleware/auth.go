package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

type TokenParser interface {
	Parse(raw string) (*domain.Actor, error)
}

// Authenticate resolves a Bearer token into the current actor. Requests
// without an Authorization header pass through anonymously; a malformed or
// invalid token is rejected with 401.
func Authenticate(parser TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		actor, err := parser.Parse(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		WithActor(c, actor)
		c.Next()
	}
}

// RequireActor rejects anonymous requests.
func RequireActor() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if ActorFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}
		c.Next()
	}
}

// ActorFrom returns the authenticated actor or nil.
func ActorFrom(c *ginext.Context) *domain.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*domain.Actor)
	return actor
}

// WithActor stores actor on the request context.
func WithActor(c *ginext.Context, actor *domain.Actor) {
	c.Set(actorKey, actor)
}
