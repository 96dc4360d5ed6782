package middleware

import (
	"log/slog"
	"strings"

	"reservation-management/internal/pkg/audit"
	"reservation-management/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type ActorMiddleware struct {
	cfg config.AuditConfig
}

func NewActorMiddleware(cfg config.AuditConfig) *ActorMiddleware {
	return &ActorMiddleware{cfg: cfg}
}

// Resolve attaches the caller identity to the request context so write
// operations can stamp created_by/updated_by. Requests without a usable
// token fall through to the configured default actor; nothing is rejected
// here.
func (m *ActorMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := m.actorFromToken(c)
		if actor == "" {
			actor = m.cfg.DefaultActor
		}

		ctx := audit.WithActor(c.Request.Context(), actor)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m *ActorMiddleware) actorFromToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	tokenString := strings.TrimSpace(authHeader[len("Bearer "):])
	if tokenString == "" || m.cfg.JWTSecret == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		slog.Debug("actor token rejected, using default actor", "error", err)
		return ""
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	if name, ok := claims["name"].(string); ok {
		return name
	}
	return ""
}
