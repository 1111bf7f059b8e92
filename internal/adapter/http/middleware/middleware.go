package middleware

import (
	"net/http"
	"strings"
	"time"

	"sports-association-admin/internal/audit"
	"sports-association-admin/internal/core/ports"
	"sports-association-admin/pkg/apperror"
	"sports-association-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Context keys
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
	CtxUserRole  = "user_role"
)

// RequestContext creates the middleware that opens the per-request audit
// extent. It attaches an audit.RequestContext carrying the client network
// metadata to the request's context; JWTAuth later fills in the actor
// identity. Everything downstream, including goroutines spawned under the
// request, observes the same carrier.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := &audit.RequestContext{
			IPAddress: clientIP(c),
			UserAgent: c.Request.UserAgent(),
		}
		ctx := audit.WithRequestContext(c.Request.Context(), rc)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// clientIP prefers the first X-Forwarded-For entry; falls back to gin's
// resolution of the remote address.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	return c.ClientIP()
}

// JWTAuth creates a middleware that validates JWT tokens and binds the
// authenticated actor to both the gin context and the audit carrier.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		tokenStr := authHeader[7:]
		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, claims.Role)

		// RequestContext runs earlier in the chain; the carrier is shared,
		// so mutating it here is visible to everything under this request.
		if rc := audit.FromContext(c.Request.Context()); rc != nil {
			id := claims.UserID.String()
			role := string(claims.Role)
			rc.ActorID = &id
			rc.ActorName = &claims.Name
			rc.ActorEmail = &claims.Email
			rc.ActorRole = &role
		}

		c.Next()
	}
}

// AdminOnly rejects any request whose authenticated role is not admin.
// Must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		rc := audit.FromContext(c.Request.Context())
		if rc == nil || rc.ActorRole == nil || *rc.ActorRole != "admin" {
			response.Error(c, apperror.ErrAdminOnly())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits request body size.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
