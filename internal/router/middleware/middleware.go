// Package middleware holds the gin middleware chain: CORS, request
// logging, panic recovery, session minting, JWT guards, and the login
// rate limit.
package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/myseringan/texnokross-bolt-sub000/internal/config"
	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/logger"
	"github.com/myseringan/texnokross-bolt-sub000/internal/service"
	"github.com/myseringan/texnokross-bolt-sub000/internal/session"
)

const (
	ctxKeyUserID    = "auth_user_id"
	ctxKeyAdminID   = "auth_admin_id"
	requestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an ID for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger writes one structured access log line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("http_request",
			"request_id", c.GetString(requestIDHeader),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// Recovery turns panics into logged 500 responses.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("panic_recovered",
					"request_id", c.GetString(requestIDHeader),
					"path", c.Request.URL.Path,
					"panic", r,
				)
				response.Internal(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// CORS applies the configured cross-origin policy.
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	allowAll := len(cfg.AllowedOrigins) == 0
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			if allowAll && !cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			if cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Expose-Headers", constants.SessionIDHeader)
			if cfg.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// Session resolves the cart session token: the client's X-Session-ID
// header when present, a freshly minted one otherwise. The token is always
// echoed back so the client can persist it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(constants.SessionIDHeader))
		if token == "" {
			token = session.NewSessionID()
		}
		c.Set(constants.SessionIDHeader, token)
		c.Header(constants.SessionIDHeader, token)
		c.Next()
	}
}

// bearerToken extracts the Authorization bearer token, empty if absent.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// AdminAuth rejects requests without a valid operator token.
func AdminAuth(auth *service.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		claims, err := auth.ParseToken(token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(ctxKeyAdminID, claims.AdminID)
		c.Next()
	}
}

// UserAuth resolves the customer identity when a token is present. The
// storefront works anonymously, so a missing or invalid token passes
// through without identity rather than failing.
func UserAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := auth.ParseToken(token); err == nil {
				c.Set(ctxKeyUserID, claims.UserID)
			}
		}
		c.Next()
	}
}

// RequireUser rejects requests that did not resolve a customer identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated customer's ID, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ctxKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CurrentAdminID returns the authenticated operator's ID, if any.
func CurrentAdminID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ctxKeyAdminID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
