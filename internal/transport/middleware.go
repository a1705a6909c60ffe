package transport

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"urlpro/internal/types"
)

const (
	ctxRequestID  = "request_id"
	ctxUserID     = "user_id"
	ctxAPIProfile = "api_profile"

	headerRequestID = "X-Request-ID"
	headerAPIKey    = "X-API-Key"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"request_id": c.GetString(ctxRequestID),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
			"client_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		})

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request processed")
		}
	}
}

func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Authenticator resolves request credentials to a user.
type Authenticator interface {
	ParseToken(token string) (int64, error)
	ProfileByAPIKey(ctx context.Context, apiKey string) (*types.UserProfile, error)
}

// Authenticate accepts a Bearer JWT or an X-API-Key. A present key is always
// resolved into the api profile, while the user identity prefers the Bearer
// token. API key lookups never charge quota. With required unset, bad
// credentials leave the request anonymous.
func Authenticate(auth Authenticator, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveUser(c, auth)
		if err != nil && required {
			writeError(c, err)
			return
		}
		if userID != 0 {
			c.Set(ctxUserID, userID)
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, auth Authenticator) (int64, error) {
	var keyUser int64
	var keyErr error = types.ErrUnauthorized
	if key := c.GetHeader(headerAPIKey); key != "" {
		profile, err := auth.ProfileByAPIKey(c.Request.Context(), key)
		if err == nil {
			c.Set(ctxAPIProfile, profile)
			keyUser = profile.UserID
		}
		keyErr = err
	}

	if header := c.GetHeader("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return 0, types.ErrUnauthorized
		}
		return auth.ParseToken(token)
	}

	return keyUser, keyErr
}

// currentUser returns 0 for anonymous requests.
func currentUser(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}

func apiProfile(c *gin.Context) *types.UserProfile {
	v, ok := c.Get(ctxAPIProfile)
	if !ok {
		return nil
	}
	p, _ := v.(*types.UserProfile)
	return p
}
