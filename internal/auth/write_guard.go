package auth

import (
	"net/http"
	"strings"

	"gamecatalog/backend/internal/apperror"
	"gamecatalog/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	APIKeyHeader = "X-API-Key"
	subjectKey   = "subject"
)

// WriteGuard creates a gin middleware that requires credentials on mutating
// requests. A request passes with either a bearer JWT signed with jwtSecret
// or an X-API-Key matching the bcrypt apiKeyHash. With neither configured
// every request passes. Safe methods are never checked.
func WriteGuard(jwtSecret, apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if (jwtSecret == "" && apiKeyHash == "") || isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		if apiKeyHash != "" {
			if key := c.GetHeader(APIKeyHeader); key != "" &&
				bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)) == nil {
				c.Set(subjectKey, "api-key")
				c.Next()
				return
			}
		}

		if jwtSecret != "" {
			if subject, ok := bearerSubject(c.GetHeader("Authorization"), jwtSecret); ok {
				c.Set(subjectKey, subject)
				c.Next()
				return
			}
		}

		_ = c.Error(apperror.Unauthorized("Unauthorized"))
		c.Abort()
	}
}

// Subject returns the authenticated subject set by WriteGuard, if any.
func Subject(c *gin.Context) (string, bool) {
	v, ok := c.Get(subjectKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func bearerSubject(header, secret string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	subject, err := jwt.ParseToken([]byte(secret), parts[1])
	if err != nil {
		return "", false
	}
	return subject, true
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}
