// Package middleware provides the HTTP middleware shared by every route.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"lifeboard-service/internal/httputil"
)

const userIDKey = "auth_user_id"

// Auth validates the Bearer token and stores the caller identity before any
// handler runs. Requests without a verified identity never reach a store.
func Auth(secret string) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return httputil.Fail(c, httputil.CodeUnauthenticated, "missing Authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return httputil.Fail(c, httputil.CodeUnauthenticated, "invalid Authorization header format")
		}

		userID, err := parseSubject(parts[1], key)
		if err != nil {
			return httputil.Fail(c, httputil.CodeUnauthenticated, "invalid token")
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func parseSubject(tokenString string, key []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("token validation failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims type")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("missing subject claim")
	}
	return sub, nil
}

// UserID returns the authenticated caller identity, or "" when the request
// did not pass through Auth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
