// Package auth resolves who is calling. Signing in is optional: requests
// without a valid token stay anonymous.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type ctxKey struct{}

// WithUserID stores an authenticated user id on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID returns the authenticated user id, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Verifier validates HMAC-signed session tokens.
type Verifier struct {
	key    []byte
	issuer string
}

// NewVerifier creates a verifier. An empty issuer accepts any issuer.
func NewVerifier(signingKey, issuer string) (*Verifier, error) {
	if signingKey == "" {
		return nil, errors.New("auth signing key is required")
	}
	return &Verifier{key: []byte(signingKey), issuer: issuer}, nil
}

// Verify parses the token and returns its subject.
func (v *Verifier) Verify(tokenString string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.key, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("reading sub claim: %w", err)
	}
	if sub == "" {
		return "", errors.New("missing sub claim")
	}
	return sub, nil
}

// Middleware attaches the caller's user id when a valid token is presented
// as a bearer header or in the named cookie. It never rejects a request.
func Middleware(v *Verifier, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if v == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := v.Verify(token)
			if err != nil {
				logger.Debug("ignoring invalid session token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func extractToken(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if after, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
	}
	if cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}
