package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName - имя cookie с токеном доступа.
const CookieName = "token"

// TokenTTL - срок жизни выдаваемого токена.
const TokenTTL = 30 * 24 * time.Hour

type ctxKey struct{}

// ErrInvalidToken возвращается ParseToken для подписи/клеймов, не прошедших проверку.
var ErrInvalidToken = errors.New("invalid token")

// BuildToken подписывает HS256-токен для subject.
func BuildToken(subject, secret string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("empty subject")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия, возвращает субъект.
func ParseToken(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// WithAuth извлекает токен из заголовка Authorization: Bearer или из cookie
// и кладёт субъект в контекст. Запрос без валидного токена проходит анонимно,
// решение об отказе принимает хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				if c, err := r.Cookie(CookieName); err == nil {
					raw = c.Value
				}
			}
			if raw != "" {
				if subject, err := ParseToken(raw, secret); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, subject))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}

// GetSubjectFromContext возвращает субъект, выставленный WithAuth.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(ctxKey{}).(string)
	return s, ok && s != ""
}
