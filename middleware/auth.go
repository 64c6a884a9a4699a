package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const userContextKey contextKey = "user"

// RoleAdmin - роль, которой разрешены изменения турнира.
const RoleAdmin = "admin"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Authenticator проверяет токены, выпущенные внешним сервисом (HS256).
type Authenticator struct {
	secret []byte
	logger *slog.Logger
}

// NewAuthenticator с пустым секретом отключает проверку: все запросы считаются админскими.
func NewAuthenticator(secret string, logger *slog.Logger) *Authenticator {
	if secret == "" {
		logger.Warn("JWT secret is empty, admin routes are NOT protected")
	}
	return &Authenticator{secret: []byte(secret), logger: logger}
}

func (a *Authenticator) Enabled() bool {
	return len(a.secret) > 0
}

// ParseToken проверяет подпись и срок действия и возвращает claims.
func (a *Authenticator) ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RequireAdmin пропускает только запросы с валидным токеном и ролью admin.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := bearerToken(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		claims, err := a.ParseToken(tokenString)
		if err != nil {
			a.logger.Info("Rejected admin token", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}

		role, err := roleFromClaims(claims)
		if err != nil || role != RoleAdmin {
			writeError(w, http.StatusForbidden, "admin role required")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		if sub, err := GetSubjectFromContext(ctx); err == nil {
			a.logger.Debug("Admin request",
				slog.String("subject", sub),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, "{\"error\": %q}\n", message)
}
