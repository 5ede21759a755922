package middleware

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/artyomlancov333-art/apevaultteam/internal/database"
	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
	"github.com/jackc/pgx/v5"
)

// Context keys
type contextKey string

const (
	userContextKey  = contextKey("user")
	tokenContextKey = contextKey("token")
)

// AuthMiddleware valide le token de session et injecte l'utilisateur dans le contexte
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.ErrorSimple(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		user, err := validateTokenAndGetUser(r.Context(), token)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, *user)
		ctx = context.WithValue(ctx, tokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injecte l'utilisateur si un token valide est fourni, sans bloquer sinon
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token != "" {
			if user, err := validateTokenAndGetUser(r.Context(), token); err == nil {
				ctx := context.WithValue(r.Context(), userContextKey, *user)
				ctx = context.WithValue(ctx, tokenContextKey, token)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// validateTokenAndGetUser valide le token et retourne l'utilisateur associé
func validateTokenAndGetUser(ctx context.Context, token string) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar sql.NullString
	var isActive bool

	query := `
	SELECT
		u.id, u.name, u.email, u.avatar, u.is_admin,
		u.join_date, u.created_at, u.updated_at,
		s.is_active
	FROM users u
	JOIN sessions s ON u.id = s.user_id
	WHERE s.token = $1
		AND s.is_active = true
		AND s.expires_at > NOW()
		AND u.deleted_at IS NULL`

	err := database.DB.QueryRow(ctx, query, token).Scan(
		&user.ID, &user.Name, &user.Email, &avatar, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
		&isActive,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("token not found or expired")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	user.Avatar = utils.NullStringToString(avatar)

	return &user, nil
}

// GetUserFromContext récupère l'utilisateur depuis le contexte de la requête
func GetUserFromContext(r *http.Request) (model.UserProfile, error) {
	user, ok := r.Context().Value(userContextKey).(model.UserProfile)
	if !ok {
		return model.UserProfile{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}

// GetTokenFromContext récupère le token depuis le contexte de la requête
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in context")
	}
	return token, nil
}

// IsAdmin indique si l'utilisateur de la requête est administrateur
func IsAdmin(r *http.Request) bool {
	user, err := GetUserFromContext(r)
	return err == nil && user.IsAdmin
}

// IsOwnerOrAdmin indique si l'utilisateur de la requête est administrateur
// ou propriétaire de la ressource identifiée par ownerID
func IsOwnerOrAdmin(r *http.Request, ownerID string) bool {
	user, err := GetUserFromContext(r)
	if err != nil {
		return false
	}
	return user.IsAdmin || (ownerID != "" && user.ID == ownerID)
}
