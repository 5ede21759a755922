package handler

import (
	"context"
	"net/http"

	"github.com/artyomlancov333-art/apevaultteam/internal/database"
	"github.com/artyomlancov333-art/apevaultteam/internal/middleware"
	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
	"github.com/artyomlancov333-art/apevaultteam/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authentifie un membre et ouvre une session
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	ctx := context.Background()
	var user model.UserProfile
	var hashedPassword string

	err := database.DB.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(avatar,'') as avatar, is_admin,
		 join_date, created_at, updated_at, password_hash
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		req.Email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Avatar, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt, &hashedPassword)

	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "identifiants invalides")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "identifiants invalides")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de créer la session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Logout ferme la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "authentification requise", err)
		return
	}

	if err := utils.InvalidateSession(context.Background(), token); err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de fermer la session", err)
		return
	}

	utils.Message(w, "déconnecté")
}

// Signup crée un compte membre et ouvre une session
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "JSON invalide", err)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "name, email et password requis")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de hasher le mot de passe", err)
		return
	}

	ctx := context.Background()
	var user model.UserProfile

	err = database.DB.QueryRow(ctx,
		`INSERT INTO users(name, email, password_hash, is_admin, join_date, created_at, updated_at)
		 VALUES($1, $2, $3, false, NOW(), NOW(), NOW())
		 RETURNING id, name, email, is_admin, join_date, created_at, updated_at`,
		req.Name, req.Email, string(hashed),
	).Scan(&user.ID, &user.Name, &user.Email, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de créer le compte", err)
		return
	}

	// Avatar par défaut, sans bloquer l'inscription en cas d'échec
	if avatarURL, err := utils.GenerateDefaultAvatar(user.ID, user.Name); err == nil {
		if _, err := database.DB.Exec(ctx,
			`UPDATE users SET avatar=$1, updated_at=NOW() WHERE id=$2`,
			avatarURL, user.ID,
		); err == nil {
			user.Avatar = avatarURL
		}
	} else {
		utils.LogInfo("avatar par défaut indisponible pour %s: %v", user.ID, err)
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "impossible de créer la session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
