package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/artyomlancov333-art/apevaultteam/internal/config"
	"github.com/artyomlancov333-art/apevaultteam/internal/database"
	"github.com/artyomlancov333-art/apevaultteam/internal/middleware"
	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
	"github.com/artyomlancov333-art/apevaultteam/internal/services"
	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
	"github.com/gorilla/mux"
)

// GetMembers retourne la liste des membres de l'équipe telle que configurée
func GetMembers(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "configuration invalide", err)
		return
	}

	utils.Success(w, cfg.TeamMembers)
}

// GetMemberProfile retourne le profil complet d'un membre
func GetMemberProfile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ctx := context.Background()
	var user model.UserProfile

	err := database.DB.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(avatar,'') as avatar, is_admin,
		 join_date, created_at, updated_at
		 FROM users WHERE id=$1 AND deleted_at IS NULL`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Avatar, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "membre introuvable")
		return
	}

	utils.Success(w, user)
}

// UploadAvatar remplace l'avatar d'un membre (lui-même ou un administrateur).
// L'image part sur Cloudinary, seule l'URL est conservée en base.
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if !middleware.IsOwnerOrAdmin(r, id) {
		utils.ErrorSimple(w, http.StatusForbidden, "vous ne pouvez modifier que votre propre avatar")
		return
	}

	// 10 Mo max
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "formulaire invalide", err)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "fichier 'avatar' requis", err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/jpeg") && !strings.HasPrefix(contentType, "image/png") {
		utils.ErrorSimple(w, http.StatusBadRequest, "seuls les formats JPEG et PNG sont acceptés")
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "configuration invalide", err)
		return
	}

	cld, err := services.NewCloudinaryService(cfg)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "service d'upload indisponible", err)
		return
	}

	ctx := context.Background()

	avatarURL, err := cld.UploadAvatar(ctx, file, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "échec de l'upload", err)
		return
	}

	var user model.UserProfile
	err = database.DB.QueryRow(ctx,
		`UPDATE users SET avatar=$1, updated_at=NOW()
		 WHERE id=$2 AND deleted_at IS NULL
		 RETURNING id, name, email, COALESCE(avatar,'') as avatar, is_admin,
		 join_date, created_at, updated_at`,
		avatarURL, id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Avatar, &user.IsAdmin,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "membre introuvable")
		return
	}

	utils.Success(w, user)
}
