package handler

import (
	"net/http"

	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
)

// HealthCheck répond au ping de supervision
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
