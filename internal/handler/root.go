package handler

import (
	"net/http"

	"github.com/artyomlancov333-art/apevaultteam/internal/utils"
)

// Root expose un index lisible des routes de l'API
func Root(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "ApeVault Team API",
		"version": "1.0",
		"routes": map[string]interface{}{
			"auth": map[string]string{
				"POST /auth/signup": "créer un compte",
				"POST /auth/login":  "ouvrir une session",
				"POST /auth/logout": "fermer la session courante",
			},
			"workSlots": map[string]string{
				"GET /work-slots":         "lister les créneaux (?userId=&date=)",
				"POST /work-slots":        "créer un créneau",
				"PUT /work-slots/{id}":    "modifier un créneau",
				"DELETE /work-slots/{id}": "supprimer un créneau",
			},
			"dayStatuses": map[string]string{
				"GET /day-statuses":         "lister les statuts (?userId=&date=)",
				"POST /day-statuses":        "enregistrer un statut",
				"PUT /day-statuses/{id}":    "modifier un statut",
				"DELETE /day-statuses/{id}": "supprimer un statut",
			},
			"earnings": map[string]string{
				"GET /earnings":         "lister les gains (?userId=&startDate=&endDate=)",
				"GET /earnings/stats":   "statistiques semaine/mois par membre",
				"POST /earnings":        "enregistrer un gain",
				"PUT /earnings/{id}":    "modifier un gain",
				"DELETE /earnings/{id}": "supprimer un gain",
			},
			"ratings": map[string]string{
				"GET /ratings":          "lister les notes (?userId=)",
				"PUT /ratings/{userId}": "créer ou mettre à jour la note d'un membre",
			},
			"members": map[string]string{
				"GET /members":              "liste des membres de l'équipe",
				"GET /members/{id}":         "profil d'un membre",
				"POST /members/{id}/avatar": "remplacer l'avatar d'un membre",
			},
			"misc": map[string]string{
				"GET /health": "état du service",
			},
		},
	}

	utils.Success(w, routes)
}
