package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	model "github.com/artyomlancov333-art/apevaultteam/internal/models"
)

// Config contient la configuration principale de l'API
type Config struct {
	Env  string
	Port string
	URL  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Liste statique des membres de l'équipe, injectée plutôt que codée en dur
	// pour rester testable avec n'importe quelle composition d'équipe
	TeamMembers []model.TeamMember
}

// LoadConfig charge la configuration à partir des variables d'environnement.
// Un fichier .env est lu s'il est présent (développement local).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		URL:  getEnv("APP_URL", "http://localhost:8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "apevault"),
		DBPassword: getEnv("DB_PASSWORD", "apevault"),
		DBName:     getEnv("DB_NAME", "apevault"),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}

	members, err := parseTeamMembers(getEnv("TEAM_MEMBERS", "[]"))
	if err != nil {
		return nil, fmt.Errorf("invalid TEAM_MEMBERS: %w", err)
	}
	cfg.TeamMembers = members

	return cfg, nil
}

// parseTeamMembers décode la liste JSON [{"id":"...","name":"..."}, ...]
func parseTeamMembers(raw string) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		return nil, err
	}

	for _, m := range members {
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("chaque membre doit avoir un id et un name")
		}
	}

	return members, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
