package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/artyomlancov333-art/apevaultteam/internal/config"
)

// GenerateDefaultAvatar génère un avatar par défaut (initiales) pour un membre
// via l'API DiceBear et le sauvegarde localement
func GenerateDefaultAvatar(userID, userName string) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	uploadDir := "uploads/avatars"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	avatarURL := fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s", url.QueryEscape(userName))

	resp, err := http.Get(avatarURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download avatar: status %d", resp.StatusCode)
	}

	filename := userID + ".svg"
	filePath := filepath.Join(uploadDir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/avatars/%s", cfg.URL, filename), nil
}
