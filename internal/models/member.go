package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// TeamMember membre de l'équipe. La liste est injectée par la configuration
// (variable TEAM_MEMBERS), jamais codée en dur.
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserProfile compte utilisateur lié à un membre de l'équipe
type UserProfile struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar,omitempty"`
	IsAdmin  bool      `json:"isAdmin"`
	JoinDate time.Time `json:"joinDate,omitempty"`
	DateFields
}
