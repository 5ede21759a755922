package model

// Statuts de journée possibles
const (
	DayStatusWorking  = "working"
	DayStatusDayOff   = "day-off"
	DayStatusSick     = "sick"
	DayStatusVacation = "vacation"
)

// DayStatus statut d'une journée pour un membre (travail, repos, maladie, congé)
type DayStatus struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Date    string `json:"date"` // YYYY-MM-DD
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
	DateFields
}

type CreateDayStatusRequest struct {
	UserID  string `json:"userId"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

type UpdateDayStatusRequest struct {
	Status  *string `json:"status"`
	Comment *string `json:"comment"`
}

// ValidDayStatus vérifie qu'un statut fait partie des valeurs connues
func ValidDayStatus(s string) bool {
	switch s {
	case DayStatusWorking, DayStatusDayOff, DayStatusSick, DayStatusVacation:
		return true
	}
	return false
}
