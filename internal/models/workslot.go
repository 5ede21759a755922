package model

// WorkSlot créneau de travail planifié d'un membre
type WorkSlot struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Note      string `json:"note,omitempty"`
	DateFields
}

type CreateWorkSlotRequest struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Note      string `json:"note"`
}

type UpdateWorkSlotRequest struct {
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Note      *string `json:"note"`
}
