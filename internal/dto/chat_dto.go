package dto

import "time"

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

type ChatTurnDTO struct {
	Id        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type AskResponse struct {
	Sent  *ChatTurnDTO `json:"sent"`
	Reply *ChatTurnDTO `json:"reply"`
	Broad bool         `json:"broad"` // question classified as a summary/overview request
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
