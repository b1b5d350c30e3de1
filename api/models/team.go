package models

import (
	"github.com/alex-pricope/hackathon-voting/storage"
)

type TeamCreateRequest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TeamUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TeamResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

func TransformTeamFromStorage(t *storage.Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	}
}
