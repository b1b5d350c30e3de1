package models

type DeviceResponse struct {
	DeviceID       string            `json:"deviceId"`
	PredictionMade bool              `json:"predictionMade"`
	Role           string            `json:"role"`
	VotedTeams     []int             `json:"votedTeams"`
	SelectedJudge  *SelectedJudgeDTO `json:"selectedJudge,omitempty"`
}

type RegisterVoteRequest struct {
	Score int `json:"score"`
}

type VoteStatusResponse struct {
	TeamID int    `json:"teamId"`
	State  string `json:"state"`
	Voted  bool   `json:"voted"`
}
