package models

import (
	"github.com/alex-pricope/hackathon-voting/identity"
	"github.com/alex-pricope/hackathon-voting/storage"
	"github.com/alex-pricope/hackathon-voting/workflow"
)

type JudgeCreateRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type JudgeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Submitted bool   `json:"submitted"`
}

func TransformJudgeFromStorage(j *storage.Judge) JudgeResponse {
	return JudgeResponse{
		ID:        j.ID,
		Name:      j.Name,
		Title:     j.Title,
		Submitted: j.Submitted,
	}
}

type SelectedJudgeDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

func TransformSelectedJudge(j *identity.SelectedJudge) *SelectedJudgeDTO {
	if j == nil {
		return nil
	}
	return &SelectedJudgeDTO{ID: j.ID, Name: j.Name, Title: j.Title}
}

type SelectJudgeRequest struct {
	JudgeID string `json:"judgeId"`
}

type JudgeVoteRequest struct {
	Feasibility       int    `json:"feasibility"`
	TechnicalApproach int    `json:"technicalApproach"`
	Innovation        int    `json:"innovation"`
	PitchPresentation int    `json:"pitchPresentation"`
	Comments          string `json:"comments"`
}

type ScorecardResponse struct {
	TeamID            int    `json:"teamId"`
	TeamName          string `json:"teamName"`
	Feasibility       int    `json:"feasibility"`
	TechnicalApproach int    `json:"technicalApproach"`
	Innovation        int    `json:"innovation"`
	PitchPresentation int    `json:"pitchPresentation"`
	Comments          string `json:"comments,omitempty"`
	State             string `json:"state"`
	Saved             bool   `json:"saved"`
	TotalScore        int    `json:"totalScore,omitempty"`
}

type JudgeSheetResponse struct {
	Judge       JudgeResponse       `json:"judge"`
	Latch       string              `json:"latch"`
	Scored      int                 `json:"scored"`
	Total       int                 `json:"total"`
	CanFinalize bool                `json:"canFinalize"`
	Cards       []ScorecardResponse `json:"cards"`
}

func TransformScorecard(c *workflow.Scorecard) ScorecardResponse {
	r := ScorecardResponse{
		TeamID:            c.TeamID,
		TeamName:          c.TeamName,
		Feasibility:       c.Rubric.Feasibility,
		TechnicalApproach: c.Rubric.TechnicalApproach,
		Innovation:        c.Rubric.Innovation,
		PitchPresentation: c.Rubric.PitchPresentation,
		Comments:          c.Comments,
		State:             c.State.String(),
		Saved:             c.Saved != nil,
	}
	if c.Saved != nil {
		r.TotalScore = c.Saved.TotalScore
	}
	return r
}

func TransformJudgeSession(s *workflow.JudgeSession) JudgeSheetResponse {
	scored, total := s.Progress()
	cards := make([]ScorecardResponse, 0, len(s.Cards()))
	for _, c := range s.Cards() {
		cards = append(cards, TransformScorecard(c))
	}
	return JudgeSheetResponse{
		Judge:       TransformJudgeFromStorage(s.Judge()),
		Latch:       s.Latch().String(),
		Scored:      scored,
		Total:       total,
		CanFinalize: s.CanFinalize(),
		Cards:       cards,
	}
}
