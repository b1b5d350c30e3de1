package storage

import (
	"context"
)

// Gateway is the single entry point the application uses to reach the hosted store.
// Callers validate input before reaching it; it only translates store errors into domain errors.
type Gateway struct {
	Teams       TeamStorage
	Votes       VoteStorage
	Predictions PredictionStorage
	Judges      JudgeStorage
	JudgeVotes  JudgeVoteStorage
}

func (g *Gateway) SubmitVote(ctx context.Context, teamID, score int, deviceID string) error {
	return g.Votes.Create(ctx, &Vote{DeviceID: deviceID, TeamID: teamID, Score: score})
}

func (g *Gateway) HasVoted(ctx context.Context, teamID int, deviceID string) (bool, error) {
	return g.Votes.Exists(ctx, teamID, deviceID)
}

func (g *Gateway) ListVotes(ctx context.Context) ([]*Vote, error) {
	return g.Votes.GetAll(ctx)
}

func (g *Gateway) SubmitPrediction(ctx context.Context, employeeID, name string, top [3]int) error {
	return g.Predictions.Create(ctx, &Prediction{
		EmployeeID: employeeID,
		Name:       name,
		Top1:       top[0],
		Top2:       top[1],
		Top3:       top[2],
	})
}

func (g *Gateway) HasPredicted(ctx context.Context, employeeID string) (bool, error) {
	return g.Predictions.Exists(ctx, employeeID)
}

func (g *Gateway) ListPredictions(ctx context.Context) ([]*Prediction, error) {
	return g.Predictions.GetAll(ctx)
}

func (g *Gateway) ListTeams(ctx context.Context) ([]*Team, error) {
	return g.Teams.GetAll(ctx)
}

func (g *Gateway) GetTeam(ctx context.Context, id int) (*Team, error) {
	return g.Teams.Get(ctx, id)
}

func (g *Gateway) ListJudges(ctx context.Context) ([]*Judge, error) {
	return g.Judges.GetAll(ctx)
}

// GetJudge returns nil, nil for an unknown judge.
func (g *Gateway) GetJudge(ctx context.Context, judgeID string) (*Judge, error) {
	return g.Judges.Get(ctx, judgeID)
}

func (g *Gateway) SubmitFinal(ctx context.Context, judgeID string) error {
	return g.Judges.MarkSubmitted(ctx, judgeID)
}

func (g *Gateway) UpsertJudgeVote(ctx context.Context, judgeID string, teamID int, rubric Rubric, comments string) (*JudgeVote, error) {
	vote := &JudgeVote{
		JudgeID:  judgeID,
		TeamID:   teamID,
		Rubric:   rubric,
		Comments: comments,
	}
	if err := g.JudgeVotes.Upsert(ctx, vote); err != nil {
		return nil, err
	}
	return vote, nil
}

func (g *Gateway) ListJudgeVotes(ctx context.Context, judgeID string) ([]*JudgeVote, error) {
	return g.JudgeVotes.GetByJudge(ctx, judgeID)
}

func (g *Gateway) ListAllJudgeVotesJoined(ctx context.Context) ([]*JudgeVoteDetail, error) {
	return g.JudgeVotes.GetAllDetailed(ctx)
}

// NewMemoryGateway wires the in-memory backends together.
func NewMemoryGateway(teams []*Team, judges []*Judge) *Gateway {
	teamStorage := NewMemoryTeamStorage(teams...)
	judgeStorage := NewMemoryJudgeStorage(judges...)
	return &Gateway{
		Teams:       teamStorage,
		Votes:       NewMemoryVoteStorage(),
		Predictions: NewMemoryPredictionStorage(),
		Judges:      judgeStorage,
		JudgeVotes:  NewMemoryJudgeVoteStorage(teamStorage, judgeStorage),
	}
}
