package storage

import "time"

type Team struct {
	ID          int    `dynamodbav:"PK"`
	Name        string `dynamodbav:"Name"`
	Description string `dynamodbav:"Description"`
}

type Vote struct {
	ID        string    `dynamodbav:"ID" json:"id"`
	DeviceID  string    `dynamodbav:"PK" json:"deviceId"`
	SortKey   string    `dynamodbav:"SK" json:"-"` // team#<id>
	TeamID    int       `dynamodbav:"TeamID" json:"teamId"`
	Score     int       `dynamodbav:"Score" json:"score"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

type Prediction struct {
	ID         string    `dynamodbav:"ID" json:"id"`
	EmployeeID string    `dynamodbav:"PK" json:"employeeId"`
	Name       string    `dynamodbav:"Name" json:"name"`
	Top1       int       `dynamodbav:"Top1" json:"top1"`
	Top2       int       `dynamodbav:"Top2" json:"top2"`
	Top3       int       `dynamodbav:"Top3" json:"top3"`
	CreatedAt  time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

type Judge struct {
	ID        string `dynamodbav:"PK" json:"id"`
	Name      string `dynamodbav:"Name" json:"name"`
	Title     string `dynamodbav:"Title" json:"title"`
	Submitted bool   `dynamodbav:"Submitted" json:"submitted"`
}

// Rubric holds the four scored criteria, each 1..5.
type Rubric struct {
	Feasibility       int `dynamodbav:"Feasibility" json:"feasibility"`
	TechnicalApproach int `dynamodbav:"TechnicalApproach" json:"technicalApproach"`
	Innovation        int `dynamodbav:"Innovation" json:"innovation"`
	PitchPresentation int `dynamodbav:"PitchPresentation" json:"pitchPresentation"`
}

func (r Rubric) Total() int {
	return r.Feasibility + r.TechnicalApproach + r.Innovation + r.PitchPresentation
}

type JudgeVote struct {
	ID      string `dynamodbav:"ID" json:"id"`
	JudgeID string `dynamodbav:"PK" json:"judgeId"`
	SortKey string `dynamodbav:"SK" json:"-"` // team#<id>
	TeamID  int    `dynamodbav:"TeamID" json:"teamId"`
	Rubric
	Comments   string    `dynamodbav:"Comments" json:"comments,omitempty"`
	TotalScore int       `dynamodbav:"TotalScore" json:"totalScore"`
	CreatedAt  time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
	UpdatedAt  time.Time `dynamodbav:"UpdatedAt" json:"updatedAt"`
}

// JudgeVoteDetail is a judge vote joined with its team and judge.
type JudgeVoteDetail struct {
	JudgeVote
	TeamName        string
	TeamDescription string
	JudgeName       string
}
