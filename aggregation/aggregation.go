// Package aggregation folds raw vote rows into per-team summaries.
// Everything here is a pure function of its input and is recomputed on every read.
package aggregation

import (
	"sort"

	"github.com/alex-pricope/hackathon-voting/storage"
)

// TeamResult is the judges' average for one team.
type TeamResult struct {
	TeamID               int     `json:"teamId"`
	TeamName             string  `json:"teamName"`
	TeamDescription      string  `json:"teamDescription,omitempty"`
	AvgTotalScore        float64 `json:"avgTotalScore"`
	AvgFeasibility       float64 `json:"avgFeasibility"`
	AvgTechnicalApproach float64 `json:"avgTechnicalApproach"`
	AvgInnovation        float64 `json:"avgInnovation"`
	AvgPitchPresentation float64 `json:"avgPitchPresentation"`
	JudgeCount           int     `json:"judgeCount"`
}

// TeamStats is the attendee popular vote for one team.
type TeamStats struct {
	TeamID       int     `json:"teamId"`
	TeamName     string  `json:"teamName,omitempty"`
	TotalVotes   int     `json:"totalVotes"`
	TotalScore   int     `json:"totalScore"`
	AverageScore float64 `json:"averageScore"`
}

// JudgeScore is one judge's rubric for one team.
type JudgeScore struct {
	JudgeID   string `json:"judgeId"`
	JudgeName string `json:"judgeName"`
	storage.Rubric
	TotalScore int    `json:"totalScore"`
	Comments   string `json:"comments,omitempty"`
}

// TeamBreakdown lists every judge score a team received.
type TeamBreakdown struct {
	TeamID   int          `json:"teamId"`
	TeamName string       `json:"teamName"`
	Scores   []JudgeScore `json:"scores"`
}

// JudgeResults groups rows by team and averages each criterion over the judges who scored it.
// Teams without any judge vote are absent. Results are ordered by average total, highest first;
// ties keep the order in which teams first appear in rows.
func JudgeResults(rows []*storage.JudgeVoteDetail) []TeamResult {
	index := make(map[int]int)
	var results []TeamResult

	for _, row := range rows {
		i, ok := index[row.TeamID]
		if !ok {
			i = len(results)
			index[row.TeamID] = i
			results = append(results, TeamResult{
				TeamID:          row.TeamID,
				TeamName:        row.TeamName,
				TeamDescription: row.TeamDescription,
			})
		}
		r := &results[i]
		r.JudgeCount++
		r.AvgTotalScore += float64(row.TotalScore)
		r.AvgFeasibility += float64(row.Feasibility)
		r.AvgTechnicalApproach += float64(row.TechnicalApproach)
		r.AvgInnovation += float64(row.Innovation)
		r.AvgPitchPresentation += float64(row.PitchPresentation)
	}

	for i := range results {
		r := &results[i]
		n := float64(r.JudgeCount)
		r.AvgTotalScore /= n
		r.AvgFeasibility /= n
		r.AvgTechnicalApproach /= n
		r.AvgInnovation /= n
		r.AvgPitchPresentation /= n
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AvgTotalScore > results[j].AvgTotalScore
	})
	return results
}

// Leaderboard groups attendee votes by team, ordered by average score, highest first.
// teams is only used for names and may be nil.
func Leaderboard(votes []*storage.Vote, teams []*storage.Team) []TeamStats {
	names := make(map[int]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	index := make(map[int]int)
	var stats []TeamStats
	for _, v := range votes {
		i, ok := index[v.TeamID]
		if !ok {
			i = len(stats)
			index[v.TeamID] = i
			stats = append(stats, TeamStats{TeamID: v.TeamID, TeamName: names[v.TeamID]})
		}
		stats[i].TotalVotes++
		stats[i].TotalScore += v.Score
	}
	for i := range stats {
		stats[i].AverageScore = float64(stats[i].TotalScore) / float64(stats[i].TotalVotes)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AverageScore > stats[j].AverageScore
	})
	return stats
}

// JudgeBreakdown lists individual judge scores per team, teams ordered by id.
// Rows whose judge profile is gone carry no judge name and are left out.
func JudgeBreakdown(rows []*storage.JudgeVoteDetail) []TeamBreakdown {
	index := make(map[int]int)
	var out []TeamBreakdown
	for _, row := range rows {
		if row.JudgeName == "" {
			continue
		}
		i, ok := index[row.TeamID]
		if !ok {
			i = len(out)
			index[row.TeamID] = i
			out = append(out, TeamBreakdown{TeamID: row.TeamID, TeamName: row.TeamName})
		}
		out[i].Scores = append(out[i].Scores, JudgeScore{
			JudgeID:    row.JudgeID,
			JudgeName:  row.JudgeName,
			Rubric:     row.Rubric,
			TotalScore: row.TotalScore,
			Comments:   row.Comments,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out
}
