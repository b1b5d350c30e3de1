package storage

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type JudgeVoteStorage interface {
	// Upsert writes the rubric for (judge, team), replacing any earlier one, and stores TotalScore as the rubric sum.
	// It does not look at the judge's submitted latch.
	Upsert(ctx context.Context, vote *JudgeVote) error
	// GetByJudge returns the judge's votes ordered by team id.
	GetByJudge(ctx context.Context, judgeID string) ([]*JudgeVote, error)
	// GetAllDetailed returns every vote joined with its team and judge. Votes for unknown teams are skipped.
	GetAllDetailed(ctx context.Context) ([]*JudgeVoteDetail, error)
}

type DynamoJudgeVoteStorage struct {
	Client          *dynamodb.Client
	TableName       string
	TeamsTableName  string
	JudgesTableName string
}

func (s *DynamoJudgeVoteStorage) Upsert(ctx context.Context, vote *JudgeVote) error {
	prepareJudgeVote(vote)

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: vote.JudgeID},
			"SK": &types.AttributeValueMemberS{Value: vote.SortKey},
		},
		UpdateExpression: aws.String("SET ID = if_not_exists(ID, :id), TeamID = :team, Feasibility = :f, " +
			"TechnicalApproach = :t, Innovation = :i, PitchPresentation = :p, Comments = :c, TotalScore = :total, " +
			"CreatedAt = if_not_exists(CreatedAt, :now), UpdatedAt = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":    &types.AttributeValueMemberS{Value: vote.ID},
			":team":  number(vote.TeamID),
			":f":     number(vote.Feasibility),
			":t":     number(vote.TechnicalApproach),
			":i":     number(vote.Innovation),
			":p":     number(vote.PitchPresentation),
			":c":     &types.AttributeValueMemberS{Value: vote.Comments},
			":total": number(vote.TotalScore),
			":now":   &types.AttributeValueMemberS{Value: vote.UpdatedAt.Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	}
	out, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to upsert vote of %s for team %d: %v", vote.JudgeID, vote.TeamID, err)
		return unavailable(err, "upsert judge vote")
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, vote); err != nil {
		logging.Log.Warnf("JUDGE: failed to read back vote of %s for team %d: %v", vote.JudgeID, vote.TeamID, err)
	}
	return nil
}

func (s *DynamoJudgeVoteStorage) GetByJudge(ctx context.Context, judgeID string) ([]*JudgeVote, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :judge"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":judge": &types.AttributeValueMemberS{Value: judgeID},
		},
	}

	var votes []*JudgeVote
	paginator := dynamodb.NewQueryPaginator(s.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logging.Log.Errorf("JUDGE: failed to query votes of %s: %v", judgeID, err)
			return nil, unavailable(err, "list judge votes")
		}
		var batch []*JudgeVote
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			logging.Log.Errorf("JUDGE: failed to unmarshal votes of %s: %v", judgeID, err)
			return nil, err
		}
		votes = append(votes, batch...)
	}
	sortJudgeVotes(votes)
	return votes, nil
}

func (s *DynamoJudgeVoteStorage) GetAllDetailed(ctx context.Context) ([]*JudgeVoteDetail, error) {
	items, err := scanAll(ctx, s.Client, s.TableName)
	if err != nil {
		logging.Log.Errorf("RESULTS: judge vote scan failed: %v", err)
		return nil, unavailable(err, "list judge votes")
	}
	var votes []*JudgeVote
	if err := attributevalue.UnmarshalListOfMaps(items, &votes); err != nil {
		logging.Log.Errorf("RESULTS: failed to unmarshal judge votes: %v", err)
		return nil, err
	}

	teamItems, err := scanAll(ctx, s.Client, s.TeamsTableName)
	if err != nil {
		logging.Log.Errorf("RESULTS: team scan failed: %v", err)
		return nil, unavailable(err, "list teams")
	}
	var teams []*Team
	if err := attributevalue.UnmarshalListOfMaps(teamItems, &teams); err != nil {
		logging.Log.Errorf("RESULTS: failed to unmarshal teams: %v", err)
		return nil, err
	}

	judgeItems, err := scanAll(ctx, s.Client, s.JudgesTableName)
	if err != nil {
		logging.Log.Errorf("RESULTS: judge scan failed: %v", err)
		return nil, unavailable(err, "list judges")
	}
	var judges []*Judge
	if err := attributevalue.UnmarshalListOfMaps(judgeItems, &judges); err != nil {
		logging.Log.Errorf("RESULTS: failed to unmarshal judges: %v", err)
		return nil, err
	}

	return joinJudgeVotes(votes, teams, judges), nil
}

func number(v int) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}

func prepareJudgeVote(vote *JudgeVote) {
	if vote.ID == "" {
		vote.ID = newRowID()
	}
	vote.SortKey = teamSortKey(vote.TeamID)
	vote.TotalScore = vote.Rubric.Total()
	vote.UpdatedAt = now()
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = vote.UpdatedAt
	}
}

func sortJudgeVotes(votes []*JudgeVote) {
	sort.SliceStable(votes, func(i, j int) bool { return votes[i].TeamID < votes[j].TeamID })
}

// joinJudgeVotes performs the inner join on team and the left join on judge, keeping vote order.
func joinJudgeVotes(votes []*JudgeVote, teams []*Team, judges []*Judge) []*JudgeVoteDetail {
	teamByID := make(map[int]*Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}
	judgeNames := make(map[string]string, len(judges))
	for _, j := range judges {
		judgeNames[j.ID] = j.Name
	}

	details := make([]*JudgeVoteDetail, 0, len(votes))
	for _, v := range votes {
		team, ok := teamByID[v.TeamID]
		if !ok {
			logging.Log.Warnf("RESULTS: judge vote %s references unknown team %d", v.ID, v.TeamID)
			continue
		}
		details = append(details, &JudgeVoteDetail{
			JudgeVote:       *v,
			TeamName:        team.Name,
			TeamDescription: team.Description,
			JudgeName:       judgeNames[v.JudgeID],
		})
	}
	return details
}
