package storage

import (
	"context"
	"errors"

	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type VoteStorage interface {
	// Create stores a new attendee vote. A second vote for the same (device, team) pair fails with ErrDuplicateVote.
	Create(ctx context.Context, vote *Vote) error
	Exists(ctx context.Context, teamID int, deviceID string) (bool, error)
	GetAll(ctx context.Context) ([]*Vote, error)
}

type DynamoVoteStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoVoteStorage) GetAll(ctx context.Context) ([]*Vote, error) {
	items, err := scanAll(ctx, s.Client, s.TableName)
	if err != nil {
		logging.Log.Errorf("VOTE: scan failed: %v", err)
		return nil, unavailable(err, "list votes")
	}

	var votes []*Vote
	if err := attributevalue.UnmarshalListOfMaps(items, &votes); err != nil {
		logging.Log.Errorf("VOTE: failed to unmarshal vote list: %v", err)
		return nil, err
	}
	return votes, nil
}

func (s *DynamoVoteStorage) Create(ctx context.Context, vote *Vote) error {
	prepareVote(vote)

	item, err := attributevalue.MarshalMap(vote)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to marshal vote: %v", err)
		return err
	}
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("VOTE: device %s already voted for team %d", vote.DeviceID, vote.TeamID)
			return ErrDuplicateVote
		}
		logging.Log.Errorf("VOTE: failed to create vote: %v", err)
		return unavailable(err, "create vote")
	}
	return nil
}

func (s *DynamoVoteStorage) Exists(ctx context.Context, teamID int, deviceID string) (bool, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: deviceID},
			"SK": &types.AttributeValueMemberS{Value: teamSortKey(teamID)},
		},
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		logging.Log.Errorf("VOTE: failed to look up vote for team %d: %v", teamID, err)
		return false, unavailable(err, "check vote")
	}
	return out.Item != nil, nil
}

func prepareVote(vote *Vote) {
	if vote.ID == "" {
		vote.ID = newRowID()
	}
	if vote.CreatedAt.IsZero() {
		vote.CreatedAt = now()
	}
	vote.SortKey = teamSortKey(vote.TeamID)
}
