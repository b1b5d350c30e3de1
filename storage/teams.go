package storage

import (
	"context"
	"errors"
	"sort"

	"github.com/alex-pricope/hackathon-voting/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type TeamStorage interface {
	Get(ctx context.Context, id int) (*Team, error)
	// GetAll returns every team ordered by id ascending.
	GetAll(ctx context.Context) ([]*Team, error)
	Create(ctx context.Context, team *Team) error
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, id int) error
}

type DynamoTeamStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoTeamStorage) GetAll(ctx context.Context) ([]*Team, error) {
	items, err := scanAll(ctx, s.Client, s.TableName)
	if err != nil {
		logging.Log.Errorf("TEAM: scan failed: %v", err)
		return nil, unavailable(err, "list teams")
	}

	var teams []*Team
	if err := attributevalue.UnmarshalListOfMaps(items, &teams); err != nil {
		logging.Log.Errorf("TEAM: failed to unmarshal team list: %v", err)
		return nil, err
	}
	sortTeams(teams)
	return teams, nil
}

func (s *DynamoTeamStorage) Get(ctx context.Context, id int) (*Team, error) {
	key, err := attributevalue.MarshalMap(map[string]int{"PK": id})
	if err != nil {
		logging.Log.Errorf("TEAM: failed to marshal key for ID %d: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("TEAM: GetItem for ID %d failed: %v", id, err)
		return nil, unavailable(err, "get team")
	}
	if out.Item == nil {
		logging.Log.Warnf("TEAM: no team found with ID %d", id)
		return nil, nil
	}

	var team Team
	if err := attributevalue.UnmarshalMap(out.Item, &team); err != nil {
		logging.Log.Errorf("TEAM: failed to unmarshal team: %v", err)
		return nil, err
	}
	return &team, nil
}

func (s *DynamoTeamStorage) Create(ctx context.Context, team *Team) error {
	item, err := attributevalue.MarshalMap(team)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to marshal team: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("TEAM: item with ID %d already exists", team.ID)
			return ErrItemAlreadyExists
		}
		logging.Log.Errorf("TEAM: failed to create team: %v", err)
		return unavailable(err, "create team")
	}
	return nil
}

func (s *DynamoTeamStorage) Update(ctx context.Context, team *Team) error {
	item, err := attributevalue.MarshalMap(team)
	if err != nil {
		logging.Log.Errorf("TEAM: failed to marshal updated team: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			return ErrNotFound
		}
		logging.Log.Errorf("TEAM: failed to update team: %v", err)
		return unavailable(err, "update team")
	}
	return nil
}

func (s *DynamoTeamStorage) Delete(ctx context.Context, id int) error {
	key, err := attributevalue.MarshalMap(map[string]int{"PK": id})
	if err != nil {
		logging.Log.Errorf("TEAM: failed to marshal delete key for ID %d: %v", id, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("TEAM: failed to delete team with ID %d: %v", id, err)
		return unavailable(err, "delete team")
	}
	logging.Log.Infof("TEAM: deleted team with ID %d", id)
	return nil
}

func sortTeams(teams []*Team) {
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
}
