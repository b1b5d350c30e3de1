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

type JudgeStorage interface {
	// Get returns nil, nil when the judge does not exist.
	Get(ctx context.Context, id string) (*Judge, error)
	// GetAll returns judges ordered by name.
	GetAll(ctx context.Context) ([]*Judge, error)
	Create(ctx context.Context, judge *Judge) error
	// MarkSubmitted sets the one-way submitted latch. Unknown ids fail with ErrNotFound.
	MarkSubmitted(ctx context.Context, id string) error
}

type DynamoJudgeStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoJudgeStorage) Get(ctx context.Context, id string) (*Judge, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		logging.Log.Errorf("JUDGE: GetItem for %s failed: %v", id, err)
		return nil, unavailable(err, "get judge")
	}
	if out.Item == nil {
		logging.Log.Warnf("JUDGE: no judge found with ID %s", id)
		return nil, nil
	}

	var judge Judge
	if err := attributevalue.UnmarshalMap(out.Item, &judge); err != nil {
		logging.Log.Errorf("JUDGE: failed to unmarshal judge: %v", err)
		return nil, err
	}
	return &judge, nil
}

func (s *DynamoJudgeStorage) GetAll(ctx context.Context) ([]*Judge, error) {
	items, err := scanAll(ctx, s.Client, s.TableName)
	if err != nil {
		logging.Log.Errorf("JUDGE: scan failed: %v", err)
		return nil, unavailable(err, "list judges")
	}

	var judges []*Judge
	if err := attributevalue.UnmarshalListOfMaps(items, &judges); err != nil {
		logging.Log.Errorf("JUDGE: failed to unmarshal list: %v", err)
		return nil, err
	}
	sortJudges(judges)
	return judges, nil
}

func (s *DynamoJudgeStorage) Create(ctx context.Context, judge *Judge) error {
	if judge.ID == "" {
		judge.ID = newRowID()
	}
	item, err := attributevalue.MarshalMap(judge)
	if err != nil {
		logging.Log.Errorf("JUDGE: failed to marshal judge: %v", err)
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
			logging.Log.Warnf("JUDGE: item with ID %s already exists", judge.ID)
			return ErrItemAlreadyExists
		}
		logging.Log.Errorf("JUDGE: failed to create judge: %v", err)
		return unavailable(err, "create judge")
	}
	return nil
}

func (s *DynamoJudgeStorage) MarkSubmitted(ctx context.Context, id string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET Submitted = :val"),
		ConditionExpression:       aws.String("attribute_exists(PK)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":val": &types.AttributeValueMemberBOOL{Value: true}},
	}
	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			return ErrNotFound
		}
		logging.Log.Errorf("JUDGE: failed to mark %s submitted: %v", id, err)
		return unavailable(err, "submit judge")
	}
	logging.Log.Infof("JUDGE: %s submitted final scores", id)
	return nil
}

func sortJudges(judges []*Judge) {
	sort.SliceStable(judges, func(i, j int) bool { return judges[i].Name < judges[j].Name })
}

func sortJudgesByID(judges []*Judge) {
	sort.Slice(judges, func(i, j int) bool { return judges[i].ID < judges[j].ID })
}
