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

type PredictionStorage interface {
	// Create stores a prediction. One prediction per employee id; a second fails with ErrDuplicatePrediction.
	Create(ctx context.Context, prediction *Prediction) error
	Exists(ctx context.Context, employeeID string) (bool, error)
	// GetAll returns predictions oldest first.
	GetAll(ctx context.Context) ([]*Prediction, error)
}

type DynamoPredictionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoPredictionStorage) Create(ctx context.Context, prediction *Prediction) error {
	preparePrediction(prediction)

	item, err := attributevalue.MarshalMap(prediction)
	if err != nil {
		logging.Log.Errorf("PREDICTION: failed to marshal prediction: %v", err)
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
			logging.Log.Warnf("PREDICTION: employee %s already submitted", prediction.EmployeeID)
			return ErrDuplicatePrediction
		}
		logging.Log.Errorf("PREDICTION: failed to create prediction: %v", err)
		return unavailable(err, "create prediction")
	}
	return nil
}

func (s *DynamoPredictionStorage) Exists(ctx context.Context, employeeID string) (bool, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: employeeID},
		},
		ProjectionExpression: aws.String("PK"),
	})
	if err != nil {
		logging.Log.Errorf("PREDICTION: GetItem for %s failed: %v", employeeID, err)
		return false, unavailable(err, "check prediction")
	}
	return out.Item != nil, nil
}

func (s *DynamoPredictionStorage) GetAll(ctx context.Context) ([]*Prediction, error) {
	items, err := scanAll(ctx, s.Client, s.TableName)
	if err != nil {
		logging.Log.Errorf("PREDICTION: scan failed: %v", err)
		return nil, unavailable(err, "list predictions")
	}

	var predictions []*Prediction
	if err := attributevalue.UnmarshalListOfMaps(items, &predictions); err != nil {
		logging.Log.Errorf("PREDICTION: failed to unmarshal list: %v", err)
		return nil, err
	}
	sortPredictions(predictions)
	return predictions, nil
}

func preparePrediction(prediction *Prediction) {
	if prediction.ID == "" {
		prediction.ID = newRowID()
	}
	if prediction.CreatedAt.IsZero() {
		prediction.CreatedAt = now()
	}
}

func sortPredictions(predictions []*Prediction) {
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].CreatedAt.Before(predictions[j].CreatedAt)
	})
}
