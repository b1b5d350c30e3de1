package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

//nolint:staticcheck
func setupLocalstackClient(t *testing.T) *dynamodb.Client {
	t.Helper()
	endpoint := os.Getenv("LOCALSTACK_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:4566"
	}
	if os.Getenv("AWS_ACCESS_KEY_ID") == "" {
		t.Setenv("AWS_ACCESS_KEY_ID", "test")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	}

	// Load localstack config
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("us-east-1"),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: endpoint, HostnameImmutable: true}, nil
			}),
		),
	)
	require.NoError(t, err)

	client := dynamodb.NewFromConfig(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.ListTables(ctx, &dynamodb.ListTablesInput{}); err != nil {
		t.Skipf("localstack not reachable at %s: %v", endpoint, err)
	}
	return client
}

// createTable makes a throwaway table keyed on PK (and SK when sortKey is set) and drops it after the test.
func createTable(t *testing.T, client *dynamodb.Client, name string, pkType types.ScalarAttributeType, sortKey bool) {
	t.Helper()
	ctx := context.Background()

	attrs := []types.AttributeDefinition{{AttributeName: aws.String("PK"), AttributeType: pkType}}
	keys := []types.KeySchemaElement{{AttributeName: aws.String("PK"), KeyType: types.KeyTypeHash}}
	if sortKey {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String("SK"), AttributeType: types.ScalarAttributeTypeS})
		keys = append(keys, types.KeySchemaElement{AttributeName: aws.String("SK"), KeyType: types.KeyTypeRange})
	}

	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		AttributeDefinitions: attrs,
		KeySchema:            keys,
		BillingMode:          types.BillingModePayPerRequest,
	})
	require.NoError(t, err)

	waiter := dynamodb.NewTableExistsWaiter(client)
	require.NoError(t, waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, 30*time.Second))

	t.Cleanup(func() {
		if _, err := client.DeleteTable(context.Background(), &dynamodb.DeleteTableInput{TableName: aws.String(name)}); err != nil {
			t.Logf("failed to drop table %s: %v", name, err)
		}
	})
}

func TestDynamoStorageContract(t *testing.T) {
	client := setupLocalstackClient(t)
	suffix := fmt.Sprintf("%d", time.Now().UnixNano())

	teams := "Teams-" + suffix
	votes := "Votes-" + suffix
	predictions := "Predictions-" + suffix
	judges := "Judges-" + suffix
	judgeVotes := "JudgeVotes-" + suffix

	createTable(t, client, teams, types.ScalarAttributeTypeN, false)
	createTable(t, client, votes, types.ScalarAttributeTypeS, true)
	createTable(t, client, predictions, types.ScalarAttributeTypeS, false)
	createTable(t, client, judges, types.ScalarAttributeTypeS, false)
	createTable(t, client, judgeVotes, types.ScalarAttributeTypeS, true)

	runStorageContract(t, &Gateway{
		Teams:       &DynamoTeamStorage{Client: client, TableName: teams},
		Votes:       &DynamoVoteStorage{Client: client, TableName: votes},
		Predictions: &DynamoPredictionStorage{Client: client, TableName: predictions},
		Judges:      &DynamoJudgeStorage{Client: client, TableName: judges},
		JudgeVotes: &DynamoJudgeVoteStorage{
			Client:          client,
			TableName:       judgeVotes,
			TeamsTableName:  teams,
			JudgesTableName: judges,
		},
	})
}
