package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func teamSortKey(teamID int) string {
	return fmt.Sprintf("team#%d", teamID)
}

// scanAll walks every page of a table scan.
func scanAll(ctx context.Context, client *dynamodb.Client, tableName string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue

	paginator := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{
		TableName: &tableName,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}
