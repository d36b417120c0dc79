/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/allauncher/sysprops/storagemodels"
)

// Records returns every property record in the namespace, ordered by key.
func (d *DynamodbPropertyStore) Records(ctx context.Context) ([]storagemodels.PropertyRecord, error) {
	expanded, err := expandMacros(d.indexMap, storagemodels.PropertyRecord{Namespace: d.namespace})
	if err != nil {
		return nil, err
	}

	input := &sdk.QueryInput{
		TableName:              aws.String(d.tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: expanded["PK"]},
		},
	}

	var records []storagemodels.PropertyRecord
	pages := 0
	paginator := sdk.NewQueryPaginator(d.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		pages++
		for _, item := range out.Items {
			rec, err := decodeItem(item)
			if err != nil {
				return nil, err
			}
			records = append(records, *rec)
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	d.logger.Debug("namespace listed",
		zap.String("namespace", d.namespace),
		zap.Int("pages", pages),
		zap.Int("records", len(records)))
	return records, nil
}

// Properties returns the namespace as a key/value map.
func (d *DynamodbPropertyStore) Properties(ctx context.Context) (map[string]string, error) {
	records, err := d.Records(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(records))
	for _, r := range records {
		out[r.Key] = r.Value
	}
	return out, nil
}
