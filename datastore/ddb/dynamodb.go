/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"go.uber.org/zap"

	sperrors "github.com/allauncher/sysprops/errors"
	"github.com/allauncher/sysprops/storagemodels"
)

// API is the subset of the DynamoDB client used by the store.
type API interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// DynamodbPropertyStore implements datastore.PropertyStore on a DynamoDB table.
type DynamodbPropertyStore struct {
	client    API
	tableName string
	namespace string
	indexMap  map[string]string
	logger    *zap.Logger
	now       func() time.Time
}

type Option func(*DynamodbPropertyStore)

func WithLogger(l *zap.Logger) Option {
	return func(d *DynamodbPropertyStore) {
		d.logger = l
	}
}

// WithClock overrides the timestamp source for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(d *DynamodbPropertyStore) {
		d.now = now
	}
}

// propertyItem is the on-table shape of a property.
type propertyItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	Namespace  string `dynamodbav:"Namespace"`
	Key        string `dynamodbav:"Key"`
	Value      string `dynamodbav:"Value"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(keysInput)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))
	for fieldName, template := range indexMap {
		res[fieldName] = macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			val, ok := av[strings.Trim(macro, "{}")]
			if !ok {
				return ""
			}
			switch tv := val.(type) {
			case *types.AttributeValueMemberS:
				return tv.Value
			case *types.AttributeValueMemberN:
				return tv.Value
			case *types.AttributeValueMemberBOOL:
				return fmt.Sprintf("%v", tv.Value)
			default:
				return ""
			}
		})
	}
	return res, nil
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

// NewDynamoDBClient initializes a DynamoDB client. Static credentials are
// used when an access key is given, the default chain otherwise.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string, logger *zap.Logger) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(awsRegion)}
	if awsAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg)
	if logger != nil {
		logger.Info("DynamoDB client initialized",
			zap.String("region", awsRegion),
			zap.Bool("staticCredentials", awsAccessKey != ""))
	}
	return client, nil
}

// New constructs a store on an existing client.
func New(client API, tableName, namespace string, opts ...Option) *DynamodbPropertyStore {
	d := &DynamodbPropertyStore{
		client:    client,
		tableName: tableName,
		namespace: namespace,
		indexMap:  DefaultIndexMap,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDynamodbPropertyStore creates a client and a store for one namespace.
func NewDynamodbPropertyStore(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, tableName, namespace string, opts ...Option) (*DynamodbPropertyStore, error) {
	d := New(nil, tableName, namespace, opts...)

	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion, d.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	d.client = client
	return d, nil
}

func (d *DynamodbPropertyStore) keyFor(key string) (map[string]types.AttributeValue, error) {
	if key == "" {
		return nil, sperrors.NewValidationError("key", "must not be empty")
	}
	expanded, err := expandMacros(d.indexMap, storagemodels.PropertyRecord{Namespace: d.namespace, Key: key})
	if err != nil {
		return nil, err
	}
	return buildKeyFromExpanded(expanded)
}

// SetProperty upserts one property item.
func (d *DynamodbPropertyStore) SetProperty(ctx context.Context, key, value string) error {
	if key == "" {
		return sperrors.NewValidationError("key", "must not be empty")
	}
	record := storagemodels.PropertyRecord{
		Namespace: d.namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: strfmt.DateTime(d.now().UTC()),
	}

	expanded, err := expandMacros(d.indexMap, record)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(propertyItem{
		PK:         expanded["PK"],
		SK:         expanded["SK"],
		EntityType: EntityType,
		Namespace:  record.Namespace,
		Key:        record.Key,
		Value:      record.Value,
		UpdatedAt:  record.UpdatedAt.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal property: %w", err)
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	d.logger.Debug("property stored", zap.String("namespace", d.namespace), zap.String("key", key))
	return nil
}

// GetRecord returns the full record for key.
func (d *DynamodbPropertyStore) GetRecord(ctx context.Context, key string) (*storagemodels.PropertyRecord, error) {
	keyMap, err := d.keyFor(key)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, sperrors.NewNotFoundError("property", key)
	}
	return decodeItem(out.Item)
}

func (d *DynamodbPropertyStore) GetProperty(ctx context.Context, key string) (string, error) {
	rec, err := d.GetRecord(ctx, key)
	if err != nil {
		return "", err
	}
	return rec.Value, nil
}

func (d *DynamodbPropertyStore) ClearProperty(ctx context.Context, key string) error {
	keyMap, err := d.keyFor(key)
	if err != nil {
		return fmt.Errorf("failed to build key for Delete: %w", err)
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.tableName,
		Key:       keyMap,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("delete condition failed: %w", err)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

func decodeItem(item map[string]types.AttributeValue) (*storagemodels.PropertyRecord, error) {
	var it propertyItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	rec := &storagemodels.PropertyRecord{
		Namespace: it.Namespace,
		Key:       it.Key,
		Value:     it.Value,
	}
	if it.UpdatedAt != "" {
		ts, err := strfmt.ParseDateTime(it.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid UpdatedAt on %q: %w", it.Key, err)
		}
		rec.UpdatedAt = ts
	}
	return rec, nil
}

// Namespace returns the partition this store writes to.
func (d *DynamodbPropertyStore) Namespace() string {
	return d.namespace
}

// TableName returns the backing table.
func (d *DynamodbPropertyStore) TableName() string {
	return d.tableName
}
