package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
	pkgconfig "github.com/Gusmack1/charlesmackaybooks-order-service/pkg/config"
)

const emailIndexName = "GSI1"

// DynamoRepository stores orders in a single DynamoDB table:
// PK ORDER#<id> / SK METADATA, with GSI1 keyed on the normalized customer
// email and the creation timestamp so email lookups come back in creation
// order. PutItem gives upsert-by-id semantics.
type DynamoRepository struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoDBClient(cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func NewDynamoRepository(client *dynamodb.Client, tableName string) *DynamoRepository {
	return &DynamoRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *DynamoRepository) Put(ctx context.Context, order *domain.Order) error {
	av, err := attributevalue.MarshalMapWithOptions(order, func(o *attributevalue.EncoderOptions) {
		o.UseEncodingMarshalers = true
	})
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	email := strings.ToLower(order.Customer.Email)
	av["PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%s", order.ID)}
	av["SK"] = &types.AttributeValueMemberS{Value: "METADATA"}
	av["GSI1PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("EMAIL#%s", email)}
	av["GSI1SK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%s", order.CreatedAt.Format("2006-01-02T15:04:05Z"))}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}

func (r *DynamoRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%s", id)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrOrderNotFound
	}

	return unmarshalOrder(out.Item)
}

func (r *DynamoRepository) List(ctx context.Context) ([]*domain.Order, error) {
	orders := []*domain.Order{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String("SK = :sk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{":sk": &types.AttributeValueMemberS{Value: "METADATA"}},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan orders: %w", err)
		}
		for _, item := range out.Items {
			order, err := unmarshalOrder(item)
			if err != nil {
				return nil, err
			}
			orders = append(orders, order)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *DynamoRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(emailIndexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("EMAIL#%s", normalized)},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by email: %w", err)
	}

	orders := make([]*domain.Order, 0, len(out.Items))
	for _, item := range out.Items {
		order, err := unmarshalOrder(item)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func unmarshalOrder(item map[string]types.AttributeValue) (*domain.Order, error) {
	var order domain.Order
	err := attributevalue.UnmarshalMapWithOptions(item, &order, func(o *attributevalue.DecoderOptions) {
		o.UseEncodingUnmarshalers = true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}
