package repository

import (
	"context"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/usecase/interfaces"
	"catering_xpto/pkg/money"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLineItemsTableName = "line_items"
	lineItemsInvoiceIDIndex   = "invoice_id-index"
)

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	InvoiceID   string `dynamodbav:"invoice_id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Quantity    int64  `dynamodbav:"quantity"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
	TotalPrice  int64  `dynamodbav:"total_price"`
	Category    string `dynamodbav:"category"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// LineItemDynamoRepository persists LineItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)

type LineItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LINE_ITEMS_TABLE", defaultLineItemsTableName),
	}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, item entities.LineItem) (entities.LineItem, error) {
	av, err := attributevalue.MarshalMap(toLineItemItem(item))
	if err != nil {
		return entities.LineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *LineItemDynamoRepository) Update(ctx context.Context, item entities.LineItem) (entities.LineItem, error) {
	av, err := attributevalue.MarshalMap(toLineItemItem(item))
	if err != nil {
		return entities.LineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *LineItemDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.LineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lineItemsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it lineItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLineItemItem(it))
	}
	return items, nil
}

// ReplaceAllByInvoiceID deletes the invoice's existing items and writes the
// replacement set. DynamoDB offers no multi-item transaction in this layout;
// the per-guest flow accepts the small non-atomic window, matching the rest
// of the fail-fast persistence policy.
func (r *LineItemDynamoRepository) ReplaceAllByInvoiceID(ctx context.Context, invoiceID string, items []entities.LineItem) error {
	existing, err := r.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return err
	}
	for _, it := range existing {
		if err := r.Delete(ctx, it.ID); err != nil {
			return err
		}
	}

	for _, it := range items {
		av, err := attributevalue.MarshalMap(toLineItemItem(it))
		if err != nil {
			return err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return err
		}
	}
	return nil
}

func toLineItemItem(it entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		Title:       it.Title,
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitPrice:   int64(it.UnitPrice),
		TotalPrice:  int64(it.TotalPrice),
		Category:    string(it.Category),
		CreatedAt:   formatTime(it.CreatedAt),
		UpdatedAt:   formatTime(it.UpdatedAt),
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		Title:       it.Title,
		Description: it.Description,
		Quantity:    it.Quantity,
		UnitPrice:   money.Cents(it.UnitPrice),
		TotalPrice:  money.Cents(it.TotalPrice),
		Category:    entities.ItemCategory(it.Category),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
