package repository

import (
	"context"
	"errors"

	"catering_xpto/internal/domain/entities"
	"catering_xpto/internal/usecase/interfaces"
	"catering_xpto/pkg/money"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVersionsTableName = "estimate_versions"
	versionsInvoiceIDIndex   = "invoice_id-index"
)

type versionItem struct {
	ID            string         `dynamodbav:"id"`
	InvoiceID     string         `dynamodbav:"invoice_id"`
	VersionNumber int64          `dynamodbav:"version_number"`
	Status        string         `dynamodbav:"status"`
	Items         []lineItemItem `dynamodbav:"items"`
	Subtotal      int64          `dynamodbav:"subtotal"`
	TaxAmount     int64          `dynamodbav:"tax_amount"`
	TotalAmount   int64          `dynamodbav:"total_amount"`
	Notes         string         `dynamodbav:"notes,omitempty"`
	CreatedAt     string         `dynamodbav:"created_at"`
}

// VersionDynamoRepository persists EstimateVersion snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// The snapshot payload (items, totals) is embedded in the row and never
// updated; only the status column changes after creation.

type VersionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVersionRepository = (*VersionDynamoRepository)(nil)

func NewVersionDynamoRepository(ddb *dynamodb.Client) *VersionDynamoRepository {
	return &VersionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_VERSIONS_TABLE", defaultVersionsTableName),
	}
}

func (r *VersionDynamoRepository) Create(ctx context.Context, v entities.EstimateVersion) (entities.EstimateVersion, error) {
	av, err := attributevalue.MarshalMap(toVersionItem(v))
	if err != nil {
		return entities.EstimateVersion{}, err
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
		return entities.EstimateVersion{}, err
	}
	return v, nil
}

func (r *VersionDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateVersion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateVersion{}, nil
	}

	var it versionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateVersion{}, err
	}
	return fromVersionItem(it), nil
}

func (r *VersionDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.EstimateVersion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(versionsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	versions := make([]entities.EstimateVersion, 0, len(out.Items))
	for _, raw := range out.Items {
		var it versionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		versions = append(versions, fromVersionItem(it))
	}
	return versions, nil
}

func (r *VersionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.VersionStatus) (entities.EstimateVersion, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimateVersion{}, nil
		}
		return entities.EstimateVersion{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.EstimateVersion{}, nil
	}

	var it versionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EstimateVersion{}, err
	}
	return fromVersionItem(it), nil
}

func toVersionItem(v entities.EstimateVersion) versionItem {
	items := make([]lineItemItem, 0, len(v.Items))
	for _, li := range v.Items {
		items = append(items, toLineItemItem(li))
	}
	return versionItem{
		ID:            v.ID,
		InvoiceID:     v.InvoiceID,
		VersionNumber: v.VersionNumber,
		Status:        string(v.Status),
		Items:         items,
		Subtotal:      int64(v.Subtotal),
		TaxAmount:     int64(v.TaxAmount),
		TotalAmount:   int64(v.TotalAmount),
		Notes:         v.Notes,
		CreatedAt:     formatTime(v.CreatedAt),
	}
}

func fromVersionItem(it versionItem) entities.EstimateVersion {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, fromLineItemItem(li))
	}
	return entities.EstimateVersion{
		ID:            it.ID,
		InvoiceID:     it.InvoiceID,
		VersionNumber: it.VersionNumber,
		Status:        entities.VersionStatus(it.Status),
		Items:         items,
		Subtotal:      money.Cents(it.Subtotal),
		TaxAmount:     money.Cents(it.TaxAmount),
		TotalAmount:   money.Cents(it.TotalAmount),
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
