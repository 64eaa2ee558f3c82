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
	defaultMilestonesTableName = "payment_milestones"
	milestonesInvoiceIDIndex   = "invoice_id-index"
)

type milestoneItem struct {
	ID          string  `dynamodbav:"id"`
	InvoiceID   string  `dynamodbav:"invoice_id"`
	AmountCents int64   `dynamodbav:"amount_cents"`
	Percentage  float64 `dynamodbav:"percentage"`
	Description string  `dynamodbav:"description"`
	DueDate     string  `dynamodbav:"due_date"`
	Status      string  `dynamodbav:"status"`
	SortOrder   int     `dynamodbav:"sort_order"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// MilestoneDynamoRepository persists PaymentMilestone entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)

type MilestoneDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestoneRepository = (*MilestoneDynamoRepository)(nil)

func NewMilestoneDynamoRepository(ddb *dynamodb.Client) *MilestoneDynamoRepository {
	return &MilestoneDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_MILESTONES_TABLE", defaultMilestonesTableName),
	}
}

func (r *MilestoneDynamoRepository) CreateMany(ctx context.Context, milestones []entities.PaymentMilestone) error {
	for _, m := range milestones {
		av, err := attributevalue.MarshalMap(toMilestoneItem(m))
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

func (r *MilestoneDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(milestonesInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	milestones := make([]entities.PaymentMilestone, 0, len(out.Items))
	for _, raw := range out.Items {
		var it milestoneItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		milestones = append(milestones, fromMilestoneItem(it))
	}
	return milestones, nil
}

func (r *MilestoneDynamoRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func toMilestoneItem(m entities.PaymentMilestone) milestoneItem {
	return milestoneItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		AmountCents: int64(m.AmountCents),
		Percentage:  m.Percentage,
		Description: m.Description,
		DueDate:     formatTime(m.DueDate),
		Status:      string(m.Status),
		SortOrder:   m.SortOrder,
		CreatedAt:   formatTime(m.CreatedAt),
	}
}

func fromMilestoneItem(it milestoneItem) entities.PaymentMilestone {
	return entities.PaymentMilestone{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		AmountCents: money.Cents(it.AmountCents),
		Percentage:  it.Percentage,
		Description: it.Description,
		DueDate:     parseTime(it.DueDate),
		Status:      entities.MilestoneStatus(it.Status),
		SortOrder:   it.SortOrder,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
