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

const defaultInvoicesTableName = "invoices"

type invoiceItem struct {
	ID                   string `dynamodbav:"id"`
	CustomerName         string `dynamodbav:"customer_name"`
	CustomerEmail        string `dynamodbav:"customer_email"`
	ServiceType          string `dynamodbav:"service_type,omitempty"`
	GuestCount           int64  `dynamodbav:"guest_count"`
	EventDate            string `dynamodbav:"event_date,omitempty"`
	IsGovernmentContract bool   `dynamodbav:"is_government_contract"`
	Status               string `dynamodbav:"status"`
	ChangeRequestedFrom  string `dynamodbav:"change_requested_from,omitempty"`
	ApprovedVia          string `dynamodbav:"approved_via,omitempty"`

	Subtotal        int64 `dynamodbav:"subtotal"`
	HospitalityTax  int64 `dynamodbav:"hospitality_tax"`
	ServiceTax      int64 `dynamodbav:"service_tax"`
	TaxAmount       int64 `dynamodbav:"tax_amount"`
	TotalAmount     int64 `dynamodbav:"total_amount"`
	DepositRequired int64 `dynamodbav:"deposit_required"`

	Revision    int64  `dynamodbav:"revision"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	SentAt      string `dynamodbav:"sent_at,omitempty"`
	ApprovedAt  string `dynamodbav:"approved_at,omitempty"`
	ConfirmedAt string `dynamodbav:"confirmed_at,omitempty"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

// InvoiceDynamoRepository persists Invoice records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every update carries "#revision = :expected" in its condition expression
// and bumps the revision; a lost race surfaces as ErrRevisionConflict instead
// of silently overwriting another admin's write.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) UpdateTotals(ctx context.Context, id string, totals entities.EstimateTotals, expectedRevision int64) (entities.Invoice, error) {
	return r.update(ctx, id, expectedRevision, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #subtotal = :subtotal, #hospitality_tax = :hospitality_tax, #service_tax = :service_tax, " +
			"#tax_amount = :tax_amount, #total_amount = :total_amount, #deposit_required = :deposit_required, " +
			"#updated_at = :updated_at, #revision = :next_revision"
		vals := map[string]types.AttributeValue{
			":subtotal":         numberValue(int64(totals.Subtotal)),
			":hospitality_tax":  numberValue(int64(totals.HospitalityTax)),
			":service_tax":      numberValue(int64(totals.ServiceTax)),
			":tax_amount":       numberValue(int64(totals.TaxAmount)),
			":total_amount":     numberValue(int64(totals.TotalAmount)),
			":deposit_required": numberValue(int64(totals.DepositRequired)),
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#subtotal":         "subtotal",
			"#hospitality_tax":  "hospitality_tax",
			"#service_tax":      "service_tax",
			"#tax_amount":       "tax_amount",
			"#total_amount":     "total_amount",
			"#deposit_required": "deposit_required",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, change entities.StatusChange, expectedRevision int64) (entities.Invoice, error) {
	return r.update(ctx, id, expectedRevision, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at, #revision = :next_revision"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(change.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}

		if change.Status == entities.StatusChangeRequested {
			expr += ", #change_requested_from = :change_requested_from"
			vals[":change_requested_from"] = &types.AttributeValueMemberS{Value: string(change.ChangeRequestedFrom)}
			names["#change_requested_from"] = "change_requested_from"
		}
		if change.ApprovedVia != "" {
			expr += ", #approved_via = :approved_via"
			vals[":approved_via"] = &types.AttributeValueMemberS{Value: change.ApprovedVia}
			names["#approved_via"] = "approved_via"
		}
		if field, ok := stageTimestampField(change.Status); ok {
			expr += ", #stage_ts = :stage_ts"
			vals[":stage_ts"] = &types.AttributeValueMemberS{Value: now}
			names["#stage_ts"] = field
		}
		if change.Status != entities.StatusChangeRequested {
			expr += " REMOVE #cleared_branch"
			names["#cleared_branch"] = "change_requested_from"
		}
		return expr, vals, names
	})
}

// stageTimestampField maps a target status onto its audit timestamp column.
func stageTimestampField(status entities.InvoiceStatus) (string, bool) {
	switch status {
	case entities.StatusSent:
		return "sent_at", true
	case entities.StatusApproved:
		return "approved_at", true
	case entities.StatusConfirmed:
		return "confirmed_at", true
	case entities.StatusCompleted:
		return "completed_at", true
	}
	return "", false
}

func (r *InvoiceDynamoRepository) update(
	ctx context.Context,
	id string,
	expectedRevision int64,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Invoice, error) {
	now := nowRFC3339Nano()
	updateExpr, values, names := build(now)
	values[":expected_revision"] = numberValue(expectedRevision)
	values[":next_revision"] = numberValue(expectedRevision + 1)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #revision = :expected_revision"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#revision": "revision"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Distinguish a vanished row from a lost revision race.
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.Invoice{}, getErr
			}
			if existing.ID == "" {
				return entities.Invoice{}, nil
			}
			return entities.Invoice{}, interfaces.ErrRevisionConflict
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:                   inv.ID,
		CustomerName:         inv.CustomerName,
		CustomerEmail:        inv.CustomerEmail,
		ServiceType:          inv.ServiceType,
		GuestCount:           inv.GuestCount,
		EventDate:            formatTime(inv.EventDate),
		IsGovernmentContract: inv.IsGovernmentContract,
		Status:               string(inv.Status),
		ChangeRequestedFrom:  string(inv.ChangeRequestedFrom),
		ApprovedVia:          inv.ApprovedVia,
		Subtotal:             int64(inv.Totals.Subtotal),
		HospitalityTax:       int64(inv.Totals.HospitalityTax),
		ServiceTax:           int64(inv.Totals.ServiceTax),
		TaxAmount:            int64(inv.Totals.TaxAmount),
		TotalAmount:          int64(inv.Totals.TotalAmount),
		DepositRequired:      int64(inv.Totals.DepositRequired),
		Revision:             inv.Revision,
		CreatedAt:            formatTime(inv.CreatedAt),
		UpdatedAt:            formatTime(inv.UpdatedAt),
		SentAt:               formatTimePtr(inv.SentAt),
		ApprovedAt:           formatTimePtr(inv.ApprovedAt),
		ConfirmedAt:          formatTimePtr(inv.ConfirmedAt),
		CompletedAt:          formatTimePtr(inv.CompletedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:                   it.ID,
		CustomerName:         it.CustomerName,
		CustomerEmail:        it.CustomerEmail,
		ServiceType:          it.ServiceType,
		GuestCount:           it.GuestCount,
		EventDate:            parseTime(it.EventDate),
		IsGovernmentContract: it.IsGovernmentContract,
		Status:               entities.InvoiceStatus(it.Status),
		ChangeRequestedFrom:  entities.InvoiceStatus(it.ChangeRequestedFrom),
		ApprovedVia:          it.ApprovedVia,
		Totals: entities.EstimateTotals{
			Subtotal:        money.Cents(it.Subtotal),
			HospitalityTax:  money.Cents(it.HospitalityTax),
			ServiceTax:      money.Cents(it.ServiceTax),
			TaxAmount:       money.Cents(it.TaxAmount),
			TotalAmount:     money.Cents(it.TotalAmount),
			DepositRequired: money.Cents(it.DepositRequired),
		},
		Revision:    it.Revision,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
		SentAt:      parseTimePtr(it.SentAt),
		ApprovedAt:  parseTimePtr(it.ApprovedAt),
		ConfirmedAt: parseTimePtr(it.ConfirmedAt),
		CompletedAt: parseTimePtr(it.CompletedAt),
	}
}
