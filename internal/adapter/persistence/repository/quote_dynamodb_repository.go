package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	RequestID           string  `dynamodbav:"request_id"`
	ProviderKey         string  `dynamodbav:"provider_key"`
	ID                  string  `dynamodbav:"id"`
	PartID              string  `dynamodbav:"part_id"`
	ProviderType        string  `dynamodbav:"provider_type"`
	ProviderName        string  `dynamodbav:"provider_name"`
	PartCost            float64 `dynamodbav:"part_cost"`
	LaborCost           float64 `dynamodbav:"labor_cost"`
	PaintCost           float64 `dynamodbav:"paint_cost"`
	AdditionalCosts     float64 `dynamodbav:"additional_costs"`
	TotalCost           float64 `dynamodbav:"total_cost"`
	PartType            string  `dynamodbav:"part_type"`
	DeliveryDays        int     `dynamodbav:"estimated_delivery_days"`
	CompletionDays      int     `dynamodbav:"estimated_completion_days"`
	PartWarrantyMonths  int     `dynamodbav:"part_warranty_months"`
	LaborWarrantyMonths int     `dynamodbav:"labor_warranty_months"`
	ConfidenceScore     int     `dynamodbav:"confidence_score"`
	ValidUntil          string  `dynamodbav:"valid_until"`
	Notes               string  `dynamodbav:"notes"`
	Status              string  `dynamodbav:"status"`
	CreatedAt           string  `dynamodbav:"created_at"`
	UpdatedAt           string  `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string)
//   - SK: provider_key (string, "<provider_type>#<provider_name>")
//   - GSI part_id-index: part_id
//
// The composite key carries the uniqueness invariant: writing through the
// key is an atomic upsert, so concurrent submissions from the same
// provider can never produce two rows.

type QuoteDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	requestsTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		requestsTable: getenvDefault("QUOTE_REQUESTS_TABLE", defaultQuoteRequestsTableName),
	}
}

func providerKey(providerType entities.ProviderType, providerName string) string {
	return string(providerType) + "#" + providerName
}

// UpsertForRequest writes the quote row and flips its request to received
// in one TransactWriteItems call. The quote Put overwrites any previous
// submission from the same provider; the request update is conditioned on
// the request still accepting responses, so a concurrent cancellation
// aborts the whole transaction.
func (r *QuoteDynamoRepository) UpsertForRequest(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	now := formatTime(time.Now())

	it := toQuoteItem(q)
	it.UpdatedAt = now
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"request_id":   &types.AttributeValueMemberS{Value: q.RequestID},
						"provider_key": &types.AttributeValueMemberS{Value: providerKey(q.ProviderType, q.ProviderName)},
					},
					UpdateExpression: aws.String(quoteUpsertExpression()),
					ExpressionAttributeNames: map[string]string{
						"#created_at": "created_at",
						"#status":     "status",
						"#notes":      "notes",
					},
					ExpressionAttributeValues: quoteUpsertValues(av, now),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.requestsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: q.RequestID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #req_status IN (:sent, :received)"),
					UpdateExpression:    aws.String("SET #req_status = :received, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#req_status": "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":sent":       &types.AttributeValueMemberS{Value: string(entities.RequestStatusSent)},
						":received":   &types.AttributeValueMemberS{Value: string(entities.RequestStatusReceived)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("upsert quote for request %s: %w", q.RequestID, err)
	}
	return q, nil
}

func quoteUpsertExpression() string {
	return "SET #created_at = if_not_exists(#created_at, :created_at), " +
		"id = :id, part_id = :part_id, provider_type = :provider_type, provider_name = :provider_name, " +
		"part_cost = :part_cost, labor_cost = :labor_cost, paint_cost = :paint_cost, " +
		"additional_costs = :additional_costs, total_cost = :total_cost, part_type = :part_type, " +
		"estimated_delivery_days = :delivery_days, estimated_completion_days = :completion_days, " +
		"part_warranty_months = :part_warranty, labor_warranty_months = :labor_warranty, " +
		"confidence_score = :confidence, valid_until = :valid_until, #notes = :notes, " +
		"#status = :status, updated_at = :updated_at"
}

func quoteUpsertValues(av map[string]types.AttributeValue, now string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":created_at":      &types.AttributeValueMemberS{Value: now},
		":id":              av["id"],
		":part_id":         av["part_id"],
		":provider_type":   av["provider_type"],
		":provider_name":   av["provider_name"],
		":part_cost":       av["part_cost"],
		":labor_cost":      av["labor_cost"],
		":paint_cost":      av["paint_cost"],
		":additional_costs": av["additional_costs"],
		":total_cost":      av["total_cost"],
		":part_type":       av["part_type"],
		":delivery_days":   av["estimated_delivery_days"],
		":completion_days": av["estimated_completion_days"],
		":part_warranty":   av["part_warranty_months"],
		":labor_warranty":  av["labor_warranty_months"],
		":confidence":      av["confidence_score"],
		":valid_until":     av["valid_until"],
		":notes":           av["notes"],
		":status":          av["status"],
		":updated_at":      av["updated_at"],
	}
}

func (r *QuoteDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var items []quoteItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	quotes := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) ListByPartID(ctx context.Context, partID string) ([]entities.Quote, error) {
	var quotes []entities.Quote
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(partIndexName),
			KeyConditionExpression: aws.String("#part_id = :part_id"),
			ExpressionAttributeNames: map[string]string{
				"#part_id": "part_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":part_id": &types.AttributeValueMemberS{Value: partID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

// DeleteByRequestID hard-deletes every quote of one request in a single
// transaction; either all rows go or none do. A request holds at most one
// quote per provider, far below the transaction item cap.
func (r *QuoteDynamoRepository) DeleteByRequestID(ctx context.Context, requestID string) (int, error) {
	quotes, err := r.ListByRequestID(ctx, requestID)
	if err != nil {
		return 0, err
	}
	if len(quotes) == 0 {
		return 0, nil
	}

	items := make([]types.TransactWriteItem, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key: map[string]types.AttributeValue{
					"request_id":   &types.AttributeValueMemberS{Value: q.RequestID},
					"provider_key": &types.AttributeValueMemberS{Value: providerKey(q.ProviderType, q.ProviderName)},
				},
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return 0, fmt.Errorf("delete quotes for request %s: %w", requestID, err)
	}
	return len(quotes), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		RequestID:           q.RequestID,
		ProviderKey:         providerKey(q.ProviderType, q.ProviderName),
		ID:                  q.ID,
		PartID:              q.PartID,
		ProviderType:        string(q.ProviderType),
		ProviderName:        q.ProviderName,
		PartCost:            q.PartCost,
		LaborCost:           q.LaborCost,
		PaintCost:           q.PaintCost,
		AdditionalCosts:     q.AdditionalCosts,
		TotalCost:           q.TotalCost,
		PartType:            string(q.PartType),
		DeliveryDays:        q.DeliveryDays,
		CompletionDays:      q.CompletionDays,
		PartWarrantyMonths:  q.PartWarrantyMonths,
		LaborWarrantyMonths: q.LaborWarrantyMonths,
		ConfidenceScore:     q.ConfidenceScore,
		ValidUntil:          formatTime(q.ValidUntil),
		Notes:               q.Notes,
		Status:              string(q.Status),
		CreatedAt:           formatTime(q.CreatedAt),
		UpdatedAt:           formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:                  it.ID,
		RequestID:           it.RequestID,
		PartID:              it.PartID,
		ProviderType:        entities.ProviderType(it.ProviderType),
		ProviderName:        it.ProviderName,
		PartCost:            it.PartCost,
		LaborCost:           it.LaborCost,
		PaintCost:           it.PaintCost,
		AdditionalCosts:     it.AdditionalCosts,
		TotalCost:           it.TotalCost,
		PartType:            entities.PartType(it.PartType),
		DeliveryDays:        it.DeliveryDays,
		CompletionDays:      it.CompletionDays,
		PartWarrantyMonths:  it.PartWarrantyMonths,
		LaborWarrantyMonths: it.LaborWarrantyMonths,
		ConfidenceScore:     it.ConfidenceScore,
		ValidUntil:          parseTime(it.ValidUntil),
		Notes:               it.Notes,
		Status:              entities.QuoteStatus(it.Status),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
