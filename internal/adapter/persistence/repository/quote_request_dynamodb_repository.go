package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuoteRequestsTableName = "quote_requests"

	assessmentIndexName = "assessment_id-index"
	partIndexName       = "part_id-index"
)

type providerFlagsItem struct {
	Assessor    bool `dynamodbav:"assessor"`
	Dealer      bool `dynamodbav:"dealer"`
	Independent bool `dynamodbav:"independent"`
	Network     bool `dynamodbav:"network"`
}

type quoteRequestItem struct {
	ID           string            `dynamodbav:"id"`
	PartID       string            `dynamodbav:"part_id"`
	AssessmentID string            `dynamodbav:"assessment_id"`
	ExpiresAt    string            `dynamodbav:"expires_at"`
	Providers    providerFlagsItem `dynamodbav:"providers"`
	RequestedBy  string            `dynamodbav:"requested_by"`
	Status       string            `dynamodbav:"status"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// QuoteRequestDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI assessment_id-index: assessment_id
//   - GSI part_id-index: part_id
//
// expires_at is stored second-precision RFC3339 so the cleanup sweep can
// range-compare it in a filter expression.

type QuoteRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client) *QuoteRequestDynamoRepository {
	return &QuoteRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_REQUESTS_TABLE", defaultQuoteRequestsTableName),
	}
}

func (r *QuoteRequestDynamoRepository) Create(ctx context.Context, req entities.QuoteRequest) (entities.QuoteRequest, error) {
	av, err := attributevalue.MarshalMap(toQuoteRequestItem(req))
	if err != nil {
		return entities.QuoteRequest{}, err
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
		return entities.QuoteRequest{}, err
	}
	return req, nil
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func (r *QuoteRequestDynamoRepository) GetActiveByPartID(ctx context.Context, partID string) (entities.QuoteRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(partIndexName),
		KeyConditionExpression: aws.String("#part_id = :part_id"),
		FilterExpression:       aws.String("#status IN (:sent, :received)"),
		ExpressionAttributeNames: map[string]string{
			"#part_id": "part_id",
			"#status":  "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":part_id":  &types.AttributeValueMemberS{Value: partID},
			":sent":     &types.AttributeValueMemberS{Value: string(entities.RequestStatusSent)},
			":received": &types.AttributeValueMemberS{Value: string(entities.RequestStatusReceived)},
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func (r *QuoteRequestDynamoRepository) ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.QuoteRequest, error) {
	var requests []entities.QuoteRequest
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(assessmentIndexName),
			KeyConditionExpression: aws.String("#assessment_id = :assessment_id"),
			ExpressionAttributeNames: map[string]string{
				"#assessment_id": "assessment_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quoteRequestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			requests = append(requests, fromQuoteRequestItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return requests, nil
}

func (r *QuoteRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.QuoteRequest, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}

	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteRequestItem(it), nil
}

func (r *QuoteRequestDynamoRepository) ListSweepable(ctx context.Context, cutoff time.Time) ([]entities.QuoteRequest, error) {
	var requests []entities.QuoteRequest
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status IN (:sent, :expired) AND #expires_at < :cutoff"),
			ExpressionAttributeNames: map[string]string{
				"#status":     "status",
				"#expires_at": "expires_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sent":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusSent)},
				":expired": &types.AttributeValueMemberS{Value: string(entities.RequestStatusExpired)},
				":cutoff":  &types.AttributeValueMemberS{Value: formatSortableTime(cutoff)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quoteRequestItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			requests = append(requests, fromQuoteRequestItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return requests, nil
}

func (r *QuoteRequestDynamoRepository) MarkExpired(ctx context.Context, id string) (bool, error) {
	now := formatTime(time.Now())

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// Only a sent request transitions; reruns change nothing.
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :sent"),
		UpdateExpression:    aws.String("SET #status = :expired, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sent":       &types.AttributeValueMemberS{Value: string(entities.RequestStatusSent)},
			":expired":    &types.AttributeValueMemberS{Value: string(entities.RequestStatusExpired)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toQuoteRequestItem(r entities.QuoteRequest) quoteRequestItem {
	return quoteRequestItem{
		ID:           r.ID,
		PartID:       r.PartID,
		AssessmentID: r.AssessmentID,
		ExpiresAt:    formatSortableTime(r.ExpiresAt),
		Providers: providerFlagsItem{
			Assessor:    r.Providers.Assessor,
			Dealer:      r.Providers.Dealer,
			Independent: r.Providers.Independent,
			Network:     r.Providers.Network,
		},
		RequestedBy: r.RequestedBy,
		Status:      string(r.Status),
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func fromQuoteRequestItem(it quoteRequestItem) entities.QuoteRequest {
	return entities.QuoteRequest{
		ID:           it.ID,
		PartID:       it.PartID,
		AssessmentID: it.AssessmentID,
		ExpiresAt:    parseSortableTime(it.ExpiresAt),
		Providers: entities.ProviderFlags{
			Assessor:    it.Providers.Assessor,
			Dealer:      it.Providers.Dealer,
			Independent: it.Providers.Independent,
			Network:     it.Providers.Network,
		},
		RequestedBy: it.RequestedBy,
		Status:      entities.RequestStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
