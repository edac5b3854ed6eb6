package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDamagedPartsTableName   = "damaged_parts"
	defaultQuoteSummariesTableName = "assessment_quote_summaries"
)

type damagedPartItem struct {
	ID               string  `dynamodbav:"id"`
	AssessmentID     string  `dynamodbav:"assessment_id"`
	Name             string  `dynamodbav:"name"`
	MinEstimatedCost float64 `dynamodbav:"min_estimated_cost"`
	MaxEstimatedCost float64 `dynamodbav:"max_estimated_cost"`
}

type quoteSummaryItem struct {
	AssessmentID       string  `dynamodbav:"assessment_id"`
	MarketAverageTotal float64 `dynamodbav:"market_average_total"`
	CollectionStatus   string  `dynamodbav:"collection_status"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

// AssessmentDynamoRepository reads the collaborator-owned damaged parts
// table and owns the assessment quote summary extension.
//
// Table requirements:
//   - damaged_parts: PK id (string), GSI assessment_id-index
//   - assessment_quote_summaries: PK assessment_id (string)
//
// Damaged parts are never written here; the assessment service owns them.

type AssessmentDynamoRepository struct {
	ddb            *dynamodb.Client
	partsTable     string
	summariesTable string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb *dynamodb.Client) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{
		ddb:            ddb,
		partsTable:     getenvDefault("DAMAGED_PARTS_TABLE", defaultDamagedPartsTableName),
		summariesTable: getenvDefault("QUOTE_SUMMARIES_TABLE", defaultQuoteSummariesTableName),
	}
}

func (r *AssessmentDynamoRepository) GetDamagedPart(ctx context.Context, id string) (entities.DamagedPart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.partsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.DamagedPart{}, err
	}
	if len(out.Item) == 0 {
		return entities.DamagedPart{}, nil
	}

	var it damagedPartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DamagedPart{}, err
	}
	return entities.DamagedPart(it), nil
}

func (r *AssessmentDynamoRepository) ListDamagedParts(ctx context.Context, assessmentID string) ([]entities.DamagedPart, error) {
	var parts []entities.DamagedPart
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.partsTable),
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

		var items []damagedPartItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			parts = append(parts, entities.DamagedPart(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return parts, nil
}

func (r *AssessmentDynamoRepository) ListAssessmentIDs(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.partsTable),
			ProjectionExpression: aws.String("#assessment_id"),
			ExpressionAttributeNames: map[string]string{
				"#assessment_id": "assessment_id",
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		var items []damagedPartItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			if it.AssessmentID != "" {
				seen[it.AssessmentID] = true
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *AssessmentDynamoRepository) GetQuoteSummary(ctx context.Context, assessmentID string) (entities.AssessmentQuoteSummary, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.summariesTable),
		Key: map[string]types.AttributeValue{
			"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AssessmentQuoteSummary{}, err
	}
	if len(out.Item) == 0 {
		return entities.AssessmentQuoteSummary{}, nil
	}

	var it quoteSummaryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AssessmentQuoteSummary{}, err
	}
	return fromQuoteSummaryItem(it), nil
}

func (r *AssessmentDynamoRepository) UpsertQuoteSummary(ctx context.Context, s entities.AssessmentQuoteSummary) (entities.AssessmentQuoteSummary, error) {
	av, err := attributevalue.MarshalMap(quoteSummaryItem{
		AssessmentID:       s.AssessmentID,
		MarketAverageTotal: s.MarketAverageTotal,
		CollectionStatus:   string(s.CollectionStatus),
		UpdatedAt:          formatTime(s.UpdatedAt),
	})
	if err != nil {
		return entities.AssessmentQuoteSummary{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.summariesTable),
		Item:      av,
	})
	if err != nil {
		return entities.AssessmentQuoteSummary{}, err
	}
	return s, nil
}

func (r *AssessmentDynamoRepository) SetCollectionStatus(ctx context.Context, assessmentID string, status entities.CollectionStatus) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.summariesTable),
		Key: map[string]types.AttributeValue{
			"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		// Flag writes never create the summary; assessments without the
		// extension record are skipped.
		ConditionExpression: aws.String("attribute_exists(#assessment_id)"),
		UpdateExpression:    aws.String("SET #collection_status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#assessment_id":     "assessment_id",
			"#collection_status": "collection_status",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
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

func fromQuoteSummaryItem(it quoteSummaryItem) entities.AssessmentQuoteSummary {
	return entities.AssessmentQuoteSummary{
		AssessmentID:       it.AssessmentID,
		MarketAverageTotal: it.MarketAverageTotal,
		CollectionStatus:   entities.CollectionStatus(it.CollectionStatus),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
