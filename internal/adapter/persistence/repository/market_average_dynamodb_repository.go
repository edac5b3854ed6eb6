package repository

import (
	"context"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMarketAveragesTableName = "market_averages"

type quoteOutlierItem struct {
	QuoteID      string  `dynamodbav:"quote_id"`
	ProviderName string  `dynamodbav:"provider_name"`
	TotalCost    float64 `dynamodbav:"total_cost"`
	Deviation    float64 `dynamodbav:"deviation"`
}

type marketAverageItem struct {
	PartID          string             `dynamodbav:"part_id"`
	AverageTotal    float64            `dynamodbav:"average_total_cost"`
	MinTotal        float64            `dynamodbav:"min_total_cost"`
	MaxTotal        float64            `dynamodbav:"max_total_cost"`
	AveragePart     float64            `dynamodbav:"average_part_cost"`
	AverageLabor    float64            `dynamodbav:"average_labor_cost"`
	StdDev          float64            `dynamodbav:"std_deviation"`
	VariancePct     float64            `dynamodbav:"variance_pct"`
	QuoteCount      int                `dynamodbav:"quote_count"`
	ConfidenceLevel int                `dynamodbav:"confidence_level"`
	Outliers        []quoteOutlierItem `dynamodbav:"outliers"`
	CalculatedAt    string             `dynamodbav:"calculated_at"`
}

// MarketAverageDynamoRepository persists the derived MarketAverage record.
//
// Table requirements:
//   - PK: part_id (string)
//
// The record is one-to-one with a damaged part and replaced wholesale via
// PutItem on every calculation; no partial updates exist.

type MarketAverageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMarketAverageRepository = (*MarketAverageDynamoRepository)(nil)

func NewMarketAverageDynamoRepository(ddb *dynamodb.Client) *MarketAverageDynamoRepository {
	return &MarketAverageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MARKET_AVERAGES_TABLE", defaultMarketAveragesTableName),
	}
}

func (r *MarketAverageDynamoRepository) Upsert(ctx context.Context, ma entities.MarketAverage) (entities.MarketAverage, error) {
	av, err := attributevalue.MarshalMap(toMarketAverageItem(ma))
	if err != nil {
		return entities.MarketAverage{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.MarketAverage{}, err
	}
	return ma, nil
}

func (r *MarketAverageDynamoRepository) GetByPartID(ctx context.Context, partID string) (entities.MarketAverage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"part_id": &types.AttributeValueMemberS{Value: partID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MarketAverage{}, err
	}
	if len(out.Item) == 0 {
		return entities.MarketAverage{}, nil
	}

	var it marketAverageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MarketAverage{}, err
	}
	return fromMarketAverageItem(it), nil
}

func toMarketAverageItem(ma entities.MarketAverage) marketAverageItem {
	outliers := make([]quoteOutlierItem, 0, len(ma.Outliers))
	for _, o := range ma.Outliers {
		outliers = append(outliers, quoteOutlierItem(o))
	}
	return marketAverageItem{
		PartID:          ma.PartID,
		AverageTotal:    ma.AverageTotal,
		MinTotal:        ma.MinTotal,
		MaxTotal:        ma.MaxTotal,
		AveragePart:     ma.AveragePart,
		AverageLabor:    ma.AverageLabor,
		StdDev:          ma.StdDev,
		VariancePct:     ma.VariancePct,
		QuoteCount:      ma.QuoteCount,
		ConfidenceLevel: ma.ConfidenceLevel,
		Outliers:        outliers,
		CalculatedAt:    formatTime(ma.CalculatedAt),
	}
}

func fromMarketAverageItem(it marketAverageItem) entities.MarketAverage {
	var outliers []entities.QuoteOutlier
	for _, o := range it.Outliers {
		outliers = append(outliers, entities.QuoteOutlier(o))
	}
	return entities.MarketAverage{
		PartID:          it.PartID,
		AverageTotal:    it.AverageTotal,
		MinTotal:        it.MinTotal,
		MaxTotal:        it.MaxTotal,
		AveragePart:     it.AveragePart,
		AverageLabor:    it.AverageLabor,
		StdDev:          it.StdDev,
		VariancePct:     it.VariancePct,
		QuoteCount:      it.QuoteCount,
		ConfidenceLevel: it.ConfidenceLevel,
		Outliers:        outliers,
		CalculatedAt:    parseTime(it.CalculatedAt),
	}
}
