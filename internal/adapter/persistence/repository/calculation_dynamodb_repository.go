package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"house_calculator/internal/domain/entities"
	"house_calculator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultCalculationsTableName = "calculations"
	calculationsUserIDIndex      = "user_id-index"
)

// input_data and result_data are stored as JSON strings so the item layout
// does not follow every change of the estimation result shape.
type calculationItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	HouseType  string `dynamodbav:"house_type"`
	InputData  string `dynamodbav:"input_data"`
	ResultData string `dynamodbav:"result_data"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CalculationDynamoRepository persists Calculation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type CalculationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICalculationRepository = (*CalculationDynamoRepository)(nil)

func NewCalculationDynamoRepository(ddb *dynamodb.Client, tableName string) *CalculationDynamoRepository {
	if tableName == "" {
		tableName = DefaultCalculationsTableName
	}
	return &CalculationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CalculationDynamoRepository) Create(ctx context.Context, c entities.Calculation) (entities.Calculation, error) {
	it, err := toCalculationItem(c)
	if err != nil {
		return entities.Calculation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Calculation{}, err
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
		return entities.Calculation{}, err
	}
	return c, nil
}

func (r *CalculationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Calculation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Calculation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Calculation{}, nil
	}

	var it calculationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Calculation{}, err
	}
	return fromCalculationItem(it)
}

func (r *CalculationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Calculation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(calculationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	items := make([]entities.Calculation, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it calculationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			c, err := fromCalculationItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, c)
		}
	}
	return items, nil
}

func toCalculationItem(c entities.Calculation) (calculationItem, error) {
	input, err := json.Marshal(c.InputData)
	if err != nil {
		return calculationItem{}, fmt.Errorf("marshal input data: %w", err)
	}
	result, err := json.Marshal(c.ResultData)
	if err != nil {
		return calculationItem{}, fmt.Errorf("marshal result data: %w", err)
	}
	return calculationItem{
		ID:         c.ID,
		UserID:     c.UserID,
		HouseType:  string(c.HouseType),
		InputData:  string(input),
		ResultData: string(result),
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromCalculationItem(it calculationItem) (entities.Calculation, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	c := entities.Calculation{
		ID:        it.ID,
		UserID:    it.UserID,
		HouseType: entities.HouseType(it.HouseType),
		CreatedAt: createdAt,
	}
	if it.InputData != "" {
		if err := json.Unmarshal([]byte(it.InputData), &c.InputData); err != nil {
			return entities.Calculation{}, fmt.Errorf("unmarshal input data: %w", err)
		}
	}
	if it.ResultData != "" {
		if err := json.Unmarshal([]byte(it.ResultData), &c.ResultData); err != nil {
			return entities.Calculation{}, fmt.Errorf("unmarshal result data: %w", err)
		}
	}
	return c, nil
}
