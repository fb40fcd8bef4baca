package repository

import (
	"context"
	"sort"
	"time"

	"house_calculator/internal/domain/entities"
	"house_calculator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultMaterialsTableName = "materials"

// Fixed-width UTC timestamps so created_at sorts as a string.
const materialTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type materialItem struct {
	ID           string  `dynamodbav:"id"`
	Name         string  `dynamodbav:"name"`
	Type         string  `dynamodbav:"type"`
	HouseType    string  `dynamodbav:"house_type,omitempty"`
	PricePerUnit float64 `dynamodbav:"price_per_unit"`
	Unit         string  `dynamodbav:"unit"`
	Description  string  `dynamodbav:"description,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at,omitempty"`
}

// MaterialDynamoRepository persists the material catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small, so filtering by house type is a filtered scan.
// Scan order is undefined; List returns materials in insertion order
// (created_at, then id) so duplicate names always price the same way.

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client, tableName string) *MaterialDynamoRepository {
	if tableName == "" {
		tableName = DefaultMaterialsTableName
	}
	return &MaterialDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	it := toMaterialItem(m)
	it.CreatedAt = time.Now().UTC().Format(materialTimeLayout)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Material{}, err
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
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) List(ctx context.Context, houseType *entities.HouseType) ([]entities.Material, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if houseType != nil {
		in.FilterExpression = aws.String("#house_type = :ht")
		in.ExpressionAttributeNames = map[string]string{"#house_type": "house_type"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":ht": &types.AttributeValueMemberS{Value: string(*houseType)},
		}
	}

	var scanned []materialItem
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it materialItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			scanned = append(scanned, it)
		}
	}
	sortMaterialItems(scanned)

	items := make([]entities.Material, 0, len(scanned))
	for _, it := range scanned {
		items = append(items, fromMaterialItem(it))
	}
	return items, nil
}

// sortMaterialItems orders items oldest first. Items without created_at
// sort before the rest.
func sortMaterialItems(items []materialItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ID < items[j].ID
	})
}

func (r *MaterialDynamoRepository) Count(ctx context.Context) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})

	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func toMaterialItem(m entities.Material) materialItem {
	it := materialItem{
		ID:           m.ID,
		Name:         m.Name,
		Type:         string(m.Type),
		PricePerUnit: m.PricePerUnit,
		Unit:         m.Unit,
		Description:  m.Description,
	}
	if m.HouseType != nil {
		it.HouseType = string(*m.HouseType)
	}
	return it
}

func fromMaterialItem(it materialItem) entities.Material {
	m := entities.Material{
		ID:           it.ID,
		Name:         it.Name,
		Type:         entities.MaterialType(it.Type),
		PricePerUnit: it.PricePerUnit,
		Unit:         it.Unit,
		Description:  it.Description,
	}
	if it.HouseType != "" {
		ht := entities.HouseType(it.HouseType)
		m.HouseType = &ht
	}
	return m
}
