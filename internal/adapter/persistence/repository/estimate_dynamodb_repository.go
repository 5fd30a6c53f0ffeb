package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const estimatesProjectIDIndex = "project_id-index"

// estimateItem is the DynamoDB shape of an Estimate. Details and calculation
// are stored as JSON documents so decimals keep their exact representation.
type estimateItem struct {
	ID             string `dynamodbav:"id"`
	ProjectID      string `dynamodbav:"project_id"`
	ClientName     string `dynamodbav:"client_name,omitempty"`
	ServiceType    string `dynamodbav:"service_type"`
	ServiceDetails string `dynamodbav:"service_details"`
	Calculation    string `dynamodbav:"calculation"`
	Price          string `dynamodbav:"price"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id, projection ALL)
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, interfaces.ErrConditionFailed
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}
	return decodeEstimate(out.Item)
}

func (r *EstimateDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}
	return decodeEstimate(out.Items[0])
}

func (r *EstimateDynamoRepository) UpdateStatusByID(ctx context.Context, id string, from, to entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateCalculation(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	details, err := json.Marshal(e.ServiceDetails)
	if err != nil {
		return entities.Estimate{}, err
	}
	calc, err := json.Marshal(e.Calculation)
	if err != nil {
		return entities.Estimate{}, err
	}

	return r.update(ctx, e.ID, entities.EstimateStatusPendente, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #service_details = :details, #calculation = :calc, #price = :price, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":details":    &types.AttributeValueMemberS{Value: string(details)},
			":calc":       &types.AttributeValueMemberS{Value: string(calc)},
			":price":      &types.AttributeValueMemberS{Value: floatToString(e.Price)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#service_details": "service_details",
			"#calculation":     "calculation",
			"#price":           "price",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

// update applies an update only when the item exists with status expected.
// A missing item yields a zero Estimate; a status mismatch yields ErrConditionFailed.
func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.EstimateStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	values[":expected"] = &types.AttributeValueMemberS{Value: string(expected)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Estimate{}, nil
			}
			return entities.Estimate{}, interfaces.ErrConditionFailed
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	return decodeEstimate(out.Attributes)
}

func decodeEstimate(av map[string]types.AttributeValue) (entities.Estimate, error) {
	var it estimateItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	details, err := json.Marshal(e.ServiceDetails)
	if err != nil {
		return estimateItem{}, fmt.Errorf("encode service details: %w", err)
	}
	calc, err := json.Marshal(e.Calculation)
	if err != nil {
		return estimateItem{}, fmt.Errorf("encode calculation: %w", err)
	}
	return estimateItem{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		ClientName:     e.ClientName,
		ServiceType:    string(e.ServiceType),
		ServiceDetails: string(details),
		Calculation:    string(calc),
		Price:          floatToString(e.Price),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	createdAt, err := parseTimestamp(it.CreatedAt)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("decode created_at of %s: %w", it.ID, err)
	}
	updatedAt, err := parseTimestamp(it.UpdatedAt)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("decode updated_at of %s: %w", it.ID, err)
	}
	price, err := parseNumber(it.Price)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("decode price of %s: %w", it.ID, err)
	}

	e := entities.Estimate{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		ClientName:  it.ClientName,
		ServiceType: entities.ServiceType(it.ServiceType),
		Price:       price,
		Status:      entities.EstimateStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if it.ServiceDetails != "" {
		if err := json.Unmarshal([]byte(it.ServiceDetails), &e.ServiceDetails); err != nil {
			return entities.Estimate{}, fmt.Errorf("decode service details of %s: %w", it.ID, err)
		}
	}
	if it.Calculation != "" {
		if err := json.Unmarshal([]byte(it.Calculation), &e.Calculation); err != nil {
			return entities.Estimate{}, fmt.Errorf("decode calculation of %s: %w", it.ID, err)
		}
	}
	return e, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseTimestamp and parseNumber treat a missing attribute as the zero value.
func parseTimestamp(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, v)
}

func parseNumber(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}
