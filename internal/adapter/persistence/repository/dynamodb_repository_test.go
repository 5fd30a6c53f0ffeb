package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"orcamentos_arq/internal/domain/entities"
	"orcamentos_arq/internal/domain/pricing"
	"orcamentos_arq/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamo struct {
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func sampleEstimate(t *testing.T) entities.Estimate {
	t.Helper()
	calc, err := pricing.NewCalculator(pricing.DefaultTables())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	details := entities.ServiceDetails{
		EnvironmentsConfig: []entities.EnvironmentConfig{
			{Type: entities.EnvironmentTypeMedium, Size: entities.EnvironmentSizeMedium},
		},
		ServiceModality:    entities.ModalityInPerson,
		PaymentType:        entities.PaymentTypeCash,
		DiscountPercentage: 5,
	}
	c, err := calc.Calculate(entities.ServiceTypeDecoration, details)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Estimate{
		ID:             "est-1",
		ProjectID:      "proj-1",
		ClientName:     "Ana",
		ServiceType:    entities.ServiceTypeDecoration,
		ServiceDetails: details,
		Calculation:    c,
		Price:          c.PriceWithDiscount.Round(2).InexactFloat64(),
		Status:         entities.EstimateStatusPendente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func marshalEstimate(t *testing.T, e entities.Estimate) map[string]types.AttributeValue {
	t.Helper()
	it, err := toEstimateItem(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return av
}

func TestEstimateItem_KeepsCalculationPrecision(t *testing.T) {
	e := sampleEstimate(t)

	got, err := decodeEstimate(marshalEstimate(t, e))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProjectID != "proj-1" || got.ServiceType != entities.ServiceTypeDecoration || got.Price != e.Price {
		t.Fatalf("unexpected estimate: %+v", got)
	}
	if !got.Calculation.PriceWithDiscount.Equal(e.Calculation.PriceWithDiscount) {
		t.Fatalf("expected %s, got %s", e.Calculation.PriceWithDiscount, got.Calculation.PriceWithDiscount)
	}
	if len(got.Calculation.EnvironmentDetails) != 1 || got.ServiceDetails.EnvironmentsConfig[0].Size != entities.EnvironmentSizeMedium {
		t.Fatalf("nested documents lost: %+v", got)
	}
	if !got.CreatedAt.Equal(e.CreatedAt) {
		t.Fatalf("expected %v, got %v", e.CreatedAt, got.CreatedAt)
	}
}

func TestEstimateDynamoRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var put *dynamodb.PutItemInput
		repo := NewEstimateDynamoRepository(&fakeDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			put = in
			return &dynamodb.PutItemOutput{}, nil
		}}, "estimates")

		if _, err := repo.Create(context.Background(), sampleEstimate(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(put.TableName) != "estimates" {
			t.Fatalf("unexpected table %q", aws.ToString(put.TableName))
		}
		if v, ok := put.Item["project_id"].(*types.AttributeValueMemberS); !ok || v.Value != "proj-1" {
			t.Fatalf("project_id not stored: %+v", put.Item["project_id"])
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}, "estimates")

		_, err := repo.Create(context.Background(), sampleEstimate(t))
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})
}

func TestEstimateDynamoRepository_Lookups(t *testing.T) {
	t.Run("GetByID missing", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}, "estimates")

		e, err := repo.GetByID(context.Background(), "nope")
		if err != nil || e.ID != "" {
			t.Fatalf("expected zero estimate, got %+v %v", e, err)
		}
	})

	t.Run("GetByProjectID uses the index", func(t *testing.T) {
		item := marshalEstimate(t, sampleEstimate(t))
		repo := NewEstimateDynamoRepository(&fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) != estimatesProjectIDIndex {
				t.Fatalf("unexpected index %q", aws.ToString(in.IndexName))
			}
			if v := in.ExpressionAttributeValues[":pid"].(*types.AttributeValueMemberS); v.Value != "proj-1" {
				t.Fatalf("unexpected project id %q", v.Value)
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
		}}, "estimates")

		e, err := repo.GetByProjectID(context.Background(), "proj-1")
		if err != nil || e.ID != "est-1" {
			t.Fatalf("unexpected result: %+v %v", e, err)
		}
	})
}

func TestEstimateDynamoRepository_UpdateStatusByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		approved := sampleEstimate(t)
		approved.Status = entities.EstimateStatusAprovado

		repo := NewEstimateDynamoRepository(&fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS); v.Value != "pendente" {
				t.Fatalf("unexpected expected status %q", v.Value)
			}
			if v := in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS); v.Value != "aprovado" {
				t.Fatalf("unexpected new status %q", v.Value)
			}
			return &dynamodb.UpdateItemOutput{Attributes: marshalEstimate(t, approved)}, nil
		}}, "estimates")

		e, err := repo.UpdateStatusByID(context.Background(), "est-1", entities.EstimateStatusPendente, entities.EstimateStatusAprovado)
		if err != nil || e.Status != entities.EstimateStatusAprovado {
			t.Fatalf("unexpected result: %+v %v", e, err)
		}
	})

	t.Run("status changed meanwhile", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: marshalEstimate(t, sampleEstimate(t))}
		}}, "estimates")

		_, err := repo.UpdateStatusByID(context.Background(), "est-1", entities.EstimateStatusPendente, entities.EstimateStatusAprovado)
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		repo := NewEstimateDynamoRepository(&fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}, "estimates")

		e, err := repo.UpdateStatusByID(context.Background(), "est-1", entities.EstimateStatusPendente, entities.EstimateStatusAprovado)
		if err != nil || e.ID != "" {
			t.Fatalf("expected zero estimate, got %+v %v", e, err)
		}
	})
}

func TestEstimateDynamoRepository_UpdateCalculation(t *testing.T) {
	e := sampleEstimate(t)
	repo := NewEstimateDynamoRepository(&fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS); v.Value != "pendente" {
			t.Fatalf("recalculation must require pendente, got %q", v.Value)
		}
		if _, ok := in.ExpressionAttributeValues[":calc"]; !ok {
			t.Fatalf("calculation not updated")
		}
		return &dynamodb.UpdateItemOutput{Attributes: marshalEstimate(t, e)}, nil
	}}, "estimates")

	got, err := repo.UpdateCalculation(context.Background(), e)
	if err != nil || got.ID != "est-1" {
		t.Fatalf("unexpected result: %+v %v", got, err)
	}
}

func TestBillingPaymentDynamoRepository_ListByEstimateID(t *testing.T) {
	page := func(id string) map[string]types.AttributeValue {
		av, err := attributevalue.MarshalMap(toBillingPaymentItem(entities.BillingPayment{
			ID:          id,
			EstimateID:  "est-1",
			Amount:      1350.5,
			PaymentType: entities.PaymentTypeCash,
			Date:        time.Now().UTC(),
			Status:      entities.PaymentStatusAprovado,
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return av
	}

	calls := 0
	repo := NewBillingPaymentDynamoRepository(&fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		calls++
		if calls == 1 {
			if in.ExclusiveStartKey != nil {
				t.Fatalf("first page must not have a start key")
			}
			return &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{page("p1")},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "p1"}},
			}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{page("p2")}}, nil
	}}, "payments")

	list, err := repo.ListByEstimateID(context.Background(), "est-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 || len(list) != 2 || list[1].ID != "p2" {
		t.Fatalf("unexpected result after %d calls: %+v", calls, list)
	}
	if list[0].Amount != 1350.5 || list[0].PaymentType != entities.PaymentTypeCash {
		t.Fatalf("unexpected payment: %+v", list[0])
	}
}

func TestBillingPaymentDynamoRepository_CreateDuplicate(t *testing.T) {
	repo := NewBillingPaymentDynamoRepository(&fakeDynamo{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
		return nil, &types.ConditionalCheckFailedException{}
	}}, "payments")

	_, err := repo.Create(context.Background(), entities.BillingPayment{ID: "p1", EstimateID: "est-1"})
	if !errors.Is(err, interfaces.ErrConditionFailed) {
		t.Fatalf("expected ErrConditionFailed, got %v", err)
	}
}

func TestEstimateItem_CorruptAttributes(t *testing.T) {
	cases := map[string]string{
		"created_at": "yesterday",
		"updated_at": "2024-13-45",
		"price":      "1.500,00",
	}
	for attr, value := range cases {
		t.Run(attr, func(t *testing.T) {
			item := marshalEstimate(t, sampleEstimate(t))
			item[attr] = &types.AttributeValueMemberS{Value: value}

			_, err := decodeEstimate(item)
			if err == nil {
				t.Fatalf("expected decode error for corrupt %s", attr)
			}
			if !strings.Contains(err.Error(), "decode "+attr+" of est-1") {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestBillingPaymentDynamoRepository_CorruptItem(t *testing.T) {
	item := func(amount, date string) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			"id":          &types.AttributeValueMemberS{Value: "p1"},
			"estimate_id": &types.AttributeValueMemberS{Value: "est-1"},
			"amount":      &types.AttributeValueMemberS{Value: amount},
			"date":        &types.AttributeValueMemberS{Value: date},
			"status":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusAprovado)},
		}
	}

	t.Run("GetByID bad amount", func(t *testing.T) {
		repo := NewBillingPaymentDynamoRepository(&fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item("abc", "2024-05-01T10:00:00Z")}, nil
		}}, "payments")

		_, err := repo.GetByID(context.Background(), "p1")
		if err == nil || !strings.Contains(err.Error(), "decode amount of payment p1") {
			t.Fatalf("expected amount decode error, got %v", err)
		}
	})

	t.Run("ListByEstimateID bad date", func(t *testing.T) {
		repo := NewBillingPaymentDynamoRepository(&fakeDynamo{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item("10", "not-a-date")}}, nil
		}}, "payments")

		list, err := repo.ListByEstimateID(context.Background(), "est-1")
		if err == nil || list != nil {
			t.Fatalf("expected date decode error, got %+v %v", list, err)
		}
		if !strings.Contains(err.Error(), "decode date of payment p1") {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
