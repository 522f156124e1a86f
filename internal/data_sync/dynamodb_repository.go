package data_sync

import (
	"context"
	"encoding/json"
	"time"

	"logiflow/internal/localstore"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
)

// DynamoRepository keeps one table per record kind, named <prefix><kind>, with "id" as partition key.
type DynamoRepository struct {
	ddb    *dynamodb.DynamoDB
	prefix string
}

var _ Remote = (*DynamoRepository)(nil)

func NewDynamoRepository(ddb *dynamodb.DynamoDB, tablePrefix string) *DynamoRepository {
	return &DynamoRepository{ddb: ddb, prefix: tablePrefix}
}

func (r *DynamoRepository) table(kind localstore.Kind) *string {
	return aws.String(r.prefix + string(kind))
}

type recordItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	CompanyID string `dynamodbav:"company_id"`
	Type      string `dynamodbav:"type,omitempty"`
	Number    string `dynamodbav:"number,omitempty"`
	Ref       string `dynamodbav:"ref,omitempty"`
	Status    string `dynamodbav:"status,omitempty"`
	Payload   string `dynamodbav:"payload,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func rawOrNil(s string) json.RawMessage {
	if s == "" {
		return nil
	}
	return json.RawMessage(s)
}

func (r *DynamoRepository) put(ctx context.Context, kind localstore.Kind, it recordItem) error {
	av, err := dynamodbattribute.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: r.table(kind),
		Item:      av,
	})
	return err
}

// scan reads every page of the kind's table matching the owner filter.
// An empty userID filters by company only.
func (r *DynamoRepository) scan(ctx context.Context, kind localstore.Kind, userID, companyID string) ([]recordItem, error) {
	filter := "company_id = :company_id"
	values := map[string]*dynamodb.AttributeValue{
		":company_id": {S: aws.String(companyID)},
	}
	if userID != "" {
		filter += " AND user_id = :user_id"
		values[":user_id"] = &dynamodb.AttributeValue{S: aws.String(userID)}
	}

	var items []recordItem
	var decodeErr error
	err := r.ddb.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName:                 r.table(kind),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeValues: values,
	}, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		var batch []recordItem
		if decodeErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &batch); decodeErr != nil {
			return false
		}
		items = append(items, batch...)
		return true
	})
	if err != nil {
		return nil, err
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	return items, nil
}

func (r *DynamoRepository) UpsertUserAction(ctx context.Context, arg localstore.UserAction) error {
	return r.put(ctx, localstore.KindUserActions, recordItem{
		ID:        arg.ID,
		UserID:    arg.UserID,
		CompanyID: arg.CompanyID,
		Type:      arg.ActionType,
		Payload:   string(arg.Details),
		CreatedAt: formatTime(arg.CreatedAt),
	})
}

func (r *DynamoRepository) ListUserActions(ctx context.Context, userID, companyID string) ([]localstore.UserAction, error) {
	items, err := r.scan(ctx, localstore.KindUserActions, userID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]localstore.UserAction, 0, len(items))
	for _, it := range items {
		result = append(result, localstore.UserAction{
			ID:         it.ID,
			UserID:     it.UserID,
			CompanyID:  it.CompanyID,
			ActionType: it.Type,
			Details:    rawOrNil(it.Payload),
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	return result, nil
}

func (r *DynamoRepository) UpsertForm(ctx context.Context, arg localstore.Form) error {
	return r.put(ctx, localstore.KindForms, recordItem{
		ID:        arg.ID,
		UserID:    arg.UserID,
		CompanyID: arg.CompanyID,
		Status:    arg.Status,
		Payload:   string(arg.FormData),
		CreatedAt: formatTime(arg.CreatedAt),
	})
}

func (r *DynamoRepository) ListForms(ctx context.Context, userID, companyID string) ([]localstore.Form, error) {
	items, err := r.scan(ctx, localstore.KindForms, userID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]localstore.Form, 0, len(items))
	for _, it := range items {
		result = append(result, localstore.Form{
			ID:        it.ID,
			UserID:    it.UserID,
			CompanyID: it.CompanyID,
			FormData:  rawOrNil(it.Payload),
			Status:    it.Status,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return result, nil
}

func (r *DynamoRepository) UpsertOrder(ctx context.Context, arg localstore.Order) error {
	return r.put(ctx, localstore.KindOrders, recordItem{
		ID:        arg.ID,
		UserID:    arg.UserID,
		CompanyID: arg.CompanyID,
		Number:    arg.OrderNumber,
		Status:    arg.Status,
		Payload:   string(arg.Details),
		CreatedAt: formatTime(arg.CreatedAt),
	})
}

func (r *DynamoRepository) ListOrders(ctx context.Context, userID, companyID string) ([]localstore.Order, error) {
	items, err := r.scan(ctx, localstore.KindOrders, userID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]localstore.Order, 0, len(items))
	for _, it := range items {
		result = append(result, localstore.Order{
			ID:          it.ID,
			UserID:      it.UserID,
			CompanyID:   it.CompanyID,
			OrderNumber: it.Number,
			Status:      it.Status,
			Details:     rawOrNil(it.Payload),
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	return result, nil
}

// UpsertTracking and UpsertHistory are used by the route flow, not by the sync loop.
func (r *DynamoRepository) UpsertTracking(ctx context.Context, arg localstore.TrackingInfo) error {
	return r.put(ctx, localstore.KindTracking, recordItem{
		ID:        arg.ID,
		UserID:    arg.UserID,
		CompanyID: arg.CompanyID,
		Ref:       arg.OrderID,
		Status:    arg.StatusUpdate,
		Payload:   string(arg.Location),
		CreatedAt: formatTime(arg.Timestamp),
	})
}

func (r *DynamoRepository) ListTracking(ctx context.Context, companyID string) ([]localstore.TrackingInfo, error) {
	items, err := r.scan(ctx, localstore.KindTracking, "", companyID)
	if err != nil {
		return nil, err
	}

	result := make([]localstore.TrackingInfo, 0, len(items))
	for _, it := range items {
		result = append(result, localstore.TrackingInfo{
			ID:           it.ID,
			OrderID:      it.Ref,
			UserID:       it.UserID,
			CompanyID:    it.CompanyID,
			Location:     rawOrNil(it.Payload),
			StatusUpdate: it.Status,
			Timestamp:    parseTime(it.CreatedAt),
		})
	}
	return result, nil
}

func (r *DynamoRepository) UpsertHistory(ctx context.Context, arg localstore.HistoryEvent) error {
	return r.put(ctx, localstore.KindHistory, recordItem{
		ID:        arg.ID,
		UserID:    arg.UserID,
		CompanyID: arg.CompanyID,
		Type:      arg.EventType,
		Payload:   string(arg.EventDetails),
		CreatedAt: formatTime(arg.CreatedAt),
	})
}

func (r *DynamoRepository) ListHistory(ctx context.Context, userID, companyID string) ([]localstore.HistoryEvent, error) {
	items, err := r.scan(ctx, localstore.KindHistory, userID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]localstore.HistoryEvent, 0, len(items))
	for _, it := range items {
		result = append(result, localstore.HistoryEvent{
			ID:           it.ID,
			UserID:       it.UserID,
			CompanyID:    it.CompanyID,
			EventType:    it.Type,
			EventDetails: rawOrNil(it.Payload),
			CreatedAt:    parseTime(it.CreatedAt),
		})
	}
	return result, nil
}
