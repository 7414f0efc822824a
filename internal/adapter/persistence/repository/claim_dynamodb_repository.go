package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	submittedByIndex = "submitted_by-index"
	claimCounterName = "claims"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type claimItem struct {
	ID           int64  `dynamodbav:"id"`
	SubmittedBy  string `dynamodbav:"submitted_by"`
	LecturerName string `dynamodbav:"lecturer_name"`
	Programme    string `dynamodbav:"programme"`
	Month        string `dynamodbav:"month"`
	HoursWorked  string `dynamodbav:"hours_worked"`
	HourlyRate   string `dynamodbav:"hourly_rate"`
	Amount       string `dynamodbav:"amount"`
	Status       string `dynamodbav:"status"`
	DocumentRef  string `dynamodbav:"document_ref,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
	Version      int64  `dynamodbav:"version"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ClaimDynamoRepository persists Claim entities in DynamoDB.
//
// Table requirements:
//   - claims: PK id (number), GSI submitted_by-index (PK submitted_by)
//   - claim_counters: PK name (string), numeric attribute value
//
// Ids come from an atomic ADD on the counter row so they stay numeric and
// strictly increasing, like the original identity column.
type ClaimDynamoRepository struct {
	ddb           DynamoDBAPI
	tableName     string
	countersTable string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb DynamoDBAPI, tableName, countersTable string) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:           ddb,
		tableName:     tableName,
		countersTable: countersTable,
	}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return entities.Claim{}, err
	}
	c.ID = id

	av, err := attributevalue.MarshalMap(toClaimItem(c))
	if err != nil {
		return entities.Claim{}, err
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
		log.Printf("[claim][repository] put failed claim_id=%d err=%v", id, err)
		return entities.Claim{}, err
	}
	return fromClaimItem(toClaimItem(c))
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            claimKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}
	return unmarshalClaim(out.Item)
}

func (r *ClaimDynamoRepository) List(ctx context.Context) ([]entities.Claim, error) {
	claims, err := r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	sortByIDAsc(claims)
	return claims, nil
}

func (r *ClaimDynamoRepository) ListByStatus(ctx context.Context, status entities.ClaimStatus) ([]entities.Claim, error) {
	claims, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	sortByIDAsc(claims)
	return claims, nil
}

func (r *ClaimDynamoRepository) ListBySubmitter(ctx context.Context, username string) ([]entities.Claim, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(submittedByIndex),
		KeyConditionExpression: aws.String("#submitted_by = :submitted_by"),
		ExpressionAttributeNames: map[string]string{
			"#submitted_by": "submitted_by",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":submitted_by": &types.AttributeValueMemberS{Value: username},
		},
	})

	claims := []entities.Claim{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			c, err := unmarshalClaim(item)
			if err != nil {
				return nil, err
			}
			claims = append(claims, c)
		}
	}
	sortByIDDesc(claims)
	return claims, nil
}

// Update replaces the whole row guarded by the version the caller read. A
// failed condition is re-read to tell a deleted row from a stale version.
func (r *ClaimDynamoRepository) Update(ctx context.Context, c entities.Claim, expectedVersion int64) (entities.Claim, error) {
	av, err := attributevalue.MarshalMap(toClaimItem(c))
	if err != nil {
		return entities.Claim{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.Claim{}, err
		}
		current, getErr := r.GetByID(ctx, c.ID)
		if getErr != nil {
			return entities.Claim{}, getErr
		}
		if current.ID == 0 {
			return entities.Claim{}, nil
		}
		return entities.Claim{}, interfaces.ErrVersionConflict
	}
	return fromClaimItem(toClaimItem(c))
}

func (r *ClaimDynamoRepository) Delete(ctx context.Context, id int64) (entities.Claim, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          claimKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Claim{}, nil
	}
	return unmarshalClaim(out.Attributes)
}

func (r *ClaimDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: claimCounterName},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("allocate claim id: %w", err)
	}

	var counter struct {
		Value int64 `dynamodbav:"value"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	if counter.Value <= 0 {
		return 0, fmt.Errorf("allocate claim id: unexpected counter value %d", counter.Value)
	}
	return counter.Value, nil
}

func (r *ClaimDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Claim, error) {
	p := dynamodb.NewScanPaginator(r.ddb, in)
	claims := []entities.Claim{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			c, err := unmarshalClaim(item)
			if err != nil {
				return nil, err
			}
			claims = append(claims, c)
		}
	}
	return claims, nil
}

func claimKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func unmarshalClaim(item map[string]types.AttributeValue) (entities.Claim, error) {
	var it claimItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it)
}

func toClaimItem(c entities.Claim) claimItem {
	return claimItem{
		ID:           c.ID,
		SubmittedBy:  c.SubmittedBy,
		LecturerName: c.LecturerName,
		Programme:    c.Programme,
		Month:        c.Month,
		HoursWorked:  fixed(c.HoursWorked),
		HourlyRate:   fixed(c.HourlyRate),
		// Amount keeps the exact hours x rate product, sub-cent digits included.
		Amount:       c.Amount.String(),
		Status:       string(c.Status),
		DocumentRef:  c.DocumentRef,
		Notes:        c.Notes,
		Version:      c.Version,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromClaimItem(it claimItem) (entities.Claim, error) {
	c := entities.Claim{
		ID:           it.ID,
		SubmittedBy:  it.SubmittedBy,
		LecturerName: it.LecturerName,
		Programme:    it.Programme,
		Month:        it.Month,
		Status:       entities.ClaimStatus(it.Status),
		DocumentRef:  it.DocumentRef,
		Notes:        it.Notes,
		Version:      it.Version,
	}

	var err error
	if c.HoursWorked, err = parseDecimal("hours_worked", it.HoursWorked); err != nil {
		return entities.Claim{}, fmt.Errorf("claim %d: %w", it.ID, err)
	}
	if c.HourlyRate, err = parseDecimal("hourly_rate", it.HourlyRate); err != nil {
		return entities.Claim{}, fmt.Errorf("claim %d: %w", it.ID, err)
	}
	if c.Amount, err = parseDecimal("amount", it.Amount); err != nil {
		return entities.Claim{}, fmt.Errorf("claim %d: %w", it.ID, err)
	}
	if c.CreatedAt, err = parseTime("created_at", it.CreatedAt); err != nil {
		return entities.Claim{}, fmt.Errorf("claim %d: %w", it.ID, err)
	}
	if c.UpdatedAt, err = parseTime("updated_at", it.UpdatedAt); err != nil {
		return entities.Claim{}, fmt.Errorf("claim %d: %w", it.ID, err)
	}
	return c, nil
}
