package repository

import (
	"context"
	"fmt"
	"log"

	"contract_monthly_claim/internal/domain/entities"
	"contract_monthly_claim/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userProfileItem struct {
	Username  string `dynamodbav:"username"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`

	// hourly_rate is read separately: the identity service may store it as
	// a number or as a string.
	HourlyRate string `dynamodbav:"-"`
}

// UserProfileDynamoRepository reads submitter profiles from the identity
// service's users table. It never writes.
//
// Table requirements:
//   - PK: username (string)
type UserProfileDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IIdentityDirectory = (*UserProfileDynamoRepository)(nil)

func NewUserProfileDynamoRepository(ddb DynamoDBAPI, tableName string) *UserProfileDynamoRepository {
	return &UserProfileDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserProfileDynamoRepository) GetProfile(ctx context.Context, username string) (entities.SubmitterProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		log.Printf("[identity][repository] get profile failed username=%s err=%v", username, err)
		return entities.SubmitterProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.SubmitterProfile{}, nil
	}

	var it userProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SubmitterProfile{}, err
	}
	switch v := out.Item["hourly_rate"].(type) {
	case *types.AttributeValueMemberN:
		it.HourlyRate = v.Value
	case *types.AttributeValueMemberS:
		it.HourlyRate = v.Value
	}

	rate, err := parseDecimal("hourly_rate", it.HourlyRate)
	if err != nil {
		log.Printf("[identity][repository] corrupt profile username=%s err=%v", username, err)
		return entities.SubmitterProfile{}, fmt.Errorf("profile %s: %w", username, err)
	}

	return entities.SubmitterProfile{
		Username:   it.Username,
		FirstName:  it.FirstName,
		LastName:   it.LastName,
		HourlyRate: rate,
	}, nil
}
