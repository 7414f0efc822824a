package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestUserProfileDynamoRepository_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("numeric rate", func(t *testing.T) {
		ddb := &scriptedDynamo{getItem: map[string]types.AttributeValue{
			"username":    &types.AttributeValueMemberS{Value: "ada"},
			"first_name":  &types.AttributeValueMemberS{Value: "Ada"},
			"last_name":   &types.AttributeValueMemberS{Value: "Lovelace"},
			"hourly_rate": &types.AttributeValueMemberN{Value: "450.5"},
		}}
		r := NewUserProfileDynamoRepository(ddb, "users")

		p, err := r.GetProfile(ctx, "ada")
		require.NoError(t, err)
		require.Equal(t, "Ada Lovelace", p.FullName())
		require.True(t, p.HourlyRate.Equal(decimal.RequireFromString("450.50")))
	})

	t.Run("string rate", func(t *testing.T) {
		ddb := &scriptedDynamo{getItem: map[string]types.AttributeValue{
			"username":    &types.AttributeValueMemberS{Value: "bob"},
			"hourly_rate": &types.AttributeValueMemberS{Value: "300.00"},
		}}
		p, err := NewUserProfileDynamoRepository(ddb, "users").GetProfile(ctx, "bob")
		require.NoError(t, err)
		require.True(t, p.HourlyRate.Equal(decimal.NewFromInt(300)))
	})

	t.Run("corrupt rate is an error", func(t *testing.T) {
		ddb := &scriptedDynamo{getItem: map[string]types.AttributeValue{
			"username":    &types.AttributeValueMemberS{Value: "carol"},
			"hourly_rate": &types.AttributeValueMemberS{Value: "four-fifty"},
		}}
		p, err := NewUserProfileDynamoRepository(ddb, "users").GetProfile(ctx, "carol")
		require.ErrorIs(t, err, ErrCorruptRecord)
		require.Empty(t, p.Username)
	})

	t.Run("missing rate reads as zero", func(t *testing.T) {
		ddb := &scriptedDynamo{getItem: map[string]types.AttributeValue{
			"username": &types.AttributeValueMemberS{Value: "dan"},
		}}
		p, err := NewUserProfileDynamoRepository(ddb, "users").GetProfile(ctx, "dan")
		require.NoError(t, err)
		require.True(t, p.HourlyRate.IsZero())
	})

	t.Run("unknown user", func(t *testing.T) {
		p, err := NewUserProfileDynamoRepository(&scriptedDynamo{}, "users").GetProfile(ctx, "nobody")
		require.NoError(t, err)
		require.Empty(t, p.Username)
	})
}
