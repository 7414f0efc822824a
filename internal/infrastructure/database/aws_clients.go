package database

import (
	"context"
	"log"

	"contract_monthly_claim/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectDynamoDB creates a DynamoDB client for the claims, counters and
// users tables.
func ConnectDynamoDB(env config.Env) *dynamodb.Client {
	cfg, err := NewAWSConfigFromEnv(context.Background(), env)
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// ConnectS3 creates the S3 client used by the document content store. Custom
// endpoints (LocalStack, MinIO) need path-style addressing.
func ConnectS3(env config.Env) *s3.Client {
	cfg, err := NewAWSConfigFromEnv(context.Background(), env)
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if env.S3Endpoint != "" {
			o.UsePathStyle = true
		}
	})
}

// NewAWSConfigFromEnv builds the shared AWS config.
//
// Supported settings (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566)
func NewAWSConfigFromEnv(ctx context.Context, env config.Env) (aws.Config, error) {
	// Local emulators do not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(env.AWSAccessKeyID, env.AWSSecretAccessKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(env.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	}

	if env.DynamoDBEndpoint != "" || env.S3Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			switch {
			case service == dynamodb.ServiceID && env.DynamoDBEndpoint != "":
				return aws.Endpoint{URL: env.DynamoDBEndpoint, SigningRegion: region, HostnameImmutable: true}, nil
			case service == s3.ServiceID && env.S3Endpoint != "":
				return aws.Endpoint{URL: env.S3Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}
