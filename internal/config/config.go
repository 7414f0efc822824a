// Package config loads configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

const (
	StoreDynamoDB   = "dynamodb"
	StoreBolt       = "bolt"
	StoreS3         = "s3"
	StoreFilesystem = "filesystem"
	SourceDynamoDB  = "dynamodb"
	SourceFile      = "file"
)

// Env holds the configuration values for the application.
type Env struct {
	Port string

	ClaimsStore        string
	BoltPath           string
	ClaimsTable        string
	ClaimCountersTable string
	UsersTable         string

	ContentStore    string
	DocumentsBucket string
	UploadsDir      string

	DocumentEncryptionKey string
	JWTSecret             string
	DevBypassAuth         bool

	IdentitySource   string
	IdentitySeedFile string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	S3Endpoint         string
}

// MustLoad reads the environment and stops the process on invalid settings.
func MustLoad() Env {
	env, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return env
}

func Load() (Env, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Env, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	e := Env{
		Port:                  get("PORT", "8080"),
		ClaimsStore:           strings.ToLower(get("CLAIMS_STORE", StoreDynamoDB)),
		BoltPath:              get("BOLT_PATH", "claims.db"),
		ClaimsTable:           get("CLAIMS_TABLE", "claims"),
		ClaimCountersTable:    get("CLAIM_COUNTERS_TABLE", "claim_counters"),
		UsersTable:            get("USERS_TABLE", "users"),
		ContentStore:          strings.ToLower(get("CONTENT_STORE", StoreS3)),
		DocumentsBucket:       get("DOCUMENTS_BUCKET", "claim-documents"),
		UploadsDir:            get("UPLOADS_DIR", "uploads"),
		DocumentEncryptionKey: getenv("DOCUMENT_ENCRYPTION_KEY"),
		JWTSecret:             getenv("JWT_SECRET"),
		DevBypassAuth:         get("DEV_BYPASS_AUTH", "") == "true",
		IdentitySource:        strings.ToLower(get("IDENTITY_SOURCE", SourceDynamoDB)),
		IdentitySeedFile:      get("IDENTITY_SEED_FILE", "identity.yaml"),
		AWSRegion:             get("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:        get("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:    get("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:      get("DYNAMODB_ENDPOINT", ""),
		S3Endpoint:            get("S3_ENDPOINT", ""),
	}
	return e, e.validate()
}

func (e Env) validate() error {
	var errs []error
	if strings.TrimSpace(e.DocumentEncryptionKey) == "" {
		errs = append(errs, errors.New("missing env DOCUMENT_ENCRYPTION_KEY"))
	}
	if e.JWTSecret == "" && !e.DevBypassAuth {
		errs = append(errs, errors.New("missing env JWT_SECRET (or set DEV_BYPASS_AUTH=true)"))
	}
	if e.ClaimsStore != StoreDynamoDB && e.ClaimsStore != StoreBolt {
		errs = append(errs, fmt.Errorf("CLAIMS_STORE must be %q or %q, got %q", StoreDynamoDB, StoreBolt, e.ClaimsStore))
	}
	if e.ContentStore != StoreS3 && e.ContentStore != StoreFilesystem {
		errs = append(errs, fmt.Errorf("CONTENT_STORE must be %q or %q, got %q", StoreS3, StoreFilesystem, e.ContentStore))
	}
	if e.IdentitySource != SourceDynamoDB && e.IdentitySource != SourceFile {
		errs = append(errs, fmt.Errorf("IDENTITY_SOURCE must be %q or %q, got %q", SourceDynamoDB, SourceFile, e.IdentitySource))
	}
	return errors.Join(errs...)
}
