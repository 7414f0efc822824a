package config

import (
	"strings"
	"testing"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	e, err := load(envFrom(map[string]string{
		"DOCUMENT_ENCRYPTION_KEY": "passphrase",
		"JWT_SECRET":              "secret",
	}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if e.Port != "8080" || e.ClaimsStore != StoreDynamoDB || e.ContentStore != StoreS3 || e.IdentitySource != SourceDynamoDB {
		t.Fatalf("unexpected defaults: %+v", e)
	}
	if e.ClaimsTable != "claims" || e.ClaimCountersTable != "claim_counters" || e.UsersTable != "users" {
		t.Fatalf("unexpected table defaults: %+v", e)
	}
	if e.DevBypassAuth {
		t.Fatalf("dev bypass must default to off")
	}
}

func TestLoad_LocalProfile(t *testing.T) {
	e, err := load(envFrom(map[string]string{
		"DOCUMENT_ENCRYPTION_KEY": "passphrase",
		"DEV_BYPASS_AUTH":         "true",
		"CLAIMS_STORE":            "Bolt",
		"CONTENT_STORE":           "filesystem",
		"IDENTITY_SOURCE":         "file",
		"UPLOADS_DIR":             "/tmp/uploads",
	}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if e.ClaimsStore != StoreBolt || e.ContentStore != StoreFilesystem || e.IdentitySource != SourceFile || e.UploadsDir != "/tmp/uploads" {
		t.Fatalf("unexpected env: %+v", e)
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load(envFrom(map[string]string{
		"CLAIMS_STORE":  "postgres",
		"CONTENT_STORE": "ftp",
	}))
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"DOCUMENT_ENCRYPTION_KEY", "JWT_SECRET", "CLAIMS_STORE", "CONTENT_STORE"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in error, got %v", want, err)
		}
	}
}
