package usecase

import (
	"context"
	"time"
)

// Credentials are the backend settings written during bootstrap
type Credentials struct {
	AuthProviderURL     string `json:"auth_provider_url" validate:"required,url"`
	AuthProviderAnonKey string `json:"auth_provider_anon_key" validate:"required"`
	PostgresHost        string `json:"postgres_host" validate:"required"`
	PostgresPort        int    `json:"postgres_port" validate:"omitempty,min=1,max=65535"`
	PostgresUser        string `json:"postgres_user" validate:"required"`
	PostgresPassword    string `json:"postgres_password"`
	PostgresDatabase    string `json:"postgres_database" validate:"required"`
	StorageBucketURL    string `json:"storage_bucket_url"`
}

// CheckResult is the outcome of probing one dependency
type CheckResult struct {
	Name    string        `json:"name"`
	OK      bool          `json:"ok"`
	Error   string        `json:"error,omitempty"`
	Latency time.Duration `json:"latency_ns"`
}

// VerifyReport aggregates dependency checks
type VerifyReport struct {
	OK     bool           `json:"ok"`
	Checks []*CheckResult `json:"checks"`
}

// SetupUsecase defines the one-time bootstrap use cases
type SetupUsecase interface {
	// Authorize checks a presented setup token against the configured hash
	Authorize(token string) error

	// SaveCredentials writes the credentials to the env file and returns its path
	SaveCredentials(ctx context.Context, creds *Credentials) (string, error)

	// Verify probes the auth provider, database and bucket
	Verify(ctx context.Context) *VerifyReport
}
