package handler

import (
	"net/http"
	"testing"

	mockUsecase "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetupHandler_SaveCredentials(t *testing.T) {
	setupUC := mockUsecase.NewMockSetupUsecase(t)
	h := NewSetupHandler(setupUC)

	setupUC.EXPECT().
		SaveCredentials(mock.Anything, mock.MatchedBy(func(creds *usecase.Credentials) bool {
			return creds.PostgresHost == "db.internal" && creds.PostgresPort == 0
		})).
		Return("/etc/atelier/.env", nil)

	body := `{"auth_provider_url":"https://auth.example.com","auth_provider_anon_key":"anon",` +
		`"postgres_host":"db.internal","postgres_user":"atelier","postgres_database":"atelier"}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/setup/credentials", body)

	require.NoError(t, h.SaveCredentials(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SaveCredentialsResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, "/etc/atelier/.env", resp.EnvFile)
	assert.True(t, resp.RestartRequired)
}

func TestSetupHandler_SaveCredentialsValidation(t *testing.T) {
	h := NewSetupHandler(mockUsecase.NewMockSetupUsecase(t))

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/setup/credentials", `{"auth_provider_url":"not a url"}`)

	require.NoError(t, h.SaveCredentials(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"auth_provider_url"`)
	assert.Contains(t, rec.Body.String(), `"field":"postgres_host"`)
}

func TestSetupHandler_Verify(t *testing.T) {
	tests := []struct {
		name       string
		report     *usecase.VerifyReport
		wantStatus int
	}{
		{
			name: "all healthy",
			report: &usecase.VerifyReport{OK: true, Checks: []*usecase.CheckResult{
				{Name: "database", OK: true},
			}},
			wantStatus: http.StatusOK,
		},
		{
			name: "storage unreachable",
			report: &usecase.VerifyReport{OK: false, Checks: []*usecase.CheckResult{
				{Name: "database", OK: true},
				{Name: "storage", Error: "bucket not found"},
			}},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupUC := mockUsecase.NewMockSetupUsecase(t)
			setupUC.EXPECT().Verify(mock.Anything).Return(tt.report)

			c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/setup/verify", "")

			require.NoError(t, NewSetupHandler(setupUC).Verify(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
