package handler

import (
	"net/http"

	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SetupHandler serves the one-time credential bootstrap.
type SetupHandler struct {
	setupUC usecase.SetupUsecase
}

// NewSetupHandler is the constructor for SetupHandler
func NewSetupHandler(setupUC usecase.SetupUsecase) *SetupHandler {
	return &SetupHandler{setupUC: setupUC}
}

// SaveCredentialsResponse reports where the credentials went.
type SaveCredentialsResponse struct {
	EnvFile         string `json:"env_file"`
	RestartRequired bool   `json:"restart_required"`
}

// SaveCredentials writes backend credentials to the env file. They take
// effect on the next start.
func (h *SetupHandler) SaveCredentials(c echo.Context) error {
	var req usecase.Credentials
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid credentials input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	path, err := h.setupUC.SaveCredentials(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &SaveCredentialsResponse{
		EnvFile:         path,
		RestartRequired: true,
	})
}

// Verify probes every backend with the running configuration.
func (h *SetupHandler) Verify(c echo.Context) error {
	report := h.setupUC.Verify(c.Request().Context())

	status := http.StatusOK
	if !report.OK {
		status = http.StatusBadGateway
	}

	return response.Success(c, status, report)
}
