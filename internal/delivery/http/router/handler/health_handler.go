package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/delivery/http/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReadyCheck is the public view of one dependency check. Failure details stay
// in the server log; the full report is only served behind the setup token.
type ReadyCheck struct {
	Name string `json:"name"`
	OK   bool   `json:"ok"`
}

// ReadyResponse is the body of /_internal/ready.
type ReadyResponse struct {
	OK     bool          `json:"ok"`
	Checks []*ReadyCheck `json:"checks"`
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	setup  usecase.SetupUsecase
	logger *slog.Logger
}

// NewHealthHandler creates the probe handler. Readiness reuses the setup
// verification checks.
func NewHealthHandler(setup usecase.SetupUsecase, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{setup: setup, logger: logger}
}

// Health reports that the process is serving.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready probes the auth provider, database and bucket.
func (h *HealthHandler) Ready(c echo.Context) error {
	report := h.setup.Verify(c.Request().Context())
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	body := &ReadyResponse{OK: report.OK, Checks: make([]*ReadyCheck, 0, len(report.Checks))}
	for _, check := range report.Checks {
		body.Checks = append(body.Checks, &ReadyCheck{Name: check.Name, OK: check.OK})
		if !check.OK {
			logger.Warn("Readiness check failed",
				slog.String("check", check.Name),
				slog.String("error", check.Error),
			)
		}
	}

	status := http.StatusOK
	if !report.OK {
		status = http.StatusServiceUnavailable
	}

	return response.Success(c, status, body)
}
