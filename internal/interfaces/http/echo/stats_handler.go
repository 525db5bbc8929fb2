package echo

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/email-blast/internal/application/mailing"
)

type StatsHandler struct {
	useCase app.GetEmailStats
}

func NewStatsHandler(useCase app.GetEmailStats) *StatsHandler {
	return &StatsHandler{useCase: useCase}
}

func (h *StatsHandler) GetEmailStats(c echo.Context) error {
	out, err := h.useCase.Execute(c.Request().Context())
	if err != nil {
		slog.Error("get email stats failed", "error", err)
		return respondError(c, http.StatusInternalServerError, "internal_error", "failed to get email stats")
	}

	return c.JSON(http.StatusOK, out)
}
