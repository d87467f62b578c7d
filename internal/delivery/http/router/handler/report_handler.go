package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// anchorDateLayout is the accepted format of the optional date parameter.
const anchorDateLayout = "2006-01-02"

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for reporting handlers.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler.
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// SalesReport aggregates orders over the requested period. Admin only,
// enforced by the router. An optional date parameter pins the window to a
// specific day instead of now.
func (h *ReportHandler) SalesReport(c echo.Context) error {
	input := &usecase.SalesReportInput{Period: c.QueryParam("period")}

	if raw := c.QueryParam("date"); raw != "" {
		anchor, err := time.Parse(anchorDateLayout, raw)
		if err != nil {
			return response.BadRequest(c, domainerrors.ErrInvalidDate.ErrorCode(), domainerrors.ErrInvalidDate.Message())
		}
		input.Anchor = &anchor
	}

	summary, err := h.reportUC.SalesReport(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "Sales report generated successfully")
}
