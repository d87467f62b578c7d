package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/report"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		orderRepo: params.OrderRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SalesReport resolves the requested period and aggregates the orders inside it.
func (srv *reportService) SalesReport(ctx context.Context, input *usecase.SalesReportInput) (*report.Summary, error) {
	kind, err := report.ParseKind(input.Period)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid report period %q", input.Period)
	}

	window, err := report.Resolve(kind, input.Anchor, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve report window")
	}

	orders, err := srv.orderRepo.FindInRange(ctx, window.Start, window.End)
	if err != nil {
		srv.log(ctx).Error("Failed to load orders for report", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load orders for report")
	}

	summary := report.Summarize(window, orders)

	srv.log(ctx).Debug("Sales report generated",
		slog.String("period", string(kind)),
		slog.Int64("orderCount", summary.OrderCount),
	)

	return &summary, nil
}
