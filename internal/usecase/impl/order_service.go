package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates an order, capturing the product's current price.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Placing order",
		slog.Int64("userID", input.UserID),
		slog.Int64("productID", input.ProductID),
	)

	var placedOrder *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		orderRepo := repoFactory.NewOrderRepository()

		product, err := productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
			}

			return errors.Wrap(err, "failed to load product for order")
		}

		// Copy the price now; later catalog edits must not rewrite history.
		order := &entity.Order{
			UserID:    input.UserID,
			ProductID: product.ID,
			Price:     product.Price,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		placedOrder = order

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute order transaction",
			slog.Int64("userID", input.UserID),
			slog.Any("error", err),
		)

		return nil, err
	}

	// Publish after commit. A publish failure must not undo the order, so it
	// is logged and swallowed.
	event := &service.OrderPlacedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:   placedOrder.ID,
		UserID:    placedOrder.UserID,
		ProductID: placedOrder.ProductID,
		Price:     placedOrder.Price,
		PlacedAt:  placedOrder.CreatedAt,
	}
	if pubErr := srv.publisher.PublishOrderPlaced(ctx, event); pubErr != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.Int64("orderID", placedOrder.ID),
			slog.Any("error", pubErr),
		)
	}

	srv.log(ctx).Debug("Order placed", slog.Int64("orderID", placedOrder.ID))

	return placedOrder, nil
}

// GetOrder retrieves one order, hiding other users' orders from non-admins.
func (srv *orderService) GetOrder(ctx context.Context, caller *entity.Principal, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	// Someone else's order reads as not found, not forbidden, so order IDs
	// cannot be probed for existence.
	if caller.Role != entity.RoleAdmin && order.UserID != caller.ID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	}

	return order, nil
}

// ListUserOrders retrieves a page of the caller's own orders.
func (srv *orderService) ListUserOrders(ctx context.Context, userID int64, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	offset := (input.Page - 1) * input.Limit

	orders, err := srv.orderRepo.FindByUser(ctx, userID, offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// ListAllOrders retrieves a page of every order matching the input filter.
func (srv *orderService) ListAllOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	offset := (input.Page - 1) * input.Limit
	filter := repository.OrderFilter{UserID: input.UserID, ProductID: input.ProductID}

	orders, err := srv.orderRepo.List(ctx, filter, offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// PickupQR renders a pickup QR code image for an order the caller may see.
func (srv *orderService) PickupQR(ctx context.Context, caller *entity.Principal, orderID int64) ([]byte, error) {
	order, err := srv.GetOrder(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePickupQR(order.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate pickup QR", slog.Int64("orderID", order.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return png, nil
}

// VerifyPickup resolves scanned QR data back to its order at the pickup counter.
func (srv *orderService) VerifyPickup(ctx context.Context, qrData string) (*entity.Order, error) {
	orderID, err := srv.qrcode.ParsePickupQR(qrData)
	if err != nil {
		srv.log(ctx).Warn("Rejected pickup code", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid pickup code")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return order, nil
}
