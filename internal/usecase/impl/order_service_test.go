package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest(
	productRepo *mockProductRepository,
	orderRepo *mockOrderRepository,
	publisher *mockEventPublisher,
	qrService *mockQRCodeService,
) usecase.OrderUsecase {
	factory := &stubRepoFactory{products: productRepo, orders: orderRepo}

	return NewOrderService(OrderServiceParams{
		TxManager: &stubTxManager{factory: factory},
		OrderRepo: orderRepo,
		Publisher: publisher,
		QRCode:    qrService,
		Logger:    newDiscardLogger(),
	})
}

func customer(id int64) *entity.Principal {
	return &entity.Principal{ID: id, Role: entity.RoleCustomer}
}

func admin() *entity.Principal {
	return &entity.Principal{ID: 1, Role: entity.RoleAdmin}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	productRepo := new(mockProductRepository)
	orderRepo := new(mockOrderRepository)
	publisher := new(mockEventPublisher)
	svc := newOrderServiceForTest(productRepo, orderRepo, publisher, new(mockQRCodeService))

	ctx := context.Background()

	productRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Product{ID: 3, Name: "Espresso", Price: 3.5}, nil)
	orderRepo.On("Create", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.UserID == 7 && o.ProductID == 3 && o.Price == 3.5
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Order).ID = 100
	}).Return(nil)
	publisher.On("PublishOrderPlaced", ctx, mock.MatchedBy(func(e *service.OrderPlacedEvent) bool {
		return e.OrderID == 100 && e.ProductID == 3 && e.Price == 3.5
	})).Return(nil)

	order, err := svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: 7, ProductID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.ID)
	assert.Equal(t, 3.5, order.Price)
	publisher.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	productRepo := new(mockProductRepository)
	orderRepo := new(mockOrderRepository)
	publisher := new(mockEventPublisher)
	svc := newOrderServiceForTest(productRepo, orderRepo, publisher, new(mockQRCodeService))

	ctx := context.Background()
	productRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrProductNotFound)

	order, err := svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: 7, ProductID: 404})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_PublishFailureDoesNotUndoOrder(t *testing.T) {
	productRepo := new(mockProductRepository)
	orderRepo := new(mockOrderRepository)
	publisher := new(mockEventPublisher)
	svc := newOrderServiceForTest(productRepo, orderRepo, publisher, new(mockQRCodeService))

	ctx := context.Background()

	productRepo.On("FindByID", ctx, int64(3)).
		Return(&entity.Product{ID: 3, Price: 3.5}, nil)
	orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	publisher.On("PublishOrderPlaced", ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{UserID: 7, ProductID: 3})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()
	stored := &entity.Order{ID: 100, UserID: 7, ProductID: 3, Price: 3.5}

	t.Run("owner sees own order", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), new(mockQRCodeService))

		orderRepo.On("FindByID", ctx, int64(100)).Return(stored, nil)

		order, err := svc.GetOrder(ctx, customer(7), 100)
		require.NoError(t, err)
		assert.Equal(t, stored, order)
	})

	t.Run("admin sees any order", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), new(mockQRCodeService))

		orderRepo.On("FindByID", ctx, int64(100)).Return(stored, nil)

		order, err := svc.GetOrder(ctx, admin(), 100)
		require.NoError(t, err)
		assert.Equal(t, stored, order)
	})

	t.Run("stranger gets not found, not forbidden", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), new(mockQRCodeService))

		orderRepo.On("FindByID", ctx, int64(100)).Return(stored, nil)

		order, err := svc.GetOrder(ctx, customer(8), 100)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("missing order", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), new(mockQRCodeService))

		orderRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrOrderNotFound)

		order, err := svc.GetOrder(ctx, customer(7), 404)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_ListUserOrders_Pagination(t *testing.T) {
	orderRepo := new(mockOrderRepository)
	svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), new(mockQRCodeService))

	ctx := context.Background()
	expected := []*entity.Order{{ID: 1}, {ID: 2}}
	orderRepo.On("FindByUser", ctx, int64(7), 10, 5).Return(expected, nil)

	orders, err := svc.ListUserOrders(ctx, 7, &usecase.ListOrdersInput{Page: 3, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_ListAllOrders_Filtered(t *testing.T) {
	orderRepo := new(mockOrderRepository)
	svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), new(mockQRCodeService))

	ctx := context.Background()
	expected := []*entity.Order{{ID: 3}}
	orderRepo.On("List", ctx, repository.OrderFilter{ProductID: 3}, 0, 10).Return(expected, nil)

	orders, err := svc.ListAllOrders(ctx, &usecase.ListOrdersInput{Page: 1, Limit: 10, ProductID: 3})
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrderService_VerifyPickup(t *testing.T) {
	ctx := context.Background()
	stored := &entity.Order{ID: 100, UserID: 7, ProductID: 3, Price: 3.5}

	t.Run("scanned code resolves to its order", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		qrService := new(mockQRCodeService)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), qrService)

		qrService.On("ParsePickupQR", `{"order_id":100,"type":"pickup"}`).Return(int64(100), nil)
		orderRepo.On("FindByID", ctx, int64(100)).Return(stored, nil)

		order, err := svc.VerifyPickup(ctx, `{"order_id":100,"type":"pickup"}`)
		require.NoError(t, err)
		assert.Equal(t, stored, order)
	})

	t.Run("garbage payload", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		qrService := new(mockQRCodeService)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), qrService)

		qrService.On("ParsePickupQR", "not-json").Return(int64(0), errors.New("failed to unmarshal QR code data"))

		order, err := svc.VerifyPickup(ctx, "not-json")
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("code for a deleted order", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		qrService := new(mockQRCodeService)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), qrService)

		qrService.On("ParsePickupQR", `{"order_id":404,"type":"pickup"}`).Return(int64(404), nil)
		orderRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrOrderNotFound)

		order, err := svc.VerifyPickup(ctx, `{"order_id":404,"type":"pickup"}`)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_PickupQR(t *testing.T) {
	ctx := context.Background()
	stored := &entity.Order{ID: 100, UserID: 7}

	t.Run("owner gets a png", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		qrService := new(mockQRCodeService)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), qrService)

		orderRepo.On("FindByID", ctx, int64(100)).Return(stored, nil)
		qrService.On("GeneratePickupQR", int64(100)).Return([]byte{0x89, 0x50}, nil)

		png, err := svc.PickupQR(ctx, customer(7), 100)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("stranger cannot fetch the code", func(t *testing.T) {
		orderRepo := new(mockOrderRepository)
		qrService := new(mockQRCodeService)
		svc := newOrderServiceForTest(new(mockProductRepository), orderRepo, new(mockEventPublisher), qrService)

		orderRepo.On("FindByID", ctx, int64(100)).Return(stored, nil)

		png, err := svc.PickupQR(ctx, customer(8), 100)
		assert.Nil(t, png)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
		qrService.AssertNotCalled(t, "GeneratePickupQR", mock.Anything)
	})
}
