package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- repository mocks ---

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, error) {
	args := m.Called(ctx, offset, limit)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCredentialRepository struct {
	mock.Mock
}

func (m *mockCredentialRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Credential, error) {
	args := m.Called(ctx, userID)
	if credential := args.Get(0); credential != nil {
		return credential.(*entity.Credential), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	return m.Called(ctx, credential).Error(0)
}

func (m *mockCredentialRepository) Update(ctx context.Context, credential *entity.Credential) error {
	return m.Called(ctx, credential).Error(0)
}

func (m *mockCredentialRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product := args.Get(0); product != nil {
		return product.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context, offset, limit int, availableOnly bool) ([]*entity.Product, error) {
	args := m.Called(ctx, offset, limit, availableOnly)
	if products := args.Get(0); products != nil {
		return products.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindByUser(ctx context.Context, userID int64, offset, limit int) ([]*entity.Order, error) {
	args := m.Called(ctx, userID, offset, limit)
	if orders := args.Get(0); orders != nil {
		return orders.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) List(ctx context.Context, filter repository.OrderFilter, offset, limit int) ([]*entity.Order, error) {
	args := m.Called(ctx, filter, offset, limit)
	if orders := args.Get(0); orders != nil {
		return orders.([]*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) FindInRange(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	args := m.Called(ctx, start, end)
	if orders := args.Get(0); orders != nil {
		return orders.([]entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

// --- transaction fakes ---

// stubRepoFactory hands back the repositories it was built with, standing in
// for transaction-bound instances.
type stubRepoFactory struct {
	users       repository.UserRepository
	credentials repository.CredentialRepository
	products    repository.ProductRepository
	orders      repository.OrderRepository
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository { return f.users }

func (f *stubRepoFactory) NewCredentialRepository() repository.CredentialRepository {
	return f.credentials
}

func (f *stubRepoFactory) NewProductRepository() repository.ProductRepository { return f.products }

func (f *stubRepoFactory) NewOrderRepository() repository.OrderRepository { return f.orders }

// stubTxManager executes the callback directly, without a real transaction.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// --- service mocks ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID int64, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventPublisher) Close() error {
	return m.Called().Error(0)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GeneratePickupQR(orderID int64) ([]byte, error) {
	args := m.Called(orderID)
	if png := args.Get(0); png != nil {
		return png.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockQRCodeService) ParsePickupQR(qrData string) (int64, error) {
	args := m.Called(qrData)

	return args.Get(0).(int64), args.Error(1)
}
