package services

import (
	"context"
	"testing"

	"food-delivery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *orderRepoMock) GetByID(ctx context.Context, id int) (*models.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *orderRepoMock) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *orderRepoMock) ListAll(ctx context.Context, page, limit int, status string) ([]models.Order, int, error) {
	args := m.Called(ctx, page, limit, status)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Int(1), args.Error(2)
}

func (m *orderRepoMock) UpdateStatus(ctx context.Context, id int, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *orderRepoMock) FindByIdempotencyKey(ctx context.Context, userID int, key string) (*models.Order, error) {
	args := m.Called(ctx, userID, key)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

type menuReaderMock struct{ mock.Mock }

func (m *menuReaderMock) GetByIDs(ctx context.Context, ids []int) ([]models.MenuItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]models.MenuItem)
	return items, args.Error(1)
}

func menuFixture() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, RestaurantID: 7, Name: "Margherita", Price: 100, IsAvailable: true},
		{ID: 2, RestaurantID: 7, Name: "Caesar Salad", Price: 50, IsAvailable: true},
	}
}

func TestSubmitRecomputesTotalsFromMenuPrices(t *testing.T) {
	orders := &orderRepoMock{}
	menu := &menuReaderMock{}

	menu.On("GetByIDs", mock.Anything, []int{1, 2}).Return(menuFixture(), nil)

	var created *models.Order
	orders.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Order)
	}).Return(nil)

	svc := NewOrderService(orders, menu, nil)
	order, err := svc.Submit(context.Background(), 42, "", models.CreateOrderRequest{
		RestaurantID: 7,
		Items: []models.OrderItemRequest{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
		PaymentMethod: models.PaymentCash,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 250.0, order.Subtotal)
	assert.Equal(t, 40.0, order.DeliveryFee)
	assert.Equal(t, 12.5, order.TaxAmount)
	assert.Equal(t, 302.5, order.TotalAmount)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Margherita", order.Items[0].Name)
	assert.Equal(t, 100.0, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestSubmitRejectsEmptyOrder(t *testing.T) {
	svc := NewOrderService(&orderRepoMock{}, &menuReaderMock{}, nil)

	_, err := svc.Submit(context.Background(), 42, "", models.CreateOrderRequest{
		RestaurantID:  7,
		PaymentMethod: models.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.Submit(context.Background(), 42, "", models.CreateOrderRequest{
		Items:         []models.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		PaymentMethod: models.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestSubmitRejectsInvalidPaymentMethod(t *testing.T) {
	svc := NewOrderService(&orderRepoMock{}, &menuReaderMock{}, nil)

	_, err := svc.Submit(context.Background(), 42, "", models.CreateOrderRequest{
		RestaurantID:  7,
		Items:         []models.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestSubmitIsIdempotentPerKey(t *testing.T) {
	orders := &orderRepoMock{}
	menu := &menuReaderMock{}

	existing := &models.Order{ID: 99, UserID: 42, Status: models.StatusPending}
	orders.On("FindByIdempotencyKey", mock.Anything, 42, "req-token-1").Return(existing, nil)

	svc := NewOrderService(orders, menu, nil)
	order, err := svc.Submit(context.Background(), 42, "", models.CreateOrderRequest{
		RestaurantID:   7,
		Items:          []models.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		PaymentMethod:  models.PaymentCard,
		IdempotencyKey: "req-token-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 99, order.ID)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitRejectsUnavailableItem(t *testing.T) {
	orders := &orderRepoMock{}
	menu := &menuReaderMock{}

	menu.On("GetByIDs", mock.Anything, []int{1}).Return([]models.MenuItem{
		{ID: 1, RestaurantID: 7, Name: "Margherita", Price: 100, IsAvailable: false},
	}, nil)

	svc := NewOrderService(orders, menu, nil)
	_, err := svc.Submit(context.Background(), 42, "", models.CreateOrderRequest{
		RestaurantID:  7,
		Items:         []models.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		PaymentMethod: models.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestSubmitRejectsForeignRestaurantItem(t *testing.T) {
	orders := &orderRepoMock{}
	menu := &menuReaderMock{}

	menu.On("GetByIDs", mock.Anything, []int{1}).Return(menuFixture()[:1], nil)

	svc := NewOrderService(orders, menu, nil)
	_, err := svc.Submit(context.Background(), 42, "", models.CreateOrderRequest{
		RestaurantID:  8,
		Items:         []models.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
		PaymentMethod: models.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrRestaurantMismatch)
}

func TestCancelPendingOrderByOwner(t *testing.T) {
	orders := &orderRepoMock{}

	orders.On("GetByID", mock.Anything, 5).Return(
		&models.Order{ID: 5, UserID: 42, Status: models.StatusPending}, nil)
	orders.On("UpdateStatus", mock.Anything, 5, models.StatusCancelled).Return(nil)

	svc := NewOrderService(orders, &menuReaderMock{}, nil)
	order, err := svc.Cancel(context.Background(), 5, 42, "customer")

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, order.Status)
}

func TestCancelPreparingOrderRejectedEvenForOwner(t *testing.T) {
	orders := &orderRepoMock{}

	orders.On("GetByID", mock.Anything, 5).Return(
		&models.Order{ID: 5, UserID: 42, Status: models.StatusPreparing}, nil)

	svc := NewOrderService(orders, &menuReaderMock{}, nil)
	_, err := svc.Cancel(context.Background(), 5, 42, "customer")

	assert.ErrorIs(t, err, ErrNotCancellable)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelForeignOrderForbidden(t *testing.T) {
	orders := &orderRepoMock{}

	orders.On("GetByID", mock.Anything, 5).Return(
		&models.Order{ID: 5, UserID: 42, Status: models.StatusPending}, nil)

	svc := NewOrderService(orders, &menuReaderMock{}, nil)

	_, err := svc.Cancel(context.Background(), 5, 43, "customer")
	assert.ErrorIs(t, err, ErrForbidden)

	// admin may cancel on the user's behalf
	orders.On("UpdateStatus", mock.Anything, 5, models.StatusCancelled).Return(nil)
	order, err := svc.Cancel(context.Background(), 5, 43, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, order.Status)
}

func TestGetEnforcesOwnership(t *testing.T) {
	orders := &orderRepoMock{}

	orders.On("GetByID", mock.Anything, 5).Return(
		&models.Order{ID: 5, UserID: 42, Status: models.StatusPending}, nil)

	svc := NewOrderService(orders, &menuReaderMock{}, nil)

	_, err := svc.Get(context.Background(), 5, 43, "customer")
	assert.ErrorIs(t, err, ErrForbidden)

	order, err := svc.Get(context.Background(), 5, 43, "admin")
	require.NoError(t, err)
	assert.Equal(t, 5, order.ID)
}

func TestSetStatusFollowsTransitionTable(t *testing.T) {
	orders := &orderRepoMock{}

	orders.On("GetByID", mock.Anything, 5).Return(
		&models.Order{ID: 5, UserID: 42, Status: models.StatusConfirmed}, nil)
	orders.On("UpdateStatus", mock.Anything, 5, models.StatusPreparing).Return(nil)

	svc := NewOrderService(orders, &menuReaderMock{}, nil)
	order, err := svc.SetStatus(context.Background(), 5, models.StatusPreparing)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, order.Status)
}

func TestSetStatusRejectsIllegalJump(t *testing.T) {
	orders := &orderRepoMock{}

	orders.On("GetByID", mock.Anything, 5).Return(
		&models.Order{ID: 5, UserID: 42, Status: models.StatusDelivered}, nil)

	svc := NewOrderService(orders, &menuReaderMock{}, nil)
	_, err := svc.SetStatus(context.Background(), 5, models.StatusPending)

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(&orderRepoMock{}, &menuReaderMock{}, nil)

	_, err := svc.SetStatus(context.Background(), 5, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
