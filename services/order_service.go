package services

import (
	"context"
	"log"
	"math"

	"food-delivery/models"
)

// Checkout pricing. The payable total is always recomputed here from
// stored menu prices; client-submitted totals are never trusted.
const (
	DeliveryFee = 40.0
	TaxRate     = 0.05
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	ListAll(ctx context.Context, page, limit int, status string) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	FindByIdempotencyKey(ctx context.Context, userID int, key string) (*models.Order, error)
}

type MenuReader interface {
	GetByIDs(ctx context.Context, ids []int) ([]models.MenuItem, error)
}

type Mailer interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}

type OrderService struct {
	orders OrderRepository
	menu   MenuReader
	mailer Mailer
}

func NewOrderService(orders OrderRepository, menu MenuReader, mailer Mailer) *OrderService {
	return &OrderService{orders: orders, menu: menu, mailer: mailer}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Submit creates a pending order from the checkout payload. Prices come
// from the menu table; quantities from the request. When an idempotency
// key is supplied and an order for it already exists, that order is
// returned instead of creating a duplicate.
func (s *OrderService) Submit(ctx context.Context, userID int, userEmail string, req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 || req.RestaurantID == 0 {
		return nil, ErrEmptyOrder
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPayment
	}

	if req.IdempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(ctx, userID, req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	ids := make([]int, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, ErrEmptyOrder
		}
		ids = append(ids, item.MenuItemID)
	}

	menuItems, err := s.menu.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]models.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID] = m
	}

	var subtotal float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		m, ok := byID[reqItem.MenuItemID]
		if !ok {
			return nil, ErrNotFound
		}
		if !m.IsAvailable {
			return nil, ErrItemUnavailable
		}
		if m.RestaurantID != req.RestaurantID {
			return nil, ErrRestaurantMismatch
		}

		subtotal += m.Price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Price:      m.Price,
			Quantity:   reqItem.Quantity,
		})
	}

	subtotal = round2(subtotal)
	tax := round2(subtotal * TaxRate)

	order := &models.Order{
		UserID:               userID,
		RestaurantID:         req.RestaurantID,
		Items:                orderItems,
		Subtotal:             subtotal,
		DeliveryFee:          DeliveryFee,
		TaxAmount:            tax,
		TotalAmount:          round2(subtotal + DeliveryFee + tax),
		DeliveryAddress:      req.DeliveryAddress,
		PaymentMethod:        req.PaymentMethod,
		DeliveryInstructions: req.DeliveryInstructions,
		Status:               models.StatusPending,
		IdempotencyKey:       req.IdempotencyKey,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.mailer != nil && userEmail != "" {
		go func(email string, o models.Order) {
			if err := s.mailer.SendOrderConfirmation(email, &o); err != nil {
				log.Println("Failed to send order confirmation:", err)
			}
		}(userEmail, *order)
	}

	return order, nil
}

// Get enforces ownership: only the ordering user or an admin may read.
func (s *OrderService) Get(ctx context.Context, orderID, userID int, role string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	if order.UserID != userID && role != "admin" {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListMine(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context, page, limit int, status string) ([]models.Order, int, error) {
	return s.orders.ListAll(ctx, page, limit, status)
}

// Cancel is allowed for the owner or an admin, and only while the order
// is still pending or confirmed.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID int, role string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	if order.UserID != userID && role != "admin" {
		return nil, ErrForbidden
	}
	if !models.IsCancellable(order.Status) {
		return nil, ErrNotCancellable
	}

	if err := s.orders.UpdateStatus(ctx, orderID, models.StatusCancelled); err != nil {
		return nil, err
	}
	order.Status = models.StatusCancelled
	return order, nil
}

// SetStatus applies an admin status change, rejecting values outside the
// closed status set and jumps the transition table does not allow.
func (s *OrderService) SetStatus(ctx context.Context, orderID int, newStatus string) (*models.Order, error) {
	if !models.IsValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !models.CanTransition(order.Status, newStatus) {
		return nil, ErrIllegalTransition
	}

	if err := s.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}
	order.Status = newStatus
	return order, nil
}
