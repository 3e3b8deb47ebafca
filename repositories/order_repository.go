package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"food-delivery/config"
	"food-delivery/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create inserts the order and its item snapshots in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO orders
		 (user_id, restaurant_id, subtotal, delivery_fee, tax_amount, total_amount,
		  address_street, address_city, address_state, address_zip,
		  payment_method, delivery_instructions, status, idempotency_key, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,NULLIF($14,''),$15,$16)
		 RETURNING id`,
		order.UserID, order.RestaurantID, order.Subtotal, order.DeliveryFee,
		order.TaxAmount, order.TotalAmount,
		order.DeliveryAddress.Street, order.DeliveryAddress.City,
		order.DeliveryAddress.State, order.DeliveryAddress.ZipCode,
		order.PaymentMethod, order.DeliveryInstructions, order.Status,
		order.IdempotencyKey, now, now,
	).Scan(&order.ID)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, menu_item_id, name, price, quantity)
			 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
			order.ID, item.MenuItemID, item.Name, item.Price, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}

	order.CreatedAt = now
	order.UpdatedAt = now
	return nil
}

const orderColumns = `o.id, o.user_id, o.restaurant_id, r.name,
	o.subtotal, o.delivery_fee, o.tax_amount, o.total_amount,
	o.address_street, o.address_city, o.address_state, o.address_zip,
	o.payment_method, COALESCE(o.delivery_instructions, ''), o.status,
	o.created_at, o.updated_at`

func scanOrder(row interface{ Scan(dest ...any) error }, o *models.Order) error {
	return row.Scan(
		&o.ID, &o.UserID, &o.RestaurantID, &o.RestaurantName,
		&o.Subtotal, &o.DeliveryFee, &o.TaxAmount, &o.TotalAmount,
		&o.DeliveryAddress.Street, &o.DeliveryAddress.City,
		&o.DeliveryAddress.State, &o.DeliveryAddress.ZipCode,
		&o.PaymentMethod, &o.DeliveryInstructions, &o.Status,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT ` + orderColumns + `
	          FROM orders o JOIN restaurants r ON o.restaurant_id = r.id
	          WHERE o.id = $1`

	var order models.Order
	if err := scanOrder(config.DB.QueryRow(ctx, query, id), &order); err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *OrderRepository) getItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, order_id, menu_item_id, name, price, quantity
		 FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID,
			&item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + `
	          FROM orders o JOIN restaurants r ON o.restaurant_id = r.id
	          WHERE o.user_id = $1 ORDER BY o.created_at DESC`

	rows, err := config.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.getItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *OrderRepository) ListAll(ctx context.Context, page, limit int, status string) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	countQuery := `SELECT COUNT(*) FROM orders`
	listQuery := `SELECT ` + orderColumns + `
	          FROM orders o JOIN restaurants r ON o.restaurant_id = r.id`

	args := []interface{}{}
	if status != "" {
		countQuery += ` WHERE status = $1`
		listQuery += ` WHERE o.status = $1`
		args = append(args, status)
	}

	var total int
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery += fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	return err
}

// FindByIdempotencyKey returns the order a user already created with the
// given key, or nil when there is none.
func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, userID int, key string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + `
	          FROM orders o JOIN restaurants r ON o.restaurant_id = r.id
	          WHERE o.user_id = $1 AND o.idempotency_key = $2`

	var order models.Order
	err := scanOrder(config.DB.QueryRow(ctx, query, userID, key), &order)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}
