package repositories

import (
	"context"
	"time"

	"food-delivery/config"
	"food-delivery/models"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

const menuItemColumns = `id, restaurant_id, name, description, price, category,
	image_url, is_vegetarian, is_available, spice_level, created_at, updated_at`

func scanMenuItem(row interface{ Scan(dest ...any) error }, m *models.MenuItem) error {
	return row.Scan(
		&m.ID, &m.RestaurantID, &m.Name, &m.Description, &m.Price, &m.Category,
		&m.ImageURL, &m.IsVegetarian, &m.IsAvailable, &m.SpiceLevel, &m.CreatedAt, &m.UpdatedAt,
	)
}

func (r *MenuRepository) GetByRestaurant(ctx context.Context, restaurantID int) ([]models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + `
	          FROM menu_items WHERE restaurant_id = $1 AND is_available = true
	          ORDER BY category, name`

	rows, err := config.DB.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) GetByID(ctx context.Context, id int) (*models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`

	var item models.MenuItem
	if err := scanMenuItem(config.DB.QueryRow(ctx, query, id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByIDs loads the authoritative rows for an order's items; prices are
// always taken from here, never from the client.
func (r *MenuRepository) GetByIDs(ctx context.Context, ids []int) ([]models.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = ANY($1)`

	rows, err := config.DB.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `INSERT INTO menu_items
	          (restaurant_id, name, description, price, category, image_url, is_vegetarian, is_available, spice_level, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8, $9, $10)
	          RETURNING id, is_available, created_at, updated_at`

	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		item.RestaurantID, item.Name, item.Description, item.Price, item.Category,
		item.ImageURL, item.IsVegetarian, item.SpiceLevel, now, now,
	).Scan(&item.ID, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
}

func (r *MenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	query := `UPDATE menu_items SET name = $1, description = $2, price = $3, category = $4,
	                 image_url = $5, is_vegetarian = $6, is_available = $7, spice_level = $8,
	                 updated_at = $9
	          WHERE id = $10`

	_, err := config.DB.Exec(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL,
		item.IsVegetarian, item.IsAvailable, item.SpiceLevel, time.Now(), item.ID,
	)
	return err
}

// Delete removes the row outright. Order items snapshot name and price,
// so order history does not depend on this table.
func (r *MenuRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := config.DB.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
