package repositories

import (
	"context"
	"time"

	"food-delivery/config"
	"food-delivery/models"
)

type RestaurantRepository struct{}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{}
}

const restaurantColumns = `id, name, description, cuisine, address, phone, email,
	image_url, opening_hours, rating, is_active, created_at, updated_at`

func scanRestaurant(row interface{ Scan(dest ...any) error }, r *models.Restaurant) error {
	return row.Scan(
		&r.ID, &r.Name, &r.Description, &r.Cuisine, &r.Address, &r.Phone, &r.Email,
		&r.ImageURL, &r.OpeningHours, &r.Rating, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
}

func (r *RestaurantRepository) GetAllActive(ctx context.Context) ([]models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE is_active = true ORDER BY name`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []models.Restaurant{}
	for rows.Next() {
		var rest models.Restaurant
		if err := scanRestaurant(rows, &rest); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) GetByID(ctx context.Context, id int) (*models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1`

	var rest models.Restaurant
	if err := scanRestaurant(config.DB.QueryRow(ctx, query, id), &rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	query := `INSERT INTO restaurants
	          (name, description, cuisine, address, phone, email, image_url, opening_hours, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, $9, $10)
	          RETURNING id, rating, is_active, created_at, updated_at`

	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		rest.Name, rest.Description, rest.Cuisine, rest.Address, rest.Phone,
		rest.Email, rest.ImageURL, rest.OpeningHours, now, now,
	).Scan(&rest.ID, &rest.Rating, &rest.IsActive, &rest.CreatedAt, &rest.UpdatedAt)
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *models.Restaurant) error {
	query := `UPDATE restaurants SET name = $1, description = $2, cuisine = $3, address = $4,
	                 phone = $5, email = $6, image_url = $7, opening_hours = $8, is_active = $9,
	                 updated_at = $10
	          WHERE id = $11`

	_, err := config.DB.Exec(ctx, query,
		rest.Name, rest.Description, rest.Cuisine, rest.Address, rest.Phone,
		rest.Email, rest.ImageURL, rest.OpeningHours, rest.IsActive, time.Now(), rest.ID,
	)
	return err
}

// Delete deactivates rather than removes: existing orders keep a valid
// restaurant reference.
func (r *RestaurantRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := config.DB.Exec(ctx,
		`UPDATE restaurants SET is_active = false, updated_at = $1 WHERE id = $2`,
		time.Now(), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
