package repositories

import (
	"context"
	"time"

	"food-delivery/config"
	"food-delivery/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, password, full_name, phone, role,
	                 address_street, address_city, address_state, address_zip,
	                 created_at, updated_at
	          FROM users WHERE email = $1`

	var u models.User
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Password, &u.FullName, &u.Phone, &u.Role,
		&u.Address.Street, &u.Address.City, &u.Address.State, &u.Address.ZipCode,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, email, password, full_name, phone, role,
	                 address_street, address_city, address_state, address_zip,
	                 created_at, updated_at
	          FROM users WHERE id = $1`

	var u models.User
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Password, &u.FullName, &u.Phone, &u.Role,
		&u.Address.Street, &u.Address.City, &u.Address.State, &u.Address.ZipCode,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (email, password, full_name, phone, role, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at, updated_at`

	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		user.Email, user.Password, user.FullName, user.Phone, user.Role, now, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `UPDATE users SET full_name = $1, phone = $2,
	                 address_street = $3, address_city = $4, address_state = $5, address_zip = $6,
	                 updated_at = $7
	          WHERE id = $8`

	_, err := config.DB.Exec(ctx, query,
		user.FullName, user.Phone,
		user.Address.Street, user.Address.City, user.Address.State, user.Address.ZipCode,
		time.Now(), user.ID,
	)
	return err
}
