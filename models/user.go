package models

import "time"

type User struct {
	ID        int             `json:"id"`
	Email     string          `json:"email"`
	Password  string          `json:"-"`
	FullName  string          `json:"full_name"`
	Phone     string          `json:"phone,omitempty"`
	Role      string          `json:"role"`
	Address   DeliveryAddress `json:"address"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
