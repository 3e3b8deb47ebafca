package models

import "time"

type Restaurant struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Cuisine      string    `json:"cuisine"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	ImageURL     string    `json:"image_url"`
	OpeningHours string    `json:"opening_hours"`
	Rating       float64   `json:"rating"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
