package models

import "time"

type MenuItem struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url"`
	IsVegetarian bool      `json:"is_vegetarian"`
	IsAvailable  bool      `json:"is_available"`
	SpiceLevel   string    `json:"spice_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var SpiceLevels = []string{"mild", "medium", "hot", "extra hot"}

func IsValidSpiceLevel(level string) bool {
	for _, l := range SpiceLevels {
		if l == level {
			return true
		}
	}
	return false
}
