package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string           `json:"full_name"`
	Phone    string           `json:"phone"`
	Address  *DeliveryAddress `json:"address"`
}

type CreateRestaurantRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Cuisine      string `json:"cuisine" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	ImageURL     string `json:"image_url"`
	OpeningHours string `json:"opening_hours"`
}

type UpdateRestaurantRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Cuisine      *string `json:"cuisine"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	ImageURL     *string `json:"image_url"`
	OpeningHours *string `json:"opening_hours"`
	IsActive     *bool   `json:"is_active"`
}

type CreateMenuItemRequest struct {
	RestaurantID int     `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Price        float64 `json:"price" binding:"required,gte=0"`
	Category     string  `json:"category" binding:"required"`
	ImageURL     string  `json:"image_url"`
	IsVegetarian bool    `json:"is_vegetarian"`
	SpiceLevel   string  `json:"spice_level"`
}

type UpdateMenuItemRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Category     *string  `json:"category"`
	ImageURL     *string  `json:"image_url"`
	IsVegetarian *bool    `json:"is_vegetarian"`
	IsAvailable  *bool    `json:"is_available"`
	SpiceLevel   *string  `json:"spice_level"`
}

type OrderItemRequest struct {
	MenuItemID int `json:"menu_item_id" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,gte=1"`
}

type CreateOrderRequest struct {
	RestaurantID         int                `json:"restaurant_id" binding:"required"`
	Items                []OrderItemRequest `json:"items" binding:"required"`
	DeliveryAddress      DeliveryAddress    `json:"delivery_address"`
	PaymentMethod        string             `json:"payment_method" binding:"required"`
	DeliveryInstructions string             `json:"delivery_instructions"`
	IdempotencyKey       string             `json:"idempotency_key"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCartItemRequest struct {
	MenuItemID   int  `json:"menu_item_id" binding:"required"`
	RestaurantID int  `json:"restaurant_id" binding:"required"`
	Confirm      bool `json:"confirm"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
