package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"food-delivery/cart"
	"food-delivery/config"
	"food-delivery/models"
	"food-delivery/repositories"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	menu *repositories.MenuRepository

	// fallback stores for sessions running without Redis, one per user
	mu        sync.Mutex
	memStores map[int]*cart.MemStore
}

func NewCartController(menu *repositories.MenuRepository) *CartController {
	return &CartController{menu: menu, memStores: map[int]*cart.MemStore{}}
}

type cartView struct {
	Items        []cart.Line `json:"items"`
	RestaurantID int         `json:"restaurant_id"`
	Totals       cart.Totals `json:"totals"`
	Message      string      `json:"message,omitempty"`
}

func (ctrl *CartController) storeFor(userID int) cart.Store {
	if config.RedisClient != nil {
		return cart.NewRedisStore(config.RedisClient, fmt.Sprintf("cart:%d", userID))
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	store, ok := ctrl.memStores[userID]
	if !ok {
		store = cart.NewMemStore()
		ctrl.memStores[userID] = store
	}
	return store
}

func (ctrl *CartController) load(userID int, opts cart.Options) *cart.Cart {
	c := cart.New(ctrl.storeFor(userID), opts)
	c.Load()
	return c
}

func view(c *cart.Cart, message string) cartView {
	return cartView{
		Items:        c.Lines(),
		RestaurantID: c.RestaurantID(),
		Totals:       c.Totals(),
		Message:      message,
	}
}

// Get godoc
// @Summary Get cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controllers.cartView
// @Router /cart [get]
func (ctrl *CartController) Get(c *gin.Context) {
	userCart := ctrl.load(c.GetInt("user_id"), cart.Options{})
	c.JSON(http.StatusOK, view(userCart, ""))
}

// AddItem godoc
// @Summary Add item to cart
// @Description Adds one unit of a menu item. Adding from a different restaurant than the current cart requires confirm=true and replaces the cart.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} controllers.cartView
// @Failure 409 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Menu item and restaurant are required", err)
		return
	}

	item, err := ctrl.menu.GetByID(c.Request.Context(), req.MenuItemID)
	if err != nil {
		respondError(c, http.StatusNotFound, "Menu item not found", nil)
		return
	}
	if !item.IsAvailable {
		respondError(c, http.StatusBadRequest, "Menu item is not available", nil)
		return
	}

	var message string
	userCart := ctrl.load(c.GetInt("user_id"), cart.Options{
		Confirm: func() bool { return req.Confirm },
		Notify:  func(m string) { message = m },
	})

	if !userCart.AddItem(cart.Item{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		ImageURL: item.ImageURL,
	}, item.RestaurantID) {
		respondError(c, http.StatusConflict,
			"Adding items from a different restaurant will clear your current cart", nil)
		return
	}

	c.JSON(http.StatusOK, view(userCart, message))
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} controllers.cartView
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid menu item ID", nil)
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
		respondError(c, http.StatusBadRequest, "Quantity must be at least 1", err)
		return
	}

	userCart := ctrl.load(c.GetInt("user_id"), cart.Options{})
	userCart.UpdateQuantity(id, req.Quantity)
	c.JSON(http.StatusOK, view(userCart, ""))
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} controllers.cartView
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid menu item ID", nil)
		return
	}

	userCart := ctrl.load(c.GetInt("user_id"), cart.Options{})
	userCart.RemoveItem(id)
	c.JSON(http.StatusOK, view(userCart, ""))
}

// Clear godoc
// @Summary Clear cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controllers.cartView
// @Router /cart [delete]
func (ctrl *CartController) Clear(c *gin.Context) {
	userCart := ctrl.load(c.GetInt("user_id"), cart.Options{})
	userCart.Clear()
	c.JSON(http.StatusOK, view(userCart, ""))
}
