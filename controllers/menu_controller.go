package controllers

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"food-delivery/libs"
	"food-delivery/models"
	"food-delivery/repositories"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu        *repositories.MenuRepository
	restaurants *repositories.RestaurantRepository
}

func NewMenuController(menu *repositories.MenuRepository, restaurants *repositories.RestaurantRepository) *MenuController {
	return &MenuController{menu: menu, restaurants: restaurants}
}

// GetByRestaurant godoc
// @Summary List menu for restaurant
// @Description List all available menu items of a restaurant
// @Tags Menu
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} models.MenuItem
// @Router /menu/restaurant/{id} [get]
func (ctrl *MenuController) GetByRestaurant(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	items, err := ctrl.menu.GetByRestaurant(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch menu items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetByID godoc
// @Summary Get menu item
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid menu item ID", nil)
		return
	}

	item, err := ctrl.menu.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Menu item not found", nil)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create godoc
// @Summary Add menu item
// @Description Add a new menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateMenuItemRequest true "Menu item data"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.ErrorResponse
// @Router /menu [post]
func (ctrl *MenuController) Create(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name, description, price, category and restaurant are required", err)
		return
	}

	if req.SpiceLevel == "" {
		req.SpiceLevel = "medium"
	}
	if !models.IsValidSpiceLevel(req.SpiceLevel) {
		respondError(c, http.StatusBadRequest, "Invalid spice level", nil)
		return
	}
	if req.Price < 0 {
		respondError(c, http.StatusBadRequest, "Price must be non-negative", nil)
		return
	}

	if _, err := ctrl.restaurants.GetByID(c.Request.Context(), req.RestaurantID); err != nil {
		respondError(c, http.StatusNotFound, "Restaurant not found", nil)
		return
	}

	item := &models.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		IsVegetarian: req.IsVegetarian,
		SpiceLevel:   req.SpiceLevel,
	}
	if err := ctrl.menu.Create(c.Request.Context(), item); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Update menu item
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param request body models.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [put]
func (ctrl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid menu item ID", nil)
		return
	}

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	item, err := ctrl.applyUpdate(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, http.StatusNotFound, "Menu item not found", nil)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ctrl *MenuController) applyUpdate(ctx context.Context, id int, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := ctrl.menu.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil && *req.Price >= 0 {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.IsVegetarian != nil {
		item.IsVegetarian = *req.IsVegetarian
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.SpiceLevel != nil && models.IsValidSpiceLevel(*req.SpiceLevel) {
		item.SpiceLevel = *req.SpiceLevel
	}

	if err := ctrl.menu.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete godoc
// @Summary Delete menu item
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [delete]
func (ctrl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid menu item ID", nil)
		return
	}

	deleted, err := ctrl.menu.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete menu item", err)
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Menu item not found", nil)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Menu item deleted successfully"})
}

// UploadImage godoc
// @Summary Upload menu item image
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Menu item ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.ErrorResponse
// @Router /menu/{id}/image [post]
func (ctrl *MenuController) UploadImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid menu item ID", nil)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image file is required", err)
		return
	}

	localPath, err := saveUpload(c, file, "menu")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	defer os.Remove(localPath)

	imageURL, err := libs.UploadToCloudinary(localPath, "menu")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Image upload failed", err)
		return
	}

	item, err := ctrl.applyUpdate(c.Request.Context(), id, models.UpdateMenuItemRequest{ImageURL: &imageURL})
	if err != nil {
		respondError(c, http.StatusNotFound, "Menu item not found", nil)
		return
	}
	c.JSON(http.StatusOK, item)
}
