package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"food-delivery/config"
	"food-delivery/libs"
	"food-delivery/models"
	"food-delivery/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	restaurants *services.RestaurantService
}

func NewRestaurantController(restaurants *services.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurants: restaurants}
}

// GetAll godoc
// @Summary List restaurants
// @Description List all active restaurants
// @Tags Restaurants
// @Produce json
// @Success 200 {array} models.Restaurant
// @Router /restaurants [get]
func (ctrl *RestaurantController) GetAll(c *gin.Context) {
	restaurants, err := ctrl.restaurants.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch restaurants", err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// GetByID godoc
// @Summary Get restaurant
// @Tags Restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (ctrl *RestaurantController) GetByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	restaurant, err := ctrl.restaurants.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Restaurant not found", nil)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Create godoc
// @Summary Add restaurant
// @Description Add a new restaurant (Admin)
// @Tags Admin - Restaurants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateRestaurantRequest true "Restaurant data"
// @Success 201 {object} models.Restaurant
// @Failure 400 {object} models.ErrorResponse
// @Router /restaurants [post]
func (ctrl *RestaurantController) Create(c *gin.Context) {
	var req models.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name, description, cuisine and address are required", err)
		return
	}

	restaurant := &models.Restaurant{
		Name:         req.Name,
		Description:  req.Description,
		Cuisine:      req.Cuisine,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		ImageURL:     req.ImageURL,
		OpeningHours: req.OpeningHours,
	}
	if err := ctrl.restaurants.Create(c.Request.Context(), restaurant); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create restaurant", err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// Update godoc
// @Summary Update restaurant
// @Tags Admin - Restaurants
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param request body models.UpdateRestaurantRequest true "Fields to update"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [put]
func (ctrl *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	var req models.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	restaurant, err := ctrl.restaurants.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Restaurant not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update restaurant", err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Delete godoc
// @Summary Delete restaurant
// @Tags Admin - Restaurants
// @Security BearerAuth
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (ctrl *RestaurantController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	if err := ctrl.restaurants.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Restaurant not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete restaurant", err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Restaurant deleted successfully"})
}

// UploadImage godoc
// @Summary Upload restaurant image
// @Tags Admin - Restaurants
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Restaurant
// @Failure 400 {object} models.ErrorResponse
// @Router /restaurants/{id}/image [post]
func (ctrl *RestaurantController) UploadImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid restaurant ID", nil)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image file is required", err)
		return
	}

	localPath, err := saveUpload(c, file, "restaurants")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	defer os.Remove(localPath)

	imageURL, err := libs.UploadToCloudinary(localPath, "restaurants")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Image upload failed", err)
		return
	}

	restaurant, err := ctrl.restaurants.Update(c.Request.Context(), id,
		models.UpdateRestaurantRequest{ImageURL: &imageURL})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Restaurant not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update restaurant", err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

var allowedImageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// saveUpload stages the uploaded file under the configured upload dir so
// it can be pushed to Cloudinary; the caller removes it afterwards.
func saveUpload(c *gin.Context, file *multipart.FileHeader, subDir string) (string, error) {
	if file.Size > 5*1024*1024 {
		return "", errors.New("file too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range allowedImageExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", errors.New("invalid file type")
	}

	uploadDir := filepath.Join(config.AppConfig.UploadDir, subDir)
	os.MkdirAll(uploadDir, os.ModePerm)

	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(file.Filename, " ", "_"))
	fullPath := filepath.Join(uploadDir, filename)

	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}
