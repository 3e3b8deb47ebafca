package controllers

import (
	"strconv"

	"food-delivery/config"
	"food-delivery/models"

	"github.com/gin-gonic/gin"
)

// respondError writes the {message, error?} shape; the error detail is
// suppressed in production builds.
func respondError(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{Message: message}
	if err != nil && !config.IsProduction() {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
