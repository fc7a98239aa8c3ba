package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []models.Menu
	if err := mc.DB.Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id, err := idParam(c, "menu_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var menu models.Menu
	if err := mc.DB.First(&menu, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req struct {
		RestaurantID       uint    `json:"restaurant_id" binding:"required"`
		ItemName           string  `json:"item_name" binding:"required"`
		Description        string  `json:"description"`
		Price              float64 `json:"price" binding:"min=0"`
		ImageURL           string  `json:"image_url"`
		AvailabilityStatus string  `json:"availability_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := mc.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("restaurant not found"))
		return
	}

	availability := models.MenuAvailability(req.AvailabilityStatus)
	if req.AvailabilityStatus == "" {
		availability = models.MenuAvailable
	} else if !models.IsValidMenuAvailability(availability) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown availability status"))
		return
	}

	menu := models.Menu{
		RestaurantID:       restaurant.ID,
		ItemName:           req.ItemName,
		Description:        req.Description,
		Price:              req.Price,
		ImageURL:           req.ImageURL,
		AvailabilityStatus: availability,
	}
	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}
