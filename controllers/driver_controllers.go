package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/services"
	"food-delivery-backend/utils"
)

type DriverController struct {
	DB         *gorm.DB
	Deliveries *services.DeliveryService
}

func NewDriverController(db *gorm.DB) *DriverController {
	return &DriverController{DB: db, Deliveries: services.NewDeliveryService(db)}
}

func (dc *DriverController) GetAllDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := dc.DB.Find(&drivers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of drivers", drivers)
}

func (dc *DriverController) GetAvailableDrivers(c *gin.Context) {
	drivers, err := dc.Deliveries.AvailableDrivers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available drivers", drivers)
}

func (dc *DriverController) CreateDriver(c *gin.Context) {
	var req struct {
		Name               string `json:"name" binding:"required"`
		Phone              string `json:"phone"`
		VehicleType        string `json:"vehicle_type"`
		AvailabilityStatus string `json:"availability_status"`
		UserID             *uint  `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	availability := models.DriverAvailability(req.AvailabilityStatus)
	if req.AvailabilityStatus == "" {
		availability = models.DriverAvailable
	} else if !models.IsValidDriverAvailability(availability) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown availability status"))
		return
	}

	if req.UserID != nil {
		var user models.User
		if err := dc.DB.First(&user, *req.UserID).Error; err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("linked user not found"))
			return
		}
	}

	driver := models.Driver{
		Name:               req.Name,
		Phone:              req.Phone,
		VehicleType:        req.VehicleType,
		AvailabilityStatus: availability,
		UserID:             req.UserID,
	}
	if err := dc.DB.Create(&driver).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Driver created", driver)
}

// UpdateDriverAvailability flips a driver between available/busy/offline.
func (dc *DriverController) UpdateDriverAvailability(c *gin.Context) {
	id, err := idParam(c, "driver_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		AvailabilityStatus string `json:"availability_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	availability := models.DriverAvailability(req.AvailabilityStatus)
	if !models.IsValidDriverAvailability(availability) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown availability status"))
		return
	}

	var driver models.Driver
	if err := dc.DB.First(&driver, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("driver not found"))
		return
	}
	driver.AvailabilityStatus = availability
	if err := dc.DB.Save(&driver).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Driver availability updated", driver)
}

func (dc *DriverController) DeleteDriver(c *gin.Context) {
	id, err := idParam(c, "driver_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.Deliveries.RemoveDriver(id, currentActor(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Driver removed", gin.H{"driver_id": id})
}
