package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/services"
	"food-delivery-backend/utils"
)

type DeliveryController struct {
	Deliveries *services.DeliveryService
}

func NewDeliveryController(db *gorm.DB) *DeliveryController {
	return &DeliveryController{Deliveries: services.NewDeliveryService(db)}
}

func (dc *DeliveryController) GetAllDeliveries(c *gin.Context) {
	deliveries, err := dc.Deliveries.List(currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of deliveries", deliveries)
}

func (dc *DeliveryController) GetDeliveryByID(c *gin.Context) {
	id, err := idParam(c, "delivery_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	delivery, err := dc.Deliveries.Get(id, currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery detail", delivery)
}

func (dc *DeliveryController) CreateDelivery(c *gin.Context) {
	var req struct {
		OrderID       uint      `json:"order_id" binding:"required"`
		DriverID      *uint     `json:"driver_id"`
		EstimatedTime time.Time `json:"estimated_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	delivery, err := dc.Deliveries.Create(currentActor(c), req.OrderID, req.DriverID, req.EstimatedTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Delivery created", delivery)
}

func (dc *DeliveryController) UpdateDeliveryStatus(c *gin.Context) {
	id, err := idParam(c, "delivery_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	delivery, err := dc.Deliveries.UpdateStatus(id, models.DeliveryStatus(req.Status), currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery status updated", delivery)
}

func (dc *DeliveryController) AssignDriver(c *gin.Context) {
	id, err := idParam(c, "delivery_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		DriverID uint `json:"driver_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	delivery, err := dc.Deliveries.AssignDriver(id, req.DriverID, currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Driver assigned", delivery)
}
