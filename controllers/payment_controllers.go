package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/services"
	"food-delivery-backend/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{Payments: services.NewPaymentService(db)}
}

func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	payments, err := pc.Payments.List(currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}

func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	id, err := idParam(c, "payment_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.Get(id, currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID uint    `json:"order_id" binding:"required"`
		Method  string  `json:"method" binding:"required"`
		Amount  float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.Create(currentActor(c), req.OrderID, models.PaymentMethod(req.Method), req.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Payment created", payment)
}

func (pc *PaymentController) ProcessPayment(c *gin.Context) {
	id, err := idParam(c, "payment_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := pc.Payments.Process(id, currentActor(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment processed", payment)
}
