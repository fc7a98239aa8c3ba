package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/utils"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// Create records a pending payment for an order. One payment per order.
// Amount defaults to the order total when the caller omits it.
func (s *PaymentService) Create(actor Actor, orderID uint, method models.PaymentMethod, amount float64) (*models.Payment, error) {
	if !models.IsValidPaymentMethod(method) {
		return nil, NewError(KindInvalidValue, fmt.Sprintf("unknown payment method %q", method))
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindValidation, "order not found")
		}
		return nil, err
	}
	if order.UserID != actor.ID && !actor.privileged() {
		return nil, NewError(KindForbidden, "you do not own this order")
	}

	var count int64
	if err := s.DB.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewError(KindValidation, "order already has a payment")
	}

	if amount == 0 {
		amount = order.TotalAmount
	}
	payment := models.Payment{
		OrderID: order.ID,
		Method:  method,
		Status:  models.PaymentPending,
		Amount:  amount,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// Get returns a payment, restricted to the owner of its order.
func (s *PaymentService) Get(paymentID uint, actor Actor) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.Preload("Order").First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "payment not found")
		}
		return nil, err
	}
	if payment.Order.UserID != actor.ID && !actor.privileged() {
		return nil, NewError(KindNotFound, "payment not found")
	}
	return &payment, nil
}

// List returns payments for the actor's orders; staff and admins see all.
func (s *PaymentService) List(actor Actor) ([]models.Payment, error) {
	var payments []models.Payment
	q := s.DB.Model(&models.Payment{})
	if !actor.privileged() {
		q = q.Joins("JOIN orders ON orders.id = payments.order_id").
			Where("orders.user_id = ?", actor.ID)
	}
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Process marks a payment completed, stamping paid_at and a transaction
// id. There is no gateway behind this; it is a deliberate placeholder
// until a real settlement integration exists.
func (s *PaymentService) Process(paymentID uint, actor Actor) (*models.Payment, error) {
	payment, err := s.Get(paymentID, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment.Status = models.PaymentCompleted
	payment.PaidAt = &now
	if payment.TransactionID == nil {
		txID := uuid.NewString()
		payment.TransactionID = &txID
	}
	updates := map[string]interface{}{
		"status":         payment.Status,
		"paid_at":        payment.PaidAt,
		"transaction_id": payment.TransactionID,
	}
	if err := s.DB.Model(&models.Payment{}).Where("id = ?", payment.ID).Updates(updates).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Payment #%d completed for order #%d (tx=%s)", payment.ID, payment.OrderID, *payment.TransactionID)
	return payment, nil
}
