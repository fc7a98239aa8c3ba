package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/utils"
)

type DeliveryService struct {
	DB *gorm.DB
}

func NewDeliveryService(db *gorm.DB) *DeliveryService {
	return &DeliveryService{DB: db}
}

// Create derives a delivery from an order. One delivery per order; the
// unique index backs this up, but we check first for a readable error.
func (s *DeliveryService) Create(actor Actor, orderID uint, driverID *uint, estimatedTime time.Time) (*models.Delivery, error) {
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
	if err := s.DB.Model(&models.Delivery{}).Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewError(KindValidation, "order already has a delivery")
	}

	if driverID != nil {
		var driver models.Driver
		if err := s.DB.First(&driver, *driverID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewError(KindValidation, "driver not found")
			}
			return nil, err
		}
	}

	delivery := models.Delivery{
		OrderID:       order.ID,
		DriverID:      driverID,
		Status:        models.DeliveryAssigned,
		EstimatedTime: estimatedTime,
	}
	if err := s.DB.Create(&delivery).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

// Get returns a delivery if the actor is allowed to see it: the assigned
// driver, the owner of the parent order, or staff/admin.
func (s *DeliveryService) Get(deliveryID uint, actor Actor) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := s.DB.Preload("Order").First(&delivery, deliveryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "delivery not found")
		}
		return nil, err
	}
	if !s.canSee(&delivery, actor) {
		return nil, NewError(KindNotFound, "delivery not found")
	}
	return &delivery, nil
}

// List returns the deliveries visible to the actor. A user linked to a
// driver record sees their assignments; everyone else sees the
// deliveries of their own orders; staff and admins see all.
func (s *DeliveryService) List(actor Actor) ([]models.Delivery, error) {
	var deliveries []models.Delivery
	q := s.DB.Model(&models.Delivery{})

	if !actor.privileged() {
		if driver := s.driverFor(actor); driver != nil {
			q = q.Where("driver_id = ?", driver.ID)
		} else {
			q = q.Joins("JOIN orders ON orders.id = deliveries.order_id").
				Where("orders.user_id = ?", actor.ID)
		}
	}
	if err := q.Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// UpdateStatus transitions a delivery. Only the assigned driver or an
// admin may act. Moving to delivered stamps the actual time and cascades
// the parent order to delivered in the same transaction.
func (s *DeliveryService) UpdateStatus(deliveryID uint, newStatus models.DeliveryStatus, actor Actor) (*models.Delivery, error) {
	if !models.IsValidDeliveryStatus(newStatus) {
		return nil, NewError(KindInvalidValue, fmt.Sprintf("unknown delivery status %q", newStatus))
	}

	var delivery models.Delivery
	if err := s.DB.First(&delivery, deliveryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "delivery not found")
		}
		return nil, err
	}
	if !s.isAssignedDriver(&delivery, actor) && !actor.IsAdmin {
		return nil, NewError(KindForbidden, "only the assigned driver or an admin can update this delivery")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		delivery.Status = newStatus
		if newStatus == models.DeliveryDelivered {
			now := time.Now()
			delivery.ActualTime = &now
			if err := tx.Model(&models.Order{}).Where("id = ?", delivery.OrderID).
				Update("status", models.OrderDelivered).Error; err != nil {
				return err
			}
		}
		return tx.Save(&delivery).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Delivery #%d -> %s (by user %d)", delivery.ID, delivery.Status, actor.ID)
	return &delivery, nil
}

// AssignDriver sets or replaces the driver of a delivery. Plain
// foreign-key write: concurrent assignments of the same driver are both
// accepted, last write wins.
func (s *DeliveryService) AssignDriver(deliveryID, driverID uint, actor Actor) (*models.Delivery, error) {
	if !actor.privileged() {
		return nil, NewError(KindForbidden, "staff access required")
	}

	var delivery models.Delivery
	if err := s.DB.First(&delivery, deliveryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "delivery not found")
		}
		return nil, err
	}
	var driver models.Driver
	if err := s.DB.First(&driver, driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindValidation, "driver not found")
		}
		return nil, err
	}

	delivery.DriverID = &driver.ID
	if err := s.DB.Save(&delivery).Error; err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Delivery #%d assigned to driver %d", delivery.ID, driver.ID)
	return &delivery, nil
}

// AvailableDrivers lists drivers currently marked available.
func (s *DeliveryService) AvailableDrivers() ([]models.Driver, error) {
	var drivers []models.Driver
	if err := s.DB.Where("availability_status = ?", models.DriverAvailable).Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// RemoveDriver deletes a driver and detaches their deliveries by nulling
// the foreign key, in one transaction. Deliveries themselves survive.
func (s *DeliveryService) RemoveDriver(driverID uint, actor Actor) error {
	if !actor.IsAdmin {
		return NewError(KindForbidden, "admin access required")
	}
	var driver models.Driver
	if err := s.DB.First(&driver, driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewError(KindNotFound, "driver not found")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Delivery{}).Where("driver_id = ?", driver.ID).
			Update("driver_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&driver).Error
	})
}

func (s *DeliveryService) driverFor(actor Actor) *models.Driver {
	var driver models.Driver
	if err := s.DB.Where("user_id = ?", actor.ID).First(&driver).Error; err != nil {
		return nil
	}
	return &driver
}

func (s *DeliveryService) isAssignedDriver(delivery *models.Delivery, actor Actor) bool {
	if delivery.DriverID == nil {
		return false
	}
	driver := s.driverFor(actor)
	return driver != nil && driver.ID == *delivery.DriverID
}

func (s *DeliveryService) canSee(delivery *models.Delivery, actor Actor) bool {
	if actor.privileged() {
		return true
	}
	if delivery.Order.UserID == actor.ID {
		return true
	}
	return s.isAssignedDriver(delivery, actor)
}
