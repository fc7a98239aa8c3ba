package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"food-delivery-backend/models"
	"food-delivery-backend/utils"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// OrderItemView is a line item denormalized for display.
type OrderItemView struct {
	ID         uint    `json:"id"`
	MenuItemID uint    `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Subtotal   float64 `json:"subtotal"`
}

// Create places an order against a restaurant. Each line item snapshots
// the current menu price; the total is the sum of the snapshots. The
// order and its items are written in one transaction.
func (s *OrderService) Create(actor Actor, restaurantID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, NewError(KindValidation, "order must contain at least one item")
	}

	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindValidation, "restaurant not found")
		}
		return nil, err
	}

	order := models.Order{
		UserID:       actor.ID,
		RestaurantID: restaurant.ID,
		Status:       models.OrderPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, item := range items {
			if item.Quantity < 1 {
				return NewError(KindValidation, "quantity must be at least 1")
			}
			var menu models.Menu
			if err := tx.First(&menu, item.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NewError(KindValidation, fmt.Sprintf("menu item %d not found", item.MenuItemID))
				}
				return err
			}
			if menu.RestaurantID != restaurant.ID {
				return NewError(KindValidation, fmt.Sprintf("menu item %d does not belong to restaurant %d", menu.ID, restaurant.ID))
			}
			if menu.AvailabilityStatus != models.MenuAvailable {
				return NewError(KindValidation, fmt.Sprintf("menu item %q is not available", menu.ItemName))
			}

			total += menu.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: menu.ID,
				Quantity:   item.Quantity,
				Price:      menu.Price,
			})
		}

		order.TotalAmount = total
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		order.Items = orderItems
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d created by user %d (total=%.2f)", order.ID, actor.ID, order.TotalAmount)
	return &order, nil
}

// Get returns a single order, restricted to its owner unless the actor
// is staff or admin.
func (s *OrderService) Get(orderID uint, actor Actor) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "order not found")
		}
		return nil, err
	}
	if order.UserID != actor.ID && !actor.privileged() {
		return nil, NewError(KindNotFound, "order not found")
	}
	return &order, nil
}

// List returns the actor's orders; staff and admins see all orders.
func (s *OrderService) List(actor Actor) ([]models.Order, error) {
	var orders []models.Order
	q := s.DB.Preload("Items")
	if !actor.privileged() {
		q = q.Where("user_id = ?", actor.ID)
	}
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Cancel moves an order to canceled. Only the owner (or an admin) may
// cancel, and only while the order is pending or confirmed.
func (s *OrderService) Cancel(orderID uint, actor Actor) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "order not found")
		}
		return nil, err
	}
	if order.UserID != actor.ID && !actor.IsAdmin {
		return nil, NewError(KindForbidden, "you do not own this order")
	}
	if !models.CanCancel(order.Status) {
		return nil, NewError(KindInvalidStateTransition,
			fmt.Sprintf("order cannot be canceled from status %q", order.Status))
	}

	order.Status = models.OrderCanceled
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Order #%d canceled by user %d", order.ID, actor.ID)
	return &order, nil
}

// ListItems returns the line items of an order with the item name
// denormalized from the menu. Read-only.
func (s *OrderService) ListItems(orderID uint, actor Actor) ([]OrderItemView, error) {
	order, err := s.Get(orderID, actor)
	if err != nil {
		return nil, err
	}

	var items []models.OrderItem
	if err := s.DB.Preload("MenuItem").Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return nil, err
	}

	views := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		views = append(views, OrderItemView{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			ItemName:   item.MenuItem.ItemName,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Subtotal:   item.Price * float64(item.Quantity),
		})
	}
	return views, nil
}

// Transition advances an order along the status state machine. Reserved
// for staff and admins; customers only ever cancel.
func (s *OrderService) Transition(orderID uint, newStatus models.OrderStatus, actor Actor) (*models.Order, error) {
	if !actor.privileged() {
		return nil, NewError(KindForbidden, "staff access required")
	}
	if !models.IsValidOrderStatus(newStatus) {
		return nil, NewError(KindInvalidValue, fmt.Sprintf("unknown order status %q", newStatus))
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(KindNotFound, "order not found")
		}
		return nil, err
	}
	if !models.CanTransition(order.Status, newStatus) {
		return nil, NewError(KindInvalidStateTransition,
			fmt.Sprintf("cannot move order from %q to %q", order.Status, newStatus))
	}

	order.Status = newStatus
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Order #%d -> %s (by user %d)", order.ID, order.Status, actor.ID)
	return &order, nil
}

// Delete removes an order together with its items, payment, delivery and
// reviews. The cascade is explicit rather than delegated to the schema.
// Admin only.
func (s *OrderService) Delete(orderID uint, actor Actor) error {
	if !actor.IsAdmin {
		return NewError(KindForbidden, "admin access required")
	}
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewError(KindNotFound, "order not found")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Delivery{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
