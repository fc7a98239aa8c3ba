package models

import "time"

type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryOnTheWay  DeliveryStatus = "on_the_way"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCanceled  DeliveryStatus = "canceled"
)

func IsValidDeliveryStatus(s DeliveryStatus) bool {
	switch s {
	case DeliveryAssigned, DeliveryOnTheWay, DeliveryDelivered, DeliveryCanceled:
		return true
	}
	return false
}

// Delivery is 1-1 with an order. DriverID is nullable: removing a driver
// detaches their deliveries instead of deleting them. ActualTime is set
// only when the delivery reaches delivered.
type Delivery struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	OrderID       uint           `gorm:"not null;uniqueIndex" json:"order_id"`
	Order         Order          `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	DriverID      *uint          `gorm:"index" json:"driver_id"`
	Driver        *Driver        `gorm:"foreignKey:DriverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Status        DeliveryStatus `gorm:"type:varchar(20);not null;default:'assigned'" json:"status"`
	EstimatedTime time.Time      `gorm:"not null" json:"estimated_time"`
	ActualTime    *time.Time     `json:"actual_time"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}
