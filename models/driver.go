package models

type DriverAvailability string

const (
	DriverAvailable DriverAvailability = "available"
	DriverBusy      DriverAvailability = "busy"
	DriverOffline   DriverAvailability = "offline"
)

func IsValidDriverAvailability(s DriverAvailability) bool {
	switch s {
	case DriverAvailable, DriverBusy, DriverOffline:
		return true
	}
	return false
}

// Driver is a delivery driver. UserID optionally links the driver to a
// login account; a user "is a driver" exactly when such a row exists.
type Driver struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	UserID             *uint              `gorm:"uniqueIndex" json:"user_id"`
	User               *User              `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Name               string             `gorm:"type:varchar(100);not null" json:"name"`
	Phone              string             `gorm:"type:varchar(15)" json:"phone"`
	VehicleType        string             `gorm:"type:varchar(50)" json:"vehicle_type"`
	AvailabilityStatus DriverAvailability `gorm:"type:varchar(20);not null;default:'available'" json:"availability_status"`
}
