package models

// MenuAvailability is the stock state of a single menu item.
type MenuAvailability string

const (
	MenuAvailable   MenuAvailability = "available"
	MenuUnavailable MenuAvailability = "unavailable"
	MenuOutOfStock  MenuAvailability = "out_of_stock"
)

func IsValidMenuAvailability(s MenuAvailability) bool {
	switch s {
	case MenuAvailable, MenuUnavailable, MenuOutOfStock:
		return true
	}
	return false
}

type Menu struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	RestaurantID       uint             `gorm:"not null;index" json:"restaurant_id"`
	Restaurant         Restaurant       `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemName           string           `gorm:"type:varchar(200);not null" json:"item_name"`
	Description        string           `gorm:"type:text" json:"description"`
	Price              float64          `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL           string           `gorm:"type:varchar(500)" json:"image_url"`
	AvailabilityStatus MenuAvailability `gorm:"type:varchar(20);not null;default:'available'" json:"availability_status"`
}
