package models

// OrderItem is a line item of an order. Price is a snapshot of the menu
// price at order time and never changes afterwards.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"not null;index" json:"order_id"`
	Order      Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint    `gorm:"not null" json:"menu_item_id"`
	MenuItem   Menu    `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity   int     `gorm:"not null;default:1" json:"quantity"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
