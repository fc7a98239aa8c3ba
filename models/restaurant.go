package models

type Restaurant struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"type:varchar(200);not null" json:"name"`
	Address     string  `gorm:"type:text;not null" json:"address"`
	Phone       string  `gorm:"type:varchar(15)" json:"phone"`
	Rating      float64 `gorm:"type:decimal(3,2);default:0" json:"rating"`
	CuisineType string  `gorm:"type:varchar(100)" json:"cuisine_type"`
	Menus       []Menu  `gorm:"foreignKey:RestaurantID" json:"menus,omitempty"`
}
