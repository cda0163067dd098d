package models

import "time"

// Review is one dish experience at a restaurant. Optional columns are
// pointer-typed so a missing value is stored and rendered as NULL.
type Review struct {
	ID              int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	RestaurantName  string     `json:"restaurant_name" gorm:"size:200;not null"`
	DishName        string     `json:"dish_name" gorm:"size:200;not null"`
	DishType        *string    `json:"dish_type" gorm:"size:100"`
	Rating          int        `json:"rating" gorm:"not null;default:0"`
	Price           *float64   `json:"price"`
	Notes           *string    `json:"notes" gorm:"type:text"`
	VisitDate       *time.Time `json:"visit_date" gorm:"type:date"`
	Location        *string    `json:"location" gorm:"size:200"`
	WouldOrderAgain bool       `json:"would_order_again" gorm:"not null"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
