package dto

import (
	"time"

	"dimsumhub/internal/http-api/models"
)

// CreateReviewDTO used for POST /api/items
type CreateReviewDTO struct {
	RestaurantName  string   `json:"restaurant_name" binding:"required"`
	DishName        string   `json:"dish_name" binding:"required"`
	DishType        *string  `json:"dish_type,omitempty"`
	Rating          *int     `json:"rating,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	VisitDate       *string  `json:"visit_date,omitempty"` // ISO date, parsed by the service
	Location        *string  `json:"location,omitempty"`
	WouldOrderAgain *bool    `json:"would_order_again,omitempty"` // defaults to true
}

// UpdateReviewDTO used for PUT /api/items/:item_id (partial updates allowed)
type UpdateReviewDTO struct {
	RestaurantName  *string  `json:"restaurant_name,omitempty"`
	DishName        *string  `json:"dish_name,omitempty"`
	DishType        *string  `json:"dish_type,omitempty"`
	Rating          *int     `json:"rating,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	VisitDate       *string  `json:"visit_date,omitempty"`
	Location        *string  `json:"location,omitempty"`
	WouldOrderAgain *bool    `json:"would_order_again,omitempty"`
}

// ReviewResponse DTO for responses
type ReviewResponse struct {
	ID              int64     `json:"id"`
	RestaurantName  string    `json:"restaurant_name"`
	DishName        string    `json:"dish_name"`
	DishType        *string   `json:"dish_type"`
	Rating          int       `json:"rating"`
	Price           *float64  `json:"price"`
	Notes           *string   `json:"notes"`
	VisitDate       *string   `json:"visit_date"` // date-only, null when unset
	Location        *string   `json:"location"`
	WouldOrderAgain bool      `json:"would_order_again"`
	CreatedAt       time.Time `json:"created_at"`
}

// Converters
func (d CreateReviewDTO) ToModel() models.Review {
	m := models.Review{
		RestaurantName:  d.RestaurantName,
		DishName:        d.DishName,
		DishType:        d.DishType,
		Price:           d.Price,
		Notes:           d.Notes,
		Location:        d.Location,
		WouldOrderAgain: true,
	}
	if d.Rating != nil {
		m.Rating = *d.Rating
	}
	if d.WouldOrderAgain != nil {
		m.WouldOrderAgain = *d.WouldOrderAgain
	}
	return m
}

// ApplyTo overwrites only the fields present in the request. VisitDate is
// handled by the service since it needs parsing.
func (d UpdateReviewDTO) ApplyTo(m *models.Review) {
	if d.RestaurantName != nil {
		m.RestaurantName = *d.RestaurantName
	}
	if d.DishName != nil {
		m.DishName = *d.DishName
	}
	if d.DishType != nil {
		m.DishType = d.DishType
	}
	if d.Rating != nil {
		m.Rating = *d.Rating
	}
	if d.Price != nil {
		m.Price = d.Price
	}
	if d.Notes != nil {
		m.Notes = d.Notes
	}
	if d.Location != nil {
		m.Location = d.Location
	}
	if d.WouldOrderAgain != nil {
		m.WouldOrderAgain = *d.WouldOrderAgain
	}
}

func FromModelToResponse(m models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:              m.ID,
		RestaurantName:  m.RestaurantName,
		DishName:        m.DishName,
		DishType:        m.DishType,
		Rating:          m.Rating,
		Price:           m.Price,
		Notes:           m.Notes,
		Location:        m.Location,
		WouldOrderAgain: m.WouldOrderAgain,
		CreatedAt:       m.CreatedAt,
	}
	if m.VisitDate != nil {
		date := m.VisitDate.Format("2006-01-02")
		resp.VisitDate = &date
	}
	return resp
}
