package dto

import "dimsumhub/internal/http-api/repository"

// RestaurantCount is one row of the per-restaurant breakdown.
type RestaurantCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DishTypeCount is one row of the per-dish-type breakdown.
type DishTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// StatsResponse for GET /api/stats
type StatsResponse struct {
	TotalItems    int64             `json:"total_items"`
	AverageRating float64           `json:"average_rating"`
	AveragePrice  float64           `json:"average_price"`
	Winners       int64             `json:"winners"`
	Losers        int64             `json:"losers"`
	Restaurants   []RestaurantCount `json:"restaurants"`
	DishTypes     []DishTypeCount   `json:"dish_types"`
}

func FromGroupToRestaurantCounts(groups []repository.GroupCount) []RestaurantCount {
	out := make([]RestaurantCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, RestaurantCount{Name: g.Key, Count: g.Count})
	}
	return out
}

func FromGroupToDishTypeCounts(groups []repository.GroupCount) []DishTypeCount {
	out := make([]DishTypeCount, 0, len(groups))
	for _, g := range groups {
		out = append(out, DishTypeCount{Type: g.Key, Count: g.Count})
	}
	return out
}
