package service

import (
	"context"
	"testing"

	"dimsumhub/internal/http-api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsOverview(t *testing.T) {
	repo := newFakeReviewRepo()
	reviews := NewReviewService(repo)
	stats := NewStatsService(repo)
	ctx := context.Background()

	_, err := reviews.Create(ctx, dto.CreateReviewDTO{
		RestaurantName: "Golden Dragon", DishName: "Har Gow",
		DishType: strPtr("steamed"), Rating: intPtr(3), Price: floatPtr(6.00),
	})
	require.NoError(t, err)
	_, err = reviews.Create(ctx, dto.CreateReviewDTO{
		RestaurantName: "Golden Dragon", DishName: "Siu Mai",
		DishType: strPtr("steamed"), Rating: intPtr(4), Price: floatPtr(5.50),
	})
	require.NoError(t, err)
	_, err = reviews.Create(ctx, dto.CreateReviewDTO{
		RestaurantName: "Jade Palace", DishName: "Egg Tart",
		DishType: strPtr("baked"), Rating: intPtr(5),
		WouldOrderAgain: boolPtr(false),
	})
	require.NoError(t, err)

	out, err := stats.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalItems)
	assert.Equal(t, 4.0, out.AverageRating)
	assert.Equal(t, 5.75, out.AveragePrice) // only the two priced records count
	assert.Equal(t, int64(2), out.Winners)
	assert.Equal(t, int64(1), out.Losers)

	var restaurantTotal int64
	for _, r := range out.Restaurants {
		restaurantTotal += r.Count
	}
	assert.Equal(t, int64(3), restaurantTotal)
	assert.Len(t, out.Restaurants, 2)

	byType := make(map[string]int64)
	for _, d := range out.DishTypes {
		byType[d.Type] = d.Count
	}
	assert.Equal(t, int64(2), byType["steamed"])
	assert.Equal(t, int64(1), byType["baked"])
}

func TestStatsOverview_Empty(t *testing.T) {
	stats := NewStatsService(newFakeReviewRepo())

	out, err := stats.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.TotalItems)
	assert.Equal(t, 0.0, out.AverageRating)
	assert.Equal(t, 0.0, out.AveragePrice)
	assert.Equal(t, int64(0), out.Winners)
	assert.Equal(t, int64(0), out.Losers)
	assert.Empty(t, out.Restaurants)
	assert.Empty(t, out.DishTypes)
}

func TestStatsOverview_AveragesRoundedToTwoDecimals(t *testing.T) {
	repo := newFakeReviewRepo()
	reviews := NewReviewService(repo)
	stats := NewStatsService(repo)
	ctx := context.Background()

	for _, price := range []float64{3.33, 3.33, 3.35} {
		_, err := reviews.Create(ctx, dto.CreateReviewDTO{
			RestaurantName: "Golden Dragon", DishName: "Har Gow",
			Rating: intPtr(1), Price: floatPtr(price),
		})
		require.NoError(t, err)
	}

	out, err := stats.Overview(ctx)
	require.NoError(t, err)

	// 10.01 / 3 = 3.33666... -> 3.34
	assert.Equal(t, 3.34, out.AveragePrice)
	assert.Equal(t, 1.0, out.AverageRating)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.0, round2(4.0))
	assert.Equal(t, 3.34, round2(3.336666))
	assert.Equal(t, 3.33, round2(3.3333))
	assert.Equal(t, 0.0, round2(0))
}
