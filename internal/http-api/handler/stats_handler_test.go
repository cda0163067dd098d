package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dimsumhub/internal/http-api/dto"
	"dimsumhub/internal/http-api/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsService struct {
	overviewFn func(ctx context.Context) (*dto.StatsResponse, error)
}

func (s *stubStatsService) Overview(ctx context.Context) (*dto.StatsResponse, error) {
	return s.overviewFn(ctx)
}

func TestStatsOverviewEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubStatsService{
		overviewFn: func(_ context.Context) (*dto.StatsResponse, error) {
			return &dto.StatsResponse{
				TotalItems:    3,
				AverageRating: 4.0,
				AveragePrice:  5.75,
				Winners:       2,
				Losers:        1,
				Restaurants: []dto.RestaurantCount{
					{Name: "Golden Dragon", Count: 2},
					{Name: "Jade Palace", Count: 1},
				},
				DishTypes: []dto.DishTypeCount{
					{Type: "steamed", Count: 2},
				},
			}, nil
		},
	}

	r := gin.New()
	api := r.Group("/api")
	handler.NewStatsHandler(svc).RegisterRoutes(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.TotalItems)
	assert.Equal(t, 4.0, body.AverageRating)
	assert.Equal(t, 5.75, body.AveragePrice)
	assert.Equal(t, int64(2), body.Winners)
	assert.Equal(t, int64(1), body.Losers)
	assert.Len(t, body.Restaurants, 2)
	assert.Len(t, body.DishTypes, 1)
}

func TestStatsOverviewEndpoint_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubStatsService{
		overviewFn: func(_ context.Context) (*dto.StatsResponse, error) {
			return nil, errors.New("db down")
		},
	}

	r := gin.New()
	api := r.Group("/api")
	handler.NewStatsHandler(svc).RegisterRoutes(api)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
