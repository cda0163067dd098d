package repository

import (
	"context"
	"fmt"

	"dimsumhub/internal/http-api/models"

	"gorm.io/gorm"
)

// GroupCount is one row of a GROUP BY aggregate (restaurant or dish type).
type GroupCount struct {
	Key   string
	Count int64
}

type ReviewRepository interface {
	List(ctx context.Context, search string) ([]models.Review, error)
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	Create(ctx context.Context, rev *models.Review) error
	Update(ctx context.Context, rev *models.Review) error
	Delete(ctx context.Context, id int64) error

	CountAll(ctx context.Context) (int64, error)
	AverageRating(ctx context.Context) (float64, error)
	AveragePrice(ctx context.Context) (float64, error)
	CountWouldOrderAgain(ctx context.Context, again bool) (int64, error)
	CountByRestaurant(ctx context.Context) ([]GroupCount, error)
	CountByDishType(ctx context.Context) ([]GroupCount, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// List returns reviews newest first. A non-empty search term performs a
// case-insensitive substring match on restaurant_name, dish_name and dish_type.
// COALESCE keeps NULL dish_type rows from dropping out of the ILIKE.
func (r *reviewRepository) List(ctx context.Context, search string) ([]models.Review, error) {
	var list []models.Review
	db := r.db.WithContext(ctx)

	if search != "" {
		p := "%" + search + "%"
		db = db.Where(
			"restaurant_name ILIKE ? OR dish_name ILIKE ? OR COALESCE(dish_type,'') ILIKE ?",
			p, p, p,
		)
	}

	if err := db.Order("created_at desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return list, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var rev models.Review
	if err := r.db.WithContext(ctx).First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *reviewRepository) Create(ctx context.Context, rev *models.Review) error {
	if err := r.db.WithContext(ctx).Create(rev).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	// GORM populates rev.ID and rev.CreatedAt
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, rev *models.Review) error {
	if err := r.db.WithContext(ctx).Save(rev).Error; err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).Count(&count).Error
	return count, err
}

func (r *reviewRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

// AveragePrice averages only the non-NULL prices; all-NULL yields 0.
func (r *reviewRepository) AveragePrice(ctx context.Context) (float64, error) {
	var avg struct {
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("COALESCE(AVG(price), 0) as average").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	return avg.Average, nil
}

func (r *reviewRepository) CountWouldOrderAgain(ctx context.Context, again bool) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("would_order_again = ?", again).
		Count(&count).Error
	return count, err
}

func (r *reviewRepository) CountByRestaurant(ctx context.Context) ([]GroupCount, error) {
	var groups []GroupCount
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("restaurant_name as key, COUNT(id) as count").
		Where("restaurant_name <> ''").
		Group("restaurant_name").
		Scan(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("count by restaurant: %w", err)
	}
	return groups, nil
}

func (r *reviewRepository) CountByDishType(ctx context.Context) ([]GroupCount, error) {
	var groups []GroupCount
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("dish_type as key, COUNT(id) as count").
		Where("dish_type IS NOT NULL AND dish_type <> ''").
		Group("dish_type").
		Scan(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("count by dish type: %w", err)
	}
	return groups, nil
}
