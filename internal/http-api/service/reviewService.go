package service

import (
	"context"
	"errors"
	"time"

	"dimsumhub/internal/http-api/dto"
	"dimsumhub/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	// ErrReviewNotFound means the requested id does not exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrInvalidVisitDate means visit_date could not be parsed as a date.
	ErrInvalidVisitDate = errors.New("invalid visit_date")
)

type ReviewService interface {
	List(ctx context.Context, search string) ([]dto.ReviewResponse, error)
	Get(ctx context.Context, id int64) (*dto.ReviewResponse, error)
	Create(ctx context.Context, in dto.CreateReviewDTO) (*dto.ReviewResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateReviewDTO) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, id int64) error
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) List(ctx context.Context, search string) ([]dto.ReviewResponse, error) {
	reviews, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		resp = append(resp, dto.FromModelToResponse(rev))
	}
	return resp, nil
}

func (s *reviewService) Get(ctx context.Context, id int64) (*dto.ReviewResponse, error) {
	rev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	resp := dto.FromModelToResponse(*rev)
	return &resp, nil
}

func (s *reviewService) Create(ctx context.Context, in dto.CreateReviewDTO) (*dto.ReviewResponse, error) {
	rev := in.ToModel()

	if in.VisitDate != nil && *in.VisitDate != "" {
		date, err := parseVisitDate(*in.VisitDate)
		if err != nil {
			return nil, err
		}
		rev.VisitDate = date
	}

	if err := s.repo.Create(ctx, &rev); err != nil {
		return nil, err
	}

	resp := dto.FromModelToResponse(rev)
	return &resp, nil
}

// Update only overwrites fields present in the request; id and created_at are
// never touched.
func (s *reviewService) Update(ctx context.Context, id int64, in dto.UpdateReviewDTO) (*dto.ReviewResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	in.ApplyTo(existing)

	if in.VisitDate != nil && *in.VisitDate != "" {
		date, err := parseVisitDate(*in.VisitDate)
		if err != nil {
			return nil, err
		}
		existing.VisitDate = date
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	resp := dto.FromModelToResponse(*existing)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

// parseVisitDate accepts a plain ISO date or a full timestamp truncated to its
// date part.
func parseVisitDate(s string) (*time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, ErrInvalidVisitDate
	}
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &date, nil
}
