package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/princeprakhar/book-reviews/internal/models"
	"gorm.io/gorm"
)

var reviewSummaryColumns = []string{"id", "book_title", "title", "author", "star_rating", "created_at", "updated_at"}

type GormReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *GormReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	err := r.db.WithContext(ctx).
		Select(reviewSummaryColumns).
		Order("id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *GormReviewRepository) Get(ctx context.Context, id uint) (models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Review{}, fmt.Errorf("review %d: %w", id, ErrNotFound)
		}
		return models.Review{}, fmt.Errorf("failed to get review %d: %w", id, err)
	}
	return review, nil
}

func (r *GormReviewRepository) Update(ctx context.Context, review models.Review, currentPassword string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ? AND password = ?", review.ID, currentPassword).
		Updates(map[string]any{
			"book_title":  review.BookTitle,
			"title":       review.Title,
			"content":     review.Content,
			"star_rating": review.StarRating,
			"password":    review.Password,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update review %d: %w", review.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %d: %w", review.ID, ErrNotFound)
	}
	return nil
}

func (r *GormReviewRepository) Delete(ctx context.Context, id uint, currentPassword string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND password = ?", id, currentPassword).
		Delete(&models.Review{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %d: %w", id, ErrNotFound)
	}
	return nil
}
