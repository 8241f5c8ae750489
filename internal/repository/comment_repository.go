package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/princeprakhar/book-reviews/internal/models"
	"gorm.io/gorm"
)

type GormCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *GormCommentRepository) List(ctx context.Context) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (r *GormCommentRepository) ListByReview(ctx context.Context, reviewID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for review %d: %w", reviewID, err)
	}
	return comments, nil
}

func (r *GormCommentRepository) Get(ctx context.Context, id uint) (models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Comment{}, fmt.Errorf("comment %d: %w", id, ErrNotFound)
		}
		return models.Comment{}, fmt.Errorf("failed to get comment %d: %w", id, err)
	}
	return comment, nil
}

func (r *GormCommentRepository) UpdateContent(ctx context.Context, id uint, content, currentPassword string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND password = ?", id, currentPassword).
		Updates(map[string]any{
			"content":    content,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update comment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *GormCommentRepository) Delete(ctx context.Context, id uint, currentPassword string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND password = ?", id, currentPassword).
		Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	return nil
}
