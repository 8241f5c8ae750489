// Package repository is the data store client for reviews and comments.
//
// Writes that follow an ownership check take the stored credential read
// during that check and only apply while it is still the stored value, so a
// row changed or removed in between reports ErrNotFound instead of being
// overwritten.
package repository

import (
	"context"
	"errors"

	"github.com/princeprakhar/book-reviews/internal/models"
)

var ErrNotFound = errors.New("record not found")

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	// List returns every review with only the summary columns populated.
	List(ctx context.Context) ([]models.Review, error)
	Get(ctx context.Context, id uint) (models.Review, error)
	Update(ctx context.Context, review models.Review, currentPassword string) error
	Delete(ctx context.Context, id uint, currentPassword string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	List(ctx context.Context) ([]models.Comment, error)
	ListByReview(ctx context.Context, reviewID uint) ([]models.Comment, error)
	Get(ctx context.Context, id uint) (models.Comment, error)
	UpdateContent(ctx context.Context, id uint, content, currentPassword string) error
	Delete(ctx context.Context, id uint, currentPassword string) error
}
