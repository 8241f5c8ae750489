package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/princeprakhar/book-reviews/internal/models"
	"github.com/princeprakhar/book-reviews/internal/repository"
	"github.com/princeprakhar/book-reviews/internal/utils"
)

type ReviewService struct {
	reviews    repository.ReviewRepository
	credential utils.Credential
}

func NewReviewService(reviews repository.ReviewRepository, credential utils.Credential) *ReviewService {
	if reviews == nil {
		panic("review repository cannot be nil")
	}
	if credential == nil {
		credential = utils.PlaintextCredential{}
	}
	return &ReviewService{reviews: reviews, credential: credential}
}

type CreateReviewRequest struct {
	BookTitle  string `json:"bookTitle" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	StarRating int    `json:"starRating" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type UpdateReviewRequest struct {
	BookTitle  string `json:"bookTitle" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	StarRating int    `json:"starRating" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type DeleteReviewRequest struct {
	Password string `json:"password" validate:"required"`
}

func (s *ReviewService) CreateReview(ctx context.Context, req CreateReviewRequest) (*models.Review, error) {
	if err := validateRequest(ctx, req); err != nil {
		return nil, err
	}

	sealed, err := s.credential.Seal(req.Password)
	if err != nil {
		return nil, err
	}

	review := models.Review{
		BookTitle:  req.BookTitle,
		Title:      req.Title,
		Content:    req.Content,
		StarRating: req.StarRating,
		Author:     req.Author,
		Password:   sealed,
	}
	if err := s.reviews.Create(ctx, &review); err != nil {
		return nil, err
	}

	return &review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]models.ReviewSummary, error) {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ReviewSummary, 0, len(reviews))
	for _, r := range reviews {
		summaries = append(summaries, r.Summary())
	}
	return summaries, nil
}

func (s *ReviewService) GetReview(ctx context.Context, id uint) (*models.ReviewDetail, error) {
	review, err := findReview(ctx, s.reviews, id)
	if err != nil {
		return nil, err
	}

	detail := review.Detail()
	return &detail, nil
}

// UpdateReview checks, in order: every field is present, the review exists,
// the password matches. Then all mutable fields are replaced.
func (s *ReviewService) UpdateReview(ctx context.Context, id uint, req UpdateReviewRequest) error {
	if err := validateRequest(ctx, req); err != nil {
		return err
	}

	review, err := findReview(ctx, s.reviews, id)
	if err != nil {
		return err
	}
	if !s.credential.Matches(review.Password, req.Password) {
		return ErrPasswordMismatch
	}

	sealed, err := s.credential.Seal(req.Password)
	if err != nil {
		return err
	}

	current := review.Password
	review.BookTitle = req.BookTitle
	review.Title = req.Title
	review.Content = req.Content
	review.StarRating = req.StarRating
	review.Password = sealed

	return reviewWriteError(id, s.reviews.Update(ctx, review, current))
}

// DeleteReview removes only the review. Its comments stay behind.
func (s *ReviewService) DeleteReview(ctx context.Context, id uint, req DeleteReviewRequest) error {
	if err := validateRequest(ctx, req); err != nil {
		return err
	}

	review, err := findReview(ctx, s.reviews, id)
	if err != nil {
		return err
	}
	if !s.credential.Matches(review.Password, req.Password) {
		return ErrPasswordMismatch
	}

	return reviewWriteError(id, s.reviews.Delete(ctx, id, review.Password))
}

func findReview(ctx context.Context, reviews repository.ReviewRepository, id uint) (models.Review, error) {
	review, err := reviews.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Review{}, fmt.Errorf("%w: %d", ErrReviewNotFound, id)
	}
	return review, err
}

// reviewWriteError reports a guarded write that matched no row as a missing
// review: it was changed or removed after the ownership check.
func reviewWriteError(id uint, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrReviewNotFound, id)
	}
	return err
}
