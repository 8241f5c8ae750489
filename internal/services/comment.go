package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/princeprakhar/book-reviews/internal/models"
	"github.com/princeprakhar/book-reviews/internal/repository"
	"github.com/princeprakhar/book-reviews/internal/utils"
)

type CommentService struct {
	comments     repository.CommentRepository
	reviews      repository.ReviewRepository
	credential   utils.Credential
	legacyCompat bool
}

func NewCommentService(
	comments repository.CommentRepository,
	reviews repository.ReviewRepository,
	credential utils.Credential,
	opts ...Option,
) *CommentService {
	if comments == nil || reviews == nil {
		panic("comment and review repositories cannot be nil")
	}
	if credential == nil {
		credential = utils.PlaintextCredential{}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &CommentService{
		comments:     comments,
		reviews:      reviews,
		credential:   credential,
		legacyCompat: o.legacyCompat,
	}
}

type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type DeleteCommentRequest struct {
	Password string `json:"password" validate:"required"`
}

func (s *CommentService) CreateComment(ctx context.Context, reviewID uint, req CreateCommentRequest) (*models.Comment, error) {
	if err := validateRequest(ctx, req); err != nil {
		return nil, err
	}
	if _, err := findReview(ctx, s.reviews, reviewID); err != nil {
		return nil, err
	}

	sealed, err := s.credential.Seal(req.Password)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ReviewID: reviewID,
		Content:  req.Content,
		Author:   req.Author,
		Password: sealed,
	}
	if err := s.comments.Create(ctx, &comment); err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListComments returns the comments of a review. In legacy mode it returns
// every comment in the store and does not look the review up.
func (s *CommentService) ListComments(ctx context.Context, reviewID uint) ([]models.Comment, error) {
	if s.legacyCompat {
		return s.comments.List(ctx)
	}

	if _, err := findReview(ctx, s.reviews, reviewID); err != nil {
		return nil, err
	}
	return s.comments.ListByReview(ctx, reviewID)
}

// UpdateComment checks, in order: content and password are present, the
// comment exists, the review exists, the password matches.
func (s *CommentService) UpdateComment(ctx context.Context, reviewID, commentID uint, req UpdateCommentRequest) error {
	if err := validateRequest(ctx, req); err != nil {
		return err
	}

	comment, err := s.findComment(ctx, reviewID, commentID)
	if err != nil {
		return err
	}
	if _, err := findReview(ctx, s.reviews, reviewID); err != nil {
		return err
	}
	if !s.credential.Matches(comment.Password, req.Password) {
		return ErrPasswordMismatch
	}

	return commentWriteError(commentID, s.comments.UpdateContent(ctx, commentID, req.Content, comment.Password))
}

// DeleteComment checks, in order: the password is present, the review
// exists, the comment exists, the password matches.
func (s *CommentService) DeleteComment(ctx context.Context, reviewID, commentID uint, req DeleteCommentRequest) error {
	if err := validateRequest(ctx, req); err != nil {
		return err
	}

	if _, err := findReview(ctx, s.reviews, reviewID); err != nil {
		return err
	}
	comment, err := s.findComment(ctx, reviewID, commentID)
	if err != nil {
		return err
	}
	if !s.credential.Matches(comment.Password, req.Password) {
		return ErrPasswordMismatch
	}

	return commentWriteError(commentID, s.comments.Delete(ctx, commentID, comment.Password))
}

func (s *CommentService) findComment(ctx context.Context, reviewID, commentID uint) (models.Comment, error) {
	comment, err := s.comments.Get(ctx, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Comment{}, fmt.Errorf("%w: %d", ErrCommentNotFound, commentID)
	}
	if err != nil {
		return models.Comment{}, err
	}

	if !s.legacyCompat && comment.ReviewID != reviewID {
		return models.Comment{}, fmt.Errorf("%w: %d does not belong to review %d", ErrCommentNotFound, commentID, reviewID)
	}
	return comment, nil
}

func commentWriteError(id uint, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrCommentNotFound, id)
	}
	return err
}
