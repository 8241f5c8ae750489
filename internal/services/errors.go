package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrReviewNotFound   = errors.New("review not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrPasswordMismatch = errors.New("password does not match")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs the `validate` tags of a request struct. A failure
// wraps both ErrInvalidInput and the validator.ValidationErrors.
func validateRequest(ctx context.Context, req any) error {
	if err := validate.StructCtx(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

type Option func(*options)

type options struct {
	legacyCompat bool
}

// WithLegacyCompat makes the comment operations behave like the original
// service: comment listing ignores the review, and comments are not checked
// to belong to the review in the path.
func WithLegacyCompat(enabled bool) Option {
	return func(o *options) {
		o.legacyCompat = enabled
	}
}
