package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/princeprakhar/book-reviews/internal/models"
)

// MemoryReviewRepository keeps reviews in a map. It is used by tests and
// behaves like the GORM implementation, including the summary-only List.
type MemoryReviewRepository struct {
	mu        sync.Mutex
	data      map[uint]models.Review
	currentID uint
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{data: make(map[uint]models.Review)}
}

func (s *MemoryReviewRepository) Create(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentID++
	now := time.Now()
	review.ID = s.currentID
	review.CreatedAt = now
	review.UpdatedAt = now
	s.data[review.ID] = *review

	return nil
}

func (s *MemoryReviewRepository) List(_ context.Context) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret := make([]models.Review, 0, len(s.data))
	for _, id := range slices.Sorted(maps.Keys(s.data)) {
		r := s.data[id]
		ret = append(ret, models.Review{
			ID:         r.ID,
			BookTitle:  r.BookTitle,
			Title:      r.Title,
			Author:     r.Author,
			StarRating: r.StarRating,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		})
	}

	return ret, nil
}

func (s *MemoryReviewRepository) Get(_ context.Context, id uint) (models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.data[id]
	if !ok {
		return models.Review{}, fmt.Errorf("review %d: %w", id, ErrNotFound)
	}
	return review, nil
}

func (s *MemoryReviewRepository) Update(_ context.Context, review models.Review, currentPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.data[review.ID]
	if !ok || stored.Password != currentPassword {
		return fmt.Errorf("review %d: %w", review.ID, ErrNotFound)
	}

	stored.BookTitle = review.BookTitle
	stored.Title = review.Title
	stored.Content = review.Content
	stored.StarRating = review.StarRating
	stored.Password = review.Password
	stored.UpdatedAt = time.Now()
	s.data[review.ID] = stored

	return nil
}

func (s *MemoryReviewRepository) Delete(_ context.Context, id uint, currentPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.data[id]
	if !ok || stored.Password != currentPassword {
		return fmt.Errorf("review %d: %w", id, ErrNotFound)
	}
	delete(s.data, id)

	return nil
}

type MemoryCommentRepository struct {
	mu        sync.Mutex
	data      map[uint]models.Comment
	currentID uint
}

func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{data: make(map[uint]models.Comment)}
}

func (s *MemoryCommentRepository) Create(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentID++
	now := time.Now()
	comment.ID = s.currentID
	comment.CreatedAt = now
	comment.UpdatedAt = now
	s.data[comment.ID] = *comment

	return nil
}

func (s *MemoryCommentRepository) List(_ context.Context) ([]models.Comment, error) {
	return s.filter(func(models.Comment) bool { return true }), nil
}

func (s *MemoryCommentRepository) ListByReview(_ context.Context, reviewID uint) ([]models.Comment, error) {
	return s.filter(func(c models.Comment) bool { return c.ReviewID == reviewID }), nil
}

func (s *MemoryCommentRepository) filter(keep func(models.Comment) bool) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret := make([]models.Comment, 0, len(s.data))
	for _, id := range slices.Sorted(maps.Keys(s.data)) {
		if c := s.data[id]; keep(c) {
			ret = append(ret, c)
		}
	}
	return ret
}

func (s *MemoryCommentRepository) Get(_ context.Context, id uint) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.data[id]
	if !ok {
		return models.Comment{}, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	return comment, nil
}

func (s *MemoryCommentRepository) UpdateContent(_ context.Context, id uint, content, currentPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.data[id]
	if !ok || stored.Password != currentPassword {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	stored.Content = content
	stored.UpdatedAt = time.Now()
	s.data[id] = stored

	return nil
}

func (s *MemoryCommentRepository) Delete(_ context.Context, id uint, currentPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.data[id]
	if !ok || stored.Password != currentPassword {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	delete(s.data, id)

	return nil
}
