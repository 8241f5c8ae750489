package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/princeprakhar/book-reviews/internal/models"
)

type reviewRepositoryMock struct {
	mock.Mock
}

func (m *reviewRepositoryMock) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *reviewRepositoryMock) List(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *reviewRepositoryMock) Get(ctx context.Context, id uint) (models.Review, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Review), args.Error(1)
}

func (m *reviewRepositoryMock) Update(ctx context.Context, review models.Review, currentPassword string) error {
	args := m.Called(ctx, review, currentPassword)
	return args.Error(0)
}

func (m *reviewRepositoryMock) Delete(ctx context.Context, id uint, currentPassword string) error {
	args := m.Called(ctx, id, currentPassword)
	return args.Error(0)
}

type commentRepositoryMock struct {
	mock.Mock
}

func (m *commentRepositoryMock) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *commentRepositoryMock) List(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *commentRepositoryMock) ListByReview(ctx context.Context, reviewID uint) ([]models.Comment, error) {
	args := m.Called(ctx, reviewID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *commentRepositoryMock) Get(ctx context.Context, id uint) (models.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *commentRepositoryMock) UpdateContent(ctx context.Context, id uint, content, currentPassword string) error {
	args := m.Called(ctx, id, content, currentPassword)
	return args.Error(0)
}

func (m *commentRepositoryMock) Delete(ctx context.Context, id uint, currentPassword string) error {
	args := m.Called(ctx, id, currentPassword)
	return args.Error(0)
}

func newMocks(t *testing.T) (*reviewRepositoryMock, *commentRepositoryMock) {
	t.Helper()
	reviews, comments := new(reviewRepositoryMock), new(commentRepositoryMock)
	reviews.Test(t)
	comments.Test(t)
	t.Cleanup(func() {
		reviews.AssertExpectations(t)
		comments.AssertExpectations(t)
	})
	return reviews, comments
}
