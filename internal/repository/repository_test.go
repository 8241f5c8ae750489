package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/princeprakhar/book-reviews/internal/models"
	"github.com/princeprakhar/book-reviews/internal/repository"
)

type storeFactory func(t *testing.T) (repository.ReviewRepository, repository.CommentRepository)

// RepositoryTest is the contract every data store client implementation has to
// satisfy, so the in-memory stores can stand in for GORM in handler tests.
func RepositoryTest(t *testing.T, ctx context.Context, newStores storeFactory) {
	validReview := func() models.Review {
		return models.Review{
			BookTitle:  "X",
			Title:      "Y",
			Content:    "Z",
			StarRating: 5,
			Author:     "A",
			Password:   "p",
		}
	}

	t.Run("Reviews", func(t *testing.T) {
		t.Run("Create assigns an id and timestamps, and Get returns the same fields", func(t *testing.T) {
			reviews, _ := newStores(t)
			review := validReview()

			require.NoError(t, reviews.Create(ctx, &review))
			require.NotZero(t, review.ID, "expected the store to assign an id")
			require.False(t, review.CreatedAt.IsZero(), "expected createdAt to be set")
			require.False(t, review.UpdatedAt.IsZero(), "expected updatedAt to be set")

			actual, err := reviews.Get(ctx, review.ID)
			require.NoError(t, err)
			require.Equal(t, review.ID, actual.ID)
			require.Equal(t, "X", actual.BookTitle)
			require.Equal(t, "Y", actual.Title)
			require.Equal(t, "Z", actual.Content)
			require.Equal(t, 5, actual.StarRating)
			require.Equal(t, "A", actual.Author)
			require.Equal(t, "p", actual.Password)
		})

		t.Run("Get on a missing id returns ErrNotFound", func(t *testing.T) {
			reviews, _ := newStores(t)

			_, err := reviews.Get(ctx, 1_000)
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		t.Run("List returns every review in id order without content or password", func(t *testing.T) {
			reviews, _ := newStores(t)
			first, second := validReview(), validReview()
			second.Title = "second"
			require.NoError(t, reviews.Create(ctx, &first))
			require.NoError(t, reviews.Create(ctx, &second))

			all, err := reviews.List(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			require.Equal(t, first.ID, all[0].ID)
			require.Equal(t, "second", all[1].Title)
			for _, r := range all {
				require.Empty(t, r.Content, "expected content to not be loaded for the listing")
				require.Empty(t, r.Password, "expected password to not be loaded for the listing")
			}
		})

		t.Run("List on an empty store is an empty slice", func(t *testing.T) {
			reviews, _ := newStores(t)

			all, err := reviews.List(ctx)
			require.NoError(t, err)
			require.NotNil(t, all)
			require.Empty(t, all)
		})

		t.Run("Update overwrites the mutable fields when the stored password still matches", func(t *testing.T) {
			reviews, _ := newStores(t)
			review := validReview()
			require.NoError(t, reviews.Create(ctx, &review))

			changed := review
			changed.BookTitle = "X2"
			changed.Title = "Y2"
			changed.Content = "Z2"
			changed.StarRating = 3
			changed.Password = "p2"
			require.NoError(t, reviews.Update(ctx, changed, "p"))

			actual, err := reviews.Get(ctx, review.ID)
			require.NoError(t, err)
			require.Equal(t, "X2", actual.BookTitle)
			require.Equal(t, "Y2", actual.Title)
			require.Equal(t, "Z2", actual.Content)
			require.Equal(t, 3, actual.StarRating)
			require.Equal(t, "p2", actual.Password)
			require.Equal(t, "A", actual.Author, "expected author to be left alone")
			require.False(t, actual.UpdatedAt.Before(actual.CreatedAt))
		})

		t.Run("Update with a stale password leaves the row alone", func(t *testing.T) {
			reviews, _ := newStores(t)
			review := validReview()
			require.NoError(t, reviews.Create(ctx, &review))

			changed := review
			changed.Title = "hijacked"
			err := reviews.Update(ctx, changed, "not-the-password")
			require.ErrorIs(t, err, repository.ErrNotFound)

			actual, err := reviews.Get(ctx, review.ID)
			require.NoError(t, err)
			require.Equal(t, "Y", actual.Title)
		})

		t.Run("Delete removes the row only when the stored password matches", func(t *testing.T) {
			reviews, _ := newStores(t)
			review := validReview()
			require.NoError(t, reviews.Create(ctx, &review))

			require.ErrorIs(t, reviews.Delete(ctx, review.ID, "wrong"), repository.ErrNotFound)
			_, err := reviews.Get(ctx, review.ID)
			require.NoError(t, err, "expected the review to survive a mismatched delete")

			require.NoError(t, reviews.Delete(ctx, review.ID, "p"))
			_, err = reviews.Get(ctx, review.ID)
			require.ErrorIs(t, err, repository.ErrNotFound)

			require.ErrorIs(t, reviews.Delete(ctx, review.ID, "p"), repository.ErrNotFound, "expected a second delete to find nothing")
		})
	})

	t.Run("Comments", func(t *testing.T) {
		validComment := func(reviewID uint) models.Comment {
			return models.Comment{ReviewID: reviewID, Content: "nice", Author: "B", Password: "cp"}
		}

		t.Run("Create then Get returns the same fields", func(t *testing.T) {
			_, comments := newStores(t)
			comment := validComment(1)

			require.NoError(t, comments.Create(ctx, &comment))
			require.NotZero(t, comment.ID)

			actual, err := comments.Get(ctx, comment.ID)
			require.NoError(t, err)
			require.Equal(t, uint(1), actual.ReviewID)
			require.Equal(t, "nice", actual.Content)
			require.Equal(t, "B", actual.Author)
			require.Equal(t, "cp", actual.Password)
		})

		t.Run("Get on a missing id returns ErrNotFound", func(t *testing.T) {
			_, comments := newStores(t)

			_, err := comments.Get(ctx, 42)
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		t.Run("ListByReview only returns comments for that review, List returns all", func(t *testing.T) {
			_, comments := newStores(t)
			a1, a2, b1 := validComment(1), validComment(1), validComment(2)
			require.NoError(t, comments.Create(ctx, &a1))
			require.NoError(t, comments.Create(ctx, &b1))
			require.NoError(t, comments.Create(ctx, &a2))

			scoped, err := comments.ListByReview(ctx, 1)
			require.NoError(t, err)
			require.Len(t, scoped, 2)
			require.Equal(t, a1.ID, scoped[0].ID)
			require.Equal(t, a2.ID, scoped[1].ID)

			none, err := comments.ListByReview(ctx, 3)
			require.NoError(t, err)
			require.NotNil(t, none)
			require.Empty(t, none)

			all, err := comments.List(ctx)
			require.NoError(t, err)
			require.Len(t, all, 3)
		})

		t.Run("UpdateContent changes the content when the stored password matches", func(t *testing.T) {
			_, comments := newStores(t)
			comment := validComment(1)
			require.NoError(t, comments.Create(ctx, &comment))

			require.ErrorIs(t, comments.UpdateContent(ctx, comment.ID, "nope", "wrong"), repository.ErrNotFound)
			require.NoError(t, comments.UpdateContent(ctx, comment.ID, "edited", "cp"))

			actual, err := comments.Get(ctx, comment.ID)
			require.NoError(t, err)
			require.Equal(t, "edited", actual.Content)
			require.Equal(t, "cp", actual.Password)
		})

		t.Run("Delete removes the comment when the stored password matches", func(t *testing.T) {
			_, comments := newStores(t)
			comment := validComment(1)
			require.NoError(t, comments.Create(ctx, &comment))

			require.ErrorIs(t, comments.Delete(ctx, comment.ID, "wrong"), repository.ErrNotFound)
			require.NoError(t, comments.Delete(ctx, comment.ID, "cp"))

			_, err := comments.Get(ctx, comment.ID)
			require.ErrorIs(t, err, repository.ErrNotFound)
		})

		t.Run("deleting a review leaves its comments in place", func(t *testing.T) {
			reviews, comments := newStores(t)
			review := validReview()
			require.NoError(t, reviews.Create(ctx, &review))
			comment := validComment(review.ID)
			require.NoError(t, comments.Create(ctx, &comment))

			require.NoError(t, reviews.Delete(ctx, review.ID, "p"))

			orphaned, err := comments.ListByReview(ctx, review.ID)
			require.NoError(t, err)
			require.Len(t, orphaned, 1)
		})
	})
}
