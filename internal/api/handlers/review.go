package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/book-reviews/internal/services"
	"github.com/princeprakhar/book-reviews/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
	legacy        bool
}

func NewReviewHandler(reviewService *services.ReviewService, legacy bool) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, legacy: legacy}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req services.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), req)
	if err != nil {
		sendServiceError(c, h.legacy, err)
		return
	}

	utils.SendData(c, http.StatusCreated, review)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		sendServiceError(c, h.legacy, err)
		return
	}

	utils.SendData(c, http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		if h.legacy && errors.Is(err, services.ErrReviewNotFound) {
			utils.SendData(c, http.StatusOK, nil)
			return
		}
		sendServiceError(c, h.legacy, err)
		return
	}

	utils.SendData(c, http.StatusOK, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}

	var req services.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.reviewService.UpdateReview(c.Request.Context(), reviewID, req); err != nil {
		sendServiceError(c, h.legacy, err)
		return
	}

	utils.SendData(c, http.StatusOK, MsgReviewUpdated)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}

	var req services.DeleteReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), reviewID, req); err != nil {
		sendServiceError(c, h.legacy, err)
		return
	}

	utils.SendData(c, http.StatusOK, MsgReviewDeleted)
}
