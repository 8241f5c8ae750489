package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/book-reviews/internal/models"
	"github.com/princeprakhar/book-reviews/internal/services"
	"github.com/princeprakhar/book-reviews/internal/utils"
)

type CommentHandler struct {
	commentService *services.CommentService
	legacy         bool
}

func NewCommentHandler(commentService *services.CommentService, legacy bool) *CommentHandler {
	return &CommentHandler{commentService: commentService, legacy: legacy}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}

	var req services.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), reviewID, req)
	if err != nil {
		sendServiceError(c, h.legacy, err)
		return
	}

	utils.SendData(c, http.StatusCreated, comment)
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), reviewID)
	if err != nil {
		sendServiceError(c, h.legacy, err)
		return
	}

	if h.legacy {
		views := make([]models.LegacyCommentView, 0, len(comments))
		for _, comment := range comments {
			views = append(views, comment.LegacyView())
		}
		utils.SendData(c, http.StatusOK, views)
		return
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, comment.View())
	}
	utils.SendData(c, http.StatusOK, views)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var req services.UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.commentService.UpdateComment(c.Request.Context(), reviewID, commentID, req); err != nil {
		if h.legacy && errors.Is(err, services.ErrCommentNotFound) {
			utils.SendError(c, http.StatusBadRequest, MsgCommentMissing)
			return
		}
		sendServiceError(c, h.legacy, err)
		return
	}

	utils.SendData(c, http.StatusOK, MsgCommentUpdated)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var req services.DeleteCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), reviewID, commentID, req); err != nil {
		sendServiceError(c, h.legacy, err)
		return
	}

	utils.SendData(c, http.StatusOK, MsgCommentDeleted)
}
