package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/princeprakhar/book-reviews/internal/services"
	"github.com/princeprakhar/book-reviews/internal/utils"
	"github.com/princeprakhar/book-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	MsgInvalidInput     = "데이터 형식이 올바르지 않습니다."
	MsgReviewNotFound   = "존재하지 않는 리뷰입니다."
	MsgCommentNotFound  = "존재하지 않는 댓글입니다."
	MsgCommentMissing   = "댓글 내용을 입력해주세요." // legacy body for a missing comment on update
	MsgPasswordMismatch = "비밀번호가 일치하지 않습니다."

	MsgReviewUpdated  = "책 리뷰를 수정하였습니다."
	MsgReviewDeleted  = "게시글 삭제가 완료되었습니다."
	MsgCommentUpdated = "댓글을 수정하였습니다."
	MsgCommentDeleted = "댓글 삭제가 완료되었습니다."
)

// parseID reads a decimal path parameter. On failure it has already replied.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, MsgInvalidInput)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body. On failure it has already replied.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		requestLog(c).WithError(err).Debug("malformed request body")
		utils.SendError(c, http.StatusBadRequest, MsgInvalidInput)
		return false
	}
	return true
}

// sendServiceError maps the services error taxonomy onto status codes. Anything
// outside it is a store failure and is reported as 400 with the raw message.
func sendServiceError(c *gin.Context, legacy bool, err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		requestLog(c).WithField("fields", fields).Debug("missing required fields")
		utils.SendError(c, http.StatusBadRequest, MsgInvalidInput)
	case errors.Is(err, services.ErrInvalidInput):
		utils.SendError(c, http.StatusBadRequest, MsgInvalidInput)
	case errors.Is(err, services.ErrReviewNotFound):
		utils.SendError(c, http.StatusNotFound, MsgReviewNotFound)
	case errors.Is(err, services.ErrCommentNotFound):
		utils.SendError(c, http.StatusNotFound, MsgCommentNotFound)
	case errors.Is(err, services.ErrPasswordMismatch):
		if legacy {
			utils.SendLegacyError(c, http.StatusUnauthorized, MsgPasswordMismatch)
			return
		}
		utils.SendError(c, http.StatusUnauthorized, MsgPasswordMismatch)
	default:
		requestLog(c).WithError(err).Error("store operation failed")
		utils.SendError(c, http.StatusBadRequest, err.Error())
	}
}

func requestLog(c *gin.Context) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"method":     c.Request.Method,
		"path":       c.FullPath(),
	})
}
