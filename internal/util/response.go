package util

import (
	"errors"
	"mathquest_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResponse 分页响应结构
type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// DomainError 把引擎的领域错误映射成可区分的 HTTP 响应
// 前端依赖具体的 message 展示对应提示，不能塌缩成笼统的失败
func DomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrStudentNotFound),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrBadgeNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyPlaced),
		errors.Is(err, ErrDuplicateAttempt),
		errors.Is(err, ErrAlreadyOwned),
		errors.Is(err, ErrAlreadyCheckedIn),
		errors.Is(err, ErrOutOfStock),
		errors.Is(err, ErrBadgeCriteriaLocked):
		Conflict(c, err.Error())
	case errors.Is(err, ErrInsufficientPoints),
		errors.Is(err, ErrPlacementRequired),
		errors.Is(err, ErrUnknownSkill):
		BadRequest(c, err.Error())
	default:
		LogInternalError(c, err)
	}
}
