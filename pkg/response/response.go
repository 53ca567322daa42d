package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// LoggerKey 请求级logger在gin.Context中的键(由日志中间件写入)
const LoggerKey = "logger"

// ErrorBody 错误响应结构
// Code是业务错误码(非HTTP状态码),HTTP状态码由错误码映射
type ErrorBody struct {
	Code    int    `json:"code" example:"40900"`
	Message string `json:"message" example:"page必须为正整数"`
}

// Success 成功响应,直接输出数据本身
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应(自动处理AppError)
// 用法:
//
//	resp, err := uc.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// 内部错误只写日志,不返回给客户端
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	log := Logger(c)
	if status >= http.StatusInternalServerError {
		log.Error("请求失败", zap.Int("code", appErr.Code), zap.Error(appErr.Err))
	} else if appErr.Err != nil {
		log.Debug("请求参数错误", zap.Int("code", appErr.Code), zap.Error(appErr.Err))
	}

	_ = c.Error(err)
	c.JSON(status, ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

// Logger 取请求级logger,未设置时返回全局logger
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if log, ok := v.(*zap.Logger); ok {
			return log
		}
	}
	return zap.L()
}
