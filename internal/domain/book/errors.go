package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrInvalidPage 页码非法(必须为正整数)
	ErrInvalidPage = apperrors.New(apperrors.ErrCodeInvalidParams, "page必须为正整数")

	// ErrInvalidPageSize 每页数量非法(必须为正整数)
	ErrInvalidPageSize = apperrors.New(apperrors.ErrCodeInvalidParams, "pageSize必须为正整数")

	// ErrInvalidPageCount 页数为负
	ErrInvalidPageCount = apperrors.New(apperrors.ErrCodeInvalidParams, "页数不能为负数")

	// ErrInvalidPrice 价格为负
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")
)

// NewStorageError 存储层错误(连接失败、查询失败等),对外统一表现为HTTP 500
func NewStorageError(err error, message string) *apperrors.AppError {
	return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, message)
}
