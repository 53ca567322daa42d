package book

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "book.application"

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 负责参数默认值、排序字段/方向解析,再交给领域服务查询
// 2. HTTP和gRPC共用同一个用例
// 3. 记录查询指标和Span
type ListBooksUseCase struct {
	bookService book.Service
	defaults    config.ListingConfig
	metrics     *metrics.Metrics
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, cfg *config.Config, m *metrics.Metrics) *ListBooksUseCase {
	defaults := cfg.Listing
	if defaults.DefaultPageSize < 1 {
		defaults.DefaultPageSize = 5
	}
	if defaults.DefaultSortField == "" {
		defaults.DefaultSortField = "Title"
	}
	if defaults.DefaultSortOrder == "" {
		defaults.DefaultSortOrder = "asc"
	}
	return &ListBooksUseCase{
		bookService: bookService,
		defaults:    defaults,
		metrics:     m,
	}
}

// ListBooksRequest 列表查询请求DTO
// 字段已经是最终值,非正数页码由领域服务拒绝
type ListBooksRequest struct {
	Page      int    // 页码(从1开始)
	PageSize  int    // 每页数量
	SortField string // 排序字段,不区分大小写,未识别时按title
	SortOrder string // 只有asc(不区分大小写)是升序,其它都是降序
}

// BookItem 列表项DTO
type BookItem struct {
	ID             uint
	Title          string
	Author         string
	Publisher      string
	ISBN           string
	Category       string
	Classification string
	PageCount      int
	Price          decimal.Decimal
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	TotalBooks int64
	Books      []BookItem
}

// DefaultRequest 全部使用默认值的请求
func (uc *ListBooksUseCase) DefaultRequest() ListBooksRequest {
	return ListBooksRequest{
		Page:      1,
		PageSize:  uc.defaults.DefaultPageSize,
		SortField: uc.defaults.DefaultSortField,
		SortOrder: uc.defaults.DefaultSortOrder,
	}
}

// ParseQuery 从字符串参数构建请求(HTTP查询参数)
// 空字符串表示未传,使用默认值;page、pageSize不是整数时返回参数错误
func (uc *ListBooksUseCase) ParseQuery(page, pageSize, sortField, sortOrder string) (ListBooksRequest, error) {
	req := uc.DefaultRequest()

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil {
			return req, book.ErrInvalidPage
		}
		req.Page = n
	}
	if pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil {
			return req, book.ErrInvalidPageSize
		}
		req.PageSize = n
	}
	if sortField != "" {
		req.SortField = sortField
	}
	if sortOrder != "" {
		req.SortOrder = sortOrder
	}
	return req, nil
}

// Execute 执行列表查询用例
// 1. 解析排序字段(查表)和排序方向
// 2. 调用领域服务分页查询
// 3. 转换为DTO
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	col := book.ResolveSortField(req.SortField)
	desc := book.ResolveSortOrder(req.SortOrder)
	order := "asc"
	if desc {
		order = "desc"
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooks",
		attribute.Int("page", req.Page),
		attribute.Int("page_size", req.PageSize),
		attribute.String("sort_field", col.Field),
		attribute.String("sort_order", order),
	)
	defer span.End()

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Sort:     col,
		Desc:     desc,
	})
	uc.metrics.ObserveBookList(col.Field, order, req.PageSize, len(books), err)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	items := make([]BookItem, len(books))
	for i, b := range books {
		items[i] = BookItem{
			ID:             b.ID,
			Title:          b.Title,
			Author:         b.Author,
			Publisher:      b.Publisher,
			ISBN:           b.ISBN,
			Category:       b.Category,
			Classification: b.Classification,
			PageCount:      b.PageCount,
			Price:          b.Price,
		}
	}

	return &ListBooksResponse{
		TotalBooks: total,
		Books:      items,
	}, nil
}
