// Package client 图书列表HTTP客户端和分页状态机
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Client 图书列表接口
type Client interface {
	ListBooks(ctx context.Context, q Query) (*Page, error)
}

// Query 列表查询参数
type Query struct {
	Page      int
	PageSize  int
	SortField string
	SortOrder string
}

// Book 列表项
type Book struct {
	BookID         uint            `json:"bookId"`
	Title          string          `json:"title"`
	Author         string          `json:"author"`
	Publisher      string          `json:"publisher"`
	ISBN           string          `json:"isbn"`
	Category       string          `json:"category"`
	Classification string          `json:"classification"`
	PageCount      int             `json:"pageCount"`
	Price          decimal.Decimal `json:"price"`
}

// Page 一页数据
type Page struct {
	TotalBooks int64  `json:"totalBooks"`
	Books      []Book `json:"books"`
}

// APIError 服务端返回的错误
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("book api error: status=%d code=%d message=%s", e.Status, e.Code, e.Message)
}

// APIClient 基于resty的Client实现
type APIClient struct {
	httpClient *resty.Client
}

// NewAPIClient baseURL如 http://localhost:8080
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	restyClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &APIClient{httpClient: restyClient}
}

// ListBooks GET /api/books
// 零值参数不发送,由服务端使用默认值
func (c *APIClient) ListBooks(ctx context.Context, q Query) (*Page, error) {
	params := map[string]string{}
	if q.Page != 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.PageSize != 0 {
		params["pageSize"] = strconv.Itoa(q.PageSize)
	}
	if q.SortField != "" {
		params["sortField"] = q.SortField
	}
	if q.SortOrder != "" {
		params["sortOrder"] = q.SortOrder
	}

	result := new(Page)
	apiErr := new(APIError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(result).
		SetError(apiErr).
		Get("/api/books")
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		apiErr.Status = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return nil, apiErr
	}

	if result.Books == nil {
		result.Books = []Book{}
	}
	return result, nil
}
