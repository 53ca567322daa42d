package dto

import (
	"encoding/json"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
)

// BookListItem HTTP图书列表项
// classification为空时不输出;price输出为JSON数字
type BookListItem struct {
	BookID         uint        `json:"bookId" example:"1"`
	Title          string      `json:"title" example:"Clean Code"`
	Author         string      `json:"author" example:"Robert C. Martin"`
	Publisher      string      `json:"publisher" example:"Prentice Hall"`
	ISBN           string      `json:"isbn" example:"978-0132350884"`
	Category       string      `json:"category" example:"Software Engineering"`
	Classification string      `json:"classification,omitempty" example:"QA76.76.D47"`
	PageCount      int         `json:"pageCount" example:"464"`
	Price          json.Number `json:"price" swaggertype:"number" example:"39.99"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	TotalBooks int64          `json:"totalBooks" example:"12"`
	Books      []BookListItem `json:"books"`
}

// NewListBooksResponse 应用层结果 → HTTP响应
func NewListBooksResponse(resp *appbook.ListBooksResponse) *ListBooksResponse {
	books := make([]BookListItem, len(resp.Books))
	for i, b := range resp.Books {
		books[i] = BookListItem{
			BookID:         b.ID,
			Title:          b.Title,
			Author:         b.Author,
			Publisher:      b.Publisher,
			ISBN:           b.ISBN,
			Category:       b.Category,
			Classification: b.Classification,
			PageCount:      b.PageCount,
			Price:          json.Number(b.Price.String()),
		}
	}
	return &ListBooksResponse{
		TotalBooks: resp.TotalBooks,
		Books:      books,
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Message string `json:"message,omitempty" example:"pong"`
	Status  string `json:"status" example:"healthy"`
}
