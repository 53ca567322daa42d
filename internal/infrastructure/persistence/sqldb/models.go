package sqldb

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// BookModel GORM图书模型
// 设计说明:
// 1. 主键列名为book_id,同时作为排序的最终兜底条件(插入顺序)
// 2. 价格列为decimal(18,2);sqlite会按数值亲和性存储,排序时统一做CAST
// 3. classification为空字符串而不是NULL,各数据库的空值排序位置一致
type BookModel struct {
	ID             uint            `gorm:"column:book_id;primaryKey;autoIncrement"`
	Title          string          `gorm:"size:200;not null;index"`
	Author         string          `gorm:"size:100;not null"`
	Publisher      string          `gorm:"size:100;not null"`
	ISBN           string          `gorm:"column:isbn;size:20;not null"`
	Category       string          `gorm:"size:50;not null"`
	Classification string          `gorm:"size:50;not null;default:''"`
	PageCount      int             `gorm:"column:page_count;not null;default:0"`
	Price          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
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

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:             m.ID,
		Title:          m.Title,
		Author:         m.Author,
		Publisher:      m.Publisher,
		ISBN:           m.ISBN,
		Category:       m.Category,
		Classification: m.Classification,
		PageCount:      m.PageCount,
		Price:          m.Price,
	}
}
