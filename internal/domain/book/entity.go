package book

import (
	"github.com/shopspring/decimal"
)

// Book 图书实体
// 设计说明:
// 1. 单表模型,没有任何外键关联
// 2. ID由存储层分配,分配后不可变
// 3. 价格使用decimal表示货币金额(不用float64,避免精度问题)
// 4. Classification在部分数据中为空
type Book struct {
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

// NewBook 创建图书(仅供初始化数据使用,系统不提供写接口)
func NewBook(title, author, publisher, isbn, category, classification string, pageCount int, price decimal.Decimal) *Book {
	return &Book{
		Title:          title,
		Author:         author,
		Publisher:      publisher,
		ISBN:           isbn,
		Category:       category,
		Classification: classification,
		PageCount:      pageCount,
		Price:          price,
	}
}

// Validate 校验数值字段
// 业务规则:页数和价格不能为负数
func (b *Book) Validate() error {
	if b.PageCount < 0 {
		return ErrInvalidPageCount
	}
	if b.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}
