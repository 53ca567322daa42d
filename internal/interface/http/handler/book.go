package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase *appbook.ListBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(listBooksUseCase *appbook.ListBooksUseCase) *BookHandler {
	return &BookHandler{
		listBooksUseCase: listBooksUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  分页、排序查询图书。sortField不区分大小写,未识别时按Title;sortOrder只有asc为升序,其它值为降序
// @Tags         图书
// @Produce      json
// @Param        page       query int    false "页码(从1开始)" default(1)
// @Param        pageSize   query int    false "每页数量" default(5)
// @Param        sortField  query string false "排序字段" Enums(Title, Author, Publisher, ISBN, Category, Classification, Pages, Price) default(Title)
// @Param        sortOrder  query string false "排序方向" Enums(asc, desc) default(asc)
// @Success      200 {object} dto.ListBooksResponse
// @Failure      400 {object} response.ErrorBody "参数错误"
// @Failure      500 {object} response.ErrorBody "存储错误"
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	req, err := h.listBooksUseCase.ParseQuery(
		c.Query("page"),
		c.Query("pageSize"),
		c.Query("sortField"),
		c.Query("sortOrder"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewListBooksResponse(result))
}
