package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书目录HTTP处理器
type BookHandler struct {
	manageUseCase *appbook.ManageBookUseCase
	queryUseCase  *appbook.QueryBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(manageUseCase *appbook.ManageBookUseCase, queryUseCase *appbook.QueryBookUseCase) *BookHandler {
	return &BookHandler{
		manageUseCase: manageUseCase,
		queryUseCase:  queryUseCase,
	}
}

// toBookDTO 应用层响应 → HTTP响应
func toBookDTO(b *appbook.BookResponse) *dto.BookResponse {
	return &dto.BookResponse{
		ID:                b.ID,
		ISBN:              b.ISBN,
		Title:             b.Title,
		Author:            b.Author,
		ShelfLocation:     b.ShelfLocation,
		AvailableQuantity: b.AvailableQuantity,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// AddBook 新增图书
// @Summary      新增图书
// @Description  录入一本新图书到目录,ISBN不能重复
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "ISBN已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	// 2. 副本数缺省为1
	quantity := 1
	if req.AvailableQuantity != nil {
		quantity = *req.AvailableQuantity
	}

	// 3. 调用应用层用例
	result, err := h.manageUseCase.AddBook(c.Request.Context(), appbook.AddBookRequest{
		ISBN:              req.ISBN,
		Title:             req.Title,
		Author:            req.Author,
		ShelfLocation:     req.ShelfLocation,
		AvailableQuantity: quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookDTO(result))
}

// GetBook 查询图书详情
// @Summary      查询图书
// @Description  按ISBN查询图书详情
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "图书ISBN"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.queryUseCase.GetByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookDTO(result))
}

// UpdateBook 更新图书信息
// @Summary      更新图书
// @Description  按ISBN更新图书信息,缺省字段不修改
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        isbn path string true "图书ISBN"
// @Param        request body dto.UpdateBookRequest true "更新内容"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{isbn} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUseCase.UpdateBook(c.Request.Context(), appbook.UpdateBookRequest{
		ISBN:              c.Param("isbn"),
		Title:             req.Title,
		Author:            req.Author,
		ShelfLocation:     req.ShelfLocation,
		AvailableQuantity: req.AvailableQuantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookDTO(result))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  按ISBN删除图书,尚有在借记录的图书不允许删除
// @Tags         图书
// @Produce      json
// @Param        isbn path string true "图书ISBN"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "图书不存在"
// @Failure      409 {object} response.Response "尚有未归还的借阅记录"
// @Router       /api/v1/books/{isbn} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.manageUseCase.DeleteBook(c.Request.Context(), c.Param("isbn")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// ListBooks 查询图书列表
// @Summary      图书列表
// @Description  分页查询图书,支持按书名/作者/ISBN过滤
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        title query string false "按书名过滤"
// @Param        author query string false "按作者过滤"
// @Param        isbn query string false "按ISBN过滤"
// @Success      200 {object} response.Response{data=appbook.ListBooksResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	result, err := h.queryUseCase.List(c.Request.Context(), appbook.ListBooksRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
