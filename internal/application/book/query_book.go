package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// QueryBookUseCase 图书目录查询用例
// 设计说明:
// 1. 按ISBN单查走Cache-Aside:先查缓存,未命中回源MySQL并回填
// 2. 缓存故障(熔断打开)表现为未命中,查询自动退化为直连数据库
// 3. 列表查询不走缓存:过滤条件组合太多,缓存命中率低
type QueryBookUseCase struct {
	bookService book.Service
	cache       CatalogCache
}

// NewQueryBookUseCase 创建目录查询用例
// cache为nil表示关闭缓存
func NewQueryBookUseCase(bookService book.Service, cache CatalogCache) *QueryBookUseCase {
	return &QueryBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// GetByISBN 按ISBN查询图书
func (uc *QueryBookUseCase) GetByISBN(ctx context.Context, isbn string) (*BookResponse, error) {
	// 1. 查缓存
	if uc.cache != nil {
		if b, err := uc.cache.GetBook(ctx, isbn); err == nil {
			return toBookResponse(b), nil
		}
	}

	// 2. 回源数据库
	b, err := uc.bookService.GetBookByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存(写失败不影响响应)
	if uc.cache != nil {
		uc.cache.SetBook(ctx, b)
	}

	return toBookResponse(b), nil
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Title    string // 按书名过滤(精确匹配)
	Author   string // 按作者过滤(精确匹配)
	ISBN     string // 按ISBN过滤
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	List       []*BookResponse `json:"list"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// List 查询图书列表
func (uc *QueryBookUseCase) List(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 参数默认值与范围限制
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20 // 默认每页20条
	}
	if req.PageSize > 100 {
		req.PageSize = 100 // 最大每页100条
	}

	// 2. 查询
	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Title:    req.Title,
		Author:   req.Author,
		ISBN:     req.ISBN,
	})
	if err != nil {
		return nil, err
	}

	// 3. 转换为DTO
	list := make([]*BookResponse, len(books))
	for i, b := range books {
		list[i] = toBookResponse(b)
	}

	// 4. 计算总页数
	totalPages := int(total) / req.PageSize
	if int(total)%req.PageSize != 0 {
		totalPages++
	}

	return &ListBooksResponse{
		List:       list,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}
