package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// ManageBookUseCase 图书目录维护用例(新增/更新/删除)
// 设计说明:
// 1. 应用层负责用例编排,业务规则校验由领域服务负责
//    (ISBN格式、副本数范围、ISBN重复、在借记录引用约束)
// 2. 写路径负责缓存失效:先写库,成功后失效缓存,TTL兜底
type ManageBookUseCase struct {
	bookService book.Service
	cache       CatalogCache
}

// NewManageBookUseCase 创建目录维护用例
// cache为nil表示关闭缓存
func NewManageBookUseCase(bookService book.Service, cache CatalogCache) *ManageBookUseCase {
	return &ManageBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// AddBookRequest 新增图书请求DTO
type AddBookRequest struct {
	ISBN              string // ISBN号(2-13位数字)
	Title             string // 书名
	Author            string // 作者
	ShelfLocation     string // 架位号
	AvailableQuantity int    // 可借副本数(缺省为1,由传输层填充)
}

// AddBook 新增图书
func (uc *ManageBookUseCase) AddBook(ctx context.Context, req AddBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.AddBook(ctx, req.ISBN, req.Title, req.Author, req.ShelfLocation, req.AvailableQuantity)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// UpdateBookRequest 更新图书请求DTO
// 空字符串/nil表示该字段不修改
type UpdateBookRequest struct {
	ISBN              string // 目标图书的ISBN(路径参数)
	Title             string
	Author            string
	ShelfLocation     string
	AvailableQuantity *int
}

// UpdateBook 更新图书信息
// 更新成功后失效缓存,后续读取回源拿到新值
func (uc *ManageBookUseCase) UpdateBook(ctx context.Context, req UpdateBookRequest) (*BookResponse, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.ISBN, req.Title, req.Author, req.ShelfLocation, req.AvailableQuantity)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateBook(ctx, req.ISBN)
	}

	return toBookResponse(b), nil
}

// DeleteBook 删除图书
// 尚有在借记录的图书会被领域服务拒绝(ErrHasActiveLoans)
func (uc *ManageBookUseCase) DeleteBook(ctx context.Context, isbn string) error {
	if err := uc.bookService.DeleteBook(ctx, isbn); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.InvalidateBook(ctx, isbn)
	}

	return nil
}
