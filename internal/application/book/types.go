package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
)

// 时间格式
const dateTimeLayout = "2006-01-02 15:04:05"

// CatalogCache 目录缓存接口
// 设计说明:
// 1. 由应用层声明需要的最小能力,redis.CatalogCache是生产实现
// 2. 缓存彻底可选:注入nil表示关闭缓存,所有读写直达数据库
// 3. GetBook未命中时返回错误,调用方回源数据库
type CatalogCache interface {
	GetBook(ctx context.Context, isbn string) (*book.Book, error)
	SetBook(ctx context.Context, b *book.Book)
	InvalidateBook(ctx context.Context, isbn string)
}

// BookResponse 图书响应DTO
type BookResponse struct {
	ID                uint   `json:"id"`
	ISBN              string `json:"isbn"`
	Title             string `json:"title"`
	Author            string `json:"author"`
	ShelfLocation     string `json:"shelf_location"`
	AvailableQuantity int    `json:"available_quantity"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// toBookResponse 领域实体 → 响应DTO
func toBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:                b.ID,
		ISBN:              b.ISBN,
		Title:             b.Title,
		Author:            b.Author,
		ShelfLocation:     b.ShelfLocation,
		AvailableQuantity: b.AvailableQuantity,
		CreatedAt:         b.CreatedAt.Format(dateTimeLayout),
		UpdatedAt:         b.UpdatedAt.Format(dateTimeLayout),
	}
}
