package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 查询图书列表
	// params支持按标题/作者/ISBN过滤与分页
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// LockByISBN 悲观锁查询图书(借出时锁定容量)
	// 使用SELECT FOR UPDATE锁定行,防止并发超借
	// 必须在事务内调用(事务DB通过context传递)
	LockByISBN(ctx context.Context, isbn string) (*Book, error)
}

// ListParams 列表查询参数
// 过滤字段为精确匹配,与分页组合使用
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Title    string // 按书名过滤
	Author   string // 按作者过滤
	ISBN     string // 按ISBN过滤
}
