package borrower

import (
	"context"
)

// Repository 借阅人仓储接口(依赖倒置原则)
// 设计说明:由domain层定义接口,infrastructure层实现,便于Mock测试
type Repository interface {
	// Create 创建借阅人
	Create(ctx context.Context, borrower *Borrower) error

	// FindByID 根据ID查找借阅人
	FindByID(ctx context.Context, id uint) (*Borrower, error)

	// FindByEmail 根据邮箱查找借阅人
	FindByEmail(ctx context.Context, email string) (*Borrower, error)

	// Update 更新借阅人信息
	Update(ctx context.Context, borrower *Borrower) error

	// Delete 删除借阅人(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询借阅人列表
	List(ctx context.Context, page, pageSize int) ([]*Borrower, int64, error)
}
