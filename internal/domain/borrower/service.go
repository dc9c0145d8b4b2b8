package borrower

import (
	"context"
	"time"
)

// Service 借阅人领域服务接口
// 设计说明:
// 1. 封装借阅人注册/维护的业务规则
// 2. 借阅引擎只读取借阅人,通过Repository的FindByEmail
type Service interface {
	// RegisterBorrower 注册借阅人
	// 业务规则:邮箱不能重复(数据库唯一索引保证)
	RegisterBorrower(ctx context.Context, name, email string, registeredDate time.Time) (*Borrower, error)

	// GetBorrowerByEmail 根据邮箱获取借阅人
	GetBorrowerByEmail(ctx context.Context, email string) (*Borrower, error)

	// UpdateBorrower 按邮箱更新借阅人信息
	UpdateBorrower(ctx context.Context, email, name string) (*Borrower, error)

	// DeleteBorrower 按邮箱删除借阅人
	DeleteBorrower(ctx context.Context, email string) error

	// ListBorrowers 分页查询借阅人列表
	ListBorrowers(ctx context.Context, page, pageSize int) ([]*Borrower, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建借阅人领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RegisterBorrower 注册借阅人
func (s *service) RegisterBorrower(ctx context.Context, name, email string, registeredDate time.Time) (*Borrower, error) {
	b := NewBorrower(name, email, registeredDate)

	// Repository会把唯一索引冲突转换为ErrEmailDuplicate
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBorrowerByEmail 根据邮箱获取借阅人
func (s *service) GetBorrowerByEmail(ctx context.Context, email string) (*Borrower, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UpdateBorrower 按邮箱更新借阅人信息
func (s *service) UpdateBorrower(ctx context.Context, email, name string) (*Borrower, error) {
	b, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	b.UpdateInfo(name)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBorrower 按邮箱删除借阅人
func (s *service) DeleteBorrower(ctx context.Context, email string) error {
	b, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, b.ID)
}

// ListBorrowers 分页查询借阅人列表
func (s *service) ListBorrowers(ctx context.Context, page, pageSize int) ([]*Borrower, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}
